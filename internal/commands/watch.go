package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudkit/internal/dev"
	"github.com/okra-platform/crudkit/internal/generate"
)

// WatchSession is a running watch loop
type WatchSession interface {
	Start(ctx context.Context) error
}

// SessionFactory builds the watch session of one resource
type SessionFactory func(gen dev.Generator, req generate.Request, descriptorPath string, debounce time.Duration, logger zerolog.Logger, report dev.ReportFunc) WatchSession

func defaultSessionFactory(gen dev.Generator, req generate.Request, descriptorPath string, debounce time.Duration, logger zerolog.Logger, report dev.ReportFunc) WatchSession {
	return dev.NewSession(gen, req, descriptorPath, debounce, logger, report)
}

// WatchDependencies for the watch command
type WatchDependencies struct {
	ConfigLoader     ConfigLoader
	GeneratorFactory GeneratorFactory
	SessionFactory   SessionFactory
	SignalNotifier   SignalNotifier
	Output           Output
}

// WatchCommand encapsulates the watch logic with injected dependencies
type WatchCommand struct {
	dir    string
	logger zerolog.Logger
	deps   WatchDependencies
}

// NewWatchCommand creates a watch command with default dependencies
func NewWatchCommand(dir string, logger zerolog.Logger) *WatchCommand {
	return &WatchCommand{
		dir:    dir,
		logger: logger,
		deps: WatchDependencies{
			ConfigLoader:     defaultConfigLoader{},
			GeneratorFactory: defaultGeneratorFactory,
			SessionFactory:   defaultSessionFactory,
			SignalNotifier:   defaultSignalNotifier{},
			Output:           &defaultOutput{w: os.Stdout},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (wc *WatchCommand) WithDependencies(deps WatchDependencies) *WatchCommand {
	wc.deps = deps
	return wc
}

// Execute regenerates the resource until interrupted. Watch mode always
// replaces the resource route so repeated generations leave one line.
func (wc *WatchCommand) Execute(ctx context.Context, opts CrudOptions) error {
	cfg, projectRoot, err := wc.deps.ConfigLoader.Load(wc.dir)
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	opts.ReplaceRoute = true
	req, err := buildRequest(cfg, opts)
	if err != nil {
		return err
	}

	debounce, err := cfg.DebounceInterval()
	if err != nil {
		return err
	}

	descriptorPath := req.DescriptorPath
	if !filepath.IsAbs(descriptorPath) {
		descriptorPath = filepath.Join(projectRoot, descriptorPath)
	}

	wc.deps.Output.Printf("Watching %s for changes. Press Ctrl+C to stop.\n", descriptorPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	wc.deps.SignalNotifier.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer wc.deps.SignalNotifier.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			wc.deps.Output.Println("Stopping watch...")
			cancel()
		case <-ctx.Done():
		}
	}()

	gen := wc.deps.GeneratorFactory(cfg, projectRoot, wc.logger)
	session := wc.deps.SessionFactory(gen, req, descriptorPath, debounce, wc.logger, wc.report)

	if err := session.Start(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("watch error: %w", err)
	}

	return nil
}

func (wc *WatchCommand) report(result *generate.Result, err error) {
	if result != nil {
		for _, a := range result.Artifacts {
			reportArtifact(wc.deps.Output, a)
		}
	}
	if err != nil {
		wc.deps.Output.Printf("%s %v\n", failMark, err)
		return
	}
	wc.deps.Output.Printf("%s regenerated at %s\n", result.Resource.Name, time.Now().Format(time.Kitchen))
}
