package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudkit/internal/config"
	"github.com/okra-platform/crudkit/internal/generate"
	"github.com/okra-platform/crudkit/internal/naming"
)

// CrudOptions are the arguments of make:crud and watch
type CrudOptions struct {
	Name string

	// Descriptor defaults to <descriptors dir>/<name>.yml
	Descriptor string

	ReplaceRoute bool
	DryRun       bool
}

// Generator runs or plans one generation
type Generator interface {
	Run(ctx context.Context, req generate.Request) (*generate.Result, error)
	Plan(ctx context.Context, req generate.Request) (*generate.Result, error)
}

// GeneratorFactory builds the generator of a project
type GeneratorFactory func(cfg *config.Config, projectRoot string, logger zerolog.Logger) Generator

func defaultGeneratorFactory(cfg *config.Config, projectRoot string, logger zerolog.Logger) Generator {
	return generate.New(cfg, projectRoot, logger)
}

// CrudDependencies for the make:crud command
type CrudDependencies struct {
	ConfigLoader     ConfigLoader
	GeneratorFactory GeneratorFactory
	Output           Output
}

// CrudCommand encapsulates make:crud with injected dependencies
type CrudCommand struct {
	dir    string
	logger zerolog.Logger
	deps   CrudDependencies
}

// NewCrudCommand creates a make:crud command for the project at dir
func NewCrudCommand(dir string, logger zerolog.Logger) *CrudCommand {
	return &CrudCommand{
		dir:    dir,
		logger: logger,
		deps: CrudDependencies{
			ConfigLoader:     defaultConfigLoader{},
			GeneratorFactory: defaultGeneratorFactory,
			Output:           &defaultOutput{w: os.Stdout},
		},
	}
}

// WithDependencies allows injecting custom dependencies for testing
func (cc *CrudCommand) WithDependencies(deps CrudDependencies) *CrudCommand {
	cc.deps = deps
	return cc
}

// Execute generates the resource and reports every artifact
func (cc *CrudCommand) Execute(ctx context.Context, opts CrudOptions) error {
	cfg, projectRoot, err := cc.deps.ConfigLoader.Load(cc.dir)
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}

	req, err := buildRequest(cfg, opts)
	if err != nil {
		return err
	}

	gen := cc.deps.GeneratorFactory(cfg, projectRoot, cc.logger)

	if opts.DryRun {
		result, err := gen.Plan(ctx, req)
		if err != nil {
			return err
		}
		for _, a := range result.Artifacts {
			cc.deps.Output.Printf("%s would write %s (%s, %d bytes)\n", planMark, a.Path, a.Mode, len(a.Content))
		}
		return nil
	}

	result, err := gen.Run(ctx, req)
	if result != nil {
		for _, a := range result.Artifacts {
			reportArtifact(cc.deps.Output, a)
		}
	}
	if err != nil {
		cc.deps.Output.Printf("%s %v\n", failMark, err)
		return err
	}

	cc.deps.Output.Printf("CRUD for %s generated successfully.\n", result.Resource.Name)
	return nil
}

// buildRequest maps CLI options onto a generation request
func buildRequest(cfg *config.Config, opts CrudOptions) (generate.Request, error) {
	if opts.Name == "" {
		return generate.Request{}, fmt.Errorf("resource name is required")
	}

	descriptor := opts.Descriptor
	if descriptor == "" {
		descriptor = filepath.Join(cfg.Descriptors, DescriptorFileName(opts.Name))
	} else {
		// user-supplied paths are relative to the working directory
		abs, err := filepath.Abs(descriptor)
		if err != nil {
			return generate.Request{}, fmt.Errorf("failed to resolve %s: %w", descriptor, err)
		}
		descriptor = abs
	}

	req := generate.Request{
		Name:           opts.Name,
		DescriptorPath: descriptor,
	}
	if opts.ReplaceRoute {
		req.RouteMode = config.RouteModeReplace
	}
	return req, nil
}

// DescriptorFileName is the conventional description file of a resource
func DescriptorFileName(name string) string {
	return naming.NewDeriver(nil).Snake(name) + ".yml"
}
