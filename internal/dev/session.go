package dev

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/okra-platform/crudkit/internal/generate"
)

// Generator runs one generation
type Generator interface {
	Run(ctx context.Context, req generate.Request) (*generate.Result, error)
}

// ReportFunc receives the outcome of every generation of a session
type ReportFunc func(result *generate.Result, err error)

// Session regenerates one resource each time its description changes.
// Generations run one at a time on the goroutine that called Start.
type Session struct {
	generator  Generator
	request    generate.Request
	descriptor string
	debounce   time.Duration
	logger     zerolog.Logger
	report     ReportFunc

	// changes holds at most one pending change notification
	changes chan struct{}
}

// NewSession creates a watch session. descriptorPath must be absolute.
func NewSession(gen Generator, req generate.Request, descriptorPath string, debounce time.Duration, logger zerolog.Logger, report ReportFunc) *Session {
	if report == nil {
		report = func(*generate.Result, error) {}
	}
	return &Session{
		generator:  gen,
		request:    req,
		descriptor: descriptorPath,
		debounce:   debounce,
		logger:     logger.With().Str("component", "watch").Logger(),
		report:     report,
		changes:    make(chan struct{}, 1),
	}
}

// Start generates once, then watches the description until ctx is done.
// A failed generation is reported and watching continues.
func (s *Session) Start(ctx context.Context) error {
	s.regenerate(ctx)

	watcher, err := NewFileWatcher(
		[]string{filepath.Base(s.descriptor)},
		s.handleFileChange,
		s.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// editors often replace the file, so its directory is watched
	dir := filepath.Dir(s.descriptor)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- watcher.Start(watchCtx)
	}()

	s.logger.Info().Str("path", s.descriptor).Msg("watching for changes")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errCh:
			return err
		case <-s.changes:
			pending = time.After(s.debounce)
		case <-pending:
			pending = nil
			s.regenerate(ctx)
		}
	}
}

// handleFileChange is called by the watcher for every matching event
func (s *Session) handleFileChange(path string, op fsnotify.Op) {
	if !relevant(path, op) {
		return
	}

	s.logger.Debug().Str("path", path).Str("op", op.String()).Msg("descriptor changed")

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// relevant reports whether an event may have changed the description contents
func relevant(path string, op fsnotify.Op) bool {
	if strings.HasSuffix(path, "~") || strings.Contains(path, ".tmp") {
		return false
	}
	return op.Has(fsnotify.Write) || op.Has(fsnotify.Create) || op.Has(fsnotify.Rename)
}

func (s *Session) regenerate(ctx context.Context) {
	start := time.Now()
	result, err := s.generator.Run(ctx, s.request)
	if err != nil {
		s.logger.Error().Err(err).Msg("generation failed")
	} else {
		s.logger.Debug().
			Int("artifacts", len(result.Artifacts)).
			Dur("elapsed", time.Since(start)).
			Msg("generation completed")
	}
	s.report(result, err)
}
