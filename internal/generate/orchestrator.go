// Package generate runs a full generation: load the description, classify
// its columns, derive names and write every synthesized artifact.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/okra-platform/crudkit/internal/classify"
	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/laravel"
	"github.com/okra-platform/crudkit/internal/config"
	"github.com/okra-platform/crudkit/internal/descriptor"
	"github.com/okra-platform/crudkit/internal/naming"
)

// Request names the resource to generate and where its description lives
type Request struct {
	// Name overrides the resource name declared in the description
	Name string

	// DescriptorPath is absolute or relative to the project root
	DescriptorPath string

	// RouteMode is config.RouteModeAppend or config.RouteModeReplace;
	// empty uses the configured mode
	RouteMode string
}

// Result describes one generation run
type Result struct {
	Resource *descriptor.Resource
	Names    naming.Names

	// Artifacts lists what was written (or would be, for Plan) in order.
	// After a write failure it holds the artifacts written before it.
	Artifacts []codegen.Artifact
}

// Orchestrator runs the synthesizers of one project
type Orchestrator struct {
	config   *config.Config
	root     string
	logger   zerolog.Logger
	fs       FileSystem
	registry *codegen.Registry
	deriver  *naming.Deriver
	now      func() time.Time
}

// New creates an orchestrator writing below projectRoot
func New(cfg *config.Config, projectRoot string, logger zerolog.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		config:   cfg,
		root:     projectRoot,
		logger:   logger,
		fs:       OSFileSystem{},
		registry: laravel.DefaultRegistry,
		deriver:  naming.NewDeriver(cfg.Irregulars),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run generates and writes every artifact. Each artifact is written as soon
// as its synthesizer returns; the first failure stops the run without
// removing what was already written.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*Result, error) {
	return o.run(ctx, req, true)
}

// Plan renders every artifact without writing anything
func (o *Orchestrator) Plan(ctx context.Context, req Request) (*Result, error) {
	return o.run(ctx, req, false)
}

func (o *Orchestrator) run(ctx context.Context, req Request, write bool) (*Result, error) {
	in, err := o.prepare(req)
	if err != nil {
		return nil, err
	}

	mode := req.RouteMode
	if mode == "" {
		mode = o.config.RouteMode
	}

	result := &Result{Resource: in.Resource, Names: in.Names}

	o.logger.Debug().
		Str("resource", in.Names.Model).
		Strs("synthesizers", o.registry.Names()).
		Str("route_mode", mode).
		Msg("generating")

	for _, s := range o.registry.Synthesizers() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		artifacts, err := s.Synthesize(in)
		if err != nil {
			return result, fmt.Errorf("failed to synthesize %s: %w", s.Name(), err)
		}

		for _, a := range artifacts {
			if mode == config.RouteModeReplace && a.Mode == codegen.ModeCreate && a.Key != "" {
				if a.Path, err = o.earlierVersion(a); err != nil {
					return result, err
				}
			}

			if write {
				if err := o.write(a, mode); err != nil {
					return result, err
				}
			}

			o.logger.Debug().
				Str("artifact", a.Kind).
				Str("path", a.Path).
				Str("mode", a.Mode.String()).
				Bool("dry_run", !write).
				Msg("generated artifact")

			result.Artifacts = append(result.Artifacts, a)
		}
	}

	return result, nil
}

// prepare loads the description and builds the synthesizer input
func (o *Orchestrator) prepare(req Request) (*codegen.Input, error) {
	path := o.resolve(req.DescriptorPath)

	if _, err := o.fs.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDescriptorNotFound, req.DescriptorPath)
		}
		return nil, fmt.Errorf("failed to stat descriptor %s: %w", req.DescriptorPath, err)
	}

	data, err := o.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor %s: %w", req.DescriptorPath, err)
	}

	o.logger.Debug().
		Str("path", path).
		Int("size", len(data)).
		Msg("read descriptor")

	resource, err := descriptor.Parse(data, req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", req.DescriptorPath, err)
	}

	fields, err := classify.Classify(resource)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor %s: %w", req.DescriptorPath, err)
	}

	return &codegen.Input{
		Resource: resource,
		Names:    o.deriver.Derive(resource.Name),
		Fields:   fields,
		Deriver:  o.deriver,
		Options:  o.config.Options(o.now()),
	}, nil
}

func (o *Orchestrator) write(a codegen.Artifact, routeMode string) error {
	path := o.resolve(a.Path)

	if err := o.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &WriteError{Path: a.Path, Err: err}
	}

	content := a.Content
	if a.Mode == codegen.ModeAppend {
		existing, err := o.fs.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &WriteError{Path: a.Path, Err: err}
		}
		if routeMode == config.RouteModeReplace && a.Key != "" {
			existing = dropLines(existing, a.Key)
		}
		content = appendContent(existing, a.Content)
	}

	if err := o.fs.WriteFile(path, content, 0644); err != nil {
		return &WriteError{Path: a.Path, Err: err}
	}
	return nil
}

// earlierVersion returns the path of an existing file matching the artifact
// key, so regenerating replaces it instead of adding a sibling. The oldest
// match wins; without one the artifact path is kept.
func (o *Orchestrator) earlierVersion(a codegen.Artifact) (string, error) {
	dir := path.Dir(a.Path)
	matches, err := o.fs.Glob(filepath.Join(o.resolve(dir), a.Key))
	if err != nil {
		return "", fmt.Errorf("failed to look up earlier %s: %w", a.Kind, err)
	}
	if len(matches) == 0 {
		return a.Path, nil
	}
	return path.Join(dir, filepath.Base(matches[0])), nil
}

func (o *Orchestrator) resolve(path string) string {
	path = filepath.FromSlash(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.root, path)
}

// appendContent adds addition on a fresh line after existing
func appendContent(existing, addition []byte) []byte {
	out := make([]byte, 0, len(existing)+len(addition)+1)
	out = append(out, existing...)
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return append(out, addition...)
}

// dropLines removes every line containing key
func dropLines(content []byte, key string) []byte {
	if len(content) == 0 {
		return content
	}

	lines := strings.SplitAfter(string(content), "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.Contains(line, key) {
			continue
		}
		b.WriteString(line)
	}
	return []byte(b.String())
}
