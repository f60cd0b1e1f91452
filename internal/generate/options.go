package generate

import (
	"time"

	"github.com/okra-platform/crudkit/internal/codegen"
)

// Option is a functional option for configuring an Orchestrator
type Option func(*Orchestrator)

// WithFileSystem replaces the os-backed file system, e.g. with a MemFileSystem in tests
func WithFileSystem(fs FileSystem) Option {
	return func(o *Orchestrator) {
		o.fs = fs
	}
}

// WithClock sets the time source of migration timestamps
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// WithRegistry sets the synthesizers to run
func WithRegistry(r *codegen.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = r
	}
}
