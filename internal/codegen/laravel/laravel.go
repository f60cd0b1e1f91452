// Package laravel synthesizes the CRUD artifact set for a Laravel application:
// Eloquent models, migrations, form requests, controllers, Blade views and the
// resource route.
package laravel

import "github.com/okra-platform/crudkit/internal/codegen"

// DefaultRegistry holds the Laravel synthesizers in run order
var DefaultRegistry = codegen.NewRegistry()

func init() {
	Register(DefaultRegistry)
}

// Register adds every Laravel synthesizer to r in the order they must run
func Register(r *codegen.Registry) {
	r.Register(&ModelSynthesizer{})
	r.Register(&MigrationSynthesizer{})
	r.Register(&TranslationSynthesizer{})
	r.Register(&RequestSynthesizer{})
	r.Register(&ControllerSynthesizer{})
	r.Register(&ViewSynthesizer{})
	r.Register(&RouteSynthesizer{})
}
