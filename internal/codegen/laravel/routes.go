package laravel

import (
	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
)

// RouteSynthesizer renders the resource route registration
type RouteSynthesizer struct{}

// Name returns the artifact kind
func (s *RouteSynthesizer) Name() string {
	return "routes"
}

type routeData struct {
	Path       string
	Controller string
}

// Synthesize renders one Route::resource line to append to the route file
func (s *RouteSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	content, err := templates.Render("routes.php.tmpl", routeData{
		Path:       in.Names.Snake,
		Controller: `\` + qualify(in.Options.ControllerNamespace, in.Names.Controller),
	})
	if err != nil {
		return nil, err
	}

	return []codegen.Artifact{{
		Kind:    s.Name(),
		Path:    in.Options.RoutesFile,
		Content: []byte(content),
		Mode:    codegen.ModeAppend,
		Key:     RouteKey(in.Names.Snake),
	}}, nil
}

// RouteKey is the prefix shared by every registration of the resource path
func RouteKey(resourcePath string) string {
	return "Route::resource(" + templates.PHPString(resourcePath) + ","
}
