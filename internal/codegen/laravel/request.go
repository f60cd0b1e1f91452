package laravel

import (
	"path"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
)

// RequestSynthesizer renders the form request used by localized controllers
type RequestSynthesizer struct{}

// Name returns the artifact kind
func (s *RequestSynthesizer) Name() string {
	return "request"
}

type requestData struct {
	Namespace string
	Class     string
	Rules     []Rule
}

// Synthesize renders app/Http/Requests/<Model>Request.php when the resource
// has localized columns
func (s *RequestSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	if !in.Localized() {
		return nil, nil
	}

	content, err := templates.Render("request.php.tmpl", requestData{
		Namespace: in.Options.RequestNamespace,
		Class:     in.Names.Request,
		Rules:     ValidationRules(in.Resource.Columns),
	})
	if err != nil {
		return nil, err
	}

	return []codegen.Artifact{{
		Kind:    s.Name(),
		Path:    path.Join(in.Options.RequestsDir, in.Names.Request+".php"),
		Content: []byte(content),
	}}, nil
}
