package laravel

import (
	"fmt"
	"path"
	"strings"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/descriptor"
)

// ViewSynthesizer renders the Blade views of the resource
type ViewSynthesizer struct{}

// Name returns the artifact kind
func (s *ViewSynthesizer) Name() string {
	return "views"
}

type pageData struct {
	Title string
	Path  string
}

type formData struct {
	IncludeLocalized bool
	Path             string
	Blocks           []string
}

type widgetData struct {
	Column  string
	Label   string
	Type    string
	Options []string
	Path    string
}

type localizedField struct {
	Column   string
	Label    string
	Textarea bool
}

type localizedData struct {
	Locales       []string
	DefaultLocale string
	Fields        []localizedField
}

// Synthesize renders index, create, edit and _form, plus the data fragment
// holding the locale tabs when the resource has localized columns
func (s *ViewSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	dir := path.Join(in.Options.ViewsDir, in.Names.Snake)
	page := pageData{Title: title(in), Path: in.Names.Snake}

	var artifacts []codegen.Artifact
	add := func(name, tmpl string, data any) error {
		content, err := templates.Render(tmpl, data)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, codegen.Artifact{
			Kind:    s.Name(),
			Path:    path.Join(dir, name+".blade.php"),
			Content: []byte(content),
		})
		return nil
	}

	for _, name := range []string{"index", "create", "edit"} {
		if err := add(name, name+".blade.php.tmpl", page); err != nil {
			return nil, err
		}
	}

	form, err := s.form(in)
	if err != nil {
		return nil, err
	}
	if err := add("_form", "form.blade.php.tmpl", form); err != nil {
		return nil, err
	}

	if in.Localized() {
		if len(in.Options.Locales) == 0 {
			return nil, fmt.Errorf("localized columns require at least one locale")
		}
		if err := add("data", "data.blade.php.tmpl", localizedFragment(in)); err != nil {
			return nil, err
		}
	}

	return artifacts, nil
}

func (s *ViewSynthesizer) form(in *codegen.Input) (formData, error) {
	data := formData{
		IncludeLocalized: in.Localized(),
		Path:             in.Names.Snake,
	}

	for _, c := range in.Fields.Regular {
		block, err := WidgetBlock(c, in.Names.Snake)
		if err != nil {
			return formData{}, fmt.Errorf("column %q: %w", c.Name, err)
		}
		data.Blocks = append(data.Blocks, block)
	}

	return data, nil
}

// WidgetBlock renders the form block of one column. Unknown widgets fall
// back to a text input.
func WidgetBlock(c descriptor.Column, resourcePath string) (string, error) {
	data := widgetData{
		Column:  c.Name,
		Label:   label(c),
		Type:    string(descriptor.WidgetText),
		Options: c.Options,
		Path:    resourcePath,
	}

	tmpl := "widget-input"
	switch c.InputType {
	case descriptor.WidgetEmail, descriptor.WidgetNumber, descriptor.WidgetPassword:
		data.Type = string(c.InputType)
	case descriptor.WidgetTextarea:
		tmpl = "widget-textarea"
	case descriptor.WidgetSelect:
		tmpl = "widget-select"
	case descriptor.WidgetCheckbox:
		tmpl = "widget-checkbox"
	case descriptor.WidgetRadio:
		tmpl = "widget-radio"
	case descriptor.WidgetFile:
		tmpl = "widget-file"
	}

	block, err := templates.Render(tmpl, data)
	if err != nil {
		return "", err
	}
	return strings.TrimLeft(block, "\n"), nil
}

// localizedFragment builds the locale tabs data; localized columns render
// as textareas or plain text inputs only
func localizedFragment(in *codegen.Input) localizedData {
	data := localizedData{
		Locales:       in.Options.Locales,
		DefaultLocale: in.Options.Locales[0],
	}
	for _, c := range in.Fields.Localized {
		data.Fields = append(data.Fields, localizedField{
			Column:   c.Name,
			Label:    label(c),
			Textarea: c.InputType == descriptor.WidgetTextarea,
		})
	}
	return data
}
