package laravel

import (
	"path"
	"strings"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/descriptor"
)

// TransformKind selects how the list view renders a column value
type TransformKind string

const (
	TransformNone   TransformKind = ""
	TransformImage  TransformKind = "image"
	TransformLink   TransformKind = "link"
	TransformToggle TransformKind = "toggle"
)

// TransformFor returns the display transform of a list column
func TransformFor(c descriptor.Column) TransformKind {
	switch {
	case c.InputType == descriptor.WidgetFile && strings.Contains(strings.ToLower(c.Name), "image"):
		return TransformImage
	case c.InputType == descriptor.WidgetFile:
		return TransformLink
	case strings.EqualFold(c.Type, "boolean"):
		return TransformToggle
	default:
		return TransformNone
	}
}

// Transform is one display transform applied by the list view
type Transform struct {
	Key    string
	Column string
	Kind   TransformKind
}

// TableColumn is one entry of the list-view column mapping
type TableColumn struct {
	Key   string
	Label string
}

// ControllerSynthesizer renders the resource controller
type ControllerSynthesizer struct{}

// Name returns the artifact kind
func (s *ControllerSynthesizer) Name() string {
	return "controller"
}

type controllerData struct {
	Namespace       string
	Localized       bool
	RequestImport   string
	ModelImport     string
	DataTableImport string
	Class           string
	DataTable       string
	Model           string
	Transforms      []Transform
	Path            string
	Request         string
	Variable        string
	Title           string
	Rules           []Rule
	Columns         []TableColumn
}

// Synthesize renders app/Http/Controllers/<Model>Controller.php
func (s *ControllerSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	columns, transforms := ListColumns(in.Fields.Displayed)

	data := controllerData{
		Namespace:       in.Options.ControllerNamespace,
		Localized:       in.Localized(),
		ModelImport:     qualify(in.Options.ModelNamespace, in.Names.Model),
		DataTableImport: in.Options.DataTable,
		Class:           in.Names.Controller,
		DataTable:       className(in.Options.DataTable),
		Model:           in.Names.Model,
		Transforms:      transforms,
		Path:            in.Names.Snake,
		Request:         in.Names.Request,
		Variable:        in.Names.Variable,
		Title:           title(in),
		Rules:           ValidationRules(in.Resource.Columns),
		Columns:         columns,
	}
	if data.Localized {
		data.RequestImport = qualify(in.Options.RequestNamespace, in.Names.Request)
	}

	content, err := templates.Render("controller.php.tmpl", data)
	if err != nil {
		return nil, err
	}

	return []codegen.Artifact{{
		Kind:    s.Name(),
		Path:    path.Join(in.Options.ControllersDir, in.Names.Controller+".php"),
		Content: []byte(content),
	}}, nil
}

// ListColumns builds the list-view column mapping and the transforms for
// the displayed columns. Transforms follow column order and share their key
// with the column they fill.
func ListColumns(displayed []descriptor.Column) ([]TableColumn, []Transform) {
	columns := make([]TableColumn, 0, len(displayed))
	var transforms []Transform

	for _, c := range displayed {
		key := c.Name
		if kind := TransformFor(c); kind != TransformNone {
			// transformed columns are listed under the key the data table fills in
			key = "_" + c.Name
			transforms = append(transforms, Transform{Key: key, Column: c.Name, Kind: kind})
		}
		columns = append(columns, TableColumn{Key: key, Label: label(c)})
	}

	return columns, transforms
}

// title is the display name of the resource
func title(in *codegen.Input) string {
	if in.Resource.Title != "" {
		return in.Resource.Title
	}
	return in.Names.Title
}
