package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when the description file does not exist
	ErrNotFound = errors.New("descriptor not found")

	// ErrMalformed is returned when the description cannot be mapped onto a Resource
	ErrMalformed = errors.New("malformed descriptor")
)

type rawColumn struct {
	Type        string       `yaml:"type"`
	InputType   string       `yaml:"input_type"`
	Nullable    bool         `yaml:"nullable"`
	Default     yaml.Node    `yaml:"default"`
	Fillable    *bool        `yaml:"fillable"`
	IsMultilang bool         `yaml:"is_multilang"`
	Validation  string       `yaml:"validation"`
	Label       string       `yaml:"label"`
	ShowAtTable *bool        `yaml:"show_at_table"`
	Options     []string     `yaml:"options"`
	Relation    *rawRelation `yaml:"relation"`
}

type rawRelation struct {
	Type       string `yaml:"type"`
	Model      string `yaml:"model"`
	ForeignKey string `yaml:"foreign_key"`
	LocalKey   string `yaml:"local_key"`
	PivotTable string `yaml:"pivot_table"`
}

// Parse parses a YAML resource description. A non-empty name overrides the
// name declared in the document.
func Parse(data []byte, name string) (*Resource, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrMalformed)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: expected a mapping at the top level", ErrMalformed, root.Line)
	}

	resource := &Resource{}
	var columns *yaml.Node

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "name", "resourceName":
			resource.Name = strings.TrimSpace(value.Value)
		case "title":
			resource.Title = strings.TrimSpace(value.Value)
		case "columns":
			columns = value
		}
	}

	if name != "" {
		resource.Name = name
	}
	if resource.Name == "" {
		return nil, fmt.Errorf("%w: resource name is required", ErrMalformed)
	}

	if columns == nil || columns.Tag == "!!null" {
		return nil, fmt.Errorf("%w: columns are required", ErrMalformed)
	}
	if columns.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: columns must be a mapping of column name to definition", ErrMalformed, columns.Line)
	}

	for i := 0; i+1 < len(columns.Content); i += 2 {
		key, value := columns.Content[i], columns.Content[i+1]
		column, err := parseColumn(key.Value, value)
		if err != nil {
			return nil, err
		}
		resource.Columns = append(resource.Columns, column)
	}

	return resource, nil
}

func parseColumn(name string, node *yaml.Node) (Column, error) {
	if node.Kind != yaml.MappingNode {
		return Column{}, fmt.Errorf("%w: line %d: column %q must be a mapping", ErrMalformed, node.Line, name)
	}

	var raw rawColumn
	if err := node.Decode(&raw); err != nil {
		return Column{}, fmt.Errorf("%w: column %q: %v", ErrMalformed, name, err)
	}

	column := Column{
		Name:        name,
		Type:        strings.TrimSpace(raw.Type),
		InputType:   Widget(strings.ToLower(strings.TrimSpace(raw.InputType))),
		Nullable:    raw.Nullable,
		Default:     parseLiteral(&raw.Default),
		Fillable:    raw.Fillable == nil || *raw.Fillable,
		Localized:   raw.IsMultilang,
		Validation:  raw.Validation,
		Label:       raw.Label,
		ShowInTable: raw.ShowAtTable == nil || *raw.ShowAtTable,
		Options:     raw.Options,
	}

	if raw.Relation != nil {
		column.Relation = &Relation{
			Type:       RelationType(strings.TrimSpace(raw.Relation.Type)),
			Model:      strings.TrimSpace(raw.Relation.Model),
			ForeignKey: raw.Relation.ForeignKey,
			LocalKey:   raw.Relation.LocalKey,
			PivotTable: raw.Relation.PivotTable,
		}
	}

	return column, nil
}

// parseLiteral returns nil when the key was absent
func parseLiteral(node *yaml.Node) *Literal {
	if node.Kind == 0 {
		return nil
	}

	switch node.ShortTag() {
	case "!!null":
		return &Literal{Kind: LiteralNull}
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err == nil {
			if b {
				return &Literal{Value: "true", Kind: LiteralBool}
			}
			return &Literal{Value: "false", Kind: LiteralBool}
		}
	case "!!int":
		return &Literal{Value: node.Value, Kind: LiteralInt}
	case "!!float":
		return &Literal{Value: node.Value, Kind: LiteralFloat}
	}

	return &Literal{Value: node.Value, Kind: LiteralString}
}
