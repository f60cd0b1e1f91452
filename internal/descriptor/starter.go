package descriptor

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Starter returns the initial description written by make:yaml
func Starter(name, title string) *Resource {
	return &Resource{
		Name:  name,
		Title: title,
		Columns: []Column{
			{
				Name:        "name",
				Type:        "string",
				InputType:   WidgetText,
				Validation:  "required|string|max:255",
				Fillable:    true,
				ShowInTable: true,
			},
		},
	}
}

// Marshal renders a Resource back to YAML, keeping column order and
// omitting attributes that hold their default value.
func Marshal(r *Resource) ([]byte, error) {
	columns := mapping()
	for _, c := range r.Columns {
		columns.Content = append(columns.Content, scalar(c.Name), columnNode(c))
	}

	root := mapping()
	root.Content = append(root.Content, scalar("name"), scalar(r.Name))
	if r.Title != "" {
		root.Content = append(root.Content, scalar("title"), scalar(r.Title))
	}
	root.Content = append(root.Content, scalar("columns"), columns)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode descriptor: %w", err)
	}

	return buf.Bytes(), nil
}

func columnNode(c Column) *yaml.Node {
	n := mapping()
	add := func(key string, value *yaml.Node) {
		n.Content = append(n.Content, scalar(key), value)
	}

	add("type", scalar(c.Type))
	if c.InputType != "" {
		add("input_type", scalar(string(c.InputType)))
	}
	if c.Nullable {
		add("nullable", boolean(true))
	}
	if c.Default != nil {
		add("default", literalNode(c.Default))
	}
	if !c.Fillable {
		add("fillable", boolean(false))
	}
	if c.Localized {
		add("is_multilang", boolean(true))
	}
	if c.Validation != "" {
		add("validation", scalar(c.Validation))
	}
	if c.Label != "" {
		add("label", scalar(c.Label))
	}
	if !c.ShowInTable {
		add("show_at_table", boolean(false))
	}
	if len(c.Options) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, o := range c.Options {
			seq.Content = append(seq.Content, scalar(o))
		}
		add("options", seq)
	}
	if rel := c.Relation; rel != nil {
		rn := mapping()
		rn.Content = append(rn.Content, scalar("type"), scalar(string(rel.Type)), scalar("model"), scalar(rel.Model))
		for _, kv := range [][2]string{
			{"foreign_key", rel.ForeignKey},
			{"local_key", rel.LocalKey},
			{"pivot_table", rel.PivotTable},
		} {
			if kv[1] != "" {
				rn.Content = append(rn.Content, scalar(kv[0]), scalar(kv[1]))
			}
		}
		add("relation", rn)
	}

	return n
}

func literalNode(l *Literal) *yaml.Node {
	switch l.Kind {
	case LiteralNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case LiteralBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: l.Value}
	case LiteralInt:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: l.Value}
	case LiteralFloat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: l.Value}
	}
	return scalar(l.Value)
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode}
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func boolean(v bool) *yaml.Node {
	if v {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
}
