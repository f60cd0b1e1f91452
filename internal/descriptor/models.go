// Package descriptor loads CRUD resource descriptions from YAML.
package descriptor

// Resource is the root of a parsed resource description
type Resource struct {
	Name    string
	Title   string
	Columns []Column
}

// Column describes a single field of the resource, in declaration order
type Column struct {
	Name        string
	Type        string
	InputType   Widget
	Nullable    bool
	Default     *Literal
	Fillable    bool
	Localized   bool
	Validation  string
	Label       string
	ShowInTable bool
	Options     []string
	Relation    *Relation
}

// Widget is the form input kind used for a column
type Widget string

const (
	WidgetText     Widget = "text"
	WidgetEmail    Widget = "email"
	WidgetNumber   Widget = "number"
	WidgetPassword Widget = "password"
	WidgetTextarea Widget = "textarea"
	WidgetSelect   Widget = "select"
	WidgetCheckbox Widget = "checkbox"
	WidgetRadio    Widget = "radio"
	WidgetFile     Widget = "file"
)

// RequiresOptions reports whether the widget renders a fixed list of choices
func (w Widget) RequiresOptions() bool {
	return w == WidgetSelect || w == WidgetRadio
}

// RelationType names the kind of association a column declares
type RelationType string

const (
	HasOne        RelationType = "hasOne"
	HasMany       RelationType = "hasMany"
	BelongsTo     RelationType = "belongsTo"
	BelongsToMany RelationType = "belongsToMany"
)

// Valid returns true if the RelationType is a known association
func (t RelationType) Valid() bool {
	switch t {
	case HasOne, HasMany, BelongsTo, BelongsToMany:
		return true
	default:
		return false
	}
}

// Relation is an association from this resource to another one
type Relation struct {
	Type       RelationType
	Model      string
	ForeignKey string
	LocalKey   string
	PivotTable string
}

// LiteralKind is the YAML scalar kind of a default value
type LiteralKind string

const (
	LiteralString LiteralKind = "string"
	LiteralInt    LiteralKind = "int"
	LiteralFloat  LiteralKind = "float"
	LiteralBool   LiteralKind = "bool"
	LiteralNull   LiteralKind = "null"
)

// Literal is a column default value together with its scalar kind
type Literal struct {
	Value string
	Kind  LiteralKind
}

// Column returns the column with the given name
func (r *Resource) Column(name string) (Column, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
