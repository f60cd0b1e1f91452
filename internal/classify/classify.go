// Package classify partitions descriptor columns into generation categories.
package classify

import (
	"fmt"
	"regexp"

	"github.com/okra-platform/crudkit/internal/descriptor"
	"github.com/okra-platform/crudkit/internal/naming"
)

// ReservedColumn is the implicit primary key; it is never writable
const ReservedColumn = "id"

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// class and accessor names do not depend on irregular plurals
var deriver = naming.NewDeriver(nil)

// MalformedError reports a descriptor invariant violation for one column
type MalformedError struct {
	Column string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return descriptor.ErrMalformed
}

// Classification holds the ordered column partitions a generation run needs.
// Every slice keeps declaration order.
type Classification struct {
	// Writable columns are fillable and not the reserved id
	Writable []descriptor.Column
	// Plain is Writable minus Localized
	Plain []descriptor.Column
	// Localized columns hold one value per locale
	Localized []descriptor.Column
	// Files use the file widget
	Files []descriptor.Column
	// Relations declare an association
	Relations []descriptor.Column
	// Displayed columns appear in the list view
	Displayed []descriptor.Column
	// Regular columns are all non-localized columns; they make up the main form
	Regular []descriptor.Column
}

// HasLocalized reports whether the localized artifacts are produced
func (c *Classification) HasLocalized() bool {
	return len(c.Localized) > 0
}

// Classify validates the resource and partitions its columns
func Classify(r *descriptor.Resource) (*Classification, error) {
	if err := Validate(r); err != nil {
		return nil, err
	}

	c := &Classification{}
	for _, col := range r.Columns {
		writable := col.Fillable && col.Name != ReservedColumn

		if writable {
			c.Writable = append(c.Writable, col)
			if col.Localized {
				c.Localized = append(c.Localized, col)
			} else {
				c.Plain = append(c.Plain, col)
			}
		}
		if !col.Localized {
			c.Regular = append(c.Regular, col)
		}
		if col.InputType == descriptor.WidgetFile {
			c.Files = append(c.Files, col)
		}
		if col.Relation != nil {
			c.Relations = append(c.Relations, col)
		}
		if col.ShowInTable {
			c.Displayed = append(c.Displayed, col)
		}
	}

	return c, nil
}

// Validate checks the descriptor invariants and returns the first violation
func Validate(r *descriptor.Resource) error {
	if model := deriver.Derive(r.Name).Model; !identifierRe.MatchString(model) {
		return fmt.Errorf("%w: resource name %q does not form a valid class name (%s)", descriptor.ErrMalformed, r.Name, model)
	}

	seen := make(map[string]bool, len(r.Columns))
	accessors := make(map[string]string)

	for _, col := range r.Columns {
		if !identifierRe.MatchString(col.Name) {
			return &MalformedError{Column: col.Name, Reason: "name must be a valid identifier"}
		}
		if seen[col.Name] {
			return &MalformedError{Column: col.Name, Reason: "declared more than once"}
		}
		seen[col.Name] = true

		if col.Type == "" {
			return &MalformedError{Column: col.Name, Reason: "type is required"}
		}
		if col.InputType.RequiresOptions() && len(col.Options) == 0 {
			return &MalformedError{Column: col.Name, Reason: fmt.Sprintf("%s input requires options", col.InputType)}
		}
		if col.Localized && (!col.Fillable || col.Name == ReservedColumn) {
			return &MalformedError{Column: col.Name, Reason: "multilingual columns must be fillable"}
		}

		if rel := col.Relation; rel != nil {
			if !rel.Type.Valid() {
				return &MalformedError{Column: col.Name, Reason: fmt.Sprintf("unknown relation type %q (valid: hasOne, hasMany, belongsTo, belongsToMany)", rel.Type)}
			}
			if rel.Model == "" {
				return &MalformedError{Column: col.Name, Reason: "relation model is required"}
			}
			if rel.Type == descriptor.BelongsToMany && rel.PivotTable == "" {
				return &MalformedError{Column: col.Name, Reason: "belongsToMany relation requires pivot_table"}
			}

			accessor := deriver.Accessor(rel.Model)
			if other, ok := accessors[accessor]; ok {
				return &MalformedError{Column: col.Name, Reason: fmt.Sprintf("relation accessor %s() is already declared by column %q", accessor, other)}
			}
			accessors[accessor] = col.Name
		}
	}

	return nil
}
