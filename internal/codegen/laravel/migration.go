package laravel

import (
	"strings"

	"github.com/okra-platform/crudkit/internal/classify"
	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/descriptor"
)

// MigrationSynthesizer renders the schema migration of the primary table
type MigrationSynthesizer struct{}

// Name returns the artifact kind
func (s *MigrationSynthesizer) Name() string {
	return "migration"
}

type migrationData struct {
	Table   string
	Columns []string
}

// Synthesize renders database/migrations/<timestamp>_create_<table>_table.php
func (s *MigrationSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	lines := make([]string, 0, len(in.Resource.Columns)+3)
	if _, ok := in.Resource.Column(classify.ReservedColumn); !ok {
		lines = append(lines, "$table->id();")
	}
	for _, c := range in.Resource.Columns {
		lines = append(lines, ColumnDefinition(c))
	}
	lines = append(lines, "$table->timestamps();", "$table->softDeletes();")

	content, err := templates.Render("migration.php.tmpl", migrationData{
		Table:   in.Names.Table,
		Columns: lines,
	})
	if err != nil {
		return nil, err
	}

	name := "create_" + in.Names.Table + "_table"
	return []codegen.Artifact{{
		Kind:    s.Name(),
		Path:    migrationPath(in.Options.MigrationsDir, in.Options.Timestamp, name),
		Content: []byte(content),
		Key:     MigrationPattern(name),
	}}, nil
}

// ColumnDefinition renders one schema builder statement, e.g.
// $table->string('status')->nullable()->default('draft');
func ColumnDefinition(c descriptor.Column) string {
	var b strings.Builder
	b.WriteString("$table->")
	b.WriteString(c.Type)
	b.WriteString("(")
	b.WriteString(templates.PHPString(c.Name))
	b.WriteString(")")
	if c.Nullable {
		b.WriteString("->nullable()")
	}
	if c.Default != nil {
		b.WriteString("->default(")
		b.WriteString(phpLiteral(c.Default))
		b.WriteString(")")
	}
	b.WriteString(";")
	return b.String()
}
