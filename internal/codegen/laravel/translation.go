package laravel

import (
	"path"
	"time"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/codegen/writer"
)

// LocaleColumn holds the locale code of a translation row
const LocaleColumn = "locale"

// TranslationSynthesizer renders the translation model and its migration.
// It produces nothing unless the resource has localized columns.
type TranslationSynthesizer struct{}

// Name returns the artifact kind
func (s *TranslationSynthesizer) Name() string {
	return "translation"
}

type translationModelData struct {
	Namespace string
	Class     string
	Body      string
}

// Synthesize renders app/Models/<Model>Translation.php and
// database/migrations/<timestamp>_create_<snake>_translations_table.php
func (s *TranslationSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	if !in.Localized() {
		return nil, nil
	}

	model, err := s.model(in)
	if err != nil {
		return nil, err
	}
	migration, err := s.migration(in)
	if err != nil {
		return nil, err
	}

	return []codegen.Artifact{model, migration}, nil
}

func (s *TranslationSynthesizer) model(in *codegen.Input) (codegen.Artifact, error) {
	fillable := []string{templates.PHPString(LocaleColumn)}
	for _, c := range in.Fields.Localized {
		fillable = append(fillable, templates.PHPString(c.Name))
	}

	w := writer.NewWriter(writer.PHPIndent)
	w.Indent()
	w.WriteArray("protected $fillable = ", ";", fillable)

	content, err := templates.Render("translation_model.php.tmpl", translationModelData{
		Namespace: in.Options.ModelNamespace,
		Class:     in.Names.TranslationModel,
		Body:      w.String(),
	})
	if err != nil {
		return codegen.Artifact{}, err
	}

	return codegen.Artifact{
		Kind:    s.Name(),
		Path:    path.Join(in.Options.ModelsDir, in.Names.TranslationModel+".php"),
		Content: []byte(content),
	}, nil
}

func (s *TranslationSynthesizer) migration(in *codegen.Input) (codegen.Artifact, error) {
	lines := []string{
		"$table->id();",
		"$table->foreignId(" + templates.PHPString(in.Names.ForeignKey) + ")->constrained(" +
			templates.PHPString(in.Names.Table) + ")->onDelete('cascade');",
		"$table->string(" + templates.PHPString(LocaleColumn) + ")->index();",
	}
	for _, c := range in.Fields.Localized {
		lines = append(lines, "$table->"+c.Type+"("+templates.PHPString(c.Name)+")->nullable();")
	}
	lines = append(lines, "$table->timestamps();", "$table->softDeletes();")

	content, err := templates.Render("migration.php.tmpl", migrationData{
		Table:   in.Names.TranslationTable,
		Columns: lines,
	})
	if err != nil {
		return codegen.Artifact{}, err
	}

	// one second later so the parent table exists when this migration runs
	ts := in.Options.Timestamp.Add(time.Second)

	name := "create_" + in.Names.TranslationTable + "_table"
	return codegen.Artifact{
		Kind:    s.Name(),
		Path:    migrationPath(in.Options.MigrationsDir, ts, name),
		Content: []byte(content),
		Key:     MigrationPattern(name),
	}, nil
}
