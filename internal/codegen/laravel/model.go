package laravel

import (
	"fmt"
	"path"
	"sort"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/codegen/templates"
	"github.com/okra-platform/crudkit/internal/codegen/writer"
	"github.com/okra-platform/crudkit/internal/descriptor"
)

// ModelSynthesizer renders the Eloquent model
type ModelSynthesizer struct{}

// Name returns the artifact kind
func (s *ModelSynthesizer) Name() string {
	return "model"
}

type modelData struct {
	Namespace string
	Imports   []string
	Class     string
	Localized bool
	Traits    []string
	Body      string
}

// Synthesize renders app/Models/<Model>.php
func (s *ModelSynthesizer) Synthesize(in *codegen.Input) ([]codegen.Artifact, error) {
	localized := in.Localized()
	fileCasts := len(in.Fields.Files) > 0

	imports := []string{
		`Illuminate\Database\Eloquent\Factories\HasFactory`,
		`Illuminate\Database\Eloquent\Model`,
		`Illuminate\Database\Eloquent\SoftDeletes`,
	}
	traits := []string{"HasFactory", "SoftDeletes"}

	if fileCasts {
		imports = append(imports, in.Options.FileCast)
	}
	if localized {
		imports = append(imports,
			in.Options.TranslationsTrait,
			`Astrotomic\Translatable\Contracts\Translatable as TranslatableContract`,
			`Astrotomic\Translatable\Translatable`,
		)
		traits = append(traits, "Translatable", className(in.Options.TranslationsTrait))
	}
	sort.Strings(imports)

	body, err := s.body(in)
	if err != nil {
		return nil, err
	}

	content, err := templates.Render("model.php.tmpl", modelData{
		Namespace: in.Options.ModelNamespace,
		Imports:   imports,
		Class:     in.Names.Model,
		Localized: localized,
		Traits:    traits,
		Body:      body,
	})
	if err != nil {
		return nil, err
	}

	return []codegen.Artifact{{
		Kind:    s.Name(),
		Path:    path.Join(in.Options.ModelsDir, in.Names.Model+".php"),
		Content: []byte(content),
	}}, nil
}

// body renders the class members: writable fields, translated attributes,
// casts and relation accessors
func (s *ModelSynthesizer) body(in *codegen.Input) (string, error) {
	w := writer.NewWriter(writer.PHPIndent)
	w.Indent()

	fillable := make([]string, 0, len(in.Fields.Plain))
	for _, c := range in.Fields.Plain {
		fillable = append(fillable, templates.PHPString(c.Name))
	}
	w.WriteArray("protected $fillable = ", ";", fillable)

	if in.Localized() {
		translated := make([]string, 0, len(in.Fields.Localized))
		for _, c := range in.Fields.Localized {
			translated = append(translated, templates.PHPString(c.Name))
		}
		w.BlankLine()
		w.WriteArray("public $translatedAttributes = ", ";", translated)
		w.BlankLine()
		w.WriteLinef("public $translationModel = %s::class;", in.Names.TranslationModel)
		w.BlankLine()
		w.WriteLinef("public $translationForeignKey = %s;", templates.PHPString(in.Names.ForeignKey))
	}

	if len(in.Fields.Files) > 0 {
		cast := className(in.Options.FileCast)
		casts := make([]string, 0, len(in.Fields.Files))
		for _, c := range in.Fields.Files {
			casts = append(casts, fmt.Sprintf("%s => %s::class", templates.PHPString(c.Name), cast))
		}
		w.BlankLine()
		w.WriteArray("protected $casts = ", ";", casts)
	}

	for _, c := range in.Fields.Relations {
		call, err := RelationCall(in, c.Relation)
		if err != nil {
			return "", fmt.Errorf("column %q: %w", c.Name, err)
		}
		w.BlankLine()
		w.WriteMethod(fmt.Sprintf("public function %s()", in.Deriver.Accessor(c.Relation.Model)), func() {
			w.WriteLinef("return %s;", call)
		})
	}

	return w.String(), nil
}

// RelationCall renders the Eloquent relation expression for r, e.g.
// $this->belongsToMany(Category::class, 'category_post', 'post_id', 'category_id')
func RelationCall(in *codegen.Input, r *descriptor.Relation) (string, error) {
	related := in.Deriver.Class(r.Model) + "::class"

	var args []string
	switch r.Type {
	case descriptor.HasOne, descriptor.HasMany, descriptor.BelongsTo:
		args = keyArgs(r.ForeignKey, r.LocalKey)
	case descriptor.BelongsToMany:
		args = append([]string{templates.PHPString(r.PivotTable)}, keyArgs(r.ForeignKey, r.LocalKey)...)
	default:
		return "", fmt.Errorf("unknown relation type %q", r.Type)
	}

	call := "$this->" + string(r.Type) + "(" + related
	for _, a := range args {
		call += ", " + a
	}
	return call + ")", nil
}

// keyArgs renders optional key overrides; a missing foreign key before a
// given local key becomes null so the local key keeps its position
func keyArgs(foreignKey, localKey string) []string {
	switch {
	case foreignKey != "" && localKey != "":
		return []string{templates.PHPString(foreignKey), templates.PHPString(localKey)}
	case foreignKey != "":
		return []string{templates.PHPString(foreignKey)}
	case localKey != "":
		return []string{"null", templates.PHPString(localKey)}
	default:
		return nil
	}
}
