// Package naming derives every identifier form of a resource name.
package naming

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TranslationSuffix is appended to the snake_case singular to name the translation table
const TranslationSuffix = "_translations"

// Names holds every derived form of a resource name
type Names struct {
	Raw              string // as given: "blogPost"
	Model            string // PascalCase singular: "BlogPost"
	ModelPlural      string // PascalCase plural: "BlogPosts"
	Variable         string // camelCase singular: "blogPost"
	VariablePlural   string // camelCase plural: "blogPosts"
	Snake            string // snake_case singular: "blog_post"
	SnakePlural      string // snake_case plural: "blog_posts"
	Table            string // primary table: "blog_posts"
	TranslationTable string // "blog_post_translations"
	TranslationModel string // "BlogPostTranslation"
	ForeignKey       string // "blog_post_id"
	Controller       string // "BlogPostController"
	Request          string // "BlogPostRequest"
	Title            string // display name: "Blog Post"
}

// Deriver maps raw resource names to Names. It is safe to reuse across
// generations; it holds only pluralization rules.
type Deriver struct {
	rules *inflect.Ruleset
	title cases.Caser
}

// sibilantPlurals complete the default ruleset so that every noun ending in
// s or z takes "es". Rules added later take precedence, so the Latin and
// exact forms of the default set that end in s or z are restated last.
var sibilantPlurals = [][2]string{
	{"s", "ses"},
	{"z", "zes"},
	{"sis", "ses"},
	{"axis", "axes"},
	{"testis", "testes"},
	{"octopus", "octopi"},
	{"virus", "viri"},
	{"news", "news"},
}

// NewDeriver creates a Deriver using the default English rules plus the
// given irregular singular -> plural forms.
func NewDeriver(irregulars map[string]string) *Deriver {
	rules := inflect.NewDefaultRuleset()
	for _, r := range sibilantPlurals {
		rules.AddPlural(r[0], r[1])
	}
	rules.AddPluralExact("quiz", "quizzes", true)

	singulars := make([]string, 0, len(irregulars))
	for s := range irregulars {
		singulars = append(singulars, s)
	}
	sort.Strings(singulars)
	for _, s := range singulars {
		rules.AddIrregular(strings.ToLower(s), strings.ToLower(irregulars[s]))
	}

	return &Deriver{
		rules: rules,
		title: cases.Title(language.English),
	}
}

// Derive returns every identifier form of name
func (d *Deriver) Derive(name string) Names {
	snake := d.Snake(name)
	snakePlural := d.rules.Pluralize(snake)
	model := d.rules.Camelize(snake)
	modelPlural := d.rules.Camelize(snakePlural)

	return Names{
		Raw:              name,
		Model:            model,
		ModelPlural:      modelPlural,
		Variable:         lowerFirst(model),
		VariablePlural:   lowerFirst(modelPlural),
		Snake:            snake,
		SnakePlural:      snakePlural,
		Table:            snakePlural,
		TranslationTable: snake + TranslationSuffix,
		TranslationModel: model + "Translation",
		ForeignKey:       snake + "_id",
		Controller:       model + "Controller",
		Request:          model + "Request",
		Title:            d.title.String(strings.ReplaceAll(snake, "_", " ")),
	}
}

// Snake returns the lowercase snake_case form of name
func (d *Deriver) Snake(name string) string {
	name = strings.TrimSpace(name)
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	return strings.ToLower(d.rules.Underscore(name))
}

// Pluralize returns the plural form of a lowercase word
func (d *Deriver) Pluralize(word string) string {
	return d.rules.Pluralize(word)
}

// Accessor returns the relation accessor name for a related resource: the
// camelCase singular of the resource name.
func (d *Deriver) Accessor(related string) string {
	return lowerFirst(d.rules.Camelize(d.Snake(related)))
}

// Class returns the PascalCase class name of a related resource
func (d *Deriver) Class(related string) string {
	return d.rules.Camelize(d.Snake(related))
}

// Label returns the default display label of a column: words separated by
// spaces, first letter capitalized.
func Label(column string) string {
	return upperFirst(strings.ReplaceAll(column, "_", " "))
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
