package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriver_Pluralize(t *testing.T) {
	// Test: standard English noun pluralization
	d := NewDeriver(nil)

	tests := []struct {
		singular string
		plural   string
	}{
		{"category", "categories"},
		{"post", "posts"},
		{"box", "boxes"},
		{"match", "matches"},
		{"wish", "wishes"},
		{"class", "classes"},
		{"blog_post", "blog_posts"},
		{"gas", "gases"},
		{"bus", "buses"},
		{"status", "statuses"},
		{"campus", "campuses"},
		{"analysis", "analyses"},
		{"waltz", "waltzes"},
		{"quiz", "quizzes"},
		{"news", "news"},
		{"person", "people"},
	}

	for _, tt := range tests {
		t.Run(tt.singular, func(t *testing.T) {
			assert.Equal(t, tt.plural, d.Pluralize(tt.singular))
		})
	}
}

func TestDeriver_SibilantTables(t *testing.T) {
	// Test: table and model plurals of s/z nouns take "es"
	d := NewDeriver(nil)

	gas := d.Derive("Gas")
	assert.Equal(t, "gases", gas.Table)
	assert.Equal(t, "Gases", gas.ModelPlural)
	assert.Equal(t, "gas_translations", gas.TranslationTable)

	assert.Equal(t, "waltzes", d.Derive("waltz").Table)
}

func TestDeriver_Irregulars(t *testing.T) {
	// Test: explicit irregular forms override the rules
	d := NewDeriver(map[string]string{"octopus": "octopodes"})

	assert.Equal(t, "octopodes", d.Pluralize("octopus"))
	names := d.Derive("Octopus")
	assert.Equal(t, "octopodes", names.Table)
	assert.Equal(t, "Octopodes", names.ModelPlural)
}

func TestDeriver_Derive(t *testing.T) {
	d := NewDeriver(nil)

	tests := []struct {
		input string
		want  Names
	}{
		{
			input: "Post",
			want: Names{
				Raw:              "Post",
				Model:            "Post",
				ModelPlural:      "Posts",
				Variable:         "post",
				VariablePlural:   "posts",
				Snake:            "post",
				SnakePlural:      "posts",
				Table:            "posts",
				TranslationTable: "post_translations",
				TranslationModel: "PostTranslation",
				ForeignKey:       "post_id",
				Controller:       "PostController",
				Request:          "PostRequest",
				Title:            "Post",
			},
		},
		{
			input: "BlogCategory",
			want: Names{
				Raw:              "BlogCategory",
				Model:            "BlogCategory",
				ModelPlural:      "BlogCategories",
				Variable:         "blogCategory",
				VariablePlural:   "blogCategories",
				Snake:            "blog_category",
				SnakePlural:      "blog_categories",
				Table:            "blog_categories",
				TranslationTable: "blog_category_translations",
				TranslationModel: "BlogCategoryTranslation",
				ForeignKey:       "blog_category_id",
				Controller:       "BlogCategoryController",
				Request:          "BlogCategoryRequest",
				Title:            "Blog Category",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Derive(tt.input))
		})
	}
}

func TestDeriver_InputForms(t *testing.T) {
	// Test: snake, camel and lowercase inputs converge on the same names
	d := NewDeriver(nil)

	for _, input := range []string{"blog_post", "blogPost", "BlogPost", "blog-post"} {
		t.Run(input, func(t *testing.T) {
			names := d.Derive(input)
			assert.Equal(t, "BlogPost", names.Model)
			assert.Equal(t, "blog_post", names.Snake)
			assert.Equal(t, "blog_posts", names.Table)
		})
	}
}

func TestDeriver_Deterministic(t *testing.T) {
	// Test: same input always yields same output
	a := NewDeriver(map[string]string{"person": "people", "child": "children"})
	b := NewDeriver(map[string]string{"child": "children", "person": "people"})

	assert.Equal(t, a.Derive("Person"), b.Derive("Person"))
	assert.Equal(t, a.Derive("Person"), a.Derive("Person"))
}

func TestAccessorAndClass(t *testing.T) {
	d := NewDeriver(nil)

	assert.Equal(t, "category", d.Accessor("Category"))
	assert.Equal(t, "blogCategory", d.Accessor("BlogCategory"))
	assert.Equal(t, "User", d.Class("user"))
	assert.Equal(t, "BlogCategory", d.Class("blog_category"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Title", Label("title"))
	assert.Equal(t, "Profile image", Label("profile_image"))
	assert.Equal(t, "", Label(""))
}
