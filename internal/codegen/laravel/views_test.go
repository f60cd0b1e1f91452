package laravel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okra-platform/crudkit/internal/descriptor"
)

func TestViewSynthesizer_Plain(t *testing.T) {
	in := newInput(t, `
name: Post
title: Blog posts
columns:
  title: {type: string}
`)

	artifacts := synthesize(t, &ViewSynthesizer{}, in)

	// Test: the plain resource gets the four views and no locale tabs
	require.Len(t, artifacts, 4)
	for _, name := range []string{"index", "create", "edit", "_form"} {
		_, ok := artifacts["resources/views/pages/post/"+name+".blade.php"]
		assert.True(t, ok, name)
	}

	index := string(artifacts["resources/views/pages/post/index.blade.php"].Content)
	assert.Contains(t, index, "@section('title', 'Blog posts')")
	assert.Contains(t, index, "{{ route('post.create') }}")

	form := string(artifacts["resources/views/pages/post/_form.blade.php"].Content)
	assert.NotContains(t, form, "@include('pages.post.data')")
	assert.True(t, strings.HasPrefix(form, "<div class=\"row\">\n    <div class=\"col-md-6\">"))
	assert.True(t, strings.HasSuffix(form, "    </div>\n</div>\n"))
}

func TestViewSynthesizer_Localized(t *testing.T) {
	in := newInput(t, postDescriptor)

	artifacts := synthesize(t, &ViewSynthesizer{}, in)
	require.Len(t, artifacts, 5)

	form := string(artifacts["resources/views/pages/post/_form.blade.php"].Content)

	// Test: the form includes the locale tabs before its own fields
	assert.True(t, strings.HasPrefix(form, "@include('pages.post.data')\n<div class=\"row\">"))
	assert.Contains(t, form, `name="title"`)
	assert.NotContains(t, form, `name="body"`)

	data := string(artifacts["resources/views/pages/post/data.blade.php"].Content)

	// Test: one textarea per configured locale
	assert.Equal(t, 2, strings.Count(data, "<textarea"))
	assert.Contains(t, data, `name="body:en"`)
	assert.Contains(t, data, `name="body:ar"`)
	assert.Contains(t, data, "inputValue($data, 'body', 'ar')")
	assert.Contains(t, data, `href="#data-container-ar"`)
	assert.Contains(t, data, ">AR</a>")
	assert.Contains(t, data, "session('lang_tab', 'en') == 'ar'")
}

func TestViewSynthesizer_RequiresLocales(t *testing.T) {
	in := newInput(t, postDescriptor)
	in.Options.Locales = nil

	_, err := (&ViewSynthesizer{}).Synthesize(in)
	assert.Error(t, err)
}

func TestWidgetBlock(t *testing.T) {
	tests := []struct {
		name     string
		column   descriptor.Column
		contains []string
		excludes []string
	}{
		{
			name:     "text",
			column:   descriptor.Column{Name: "title", InputType: descriptor.WidgetText},
			contains: []string{`<input type="text"`, `<label for="title">Title</label>`, "inputValue($data, 'title')"},
		},
		{
			name:     "email",
			column:   descriptor.Column{Name: "contact", InputType: descriptor.WidgetEmail},
			contains: []string{`<input type="email"`},
		},
		{
			name:     "password",
			column:   descriptor.Column{Name: "secret", InputType: descriptor.WidgetPassword},
			contains: []string{`<input type="password"`},
		},
		{
			name:     "unknown falls back to text",
			column:   descriptor.Column{Name: "color", InputType: "colorpicker"},
			contains: []string{`<input type="text"`, `name="color"`},
		},
		{
			name:     "empty falls back to text",
			column:   descriptor.Column{Name: "color"},
			contains: []string{`<input type="text"`},
		},
		{
			name:     "textarea",
			column:   descriptor.Column{Name: "summary", InputType: descriptor.WidgetTextarea, Label: "Short summary"},
			contains: []string{"<textarea", "<label for=\"summary\">Short summary</label>"},
			excludes: []string{"<input"},
		},
		{
			name:   "select",
			column: descriptor.Column{Name: "status", InputType: descriptor.WidgetSelect, Options: []string{"draft", "published"}},
			contains: []string{
				`<option value="">Select Status</option>`,
				`<option value="draft" {{ inputValue($data, 'status') == 'draft' ? 'selected' : '' }}>draft</option>`,
				`<option value="published"`,
			},
		},
		{
			name:     "checkbox",
			column:   descriptor.Column{Name: "active", InputType: descriptor.WidgetCheckbox},
			contains: []string{`<input type="hidden" name="active" value="0">`, `type="checkbox"`},
		},
		{
			name:     "radio",
			column:   descriptor.Column{Name: "size", InputType: descriptor.WidgetRadio, Options: []string{"s", "m"}},
			contains: []string{`id="size_0"`, `id="size_1"`, "inputValue($data, 'size') == 'm' ? 'checked' : ''"},
		},
		{
			name:     "file",
			column:   descriptor.Column{Name: "cover", InputType: descriptor.WidgetFile},
			contains: []string{`type="file"`, `data-model="post" data-field="cover"`, "$data?->cover?->exists", `data-id="{{ $data->id }}"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := WidgetBlock(tt.column, "post")
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(block, "    <div class=\"col-md-6\">"))
			assert.True(t, strings.HasSuffix(block, "    </div>\n"))
			for _, s := range tt.contains {
				assert.Contains(t, block, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, block, s)
			}
		})
	}
}
