// Package templates holds the artifact templates as embedded data.
//
// Templates use [[ ]] delimiters so that Blade's {{ }} and {!! !!} pass
// through untouched.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed laravel/*.tmpl
var laravelTemplates embed.FS

var laravel = template.Must(
	template.New("laravel").
		Delims("[[", "]]").
		Funcs(TemplateFuncs()).
		ParseFS(laravelTemplates, "laravel/*.tmpl"),
)

// Render executes the named template (file name or defined block) with data
func Render(name string, data any) (string, error) {
	tmpl := laravel.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.String(), nil
}

// TemplateFuncs returns the function map available to artifact templates
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"php":      PHPString,
		"phpInner": PHPEscape,
		"join":     strings.Join,
		"upper":    strings.ToUpper,
	}
}

// PHPEscape escapes s for use inside a single-quoted PHP string
func PHPEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}

// PHPString quotes s as a single-quoted PHP string literal
func PHPString(s string) string {
	return "'" + PHPEscape(s) + "'"
}
