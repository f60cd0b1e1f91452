package laravel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSynthesizer(t *testing.T) {
	in := newInput(t, postDescriptor)

	artifacts := synthesize(t, &RequestSynthesizer{}, in)
	require.Len(t, artifacts, 1)

	request, ok := artifacts["app/Http/Requests/PostRequest.php"]
	require.True(t, ok)

	content := string(request.Content)
	assert.Contains(t, content, `namespace App\Http\Requests;`)
	assert.Contains(t, content, "class PostRequest extends FormRequest")
	assert.Contains(t, content, "        $rules = [\n            'title' => 'required|max:255',\n            '%body%' => 'nullable',\n        ];\n")
	assert.Contains(t, content, "return RuleFactory::make($rules);")
}

func TestRequestSynthesizer_NotLocalized(t *testing.T) {
	in := newInput(t, "name: Post\ncolumns:\n  title: {type: string}\n")

	artifacts, err := (&RequestSynthesizer{}).Synthesize(in)
	require.NoError(t, err)

	// Test: the request is only produced for localized resources
	assert.Empty(t, artifacts)
}
