package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter(PHPIndent)

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", w.String())
}

func TestWriter_Indentation(t *testing.T) {
	// Test: Proper indentation handling
	w := NewWriter(PHPIndent)

	w.WriteLine("public function index()")
	w.WriteLine("{")
	w.Indent()
	w.WriteLine("return view('pages.post.index');")
	w.Dedent()
	w.WriteLine("}")

	expected := "public function index()\n{\n    return view('pages.post.index');\n}\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine prevents multiple blank lines
	w := NewWriter(PHPIndent)

	w.WriteLine("line1")
	w.BlankLine()
	w.WriteLine("line2")
	w.BlankLine()
	w.BlankLine()
	w.WriteLine("line3")

	lines := strings.Split(w.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"line1", "", "line2", "", "line3", ""}, lines)
}

func TestWriter_WriteMethod(t *testing.T) {
	// Test: PHP method braces on their own lines
	w := NewWriter(PHPIndent)
	w.Indent()

	w.WriteMethod("public function user()", func() {
		w.WriteLine("return $this->belongsTo(User::class);")
	})

	expected := "    public function user()\n    {\n        return $this->belongsTo(User::class);\n    }\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_WriteArray(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{
			name:     "empty array is inline",
			items:    nil,
			expected: "$rules = [];\n",
		},
		{
			name:     "items get trailing commas",
			items:    []string{"'title' => 'required'", "'body' => 'nullable'"},
			expected: "$rules = [\n    'title' => 'required',\n    'body' => 'nullable',\n];\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(PHPIndent)
			w.WriteArray("$rules = ", ";", tt.items)
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestWriter_IndentBounds(t *testing.T) {
	// Test: indentation never goes below zero
	w := NewWriter(PHPIndent)

	w.Dedent()
	w.WriteLine("a")
	w.Indent()
	w.WriteLine("b")

	assert.Equal(t, "a\n    b\n", w.String())
}
