package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/apistub/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line with both newlines": {
			input: "\nhello\n",
			want:  "hello",
		},
		"common indent spaces": {
			input: `
    def a():
        pass`,
			want: "def a():\n    pass",
		},
		"common indent tabs": {
			input: "\n\tline1\n\tline2",
			want:  "line1\nline2",
		},
		"whitespace-only lines": {
			input: "\n    \"\"\"\n    \n    text\n    \"\"\"",
			want:  "\"\"\"\n\ntext\n\"\"\"",
		},
		"preserves multiple leading newlines minus one": {
			input: "\n\nline1",
			want:  "\nline1",
		},
		"preserves multiple trailing newlines minus one": {
			input: "line1\n\n",
			want:  "line1\n",
		},
		"already dedented": {
			input: "def a():\n    pass",
			want:  "def a():\n    pass",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Input(tc.input))
		})
	}
}

func TestJoinLF(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want  string
		input []string
	}{
		"empty input": {
			input: nil,
			want:  "",
		},
		"keeps indentation": {
			input: []string{"    @property", "    def id(self):"},
			want:  "    @property\n    def id(self):",
		},
		"with empty string": {
			input: []string{"a", "", "c"},
			want:  "a\n\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.JoinLF(tc.input...))
		})
	}
}
