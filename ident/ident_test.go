package ident_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/apistub/ident"
)

func TestLabel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		style ident.Style
		want  string
	}{
		"snake plain": {
			input: "display_name",
			style: ident.StyleSnake,
			want:  "display_name",
		},
		"snake hyphenated": {
			input: "content-type",
			style: ident.StyleSnake,
			want:  "content_type",
		},
		"snake lowercases": {
			input: "Content-Type",
			style: ident.StyleSnake,
			want:  "content_type",
		},
		"snake maps each hyphen": {
			input: "a--b__c",
			style: ident.StyleSnake,
			want:  "a__b__c",
		},
		"snake keeps underscores": {
			input: "__init__",
			style: ident.StyleSnake,
			want:  "__init__",
		},
		"lower camel hyphenated": {
			input: "content-type",
			style: ident.StyleLowerCamel,
			want:  "contentType",
		},
		"lower camel from snake": {
			input: "created_at",
			style: ident.StyleLowerCamel,
			want:  "createdAt",
		},
		"lower camel keeps segment remainder": {
			input: "html-URL",
			style: ident.StyleLowerCamel,
			want:  "htmlURL",
		},
		"lower camel lowers first rune": {
			input: "Id",
			style: ident.StyleLowerCamel,
			want:  "id",
		},
		"lower camel keeps inner capitals": {
			input: "HTML-parser",
			style: ident.StyleLowerCamel,
			want:  "hTMLParser",
		},
		"lower camel skips empty segments": {
			input: "-foo--bar-",
			style: ident.StyleLowerCamel,
			want:  "fooBar",
		},
		"unknown style falls back to snake": {
			input: "Foo-Bar",
			style: ident.Style("kebab"),
			want:  "foo_bar",
		},
		"empty": {
			input: "",
			style: ident.StyleSnake,
			want:  "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ident.Label(tc.input, tc.style))
		})
	}
}

func TestTitle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		style ident.Style
		want  string
	}{
		"snake spaces": {
			input: "List announcements",
			style: ident.StyleSnake,
			want:  "list_announcements",
		},
		"snake strips punctuation": {
			input: "Get a single file (deprecated).",
			style: ident.StyleSnake,
			want:  "get_a_single_file_deprecated",
		},
		"snake slashes and whitespace runs": {
			input: "Show  front page / module\titem",
			style: ident.StyleSnake,
			want:  "show_front_page_module_item",
		},
		"snake hyphen": {
			input: "Re-order quiz items",
			style: ident.StyleSnake,
			want:  "re_order_quiz_items",
		},
		"lower camel": {
			input: "List announcements",
			style: ident.StyleLowerCamel,
			want:  "listAnnouncements",
		},
		"lower camel slashes": {
			input: "Get a/b settings",
			style: ident.StyleLowerCamel,
			want:  "getABSettings",
		},
		"hyphen between spaces": {
			input: "Foo - Bar",
			style: ident.StyleSnake,
			want:  "foo___bar",
		},
		"surrounding whitespace": {
			input: "  Delete folder \n",
			style: ident.StyleSnake,
			want:  "delete_folder",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ident.Title(tc.input, tc.style))
		})
	}
}

func TestIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"content-type",
		"List announcements",
		"Get a/b settings (beta)",
		"created_at",
		"contentType",
		"x",
		"_id",
		"__init__",
		"a__b",
		"a--b",
	}

	for _, style := range []ident.Style{ident.StyleSnake, ident.StyleLowerCamel} {
		for _, input := range inputs {
			once := ident.Label(input, style)
			assert.Equal(t, once, ident.Label(once, style), "label %q (%s)", input, style)

			once = ident.Title(input, style)
			assert.Equal(t, once, ident.Title(once, style), "title %q (%s)", input, style)
		}
	}

	assert.Equal(t, "already_snake", ident.Label("already_snake", ident.StyleSnake))
	assert.Equal(t, "alreadyCamel", ident.Label("alreadyCamel", ident.StyleLowerCamel))

	for _, snake := range []string{"_id", "__init__", "a__b", "list_announcements"} {
		assert.Equal(t, snake, ident.Label(snake, ident.StyleSnake))
		assert.Equal(t, snake, ident.Title(snake, ident.StyleSnake))
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        ident.Style
		expectError bool
	}{
		"snake":            {input: "snake", want: ident.StyleSnake},
		"lower camel":      {input: "lower-camel", want: ident.StyleLowerCamel},
		"alias camel":      {input: "camel", want: ident.StyleLowerCamel},
		"case insensitive": {input: "SNAKE", want: ident.StyleSnake},
		"unknown":          {input: "kebab", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ident.ParseStyle(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, ident.ErrUnknownStyle)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
