package schemadoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/apistub/schemadoc"
	"go.jacobcolvin.com/apistub/stringtest"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []schemadoc.Property
	}{
		"empty input": {
			input: "",
			want:  []schemadoc.Property{},
		},
		"only blank lines": {
			input: "\n\n   \n\r\n",
			want:  []schemadoc.Property{},
		},
		"fields with and without docs": {
			input: stringtest.Input(`
				// A file
				{
				  // The ID of the file
				  "id": 569,
				  "uuid": "SUj23659sdfASF35h265kf352YTdnC4",
				  // the content-type of the file
				  // may be guessed
				  "content-type": "text/plain",
				}`),
			want: []schemadoc.Property{
				{Name: "id", DocLines: []string{"The ID of the file"}},
				{Name: "uuid"},
				{Name: "content-type", DocLines: []string{"the content-type of the file", "may be guessed"}},
			},
		},
		"dangling reopen is dropped": {
			input: "{ \n \"a\": 1, \n {",
			want:  []schemadoc.Property{{Name: "a"}},
		},
		"comment before schema open is discarded": {
			input: "// orphan\n{\n\"a\": 1,",
			want:  []schemadoc.Property{{Name: "a"}},
		},
		"comments after the last field are dropped": {
			input: "{\n\"a\": 1,\n// trailing\n}",
			want:  []schemadoc.Property{{Name: "a"}},
		},
		"nested braces are not tracked": {
			input: stringtest.Input(`
				{
				  // the lock info
				  "lock_info": {
				    // nested doc
				    "asset_string": "assignment_4",
				  },
				  "locked": true
				}`),
			want: []schemadoc.Property{
				{Name: "lock_info", DocLines: []string{"the lock info"}},
				{Name: "asset_string", DocLines: []string{"nested doc"}},
				{Name: "locked"},
			},
		},
		"runs of blank lines collapse": {
			input: "{\n\n\n// doc\n\n\n\"a\": 1\r\n\r\n\"b\": 2",
			want: []schemadoc.Property{
				{Name: "a", DocLines: []string{"doc"}},
				{Name: "b"},
			},
		},
		"comment without space": {
			input: "{\n//doc\n//\n\"a\": 1",
			want:  []schemadoc.Property{{Name: "a", DocLines: []string{"doc", ""}}},
		},
		"comment marker removes one space": {
			input: "{\n//  indented\n// note\n\"a\": 1",
			want:  []schemadoc.Property{{Name: "a", DocLines: []string{" indented", "note"}}},
		},
		"key without space after colon": {
			input: "{\n\"a\":1,\n\"b\"",
			want:  []schemadoc.Property{{Name: "a"}, {Name: "b"}},
		},
		"value containing separator keeps first key": {
			input: "{\n\"url\": \"http://x\": \"y\"",
			want:  []schemadoc.Property{{Name: "url"}},
		},
		"field before open names a record": {
			input: "\"a\": 1\n// doc\n\"b\": 2",
			want: []schemadoc.Property{
				{Name: "a"},
				{Name: "b", DocLines: []string{"doc"}},
			},
		},
		"duplicate names are kept in order": {
			input: "{\n\"a\": 1\n\"a\": 2",
			want:  []schemadoc.Property{{Name: "a"}, {Name: "a"}},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := schemadoc.Parse(tc.input)
			require.Len(t, got, len(tc.want))

			for i, want := range tc.want {
				assert.Equal(t, want.Name, got[i].Name, "property %d name", i)
				assert.Equal(t, want.DocLines, got[i].DocLines, "property %d doc lines", i)
			}
		})
	}
}

// Every field declared directly after the opening line yields exactly one
// property carrying the comments immediately preceding it.
func TestParseFieldDocs(t *testing.T) {
	t.Parallel()

	var (
		sb   strings.Builder
		want []schemadoc.Property
	)

	sb.WriteString("{\n")

	for i := range 20 {
		name := "field-" + strings.Repeat("x", i)

		var docs []string
		for j := range i % 4 {
			doc := name + " doc" + strings.Repeat("y", j)
			docs = append(docs, doc)
			sb.WriteString("  // " + doc + "\n")
		}

		sb.WriteString(`  "` + name + `": ` + "null,\n")

		want = append(want, schemadoc.Property{Name: name, DocLines: docs})
	}

	sb.WriteString("}\n")

	got := schemadoc.Parse(sb.String())
	assert.Equal(t, want, got)
}

func TestParseReport(t *testing.T) {
	t.Parallel()

	input := stringtest.Input(`
		// orphan
		{
		  // doc
		  "a": 1,
		  {
		  "b": [
		    1
		  ],
		  // trailing
		}`)

	props, report := schemadoc.ParseReport(input)
	require.Len(t, props, 2)

	assert.Equal(t, schemadoc.Report{
		Lines:   10,
		Fields:  2,
		Orphans: 1,
		Skipped: 4,
		Dropped: 1,
	}, report)
}

func TestLines(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  []string
	}{
		"mixed line breaks": {
			input: "{\r\n  \"a\": 1,\r\r\n\n// doc\r}",
			want:  []string{"{", `"a": 1,`, "// doc", "}"},
		},
		"whitespace only lines": {
			input: "  \n\t\n x \n",
			want:  []string{"x"},
		},
		"empty": {
			input: "",
			want:  []string{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, schemadoc.Lines(tc.input))
		})
	}
}
