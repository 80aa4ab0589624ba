package schemadoc

import (
	"strings"
)

const (
	openToken    = "{"
	commentToken = "//"
	quoteToken   = `"`
)

// keySeparators are tried in order to find the end of a field key.
var keySeparators = []string{`": `, `":`}

// Parse returns the documented properties of a schema block in source order.
// See the package documentation for the line rules.
func Parse(text string) []Property {
	props, _ := ParseReport(text)

	return props
}

// ParseReport is like [Parse] and also returns a [Report] describing how the
// input lines were classified. The report never affects the result.
func ParseReport(text string) ([]Property, Report) {
	b := &builder{}

	for _, line := range Lines(text) {
		b.report.Lines++

		switch {
		case strings.HasPrefix(line, openToken):
			if b.started() {
				b.report.Skipped++

				continue
			}

			b.open()

		case strings.HasPrefix(line, commentToken):
			b.comment(commentText(line))

		case strings.HasPrefix(line, quoteToken):
			b.field(fieldName(line))

		default:
			b.report.Skipped++
		}
	}

	props := b.properties()

	return props, b.report
}

// Lines splits text at runs of line breaks and returns the trimmed,
// non-empty lines.
func Lines(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})

	lines := make([]string, 0, len(raw))

	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}

	return lines
}

// commentText strips the comment marker and a single following space.
func commentText(line string) string {
	text := strings.TrimPrefix(line, commentToken)

	return strings.TrimPrefix(text, " ")
}

// fieldName returns the key of a field declaration line with quotes removed.
func fieldName(line string) string {
	key := line

	for _, sep := range keySeparators {
		if before, _, ok := strings.Cut(line, sep); ok {
			key = before

			break
		}
	}

	return strings.ReplaceAll(key, quoteToken, "")
}
