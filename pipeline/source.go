package pipeline

import (
	"errors"
	"slices"
	"strings"
)

// Source selects how an input is interpreted.
type Source string

const (
	// SourceAuto picks [SourceSections] for HTML pages with a method
	// container and [SourceSchema] for everything else.
	SourceAuto Source = "auto"
	// SourceSchema reads an annotated schema block. HTML input is reduced to
	// the text of its first pre element; other input is used as is.
	SourceSchema Source = "schema"
	// SourceSections reads method sections from an HTML page.
	SourceSections Source = "sections"
)

// Format selects the output representation.
type Format string

const (
	// FormatStub renders property accessors and function stubs.
	FormatStub Format = "stub"
	// FormatYAML dumps the extracted records as YAML, one document per input.
	FormatYAML Format = "yaml"
	// FormatJSONSchema describes the properties of all inputs as a single
	// JSON Schema. Method pages are not supported.
	FormatJSONSchema Format = "json-schema"
)

var (
	// ErrUnknownSource indicates an unrecognized source string.
	ErrUnknownSource = errors.New("unknown source")
	// ErrUnknownFormat indicates an unrecognized format string.
	ErrUnknownFormat = errors.New("unknown format")
)

var (
	allSources = []Source{SourceAuto, SourceSchema, SourceSections}
	allFormats = []Format{FormatStub, FormatYAML, FormatJSONSchema}
)

// ParseSource parses a source string and returns the corresponding [Source].
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToLower(s))
	if slices.Contains(allSources, src) {
		return src, nil
	}

	return "", ErrUnknownSource
}

// ParseFormat parses a format string and returns the corresponding [Format].
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains(allFormats, f) {
		return f, nil
	}

	return "", ErrUnknownFormat
}

// AllSourceStrings returns the names of all sources.
func AllSourceStrings() []string {
	out := make([]string, 0, len(allSources))
	for _, s := range allSources {
		out = append(out, string(s))
	}

	return out
}

// AllFormatStrings returns the names of all formats.
func AllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}
