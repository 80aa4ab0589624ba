package ident

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Style is an identifier naming convention.
type Style string

const (
	// StyleSnake joins lowercased segments with underscores.
	StyleSnake Style = "snake"
	// StyleLowerCamel joins segments in lowerCamelCase.
	StyleLowerCamel Style = "lower-camel"
)

// ErrUnknownStyle indicates an unrecognized style string.
var ErrUnknownStyle = errors.New("unknown identifier style")

// titleStripper removes punctuation that never survives into a method name.
var titleStripper = strings.NewReplacer(".", "", "(", "", ")", "")

// separator joins segments in snake style and splits them in lowerCamel.
const separator = "_"

// Label normalizes a raw property label, such as "content-type", into an
// identifier of the given [Style]. Each hyphen becomes one separator; an
// existing underscore is kept as is. An unknown style is treated as
// [StyleSnake].
func Label(raw string, style Style) string {
	return normalize(raw, style, false)
}

// Title normalizes a method title, such as "List announcements (beta)", into
// an identifier of the given [Style]. In addition to the [Label] rules, the
// characters ".", "(", and ")" are removed, and each run of whitespace or "/"
// becomes one separator. Runs at either end are dropped.
func Title(raw string, style Style) string {
	return normalize(raw, style, true)
}

func normalize(raw string, style Style, title bool) string {
	if style != StyleLowerCamel {
		raw = strings.ToLower(raw)
	}

	if title {
		raw = titleStripper.Replace(raw)
		raw = strings.Join(strings.FieldsFunc(raw, isTitleSeparator), separator)
	}

	raw = strings.ReplaceAll(raw, "-", separator)

	if style != StyleLowerCamel {
		return raw
	}

	return camel(strings.Split(raw, separator))
}

// ParseStyle parses a style string and returns the corresponding [Style].
func ParseStyle(s string) (Style, error) {
	style := Style(strings.ToLower(s))
	switch style {
	case StyleSnake, StyleLowerCamel:
		return style, nil
	case "lowercamel", "camel":
		return StyleLowerCamel, nil
	}

	return "", ErrUnknownStyle
}

// AllStyleStrings returns the canonical names of all styles.
func AllStyleStrings() []string {
	return []string{string(StyleSnake), string(StyleLowerCamel)}
}

// String implements [fmt.Stringer].
func (s Style) String() string {
	return string(s)
}

// camel joins the non-empty segments in lowerCamelCase.
func camel(segments []string) string {
	var sb strings.Builder

	for _, seg := range segments {
		if seg == "" {
			continue
		}

		if sb.Len() == 0 {
			sb.WriteString(mapFirst(seg, unicode.ToLower))
		} else {
			sb.WriteString(mapFirst(seg, unicode.ToUpper))
		}
	}

	return sb.String()
}

// mapFirst applies fn to the first rune of s and leaves the rest intact.
func mapFirst(s string, fn func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(fn(r)) + s[size:]
}

func isTitleSeparator(r rune) bool {
	return r == '/' || unicode.IsSpace(r)
}
