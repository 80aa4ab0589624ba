package render

import (
	"errors"
	"slices"
	"strings"

	"go.jacobcolvin.com/apistub/ident"
)

// Mode selects the accessor layout for properties.
type Mode string

const (
	// ModeProperty renders a plain property accessor.
	ModeProperty Mode = "property"
	// ModeNullableGetter renders an accessor annotated as optional that
	// yields None for absent attributes.
	ModeNullableGetter Mode = "nullable-getter"
)

// ErrUnknownMode indicates an unrecognized mode string.
var ErrUnknownMode = errors.New("unknown render mode")

// ParseMode parses a mode string and returns the corresponding [Mode].
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(s))
	if slices.Contains([]Mode{ModeProperty, ModeNullableGetter}, mode) {
		return mode, nil
	}

	return "", ErrUnknownMode
}

// AllModeStrings returns the names of all modes.
func AllModeStrings() []string {
	return []string{string(ModeProperty), string(ModeNullableGetter)}
}

const defaultIndent = "    "

// Renderer produces stub text. The zero value is not usable; create
// instances with [New].
type Renderer struct {
	style  ident.Style
	mode   Mode
	indent string
}

// Option configures a [Renderer].
type Option func(*Renderer)

// New creates a [Renderer]. By default it uses [ident.StyleSnake],
// [ModeProperty], and four-space indentation.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		style:  ident.StyleSnake,
		mode:   ModeProperty,
		indent: defaultIndent,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// WithStyle sets the identifier style of property accessors.
func WithStyle(style ident.Style) Option {
	return func(r *Renderer) {
		r.style = style
	}
}

// WithMode sets the property accessor layout.
func WithMode(mode Mode) Option {
	return func(r *Renderer) {
		r.mode = mode
	}
}

// WithIndent sets the indentation unit to n spaces. Values less than 1 keep
// the default.
func WithIndent(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.indent = strings.Repeat(" ", n)
		}
	}
}

// docQuote delimits docstrings.
const docQuote = `"""`

var (
	docEscaper = strings.NewReplacer(`\`, `\\`, docQuote, `\"\"\"`)
	keyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)
)

// escapeDoc escapes text for use inside a docstring. Backslashes are doubled
// and delimiters inside the text are escaped.
func escapeDoc(text string) string {
	return docEscaper.Replace(text)
}

// escapeInlineDoc is like [escapeDoc] for text that is directly followed by
// the closing delimiter, where a trailing quote would otherwise merge with it.
func escapeInlineDoc(text string) string {
	text = escapeDoc(text)
	if !strings.HasSuffix(text, `"`) || escaped(text, len(text)-1) {
		return text
	}

	return text[:len(text)-1] + `\"`
}

// escaped reports whether the byte at i is preceded by an odd number of
// backslashes.
func escaped(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}

	return n%2 == 1
}

// writeLines writes each line of text at the given indentation, trimmed of
// surrounding whitespace. Blank lines are written without indentation.
func writeLines(sb *strings.Builder, indent, text string) {
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
		}

		sb.WriteByte('\n')
	}
}
