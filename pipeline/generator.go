package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/net/html"

	"go.jacobcolvin.com/apistub/dom"
	"go.jacobcolvin.com/apistub/ident"
	"go.jacobcolvin.com/apistub/render"
	"go.jacobcolvin.com/apistub/schemadoc"
	"go.jacobcolvin.com/apistub/sectiondoc"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidOption     = errors.New("invalid option")
	ErrReadInput         = errors.New("read input")
	ErrWriteOutput       = errors.New("write output")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Input is one documentation page or schema block.
type Input struct {
	// Name identifies the input in errors, logs, and YAML output.
	Name string
	Data []byte
}

// Generator converts inputs into output text.
type Generator struct {
	baseURL     *url.URL
	renderer    *render.Renderer
	source      Source
	format      Format
	containerID string
	style       ident.Style
	renderOpts  []render.Option
}

// Option configures a [Generator].
type Option func(*Generator)

// NewGenerator creates a [Generator] with the given options. By default it
// uses [SourceAuto], [FormatStub], and [ident.StyleSnake].
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		source: SourceAuto,
		format: FormatStub,
		style:  ident.StyleSnake,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.renderer = render.New(append([]render.Option{render.WithStyle(g.style)}, g.renderOpts...)...)

	return g
}

// WithSource sets how inputs are interpreted.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.source = src
	}
}

// WithFormat sets the output representation.
func WithFormat(f Format) Option {
	return func(g *Generator) {
		g.format = f
	}
}

// WithStyle sets the identifier style of accessors and method stubs.
func WithStyle(style ident.Style) Option {
	return func(g *Generator) {
		g.style = style
	}
}

// WithBaseURL sets the URL that relative method links are resolved against.
func WithBaseURL(u *url.URL) Option {
	return func(g *Generator) {
		g.baseURL = u
	}
}

// WithContainerID sets the id of the element holding method sections.
func WithContainerID(id string) Option {
	return func(g *Generator) {
		g.containerID = id
	}
}

// WithRenderOptions appends options for the stub [render.Renderer].
func WithRenderOptions(opts ...render.Option) Option {
	return func(g *Generator) {
		g.renderOpts = append(g.renderOpts, opts...)
	}
}

// page holds the records extracted from one input. At most one of the slices
// is populated, according to kind.
type page struct {
	Input      string                 `json:"input"                yaml:"input"`
	Kind       Source                 `json:"kind"                 yaml:"kind"`
	Properties []schemadoc.Property   `json:"properties,omitempty" yaml:"properties,omitempty"`
	Methods    []sectiondoc.MethodDoc `json:"methods,omitempty"    yaml:"methods,omitempty"`
}

// Generate extracts every input and returns the combined output, in input
// order. Stub output separates inputs with a blank line; YAML output emits
// one document per input; JSON Schema output describes the properties of
// all inputs together.
func (g *Generator) Generate(inputs ...Input) (string, error) {
	pages := make([]page, 0, len(inputs))

	for i, in := range inputs {
		p, err := g.extract(in)
		if err != nil {
			return "", fmt.Errorf("input %s: %w", inputName(in, i), err)
		}

		pages = append(pages, p)
	}

	switch g.format {
	case FormatYAML:
		return g.yaml(pages)
	case FormatJSONSchema:
		return g.jsonSchema(pages)
	case FormatStub:
		return g.stubs(pages), nil
	}

	return "", fmt.Errorf("%w: %w: %q", ErrInvalidOption, ErrUnknownFormat, g.format)
}

func (g *Generator) extract(in Input) (page, error) {
	p := page{Input: in.Name}

	if !isMarkup(in.Data) {
		if g.source == SourceSections {
			return p, fmt.Errorf("%w: input is not html", sectiondoc.ErrNoContainer)
		}

		p.Kind = SourceSchema
		p.Properties = g.parseSchema(in.Name, string(in.Data))

		return p, nil
	}

	doc, err := html.Parse(bytes.NewReader(in.Data))
	if err != nil {
		return p, fmt.Errorf("%w: %w", sectiondoc.ErrInvalidHTML, err)
	}

	src := g.source
	if src == SourceAuto {
		src = SourceSchema
		if dom.ByID(doc, g.container()) != nil {
			src = SourceSections
		}
	}

	p.Kind = src

	switch src {
	case SourceSections:
		p.Methods, err = sectiondoc.ParseNode(doc, g.sectionOptions()...)
		if err != nil {
			return p, err //nolint:wrapcheck // Wrapped by Generate.
		}

		slog.Debug("extracted method sections",
			slog.String("input", in.Name),
			slog.Int("methods", len(p.Methods)),
		)

	default:
		text, extractErr := schemadoc.ExtractNode(doc)
		if extractErr != nil {
			return p, extractErr //nolint:wrapcheck // Wrapped by Generate.
		}

		p.Properties = g.parseSchema(in.Name, text)
	}

	return p, nil
}

func (g *Generator) parseSchema(name, text string) []schemadoc.Property {
	props, rep := schemadoc.ParseReport(text)

	slog.Debug("parsed schema block",
		slog.String("input", name),
		slog.Int("lines", rep.Lines),
		slog.Int("fields", rep.Fields),
		slog.Int("orphans", rep.Orphans),
		slog.Int("skipped", rep.Skipped),
		slog.Int("dropped", rep.Dropped),
	)

	return props
}

func (g *Generator) sectionOptions() []sectiondoc.Option {
	opts := []sectiondoc.Option{
		sectiondoc.WithContainerID(g.containerID),
		sectiondoc.WithStyle(g.style),
	}
	if g.baseURL != nil {
		opts = append(opts, sectiondoc.WithBaseURL(g.baseURL))
	}

	return opts
}

func (g *Generator) container() string {
	if g.containerID == "" {
		return sectiondoc.DefaultContainerID
	}

	return g.containerID
}

func (g *Generator) stubs(pages []page) string {
	var parts []string

	for _, p := range pages {
		var text string

		switch p.Kind {
		case SourceSections:
			text = g.renderer.Methods(p.Methods)
		default:
			text = g.renderer.Properties(p.Properties)
		}

		if text != "" {
			parts = append(parts, text)
		}
	}

	if len(parts) == 0 {
		return ""
	}

	return strings.Join(parts, "\n\n") + "\n"
}

func (g *Generator) yaml(pages []page) (string, error) {
	docs := make([]string, 0, len(pages))

	for _, p := range pages {
		out, err := yaml.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("%w: input %s: %w", ErrWriteOutput, p.Input, err)
		}

		docs = append(docs, string(out))
	}

	return strings.Join(docs, "---\n"), nil
}

func (g *Generator) jsonSchema(pages []page) (string, error) {
	var props []schemadoc.Property

	for _, p := range pages {
		if p.Kind == SourceSections {
			return "", fmt.Errorf("%w: %s for method page %s", ErrUnsupportedFormat, FormatJSONSchema, p.Input)
		}

		props = append(props, p.Properties...)
	}

	out, err := json.MarshalIndent(render.Schema(props), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return string(out) + "\n", nil
}

// isMarkup reports whether data looks like an HTML document or fragment
// rather than a schema block, which starts with "{" or a comment.
func isMarkup(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(data), []byte("<"))
}

func inputName(in Input, i int) string {
	if in.Name != "" {
		return in.Name
	}

	return fmt.Sprintf("#%d", i)
}
