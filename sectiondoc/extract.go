package sectiondoc

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"go.jacobcolvin.com/apistub/dom"
	"go.jacobcolvin.com/apistub/ident"
)

const (
	returnsWord   = "Returns"
	returnsPrefix = returnsWord + " "
	betaClass     = "beta"
)

var (
	// ErrInvalidHTML indicates the page could not be parsed.
	ErrInvalidHTML = errors.New("invalid html")
	// ErrNoContainer indicates the page has no element with the container id,
	// i.e. it is not a methods page.
	ErrNoContainer = errors.New("no method container")
)

// Parse reads an HTML page and extracts the methods in its container.
func Parse(r io.Reader, opts ...Option) ([]MethodDoc, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHTML, err)
	}

	return ParseNode(doc, opts...)
}

// ParseNode is like [Parse] for an already parsed document.
func ParseNode(doc *html.Node, opts ...Option) ([]MethodDoc, error) {
	o := newOptions(opts)

	container := dom.ByID(doc, o.containerID)
	if container == nil {
		return nil, fmt.Errorf("%w: #%s", ErrNoContainer, o.containerID)
	}

	return extract(dom.Children(container, "div"), o), nil
}

// Sections returns the method sections of a page: the div children of the
// element with the given id. Returns nil if there is no such element.
func Sections(doc *html.Node, containerID string) []*html.Node {
	container := dom.ByID(doc, containerID)
	if container == nil {
		return nil
	}

	return dom.Children(container, "div")
}

// Extract converts method sections into [MethodDoc] values, in order.
func Extract(sections []*html.Node, opts ...Option) []MethodDoc {
	return extract(sections, newOptions(opts))
}

func extract(sections []*html.Node, o *options) []MethodDoc {
	methods := make([]MethodDoc, 0, len(sections))
	for _, section := range sections {
		methods = append(methods, extractSection(section, o))
	}

	return methods
}

func extractSection(section *html.Node, o *options) MethodDoc {
	heading := dom.FirstChild(section, o.titleTag)
	link := dom.FirstChild(heading, "a")

	m := MethodDoc{
		Title:     dom.Text(link),
		Subtopic:  strings.TrimSpace(dom.Attr(heading, "data-subtopic")),
		SourceRef: resolve(o.baseURL, dom.Attr(link, "href")),
		Returns:   returnsText(section),
		DefinedIn: definedIn(heading, o.baseURL),
	}
	m.Identifier = ident.Title(m.Title, o.style)

	for _, h := range dom.Children(section, o.endpointTag) {
		if dom.HasClass(h, betaClass) {
			m.Beta = true

			continue
		}

		m.Endpoints = append(m.Endpoints, dom.Text(h))
	}

	for _, div := range dom.Children(section, "div") {
		for _, code := range dom.Children(div, "code") {
			raw := dom.Text(code)

			scope, err := ParseScope(raw)
			if err != nil {
				scope = Scope{URL: raw}
			}

			m.Scopes = append(m.Scopes, scope)
		}
	}

	m.Parameters = parameters(section)

	for _, p := range dom.Children(section, "p") {
		text := dom.Text(p)
		m.Paragraphs = append(m.Paragraphs, text)

		if strings.Contains(strings.ToLower(text), "paginat") {
			m.Paginated = true
		}
	}

	return m
}

// definedIn reads the source link in the heading's first span, if any.
func definedIn(heading *html.Node, base *url.URL) *Link {
	a := dom.FirstChild(dom.FirstChild(heading, "span"), "a")
	if a == nil {
		return nil
	}

	return &Link{Text: dom.Text(a), Href: resolve(base, dom.Attr(a, "href"))}
}

// returnsText collects the return value description: the text of every
// direct child from the first bare text node starting with "Returns" onward.
func returnsText(section *html.Node) string {
	var (
		parts      []string
		collecting bool
	)

	if section == nil {
		return ""
	}

	for c := section.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.HasPrefix(strings.TrimSpace(c.Data), returnsWord) {
			collecting = true
		}

		if !collecting {
			continue
		}

		if text := dom.Text(c); text != "" {
			parts = append(parts, text)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))

	return strings.TrimSpace(strings.TrimPrefix(text, returnsPrefix))
}

// resolve resolves href against base. The href is returned unchanged when
// there is no base or it does not parse.
func resolve(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if base == nil || href == "" {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}

	return base.ResolveReference(ref).String()
}
