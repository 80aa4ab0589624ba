package schemadoc

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"go.jacobcolvin.com/apistub/dom"
)

var (
	// ErrInvalidHTML indicates the page could not be parsed.
	ErrInvalidHTML = errors.New("invalid html")
	// ErrNoSchemaBlock indicates a page without a pre element.
	ErrNoSchemaBlock = errors.New("no schema block")
)

// Extract returns the text of the first pre element of an HTML page, which
// is where object pages place their annotated schema block.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHTML, err)
	}

	return ExtractNode(doc)
}

// ExtractNode is like [Extract] for an already parsed document.
func ExtractNode(doc *html.Node) (string, error) {
	pre := dom.ByTag(doc, "pre")
	if pre == nil {
		return "", ErrNoSchemaBlock
	}

	return dom.Text(pre), nil
}
