// Package dom provides small helpers for walking [html.Node] trees parsed by
// [golang.org/x/net/html].
package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Text returns the concatenated text of n and all its descendants, trimmed
// of surrounding whitespace.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}

	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.TrimSpace(sb.String())
}

// Find returns the first node in document order, starting at n itself, for
// which match returns true. Returns nil if nothing matches.
func Find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n == nil {
		return nil
	}

	if match(n) {
		return n
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, match); found != nil {
			return found
		}
	}

	return nil
}

// ByID returns the first element with the given id attribute.
func ByID(n *html.Node, id string) *html.Node {
	return Find(n, func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "id") == id
	})
}

// ByTag returns the first element with the given tag name.
func ByTag(n *html.Node, tag string) *html.Node {
	return Find(n, func(n *html.Node) bool {
		return IsElement(n, tag)
	})
}

// Children returns the direct element children of n with the given tag
// name. An empty tag matches every element.
func Children(n *html.Node, tag string) []*html.Node {
	var out []*html.Node

	if n == nil {
		return out
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		if tag == "" || c.Data == tag {
			out = append(out, c)
		}
	}

	return out
}

// FirstChild returns the first direct element child of n with the given tag
// name, or nil.
func FirstChild(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c, tag) {
			return c
		}
	}

	return nil
}

// IsElement reports whether n is an element with the given tag name.
func IsElement(n *html.Node, tag string) bool {
	return n != nil && n.Type == html.ElementNode && n.Data == tag
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}

	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}

	return ""
}

// HasClass reports whether the class attribute of n contains class.
func HasClass(n *html.Node, class string) bool {
	return slices.Contains(strings.Fields(Attr(n, "class")), class)
}
