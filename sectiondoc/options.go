package sectiondoc

import (
	"net/url"

	"go.jacobcolvin.com/apistub/ident"
)

// DefaultContainerID is the id of the element holding the method sections.
const DefaultContainerID = "Services"

type options struct {
	baseURL     *url.URL
	containerID string
	titleTag    string
	endpointTag string
	style       ident.Style
}

func newOptions(opts []Option) *options {
	o := &options{
		containerID: DefaultContainerID,
		titleTag:    "h2",
		endpointTag: "h3",
		style:       ident.StyleSnake,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Option configures extraction.
type Option func(*options)

// WithBaseURL sets the URL that relative method links are resolved against.
func WithBaseURL(u *url.URL) Option {
	return func(o *options) {
		o.baseURL = u
	}
}

// WithContainerID sets the id of the element holding the method sections.
func WithContainerID(id string) Option {
	return func(o *options) {
		if id != "" {
			o.containerID = id
		}
	}
}

// WithStyle sets the [ident.Style] of [MethodDoc.Identifier].
func WithStyle(style ident.Style) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithTitleTag sets the tag of the heading holding the method link.
// The default is "h2".
func WithTitleTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.titleTag = tag
		}
	}
}

// WithEndpointTag sets the tag of the endpoint sub-headings.
// The default is "h3".
func WithEndpointTag(tag string) Option {
	return func(o *options) {
		if tag != "" {
			o.endpointTag = tag
		}
	}
}
