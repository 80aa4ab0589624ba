package sectiondoc

import (
	"errors"
	"fmt"
	"strings"
)

const scopePrefix = "url:"

// ErrInvalidScope indicates a scope string not of the form "url:METHOD|URL".
var ErrInvalidScope = errors.New("invalid scope")

// ParseScope splits a scope string of the form "url:METHOD|URL" into a
// [Scope]. Path segments of the URL starting with ":" name path parameters;
// they are collected into [Scope.Keys] and written as "{key}":
//
//	url:GET|/api/v1/courses/:course_id/files/:id
//	-> GET /api/v1/courses/{course_id}/files/{id} [course_id id]
func ParseScope(s string) (Scope, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(s), scopePrefix)
	if !ok {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}

	method, target, ok := strings.Cut(rest, "|")
	if !ok || method == "" || target == "" {
		return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}

	url, keys := templateURL(target)

	return Scope{Method: method, URL: url, Keys: keys}, nil
}

// templateURL rewrites ":key" path segments of u as "{key}". The query and
// fragment are left alone.
func templateURL(u string) (string, []string) {
	path, suffix := u, ""
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		path, suffix = u[:i], u[i:]
	}

	var keys []string

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		key, ok := strings.CutPrefix(seg, ":")
		if !ok || key == "" {
			continue
		}

		keys = append(keys, key)
		segments[i] = "{" + key + "}"
	}

	return strings.Join(segments, "/") + suffix, keys
}
