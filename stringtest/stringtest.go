// Package stringtest builds expected multi-line strings for tests.
package stringtest

import "strings"

// Input dedents a raw string literal so that expected output can be written
// indented alongside test code. One leading and one trailing newline are
// removed, the longest common indentation of non-blank lines is stripped, and
// whitespace-only lines become empty.
//
// Example:
//
//	want := stringtest.Input(`
//		def list_users():
//		    raise NotImplementedError`)
//	// -> "def list_users():\n    raise NotImplementedError"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	indent := -1

	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, l := range lines {
		switch {
		case strings.TrimSpace(l) == "":
			lines[i] = ""
		case indent > 0:
			lines[i] = l[indent:]
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this where leading indentation is significant and [Input] would strip
// it.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"    @property",
//		"    def id(self):",
//	) // -> "    @property\n    def id(self):"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}
