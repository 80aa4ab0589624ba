package render

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/apistub/ident"
	"go.jacobcolvin.com/apistub/sectiondoc"
)

var (
	bracketReplacer = strings.NewReplacer("[]", "", "[", "_", "]", "")

	// Keywords that cannot name an argument.
	pythonKeywords = map[string]bool{
		"False": true, "None": true, "True": true, "and": true, "as": true,
		"assert": true, "async": true, "await": true, "break": true, "class": true,
		"continue": true, "def": true, "del": true, "elif": true, "else": true,
		"except": true, "finally": true, "for": true, "from": true, "global": true,
		"if": true, "import": true, "in": true, "is": true, "lambda": true,
		"nonlocal": true, "not": true, "or": true, "pass": true, "raise": true,
		"return": true, "try": true, "while": true, "with": true, "yield": true,
	}
)

// Method renders a function stub for m. Request parameters become arguments,
// one per line, required ones first and the rest defaulting to None. The
// docstring holds, in order, the title, each endpoint in backticks, each
// paragraph, the source reference, and the return value description, each
// block separated by a blank line.
func (r *Renderer) Method(m sectiondoc.MethodDoc) string {
	var sb strings.Builder

	name := m.Identifier
	if name == "" {
		name = ident.Title(m.Title, r.style)
	}

	args := r.arguments(m.Parameters)
	if len(args) == 0 {
		fmt.Fprintf(&sb, "def %s():\n", name)
	} else {
		fmt.Fprintf(&sb, "def %s(\n", name)

		for _, arg := range args {
			sb.WriteString(r.indent + arg + ",\n")
		}

		sb.WriteString("):\n")
	}

	blocks := methodBlocks(m)
	returns := strings.TrimSpace(m.Returns)

	if len(blocks) > 0 || returns != "" {
		sb.WriteString(r.indent + docQuote + "\n")

		for i, block := range blocks {
			if i > 0 {
				sb.WriteByte('\n')
			}

			writeLines(&sb, r.indent, escapeDoc(block))
		}

		if returns != "" {
			if len(blocks) > 0 {
				sb.WriteByte('\n')
			}

			sb.WriteString(r.indent + "Returns:\n")
			writeLines(&sb, r.indent+r.indent, escapeDoc(returns))
		}

		sb.WriteString(r.indent + docQuote + "\n")
	}

	sb.WriteString(r.indent + "raise NotImplementedError")

	return sb.String()
}

// Methods renders a stub per method, separated by two blank lines.
func (r *Renderer) Methods(methods []sectiondoc.MethodDoc) string {
	stubs := make([]string, 0, len(methods))
	for _, m := range methods {
		stubs = append(stubs, r.Method(m))
	}

	return strings.Join(stubs, "\n\n\n")
}

func methodBlocks(m sectiondoc.MethodDoc) []string {
	var blocks []string

	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}

	add(m.Title)

	for _, ep := range m.Endpoints {
		if ep = strings.TrimSpace(ep); ep != "" {
			add("`" + ep + "`")
		}
	}

	for _, p := range m.Paragraphs {
		add(p)
	}

	add(m.SourceRef)

	return blocks
}

// arguments converts request parameters into argument declarations. Names
// such as "assignment[submission_types][]" drop their brackets and become
// identifiers ("assignment_submission_types"); empty and repeated names are
// skipped.
func (r *Renderer) arguments(params []sectiondoc.Parameter) []string {
	var required, optional []string

	seen := make(map[string]bool, len(params))

	for _, p := range params {
		name := r.argName(p.Name)
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true

		if p.Required {
			required = append(required, name)
		} else {
			optional = append(optional, name+"=None")
		}
	}

	return append(required, optional...)
}

func (r *Renderer) argName(raw string) string {
	name := ident.Label(strings.TrimSpace(bracketReplacer.Replace(raw)), r.style)
	if pythonKeywords[name] {
		name += "_"
	}

	return name
}
