package render

import (
	"fmt"
	"strings"

	"go.jacobcolvin.com/apistub/ident"
	"go.jacobcolvin.com/apistub/schemadoc"
)

// Property renders a property accessor for p. The accessor name follows the
// renderer's [ident.Style]; the lookup key is always the original name.
func (r *Renderer) Property(p schemadoc.Property) string {
	var sb strings.Builder

	member := r.indent
	body := r.indent + r.indent
	name := ident.Label(p.Name, r.style)
	key := keyEscaper.Replace(p.Name)

	sb.WriteString(member + "@property\n")

	switch r.mode {
	case ModeNullableGetter:
		fmt.Fprintf(&sb, "%sdef %s(self) -> Optional[Any]:\n", member, name)
	default:
		fmt.Fprintf(&sb, "%sdef %s(self):\n", member, name)
	}

	writePropertyDoc(&sb, body, p.DocLines)

	switch r.mode {
	case ModeNullableGetter:
		fmt.Fprintf(&sb, "%sreturn self.attributes.get('%s')", body, key)
	default:
		fmt.Fprintf(&sb, "%sreturn self.getattr('%s')", body, key)
	}

	return sb.String()
}

// Properties renders an accessor per property, separated by blank lines.
func (r *Renderer) Properties(props []schemadoc.Property) string {
	stubs := make([]string, 0, len(props))
	for _, p := range props {
		stubs = append(stubs, r.Property(p))
	}

	return strings.Join(stubs, "\n\n")
}

func writePropertyDoc(sb *strings.Builder, indent string, lines []string) {
	switch len(lines) {
	case 0:
		return

	case 1:
		sb.WriteString(indent + docQuote + escapeInlineDoc(lines[0]) + docQuote + "\n")

	default:
		sb.WriteString(indent + docQuote + "\n")

		for _, line := range lines {
			writeLines(sb, indent, escapeDoc(line))
		}

		sb.WriteString(indent + docQuote + "\n")
	}
}
