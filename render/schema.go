package render

import (
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/apistub/schemadoc"
)

// Schema describes props as a JSON Schema object. Each property is left
// untyped, since values in a schema block are placeholders, and carries its
// documentation lines as the description. Properties keep source order; a
// repeated name keeps its first position and its last documentation.
func Schema(props []schemadoc.Property) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Schema:     "http://json-schema.org/draft-07/schema#",
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(props)),
	}

	for _, p := range props {
		if _, ok := s.Properties[p.Name]; !ok {
			s.PropertyOrder = append(s.PropertyOrder, p.Name)
		}

		s.Properties[p.Name] = &jsonschema.Schema{
			Description: strings.Join(p.DocLines, "\n"),
		}
	}

	return s
}
