package sectiondoc

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"go.jacobcolvin.com/apistub/dom"
)

// Parameter table columns, named by the "param-" classes of the header cells.
const (
	colName       = "name"
	colRequired   = "req"
	colType       = "type"
	colDeprecated = "deprecated"
	colDesc       = "desc"

	paramClassPrefix = "param-"
	requiredText     = "Required"
)

// parameters reads the first direct-child table of a section.
func parameters(section *html.Node) []Parameter {
	table := dom.FirstChild(section, "table")
	if table == nil {
		return nil
	}

	cols := columns(table)

	var params []Parameter

	for _, row := range rows(table) {
		cells := dom.Children(row, "td")

		cell := func(col string) string {
			i, ok := cols[col]
			if !ok || i >= len(cells) {
				return ""
			}

			return dom.Text(cells[i])
		}

		p := Parameter{
			Name:        cell(colName),
			Type:        cell(colType),
			Required:    strings.EqualFold(cell(colRequired), requiredText),
			Deprecated:  strings.Join(nonEmptyLines(cell(colDeprecated)), "\n"),
			Description: strings.Join(strings.Fields(cell(colDesc)), " "),
		}
		if p.Name == "" {
			continue
		}

		params = append(params, p)
	}

	return params
}

// columns maps column names to cell positions. Header cells are identified by
// their "param-" class; without one, the four or five column layout of the
// reference pages is assumed.
func columns(table *html.Node) map[string]int {
	var header []*html.Node
	if thead := dom.FirstChild(table, "thead"); thead != nil {
		header = dom.Children(dom.FirstChild(thead, "tr"), "th")
	}

	cols := make(map[string]int, len(header))

	for i, th := range header {
		for class := range strings.FieldsSeq(dom.Attr(th, "class")) {
			if name, ok := strings.CutPrefix(class, paramClassPrefix); ok {
				cols[name] = i
			}
		}
	}

	if len(cols) > 0 {
		return cols
	}

	if len(header) == 5 {
		return map[string]int{colName: 0, colRequired: 1, colType: 2, colDeprecated: 3, colDesc: 4}
	}

	return map[string]int{colName: 0, colRequired: 1, colType: 2, colDesc: 3}
}

// rows returns the body rows of a table. The parser places rows without an
// explicit body in an implied tbody.
func rows(table *html.Node) []*html.Node {
	var out []*html.Node
	for _, tbody := range dom.Children(table, "tbody") {
		out = append(out, dom.Children(tbody, "tr")...)
	}

	return out
}

func nonEmptyLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}

	return slices.DeleteFunc(lines, func(l string) bool { return l == "" })
}
