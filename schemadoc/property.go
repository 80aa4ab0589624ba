package schemadoc

// Property is one documented top-level field of a schema block.
type Property struct {
	// Name is the raw field key, for example "content-type".
	Name string `json:"name" yaml:"name"`
	// DocLines are the comment lines preceding the field, in source order.
	DocLines []string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Report counts how the lines of a schema block were classified.
type Report struct {
	Lines   int `json:"lines" yaml:"lines"`     // non-empty lines
	Fields  int `json:"fields" yaml:"fields"`   // field declarations
	Orphans int `json:"orphans" yaml:"orphans"` // comments before the schema opened
	Skipped int `json:"skipped" yaml:"skipped"` // lines matching no rule, repeated opens
	Dropped int `json:"dropped" yaml:"dropped"` // trailing records without a name
}

type recordState int

const (
	statePending recordState = iota
	stateNamed
)

// record is a property under construction. Its name is only meaningful once
// state is stateNamed.
type record struct {
	name     string
	docLines []string
	state    recordState
}

func (r *record) setName(name string) {
	r.name = name
	r.state = stateNamed
}

// property converts a named record. It returns false for a pending one.
func (r *record) property() (Property, bool) {
	if r.state != stateNamed {
		return Property{}, false
	}

	return Property{Name: r.name, DocLines: r.docLines}, true
}

// builder accumulates records in source order. current is the record that
// receives comment lines; it is nil until the schema opens.
type builder struct {
	current *record
	records []*record
	report  Report
}

// open appends a new pending record and makes it current.
func (b *builder) open() *record {
	r := &record{}
	b.records = append(b.records, r)
	b.current = r

	return r
}

func (b *builder) started() bool {
	return len(b.records) > 0
}

func (b *builder) comment(text string) {
	if !b.started() {
		b.report.Orphans++

		return
	}

	b.current.docLines = append(b.current.docLines, text)
}

// field names the current record and opens a pending one for the next
// field's documentation.
func (b *builder) field(name string) {
	b.report.Fields++

	cur := b.current
	if cur == nil {
		cur = b.open()
	}

	cur.setName(name)
	b.open()
}

// properties returns the named records, dropping a trailing pending one.
func (b *builder) properties() []Property {
	out := make([]Property, 0, len(b.records))

	for _, r := range b.records {
		p, ok := r.property()
		if !ok {
			b.report.Dropped++

			continue
		}

		out = append(out, p)
	}

	return out
}
