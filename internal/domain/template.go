package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxTemplates is the hard capacity of the template store.
const MaxTemplates = 5

// Field is one typed input definition within a section.
// Attributes beyond Label apply only to some types: Placeholder to
// text/number, Options to enum, LabelStyle to label, Required to every
// interactive type. Inapplicable attributes are ignored by the renderer.
type Field struct {
	ID          string
	Type        FieldType
	Label       string
	Required    bool
	Placeholder string
	Options     []string
	LabelStyle  LabelStyle
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.Options != nil {
		out.Options = make([]string, len(f.Options))
		copy(out.Options, f.Options)
	}
	return out
}

// Section is a named, ordered group of fields. Field order is display order.
type Section struct {
	ID     string
	Title  string
	Fields []Field
}

// Clone returns a deep copy of the section and its fields.
func (s Section) Clone() Section {
	out := s
	if s.Fields != nil {
		out.Fields = make([]Field, len(s.Fields))
		for i, f := range s.Fields {
			out.Fields[i] = f.Clone()
		}
	}
	return out
}

// Template is a named, ordered collection of sections defining one
// reusable form. The ID is assigned at creation and stable for the
// template's lifetime.
type Template struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	Sections    []Section
}

// NewTemplate constructs an empty template with a fresh random ID.
// Names follow "Template N" where N is the caller's current count + 1.
func NewTemplate(count int) Template {
	return Template{
		ID:        NewID(),
		Name:      fmt.Sprintf("Template %d", count+1),
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a deep copy of the template tree. Builder drafts are
// clones of stored documents so that cancelling an edit can never
// touch the store's copy.
func (t Template) Clone() Template {
	out := t
	if t.Sections != nil {
		out.Sections = make([]Section, len(t.Sections))
		for i, s := range t.Sections {
			out.Sections[i] = s.Clone()
		}
	}
	return out
}

// FieldCount returns the total number of fields across all sections.
func (t Template) FieldCount() int {
	n := 0
	for _, s := range t.Sections {
		n += len(s.Fields)
	}
	return n
}

// Section returns a pointer to the section with the given id, or nil.
// The pointer aliases the template's own slice; callers that need
// isolation must Clone first.
func (t *Template) Section(id string) *Section {
	for i := range t.Sections {
		if t.Sections[i].ID == id {
			return &t.Sections[i]
		}
	}
	return nil
}

// NewID returns a random identifier. IDs are deliberately not derived
// from the clock: rapid successive creations must never collide.
func NewID() string {
	return uuid.NewString()
}
