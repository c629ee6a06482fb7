// Package builder implements the structural editor over one template
// draft. Every operation is copy-on-write: it clones the input template,
// applies the change to the clone, and returns it. The caller replaces
// its draft with the result; the previous value (and any stored copy it
// was cloned from) is never mutated in place.
package builder

import (
	"fmt"

	"github.com/formdeck/formdeck/internal/domain"
)

// SectionPatch carries partial updates for a section. Nil fields are
// left unchanged.
type SectionPatch struct {
	Title *string
}

// FieldPatch carries partial updates for a field. Nil fields are left
// unchanged. LabelStyle and Options apply only to label and enum fields
// respectively; patches against other types are stored but ignored by
// the renderer.
type FieldPatch struct {
	Label       *string
	Required    *bool
	Placeholder *string
	Options     *[]string
	LabelStyle  *domain.LabelStyle
}

// SetName replaces the template name.
func SetName(t domain.Template, name string) domain.Template {
	out := t.Clone()
	out.Name = name
	return out
}

// SetDescription replaces the template description.
func SetDescription(t domain.Template, desc string) domain.Template {
	out := t.Clone()
	out.Description = desc
	return out
}

// AddSection appends an empty section titled "Section N" where N is the
// new section count.
func AddSection(t domain.Template) domain.Template {
	out := t.Clone()
	out.Sections = append(out.Sections, domain.Section{
		ID:    domain.NewID(),
		Title: fmt.Sprintf("Section %d", len(out.Sections)+1),
	})
	return out
}

// UpdateSection merges patch into the matching section. Unknown section
// ids are a silent no-op (the reference cannot go stale mid-session; the
// guard is defensive).
func UpdateSection(t domain.Template, sectionID string, patch SectionPatch) domain.Template {
	out := t.Clone()
	sec := out.Section(sectionID)
	if sec == nil {
		return out
	}
	if patch.Title != nil {
		sec.Title = *patch.Title
	}
	return out
}

// DeleteSection removes the matching section and, with it, every field
// it owns. Unknown ids are a no-op.
func DeleteSection(t domain.Template, sectionID string) domain.Template {
	out := t.Clone()
	kept := out.Sections[:0]
	for _, s := range out.Sections {
		if s.ID != sectionID {
			kept = append(kept, s)
		}
	}
	out.Sections = kept
	return out
}

// AddField appends a new field of the given type to the named section,
// with the type-conditional defaults: label fields start at the default
// heading style, enum fields start with two placeholder options. Unknown
// section ids are a no-op.
func AddField(t domain.Template, sectionID string, fieldType domain.FieldType) domain.Template {
	out := t.Clone()
	sec := out.Section(sectionID)
	if sec == nil {
		return out
	}
	f := domain.Field{
		ID:    domain.NewID(),
		Type:  fieldType,
		Label: fmt.Sprintf("New %s field", fieldType),
	}
	switch fieldType {
	case domain.FieldLabel:
		f.LabelStyle = domain.DefaultLabelStyle
	case domain.FieldEnum:
		f.Options = []string{"Option 1", "Option 2"}
	}
	sec.Fields = append(sec.Fields, f)
	return out
}

// UpdateField merges patch into the matching field within the matching
// section. Unknown section or field ids are a no-op.
func UpdateField(t domain.Template, sectionID, fieldID string, patch FieldPatch) domain.Template {
	out := t.Clone()
	sec := out.Section(sectionID)
	if sec == nil {
		return out
	}
	for i := range sec.Fields {
		if sec.Fields[i].ID != fieldID {
			continue
		}
		f := &sec.Fields[i]
		if patch.Label != nil {
			f.Label = *patch.Label
		}
		if patch.Required != nil {
			f.Required = *patch.Required
		}
		if patch.Placeholder != nil {
			f.Placeholder = *patch.Placeholder
		}
		if patch.Options != nil {
			f.Options = *patch.Options
		}
		if patch.LabelStyle != nil && domain.ValidLabelStyles[*patch.LabelStyle] {
			f.LabelStyle = *patch.LabelStyle
		}
		break
	}
	return out
}

// DeleteField removes the matching field from the matching section.
// Unknown ids are a no-op.
func DeleteField(t domain.Template, sectionID, fieldID string) domain.Template {
	out := t.Clone()
	sec := out.Section(sectionID)
	if sec == nil {
		return out
	}
	kept := sec.Fields[:0]
	for _, f := range sec.Fields {
		if f.ID != fieldID {
			kept = append(kept, f)
		}
	}
	sec.Fields = kept
	return out
}
