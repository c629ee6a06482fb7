// Package render interprets a template's field definitions as a fillable
// form and accumulates the entered values into a flat answer record. It
// is presentation-agnostic: the TUI layer maps the template onto actual
// input widgets and feeds values back through SetValue.
package render

import (
	"fmt"
	"strings"

	"github.com/formdeck/formdeck/internal/domain"
)

// Record maps field id to the value entered for that field. Values are
// strings for text/number/enum fields and bools for boolean fields.
type Record map[string]any

// Answer pairs a field definition with its entered value, in display
// order, for diagnostic output after submission.
type Answer struct {
	Field domain.Field
	Value any
}

// Session is one fill-in session over a template. It never mutates the
// template; its only state is the answer record, which is discarded when
// the session ends.
type Session struct {
	template domain.Template
	answers  Record
}

// NewSession starts a fresh session over a clone of the template, so
// later edits to the source document cannot leak into an open form.
func NewSession(t domain.Template) *Session {
	return &Session{
		template: t.Clone(),
		answers:  make(Record),
	}
}

// Template returns the session's (cloned) template.
func (s *Session) Template() domain.Template { return s.template }

// SetValue replaces the answer for the given field id. There is no
// cross-field validation; unknown ids are accepted and simply never
// surface in ordered output.
func (s *Session) SetValue(fieldID string, value any) {
	s.answers[fieldID] = value
}

// Value returns the current answer for a field id.
func (s *Session) Value(fieldID string) (any, bool) {
	v, ok := s.answers[fieldID]
	return v, ok
}

// MissingRequired returns the required interactive fields that have no
// usable answer yet: absent entirely, or an empty string. A boolean that
// has been set at all counts as answered, whichever way it was set.
func (s *Session) MissingRequired() []domain.Field {
	var missing []domain.Field
	for _, sec := range s.template.Sections {
		for _, f := range sec.Fields {
			if !f.Required || !f.Type.Interactive() {
				continue
			}
			v, ok := s.answers[f.ID]
			if !ok {
				missing = append(missing, f)
				continue
			}
			if str, isStr := v.(string); isStr && str == "" {
				missing = append(missing, f)
			}
		}
	}
	return missing
}

// Submit finalizes the session. It fails when required fields are still
// unanswered; otherwise it returns a copy of the answer record. The
// session itself holds no further obligations: the record is the output.
func (s *Session) Submit() (Record, error) {
	if missing := s.MissingRequired(); len(missing) > 0 {
		labels := make([]string, len(missing))
		for i, f := range missing {
			labels[i] = f.Label
		}
		return nil, fmt.Errorf("required fields not filled: %s", strings.Join(labels, ", "))
	}
	out := make(Record, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out, nil
}

// Answers returns the answered interactive fields in template display
// order, paired with their values.
func (s *Session) Answers() []Answer {
	var out []Answer
	for _, sec := range s.template.Sections {
		for _, f := range sec.Fields {
			if !f.Type.Interactive() {
				continue
			}
			if v, ok := s.answers[f.ID]; ok {
				out = append(out, Answer{Field: f, Value: v})
			}
		}
	}
	return out
}
