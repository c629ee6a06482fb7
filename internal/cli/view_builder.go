package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/formdeck/formdeck/internal/builder"
	"github.com/formdeck/formdeck/internal/cli/formatter"
	"github.com/formdeck/formdeck/internal/domain"
)

// draftPatchMsg carries a completed wizard's edit back to the builder
// view as a copy-on-write transformation of the draft.
type draftPatchMsg struct {
	apply func(domain.Template) domain.Template
}

// savedMsg reports the outcome of committing the draft to the store.
type savedMsg struct {
	name string
	err  error
}

type rowKind int

const (
	rowDetails rowKind = iota
	rowSection
	rowField
)

// builderRow is one selectable line in the builder's draft outline.
type builderRow struct {
	kind      rowKind
	sectionID string
	fieldID   string
}

// builderView is the structural editor over one draft template. All
// edits go through the builder package's copy-on-write operations; the
// store is only touched when the user saves. Leaving the view (esc)
// drops the draft.
type builderView struct {
	state  *SharedState
	draft  domain.Template
	cursor int
}

func newBuilderView(state *SharedState, draft domain.Template) *builderView {
	return &builderView{
		state: state,
		draft: draft,
	}
}

func (v *builderView) ID() ViewID    { return ViewBuilder }
func (v *builderView) Title() string { return "Builder" }

func (v *builderView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add section")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "add field")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
	}
}

func (v *builderView) Init() tea.Cmd { return nil }

// rows flattens the draft into the selectable outline: the template
// details line, then each section followed by its fields.
func (v *builderView) rows() []builderRow {
	rows := []builderRow{{kind: rowDetails}}
	for _, sec := range v.draft.Sections {
		rows = append(rows, builderRow{kind: rowSection, sectionID: sec.ID})
		for _, f := range sec.Fields {
			rows = append(rows, builderRow{kind: rowField, sectionID: sec.ID, fieldID: f.ID})
		}
	}
	return rows
}

func (v *builderView) selectedRow() builderRow {
	rows := v.rows()
	if v.cursor >= len(rows) {
		return rows[len(rows)-1]
	}
	return rows[v.cursor]
}

func (v *builderView) clampCursor() {
	if n := len(v.rows()); v.cursor >= n {
		v.cursor = n - 1
	}
}

func (v *builderView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case draftPatchMsg:
		v.draft = msg.apply(v.draft)
		v.clampCursor()
		return v, nil

	case savedMsg:
		if msg.err != nil {
			return v, showOutput("\n  " + formatter.StyleRed.Render("Error: "+msg.err.Error()))
		}
		return v, tea.Batch(
			popView(),
			refreshViews(),
			showOutput("\n  "+formatter.StyleGreen.Render("✔")+" Saved "+formatter.Bold(msg.name)),
		)

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *builderView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.rows())-1 {
			v.cursor++
		}
	case "a":
		v.draft = builder.AddSection(v.draft)
	case "t":
		if row := v.selectedRow(); row.sectionID != "" {
			return v, v.addFieldWizard(row.sectionID)
		}
	case "enter":
		return v, v.editWizard(v.selectedRow())
	case "d":
		switch row := v.selectedRow(); row.kind {
		case rowSection:
			v.draft = builder.DeleteSection(v.draft, row.sectionID)
		case rowField:
			v.draft = builder.DeleteField(v.draft, row.sectionID, row.fieldID)
		}
		v.clampCursor()
	case "s":
		return v, v.save()
	}
	return v, nil
}

func (v *builderView) save() tea.Cmd {
	store := v.state.Store
	draft := v.draft.Clone()
	return func() tea.Msg {
		err := store.Save(context.Background(), &draft)
		return savedMsg{name: draft.Name, err: err}
	}
}

// ── edit wizards ─────────────────────────────────────────────────────────────

func (v *builderView) editWizard(row builderRow) tea.Cmd {
	switch row.kind {
	case rowDetails:
		return v.detailsWizard()
	case rowSection:
		return v.sectionWizard(row.sectionID)
	case rowField:
		return v.fieldWizard(row.sectionID, row.fieldID)
	}
	return nil
}

func (v *builderView) detailsWizard() tea.Cmd {
	name := v.draft.Name
	desc := v.draft.Description
	form := templateDetailsForm(&name, &desc)

	done := func() tea.Cmd {
		return func() tea.Msg {
			return draftPatchMsg{apply: func(t domain.Template) domain.Template {
				t = builder.SetName(t, name)
				return builder.SetDescription(t, desc)
			}}
		}
	}
	return pushView(newWizardView(v.state, "Template Details", form, done))
}

func (v *builderView) sectionWizard(sectionID string) tea.Cmd {
	sec := v.draft.Section(sectionID)
	if sec == nil {
		return nil
	}
	title := sec.Title
	form := sectionTitleForm(&title)

	done := func() tea.Cmd {
		return func() tea.Msg {
			return draftPatchMsg{apply: func(t domain.Template) domain.Template {
				return builder.UpdateSection(t, sectionID, builder.SectionPatch{Title: &title})
			}}
		}
	}
	return pushView(newWizardView(v.state, "Edit Section", form, done))
}

func (v *builderView) addFieldWizard(sectionID string) tea.Cmd {
	var fieldType domain.FieldType
	form := fieldTypeForm(&fieldType)

	done := func() tea.Cmd {
		return func() tea.Msg {
			return draftPatchMsg{apply: func(t domain.Template) domain.Template {
				return builder.AddField(t, sectionID, fieldType)
			}}
		}
	}
	return pushView(newWizardView(v.state, "Add Field", form, done))
}

func (v *builderView) fieldWizard(sectionID, fieldID string) tea.Cmd {
	sec := v.draft.Section(sectionID)
	if sec == nil {
		return nil
	}
	var field *domain.Field
	for i := range sec.Fields {
		if sec.Fields[i].ID == fieldID {
			field = &sec.Fields[i]
			break
		}
	}
	if field == nil {
		return nil
	}

	vals := &fieldEditValues{
		label:       field.Label,
		placeholder: field.Placeholder,
		optionsText: builder.JoinOptions(field.Options),
		labelStyle:  string(field.LabelStyle),
		required:    field.Required,
	}
	fieldType := field.Type
	form := fieldEditForm(fieldType, vals)

	done := func() tea.Cmd {
		return func() tea.Msg {
			patch := builder.FieldPatch{
				Label:    &vals.label,
				Required: &vals.required,
			}
			if fieldType.HasPlaceholder() {
				patch.Placeholder = &vals.placeholder
			}
			if fieldType == domain.FieldLabel {
				style := domain.LabelStyle(vals.labelStyle)
				patch.LabelStyle = &style
			}
			if fieldType == domain.FieldEnum {
				opts := builder.ParseOptions(vals.optionsText)
				patch.Options = &opts
			}
			return draftPatchMsg{apply: func(t domain.Template) domain.Template {
				return builder.UpdateField(t, sectionID, fieldID, patch)
			}}
		}
	}
	return pushView(newWizardView(v.state, "Edit Field", form, done))
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *builderView) View() string {
	var b strings.Builder
	rows := v.rows()

	b.WriteString("\n")

	for i, row := range rows {
		cursor := "  "
		selected := i == v.cursor
		if selected {
			cursor = formatter.StyleGreen.Render("▸ ")
		}

		switch row.kind {
		case rowDetails:
			name := formatter.StyleFg.Render(v.draft.Name)
			if selected {
				name = formatter.Bold(v.draft.Name)
			}
			b.WriteString(cursor + name)
			if v.draft.Description != "" {
				b.WriteString("  " + formatter.Dim(truncate(v.draft.Description, 48)))
			}
			b.WriteString("\n")

		case rowSection:
			sec := v.draft.Section(row.sectionID)
			if sec == nil {
				continue
			}
			title := formatter.StyleBlue.Render(sec.Title)
			if selected {
				title = formatter.StyleBold.Render(sec.Title)
			}
			b.WriteString("\n" + cursor + title + "  " + formatter.Dim(fmt.Sprintf("(%d fields)", len(sec.Fields))) + "\n")

		case rowField:
			f := v.fieldByID(row.sectionID, row.fieldID)
			if f == nil {
				continue
			}
			label := formatter.StyleFg.Render(f.Label)
			if selected {
				label = formatter.Bold(f.Label)
			}
			line := "    " + cursor + formatter.TypeBadge(f.Type) + " " + label
			if f.Required {
				line += " " + formatter.RequiredMark(true)
			}
			b.WriteString(line + "\n")
		}
	}

	if len(v.draft.Sections) == 0 {
		b.WriteString("\n  " + formatter.Dim("No sections yet. Press a to add one.") + "\n")
	}

	return b.String()
}

func (v *builderView) fieldByID(sectionID, fieldID string) *domain.Field {
	sec := v.draft.Section(sectionID)
	if sec == nil {
		return nil
	}
	for i := range sec.Fields {
		if sec.Fields[i].ID == fieldID {
			return &sec.Fields[i]
		}
	}
	return nil
}
