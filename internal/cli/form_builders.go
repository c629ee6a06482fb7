package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/formdeck/formdeck/internal/cli/formatter"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/render"
)

// formdeckHuhTheme returns a custom huh theme using the Gruvbox palette.
func formdeckHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateRequired rejects empty input.
func validateRequired(title string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validateNumber accepts empty or a numeric-formatted string.
func validateNumber(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validateRequiredNumber rejects empty and non-numeric input.
func validateRequiredNumber(s string) error {
	if s == "" {
		return fmt.Errorf("this field is required")
	}
	return validateNumber(s)
}

// ── builder wizard forms ─────────────────────────────────────────────────────

// templateDetailsForm collects the template name and description.
func templateDetailsForm(name, desc *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Template Name").
				Value(name).
				Validate(validateRequired("name")),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(desc),
		),
	).WithTheme(formdeckHuhTheme()).WithShowHelp(false)
}

// sectionTitleForm collects a section title.
func sectionTitleForm(title *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Section Title").
				Value(title).
				Validate(validateRequired("title")),
		),
	).WithTheme(formdeckHuhTheme()).WithShowHelp(false)
}

// fieldTypeForm picks one of the five field types for a new field.
func fieldTypeForm(result *domain.FieldType) *huh.Form {
	options := make([]huh.Option[domain.FieldType], 0, len(domain.AllFieldTypes))
	for _, ft := range domain.AllFieldTypes {
		options = append(options, huh.NewOption(string(ft), ft))
	}
	*result = domain.FieldText
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.FieldType]().
				Title("Field Type").
				Options(options...).
				Value(result),
		),
	).WithTheme(formdeckHuhTheme()).WithShowHelp(false)
}

// fieldEditValues holds form-bound values for the edit-field wizard.
// Options are edited as one multi-line block, one option per line.
type fieldEditValues struct {
	label       string
	placeholder string
	optionsText string
	labelStyle  string
	required    bool
}

// fieldEditForm builds the attribute editor for a field. Only the
// attributes applicable to the field's type are offered.
func fieldEditForm(fieldType domain.FieldType, v *fieldEditValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Label").
			Value(&v.label).
			Validate(validateRequired("label")),
	}

	if fieldType.HasPlaceholder() {
		fields = append(fields, huh.NewInput().
			Title("Placeholder").
			Placeholder("optional hint text").
			Value(&v.placeholder))
	}

	if fieldType == domain.FieldLabel {
		fields = append(fields, huh.NewSelect[string]().
			Title("Heading Style").
			Options(
				huh.NewOption("H1 - Large", string(domain.StyleH1)),
				huh.NewOption("H2 - Medium", string(domain.StyleH2)),
				huh.NewOption("H3 - Small", string(domain.StyleH3)),
			).
			Value(&v.labelStyle))
	}

	if fieldType == domain.FieldEnum {
		fields = append(fields, huh.NewText().
			Title("Options (one per line)").
			Value(&v.optionsText))
	}

	if fieldType.Interactive() {
		fields = append(fields, huh.NewConfirm().
			Title("Required").
			Affirmative("Yes").
			Negative("No").
			Value(&v.required))
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(formdeckHuhTheme()).WithShowHelp(false)
}

// ── renderer form ────────────────────────────────────────────────────────────

// fieldBinding ties a form control's bound value back to a field id.
// Exactly one of str/flag is non-nil depending on the field type.
type fieldBinding struct {
	field domain.Field
	str   *string
	flag  *bool
}

// noSelection is the Select entry offered on optional enum fields so the
// answer can stay unset.
const noSelection = ""

// buildRenderForm turns a render session's template into a huh.Form,
// one group per section, and returns the value bindings to harvest
// after completion.
func buildRenderForm(s *render.Session) (*huh.Form, []*fieldBinding) {
	tpl := s.Template()

	var groups []*huh.Group
	var bindings []*fieldBinding

	for _, sec := range tpl.Sections {
		var fields []huh.Field
		for _, f := range sec.Fields {
			control, binding := buildFieldControl(f)
			fields = append(fields, control)
			if binding != nil {
				bindings = append(bindings, binding)
			}
		}
		if len(fields) == 0 {
			fields = append(fields, huh.NewNote().
				Title(sec.Title).
				Description(formatter.Dim("No fields in this section.")))
			groups = append(groups, huh.NewGroup(fields...))
			continue
		}
		groups = append(groups, huh.NewGroup(fields...).Title(sec.Title))
	}

	// A template with no sections still renders: a single note and the
	// form's submit control.
	if len(groups) == 0 {
		groups = append(groups, huh.NewGroup(
			huh.NewNote().
				Title(tpl.Name).
				Description(formatter.Dim("This form has no fields.")),
		))
	}

	form := huh.NewForm(groups...).WithTheme(formdeckHuhTheme()).WithShowHelp(false)
	return form, bindings
}

// buildFieldControl maps one field definition onto a huh control.
// Label fields produce a non-interactive note and no binding.
func buildFieldControl(f domain.Field) (huh.Field, *fieldBinding) {
	title := f.Label
	if f.Required {
		title += " " + formatter.RequiredMark(true)
	}

	switch f.Type {
	case domain.FieldLabel:
		style := f.LabelStyle
		if !domain.ValidLabelStyles[style] {
			style = domain.DefaultLabelStyle
		}
		return huh.NewNote().Title(formatter.Heading(f.Label, style)), nil

	case domain.FieldNumber:
		b := &fieldBinding{field: f, str: new(string)}
		validate := validateNumber
		if f.Required {
			validate = validateRequiredNumber
		}
		return huh.NewInput().
			Title(title).
			Placeholder(f.Placeholder).
			Value(b.str).
			Validate(validate), b

	case domain.FieldBoolean:
		b := &fieldBinding{field: f, flag: new(bool)}
		return huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(b.flag), b

	case domain.FieldEnum:
		b := &fieldBinding{field: f, str: new(string)}
		var options []huh.Option[string]
		if !f.Required {
			options = append(options, huh.NewOption("(no selection)", noSelection))
		}
		for _, opt := range f.Options {
			options = append(options, huh.NewOption(opt, opt))
		}
		return huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(b.str), b

	default: // text
		b := &fieldBinding{field: f, str: new(string)}
		input := huh.NewInput().
			Title(title).
			Placeholder(f.Placeholder).
			Value(b.str)
		if f.Required {
			input = input.Validate(validateRequired(f.Label))
		}
		return input, b
	}
}

// harvestBindings copies completed form values into the session's
// answer record. Unanswered optional strings stay out of the record;
// booleans always carry their explicit yes/no state.
func harvestBindings(s *render.Session, bindings []*fieldBinding) {
	for _, b := range bindings {
		switch {
		case b.flag != nil:
			s.SetValue(b.field.ID, *b.flag)
		case b.str != nil && *b.str != noSelection:
			s.SetValue(b.field.ID, *b.str)
		}
	}
}
