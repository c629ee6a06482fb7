package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/render"
)

// Heading renders a label field's text at its heading level. Terminal
// output has no font sizes, so the levels map to decreasing weight:
// h1 bold orange, h2 bold, h3 plain foreground.
func Heading(text string, style domain.LabelStyle) string {
	switch style {
	case domain.StyleH1:
		return StyleHeader.Render(text)
	case domain.StyleH3:
		return StyleFg.Render(text)
	default:
		return StyleBold.Render(text)
	}
}

// TypeBadge renders a short colored tag for a field type, used in the
// builder's field rows.
func TypeBadge(t domain.FieldType) string {
	var style lipgloss.Style
	switch t {
	case domain.FieldLabel:
		style = StylePurple
	case domain.FieldText:
		style = StyleGreen
	case domain.FieldNumber:
		style = StyleBlue
	case domain.FieldBoolean:
		style = StyleYellow
	case domain.FieldEnum:
		style = StyleRed
	default:
		style = StyleDim
	}
	return style.Render(fmt.Sprintf("[%s]", t))
}

// TemplateSummary renders the per-template line shown in the list view:
// section and field counts in dim text.
func TemplateSummary(t *domain.Template) string {
	return Dim(fmt.Sprintf("%d sections · %d fields", len(t.Sections), t.FieldCount()))
}

// RequiredMark returns the inline required indicator.
func RequiredMark(required bool) string {
	if !required {
		return ""
	}
	return StyleRed.Render("*")
}

// FormatRecord renders a submitted answer record as one "label: value"
// line per answered field, in display order. Boolean answers print as
// yes/no.
func FormatRecord(answers []render.Answer) string {
	if len(answers) == 0 {
		return Dim("(no answers)")
	}
	var b strings.Builder
	for i, a := range answers {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("  %s %s", Dim(a.Field.Label+":"), Bold(formatValue(a.Value))))
	}
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case bool:
		if val {
			return "yes"
		}
		return "no"
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
