package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/formdeck/formdeck/internal/cli/formatter"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/render"
)

// rendererView presents a template as a fillable form. The underlying
// render.Session owns the answer record; the huh form owns the input
// widgets. Completing the form submits; Esc abandons the session and
// its answers.
type rendererView struct {
	state    *SharedState
	session  *render.Session
	form     *huh.Form
	bindings []*fieldBinding
}

func newRendererView(state *SharedState, tpl domain.Template) *rendererView {
	session := render.NewSession(tpl)
	form, bindings := buildRenderForm(session)
	return &rendererView{
		state:    state,
		session:  session,
		form:     form,
		bindings: bindings,
	}
}

func (v *rendererView) ID() ViewID    { return ViewRenderer }
func (v *rendererView) Title() string { return v.session.Template().Name }

func (v *rendererView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	}
}

func (v *rendererView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *rendererView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Escape leaves the form; the answer record dies with the session.
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView()
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		return v, v.submit()
	}

	return v, cmd
}

// submit harvests the form values into the answer record, finalizes the
// session, and surfaces the acknowledgment plus the captured record.
// Required-field validation already happened inline in the form, so a
// submission failure here means a control was bypassed; it is surfaced
// the same way as any other error.
func (v *rendererView) submit() tea.Cmd {
	harvestBindings(v.session, v.bindings)
	if _, err := v.session.Submit(); err != nil {
		return tea.Batch(popView(), showOutput("\n  "+formatter.StyleRed.Render("Error: "+err.Error())))
	}

	// The record's life ends with this acknowledgment; nothing
	// downstream consumes it.
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleGreen.Render("✔") + " " +
		formatter.Bold("Form submitted") + " " +
		formatter.Dim("("+v.session.Template().Name+")") + "\n\n")
	b.WriteString(formatter.FormatRecord(v.session.Answers()))

	return tea.Batch(popView(), showOutput(b.String()))
}

func (v *rendererView) View() string {
	tpl := v.session.Template()

	var b strings.Builder
	b.WriteString("\n  " + formatter.Bold(tpl.Name) + "\n")
	if tpl.Description != "" {
		b.WriteString("  " + formatter.Dim(tpl.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.form.View())
	return b.String()
}
