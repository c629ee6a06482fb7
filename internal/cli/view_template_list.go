package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/formdeck/formdeck/internal/cli/formatter"
	"github.com/formdeck/formdeck/internal/domain"
	"github.com/formdeck/formdeck/internal/service"
)

// templatesLoadedMsg signals that template list data has been loaded.
type templatesLoadedMsg struct {
	templates []*domain.Template
	err       error
}

// draftReadyMsg carries a fresh uncommitted draft into the builder.
type draftReadyMsg struct {
	draft *domain.Template
	err   error
}

// templateListView is the home view: the stored templates with actions
// to create, edit, preview, and delete.
type templateListView struct {
	state     *SharedState
	templates []*domain.Template
	cursor    int
	loading   bool
	err       error
}

func newTemplateListView(state *SharedState) *templateListView {
	return &templateListView{
		state:   state,
		loading: true,
	}
}

func (v *templateListView) ID() ViewID { return ViewTemplateList }
func (v *templateListView) Title() string { return "Templates" }

func (v *templateListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}

func (v *templateListView) Init() tea.Cmd {
	return v.loadTemplates()
}

func (v *templateListView) loadTemplates() tea.Cmd {
	store := v.state.Store
	return func() tea.Msg {
		templates, err := store.List(context.Background())
		return templatesLoadedMsg{templates: templates, err: err}
	}
}

func (v *templateListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case templatesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.templates = msg.templates
		if v.cursor >= len(v.templates) && v.cursor > 0 {
			v.cursor = len(v.templates) - 1
		}
		return v, nil

	case draftReadyMsg:
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrTemplateLimit) {
				return v, showOutput("\n  " + formatter.StyleRed.Render(msg.err.Error()))
			}
			return v, showOutput("\n  " + formatter.StyleRed.Render("Error: "+msg.err.Error()))
		}
		return v, pushView(newBuilderView(v.state, *msg.draft))

	case refreshViewMsg:
		return v, v.loadTemplates()

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *templateListView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.templates)-1 {
			v.cursor++
		}
	case "n":
		store := v.state.Store
		return v, func() tea.Msg {
			draft, err := store.NewDraft(context.Background())
			return draftReadyMsg{draft: draft, err: err}
		}
	case "enter", "e":
		if v.cursor < len(v.templates) {
			// The builder works on a clone; the stored copy is only
			// touched by an explicit save.
			return v, pushView(newBuilderView(v.state, v.templates[v.cursor].Clone()))
		}
	case "v", "p":
		if v.cursor < len(v.templates) {
			return v, pushView(newRendererView(v.state, *v.templates[v.cursor]))
		}
	case "d":
		if v.cursor < len(v.templates) {
			store := v.state.Store
			id := v.templates[v.cursor].ID
			return v, func() tea.Msg {
				if err := store.Delete(context.Background(), id); err != nil {
					return templatesLoadedMsg{err: err}
				}
				return refreshViewMsg{}
			}
		}
	}
	return v, nil
}

func (v *templateListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading templates...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.Bold(fmt.Sprintf("Templates (%d/%d)", len(v.templates), domain.MaxTemplates)))
	b.WriteString("\n\n")

	if len(v.templates) == 0 {
		b.WriteString("  " + formatter.Dim("No templates yet. Press n to create one.") + "\n")
		return b.String()
	}

	for i, t := range v.templates {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		desc := t.Description
		if desc == "" {
			desc = "—"
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, nameStyle.Render(padRight(t.Name, 24)), formatter.TemplateSummary(t)))
		b.WriteString("    " + formatter.Dim(truncate(desc, 60)) + "\n")
	}

	return b.String()
}

// padRight pads a string to a fixed width in runes, truncating if needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

// truncate shortens a string to at most width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
