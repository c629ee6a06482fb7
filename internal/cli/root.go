package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/formdeck/formdeck/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is stamped at build time.
var Version = "dev"

// App holds everything the CLI layer needs: the session's template
// store and the terminal capability probe from main.
type App struct {
	Store service.TemplateStore

	// IsInteractive reports whether stdin is a real terminal. The TUI
	// refuses to start without one.
	IsInteractive func() bool

	// DebugLog is a file path for bubbletea debug logging, empty to
	// disable.
	DebugLog string
}

// NewRootCmd creates the top-level "formdeck" command. Running it with
// no subcommand launches the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "formdeck",
		Short:         "Interactive form template builder",
		Long:          "Build form templates with sections and typed fields, then fill them as forms.\nEverything lives in memory for the duration of the session.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app, cmd.Flags())
		},
	}

	registerGlobalFlags(root.PersistentFlags())
	root.AddCommand(newVersionCmd())

	return root
}

// registerGlobalFlags declares flags shared by every command.
func registerGlobalFlags(fs *pflag.FlagSet) {
	fs.Bool("ascii", false, "disable colors and styling")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the formdeck version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "formdeck "+Version)
		},
	}
}

// runTUI starts the full-screen program over the session store.
func runTUI(app *App, flags *pflag.FlagSet) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("formdeck needs an interactive terminal")
	}

	if ascii, _ := flags.GetBool("ascii"); ascii {
		// termenv picks this up when it resolves the color profile
		// on first render.
		os.Setenv("NO_COLOR", "1")
	}

	if app.DebugLog != "" {
		f, err := tea.LogToFile(app.DebugLog, "formdeck")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(newAppModel(app.Store), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
