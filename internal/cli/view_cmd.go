package cli

import (
	"fmt"
	"io"

	"github.com/catbot-team/catbot/internal/domain"
	"github.com/spf13/cobra"
)

func newViewCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "view [tab]",
		Short: "Print a tab without starting the interactive UI",
		Long: "Print a static render of one tab. The tab may be given as its id\n" +
			"(check-in, focus, ideas, breaks) or its label (\"check in\").",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return printStaticWidth(cmd.OutOrStdout(), app, name, width)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "Render width in columns")

	return cmd
}

func printStatic(w io.Writer, app *App, name string) error {
	return printStaticWidth(w, app, name, defaultWidth)
}

// printStaticWidth renders the named tab (default tab when empty) once.
func printStaticWidth(w io.Writer, app *App, name string, width int) error {
	tab := domain.DefaultTab
	if name != "" {
		parsed, err := domain.ParseTab(name)
		if err != nil {
			return err
		}
		tab = parsed
	}

	m := newAppModel(app)
	m.width = width
	m.selectTab(tab)

	_, err := fmt.Fprintln(w, m.render(false))
	return err
}

func newTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the available tabs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, tab := range domain.AllTabs() {
				if _, err := fmt.Fprintf(out, "%d  %-9s %s\n", i+1, tab, tab.Title()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "catbot %s\n", app.Version)
			return err
		},
	}
}
