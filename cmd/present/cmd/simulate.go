package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/present/internal/render"
	"github.com/go-drift/present/internal/scenario"
	"github.com/go-drift/present/pkg/graphics"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(render.Primary)

func newSimulateCommand() *cobra.Command {
	var (
		list       bool
		cols, rows int
	)
	cmd := &cobra.Command{
		Use:   "simulate <scenario>",
		Short: "Run a scripted scenario and print its transitions",
		Long: fmt.Sprintf(`Run a scripted scenario on a simulated clock and print every transition
state change, followed by the final screen.

Scenarios: %s`, strings.Join(scenario.Names(), ", ")),
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgs: scenario.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range scenario.Names() {
					s, _ := scenario.Lookup(name)
					fmt.Fprintf(out, "%-16s %s\n", s.Name, s.Description)
				}
				return nil
			}

			s, err := scenario.Lookup(args[0])
			if err != nil {
				return err
			}
			r, err := resolve()
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, r)
			if err != nil {
				return err
			}

			p := r.Preview()
			runner := scenario.NewRunner(graphics.Size{Width: p.Width, Height: p.Height}, logger, r.Tuning())
			defer runner.Close()
			if err := s.Run(runner); err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}

			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s: %s", s.Name, s.Description)))
			fmt.Fprintln(out, render.Trace(runner.Records()))
			fmt.Fprintln(out)
			kb, _ := runner.Keyboard.CurrentFrame()
			fmt.Fprintln(out, render.Screen(runner.Engine, kb.Rect, kb.Visible, cols, rows, runner.Label))
			fmt.Fprintf(out, "finished after %s\n", runner.Elapsed())
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list the available scenarios")
	cmd.Flags().IntVar(&cols, "cols", 40, "width of the final screen in cells")
	cmd.Flags().IntVar(&rows, "rows", 20, "height of the final screen in cells")
	return cmd
}
