package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/proposal/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newFormCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive proposal form",
		Long: `Open the full-screen proposal form. The reference sheet is loaded
first; each complete submission is encoded and appended to the session's
feature table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(cmd, app)
		},
	}
}

// runForm runs the form until the user quits, then prints what the session
// recorded.
func runForm(cmd *cobra.Command, app *App) error {
	ctx := context.Background()
	p := tea.NewProgram(newFormModel(ctx, app),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}

	subs, err := app.Proposals.History(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(subs))
	return nil
}
