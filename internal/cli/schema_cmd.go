package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/proposal/internal/cli/formatter"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newSchemaCmd(app *App) *cobra.Command {
	var columns bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Load the reference sheet and show its feature columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := func() {}
			if isatty.IsTerminal(os.Stderr.Fd()) {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Loading reference sheet...")
			}
			resp, err := app.Proposals.LoadSchema(context.Background())
			stop()
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchema(resp, columns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&columns, "columns", false, "List every feature column")

	return cmd
}
