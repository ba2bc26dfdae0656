package cli

import (
	"fmt"

	"github.com/alexanderramin/proposal/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the selectable offices, states, services, roles and levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog(app.catalog()))
			return nil
		},
	}
}
