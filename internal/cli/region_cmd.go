package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/proposal/internal/cli/formatter"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/spf13/cobra"
)

func newRegionCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "region [STATE...]",
		Short: "Show the sales region of one or more states",
		Long: `Show the sales region of one or more states.

State codes match exactly, so "oh" is Unknown while "OH" is Midwest.`,
		Example: `  proposal region OH
  proposal region NY CA TX
  proposal region --list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				fmt.Fprint(out, formatter.FormatRegionSets())
				if len(args) == 0 {
					return nil
				}
			}
			if len(args) == 0 {
				return errors.New("requires at least one state code, or --list")
			}
			codes := make([]domain.StateCode, len(args))
			for i, a := range args {
				codes[i] = domain.StateCode(strings.TrimSpace(a))
			}
			fmt.Fprint(out, formatter.FormatRegions(codes))
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the states in each region")
	return cmd
}
