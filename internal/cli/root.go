package cli

import (
	"time"

	"github.com/alexanderramin/proposal/internal/catalog"
	"github.com/alexanderramin/proposal/internal/config"
	"github.com/alexanderramin/proposal/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds what the commands need: the session's proposal service and the
// option catalog.
type App struct {
	Proposals service.ProposalService
	Catalog   *catalog.Catalog

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command opens the form only when it is.
	IsInteractive func() bool

	// Now supplies the default date range. Defaults to time.Now.
	Now func() time.Time

	// Config, when set, is exposed as persistent flags so the command line
	// overrides the environment.
	Config *config.Config

	// Setup runs once flags are parsed, before any command. It wires
	// Proposals from Config when Proposals is unset.
	Setup func(*App) error
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) catalog() *catalog.Catalog {
	if a.Catalog != nil {
		return a.Catalog
	}
	return catalog.Default()
}

// NewRootCmd creates the top-level "proposal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "proposal",
		Short: "Project cost proposal intake",
		Long: `Collect project characteristics, check the staff workload and the
estimated dates, and encode each complete proposal as a one-hot feature row
against the reference sheet.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Setup == nil || app.Proposals != nil {
				return nil
			}
			return app.Setup(app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runForm(cmd, app)
			}
			return cmd.Help()
		},
	}

	if app.Config != nil {
		bindConfigFlags(root.PersistentFlags(), app.Config)
	}

	root.AddCommand(
		newFormCmd(app),
		newSubmitCmd(app),
		newRegionCmd(),
		newCatalogCmd(app),
		newSchemaCmd(app),
	)

	return root
}

func bindConfigFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.SchemaFile, "schema-file", cfg.SchemaFile, "Read the reference sheet from a local CSV or XLSX file")
	fs.StringVar(&cfg.SheetID, "sheet-id", cfg.SheetID, "Google Sheets id of the reference sheet")
	fs.StringVar(&cfg.SheetGID, "sheet-gid", cfg.SheetGID, "Tab gid of the reference sheet")
	fs.BoolVar(&cfg.EncodeServices, "encode-services", cfg.EncodeServices, "Also encode selected services and staffed roles that are sheet columns")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Write structured logs to this file")
}
