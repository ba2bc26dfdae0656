package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/proposal/internal/catalog"
	"github.com/alexanderramin/proposal/internal/cli/formatter"
	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/intake"
	"github.com/alexanderramin/proposal/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type submitFlags struct {
	office     string
	state      string
	client     string
	services   []string
	workload   map[string]int
	complexity int
	hours      int
	start      string
	end        string
	jsonOut    bool
	dryRun     bool
	allColumns bool
}

func newSubmitCmd(app *App) *cobra.Command {
	var f submitFlags

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit one proposal non-interactively",
		Long: `Validate one proposal given as flags. A complete proposal is encoded
against the reference sheet and its feature row is recorded; otherwise the
command reports what is missing and exits with an error.`,
		Example: `  proposal submit --office Akron --state OH --client Individual \
    --service "Individual Income Tax Return" \
    --workload Staff=70,Manager=30 --complexity 2 --hours 3 \
    --start 2024-01-01 --end 2024-01-10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := f.fields(app.catalog(), domain.DefaultDateRange(app.now()))
			if err != nil {
				return err
			}

			req := contract.NewSubmitRequest(fields)
			req.Preview = f.dryRun

			resp, err := app.Proposals.Submit(context.Background(), req)
			if err != nil {
				return err
			}
			return printSubmitResponse(cmd.OutOrStdout(), resp, app.catalog(), f)
		},
	}

	f.register(cmd.Flags())

	return cmd
}

func (f *submitFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.office, "office", "", "Office")
	fs.StringVar(&f.state, "state", "", "Two-letter state code")
	fs.StringVar(&f.client, "client", "", "Client type")
	fs.StringSliceVar(&f.services, "service", nil, "Requested service (repeatable)")
	fs.StringToIntVar(&f.workload, "workload", nil, "Staff workload as Role=percent pairs")
	fs.IntVar(&f.complexity, "complexity", 0, "Project complexity level (1-4)")
	fs.IntVar(&f.hours, "hours", 0, "Hours level (1-7)")
	fs.StringVar(&f.start, "start", "", "Estimated start date (YYYY-MM-DD, default today)")
	fs.StringVar(&f.end, "end", "", "Estimated end date (YYYY-MM-DD, default tomorrow)")
	fs.BoolVar(&f.jsonOut, "json", false, "Print the collected input as JSON")
	fs.BoolVar(&f.dryRun, "dry-run", false, "Encode without recording the row")
	fs.BoolVar(&f.allColumns, "all-columns", false, "Show all-zero feature columns")
}

// fields validates flag values against the catalog. Empty flags are left
// unset so the gate reports them as missing.
func (f submitFlags) fields(cat *catalog.Catalog, dates domain.DateRange) (intake.Fields, error) {
	var out intake.Fields
	var errs []error

	if f.office != "" {
		o, err := domain.ParseOffice(f.office)
		errs = append(errs, err)
		out.Office = o
	}
	if f.state != "" {
		s, err := domain.ParseState(strings.ToUpper(f.state))
		errs = append(errs, err)
		out.State = s
	}
	if f.client != "" {
		c, err := domain.ParseClientType(f.client)
		errs = append(errs, err)
		out.ClientType = c
	}
	for _, s := range f.services {
		if !cat.HasService(s) {
			errs = append(errs, fmt.Errorf("unknown service %q", s))
		}
	}
	out.Services = f.services
	if len(f.workload) > 0 {
		out.Workload = make(map[string]int, len(f.workload))
		for role, pct := range f.workload {
			if !cat.HasRole(role) {
				errs = append(errs, fmt.Errorf("unknown staff role %q", role))
			}
			if pct < 0 || pct > 100 {
				errs = append(errs, fmt.Errorf("%s: percentage %d out of range 0-100", role, pct))
			}
			out.Workload[role] = pct
		}
	}
	out.Complexity = domain.Complexity(f.complexity)
	out.Hours = domain.HoursLevel(f.hours)

	start, end := dates.Start, dates.End
	if f.start != "" {
		t, err := parseFlagDate("start", f.start)
		errs = append(errs, err)
		start = t
	}
	if f.end != "" {
		t, err := parseFlagDate("end", f.end)
		errs = append(errs, err)
		end = t
	}
	out.Dates = domain.NewDateRange(start, end)

	if err := errors.Join(errs...); err != nil {
		return intake.Fields{}, err
	}
	return out, nil
}

func parseFlagDate(name, s string) (t time.Time, err error) {
	if err := validateOptionalDate(s); err != nil {
		return t, fmt.Errorf("--%s: %w", name, err)
	}
	return parseOptionalDate(s), nil
}

func printSubmitResponse(w io.Writer, resp *contract.SubmitResponse, cat *catalog.Catalog, f submitFlags) error {
	fmt.Fprintln(w, formatter.Dim(service.NoticeDisclaimer))
	fmt.Fprint(w, formatter.FormatNotices(resp.Notices))

	if !resp.Accepted() {
		return fmt.Errorf("proposal not accepted: %w", resp.Report.Err())
	}

	fmt.Fprintln(w)
	if f.jsonOut {
		out, err := formatter.FormatInputJSON(resp.Input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	} else {
		fmt.Fprintln(w, formatter.FormatSummary(resp.Input, cat))
	}

	fmt.Fprint(w, formatter.FormatRow(resp.Row))
	if resp.Submission != nil {
		fmt.Fprintf(w, "%s #%d %s\n", formatter.Dim("Recorded"), resp.Submission.Seq, formatter.TruncID(resp.Submission.ID))
	} else {
		fmt.Fprintln(w, formatter.Dim("Dry run: row not recorded."))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.FormatFeatureTable(resp.Table, f.allColumns))
	return nil
}
