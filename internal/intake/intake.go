// Package intake gates raw form values into a complete domain.ProjectInput.
package intake

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/proposal/internal/domain"
)

// Field names a required input.
type Field string

const (
	FieldOffice     Field = "office"
	FieldState      Field = "state"
	FieldRegion     Field = "region"
	FieldClientType Field = "client type"
	FieldServices   Field = "services"
	FieldWorkload   Field = "staff workload"
	FieldComplexity Field = "complexity"
	FieldHours      Field = "hours"
	FieldDates      Field = "date range"
)

// RequiredFields lists every field the gate checks, in form order.
var RequiredFields = []Field{
	FieldOffice, FieldState, FieldRegion, FieldClientType, FieldServices,
	FieldWorkload, FieldComplexity, FieldHours, FieldDates,
}

// Fields is the raw state of the form. Zero values mean "not selected".
type Fields struct {
	Office     domain.Office
	State      domain.StateCode
	ClientType domain.ClientType
	Services   []string
	Workload   map[string]int
	Complexity domain.Complexity
	Hours      domain.HoursLevel
	Dates      domain.DateRange
}

// Report explains the outcome of one aggregation pass.
type Report struct {
	Missing  []Field
	Region   domain.Region
	Workload domain.WorkloadResult
	DateErr  error
}

// Complete reports whether the gate opened.
func (r Report) Complete() bool {
	return len(r.Missing) == 0 && r.Workload.Status == domain.WorkloadExact && r.DateErr == nil
}

// Err joins the sentinel errors for every reason the gate stayed closed.
func (r Report) Err() error {
	var errs []error
	if len(r.Missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: missing %s", domain.ErrIncompleteInput, joinFields(r.Missing)))
	}
	if err := r.Workload.Err(); err != nil && !r.missing(FieldWorkload) {
		errs = append(errs, fmt.Errorf("%w (allocated %d%%)", err, r.Workload.Total))
	}
	if r.DateErr != nil && !r.missing(FieldDates) {
		errs = append(errs, r.DateErr)
	}
	return errors.Join(errs...)
}

func (r Report) missing(f Field) bool {
	for _, m := range r.Missing {
		if m == f {
			return true
		}
	}
	return false
}

func joinFields(fields []Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Aggregate returns a ProjectInput only when every required field is present,
// the workload totals exactly 100 and the date range is valid. Otherwise it
// returns nil; the Report says why.
func Aggregate(f Fields) (*domain.ProjectInput, Report) {
	var rep Report

	if f.Office == "" {
		rep.Missing = append(rep.Missing, FieldOffice)
	}
	if f.State == "" {
		rep.Missing = append(rep.Missing, FieldState)
		rep.Missing = append(rep.Missing, FieldRegion)
	} else {
		rep.Region = domain.ClassifyRegion(f.State)
	}
	if f.ClientType == "" {
		rep.Missing = append(rep.Missing, FieldClientType)
	}
	if len(f.Services) == 0 {
		rep.Missing = append(rep.Missing, FieldServices)
	}
	if len(f.Workload) == 0 {
		rep.Missing = append(rep.Missing, FieldWorkload)
	}
	rep.Workload = domain.ValidateWorkload(f.Workload)
	if !f.Complexity.Valid() {
		rep.Missing = append(rep.Missing, FieldComplexity)
	}
	if !f.Hours.Valid() {
		rep.Missing = append(rep.Missing, FieldHours)
	}
	rep.DateErr = domain.ValidateDateRange(f.Dates)
	if errors.Is(rep.DateErr, domain.ErrIncompleteRange) {
		rep.Missing = append(rep.Missing, FieldDates)
	}

	if !rep.Complete() {
		return nil, rep
	}

	return &domain.ProjectInput{
		Office:        f.Office,
		State:         f.State,
		Region:        rep.Region,
		ClientType:    f.ClientType,
		Services:      cloneStrings(f.Services),
		StaffWorkload: cloneWorkload(f.Workload),
		Complexity:    f.Complexity,
		Hours:         f.Hours,
		Dates:         f.Dates,
	}, rep
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneWorkload(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
