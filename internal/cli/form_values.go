package cli

import (
	"sort"
	"time"

	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/intake"
)

// formValues is the raw state the huh fields bind to. It outlives each stage
// form so values are kept between submissions.
type formValues struct {
	Office   string
	State    string
	Client   string
	Services []string
	Roles    []string
	percents map[string]*string

	Complexity int
	Hours      int
	Start      string
	End        string
}

func newFormValues(dates domain.DateRange) *formValues {
	return &formValues{
		percents: make(map[string]*string),
		Start:    formatOptionalDate(dates.Start),
		End:      formatOptionalDate(dates.End),
	}
}

func formatOptionalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// percentFor returns the bound percentage text for role, creating it empty.
func (v *formValues) percentFor(role string) *string {
	p, ok := v.percents[role]
	if !ok {
		p = new(string)
		v.percents[role] = p
	}
	return p
}

// selectedRoles returns the chosen roles sorted by name.
func (v *formValues) selectedRoles() []string {
	roles := make([]string, len(v.Roles))
	copy(roles, v.Roles)
	sort.Strings(roles)
	return roles
}

// fields converts the bound values into intake fields. Deselected roles keep
// their text but are not part of the workload.
func (v *formValues) fields() intake.Fields {
	f := intake.Fields{
		Office:     domain.Office(v.Office),
		State:      domain.StateCode(v.State),
		ClientType: domain.ClientType(v.Client),
		Complexity: domain.Complexity(v.Complexity),
		Hours:      domain.HoursLevel(v.Hours),
		Dates:      domain.NewDateRange(parseOptionalDate(v.Start), parseOptionalDate(v.End)),
	}
	if len(v.Services) > 0 {
		f.Services = append([]string(nil), v.Services...)
	}
	if len(v.Roles) > 0 {
		f.Workload = make(map[string]int, len(v.Roles))
		for _, role := range v.Roles {
			f.Workload[role] = parsePercent(*v.percentFor(role))
		}
	}
	return f
}
