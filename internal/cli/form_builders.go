package cli

import (
	"fmt"

	"github.com/alexanderramin/proposal/internal/catalog"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/charmbracelet/huh"
)

const unselected = "-- select --"

// placeholderOptions prepends an empty choice so nothing is selected until
// the user picks a value.
func placeholderOptions[T ~string](values []T) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values)+1)
	opts = append(opts, huh.NewOption(unselected, ""))
	for _, v := range values {
		opts = append(opts, huh.NewOption(string(v), string(v)))
	}
	return opts
}

func levelOptions(levels []catalog.Level) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(levels)+1)
	opts = append(opts, huh.NewOption(unselected, 0))
	for _, l := range levels {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d · %s", l.Value, l.Label), l.Value))
	}
	return opts
}

// characteristicsForm collects office, state, client type, services and the
// staffed roles. The region is shown as it is derived.
func characteristicsForm(v *formValues, cat *catalog.Catalog) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project Office").
				Options(placeholderOptions(domain.Offices)...).
				Value(&v.Office),
			huh.NewSelect[string]().
				Title("Project State").
				Options(placeholderOptions(domain.States)...).
				Height(8).
				Value(&v.State),
			huh.NewNote().
				Title("Project Region").
				DescriptionFunc(func() string {
					if v.State == "" {
						return unselected
					}
					return string(domain.ClassifyRegion(domain.StateCode(v.State)))
				}, &v.State),
			huh.NewSelect[string]().
				Title("Client Type").
				Options(placeholderOptions(domain.ClientTypes)...).
				Value(&v.Client),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Services").
				Options(huh.NewOptions(cat.Services...)...).
				Filterable(true).
				Height(12).
				Value(&v.Services),
			huh.NewMultiSelect[string]().
				Title("Staff Roles").
				Description("Roles that will work on the project").
				Options(huh.NewOptions(cat.Roles...)...).
				Height(10).
				Value(&v.Roles),
		),
	).WithTheme(proposalHuhTheme()).WithShowHelp(false)
}

// workloadForm asks for a percentage per selected role. It returns nil when
// no role is selected.
func workloadForm(v *formValues) *huh.Form {
	roles := v.selectedRoles()
	if len(roles) == 0 {
		return nil
	}
	fields := make([]huh.Field, 0, len(roles))
	for _, role := range roles {
		fields = append(fields, huh.NewInput().
			Title(role+" (%)").
			Placeholder("0").
			CharLimit(3).
			Value(v.percentFor(role)).
			Validate(validatePercent))
	}
	return huh.NewForm(
		huh.NewGroup(fields...).Title("Staff Workload Distribution"),
	).WithTheme(proposalHuhTheme()).WithShowHelp(false)
}

// scheduleForm collects complexity, hours and the estimated dates.
func scheduleForm(v *formValues, cat *catalog.Catalog) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Project Complexity Level").
				Options(levelOptions(cat.Complexity)...).
				Value(&v.Complexity),
			huh.NewSelect[int]().
				Title("Project Hours").
				Description(cat.HoursGuide()).
				Options(levelOptions(cat.Hours)...).
				Value(&v.Hours),
			huh.NewInput().
				Title("Estimated Start (YYYY-MM-DD)").
				Value(&v.Start).
				Validate(validateOptionalDate),
			huh.NewInput().
				Title("Estimated Finish (YYYY-MM-DD)").
				Value(&v.End).
				Validate(validateOptionalDate),
		),
	).WithTheme(proposalHuhTheme()).WithShowHelp(false)
}
