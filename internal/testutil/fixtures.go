package testutil

import (
	"time"

	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/intake"
	"github.com/alexanderramin/proposal/internal/sheet"
	"github.com/google/uuid"
)

// Day returns midnight UTC on the given day of January 2024.
func Day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

// ReferenceColumns is a small reference header covering every categorical
// group plus the excluded target column.
var ReferenceColumns = []string{
	"Akron", "Beachwood", "Cleveland", "MCS", "Wooster",
	"OH", "FL", "NY", "CA",
	"Midwest", "South", "Northeast", "West", "Unknown",
	"Corporation", "Fiduciary", "Individual", "Non-Profit", "Partnership",
	"ActualBudgetAmount",
}

// NewStaticSource serves ReferenceColumns with no data rows.
func NewStaticSource() *sheet.StaticSource {
	cols := make([]string, len(ReferenceColumns))
	copy(cols, ReferenceColumns)
	return &sheet.StaticSource{Frame: &sheet.Frame{Columns: cols}}
}

// Fields options
type FieldsOption func(*intake.Fields)

func WithOffice(o domain.Office) FieldsOption {
	return func(f *intake.Fields) { f.Office = o }
}

func WithState(s domain.StateCode) FieldsOption {
	return func(f *intake.Fields) { f.State = s }
}

func WithClientType(c domain.ClientType) FieldsOption {
	return func(f *intake.Fields) { f.ClientType = c }
}

func WithServices(s ...string) FieldsOption {
	return func(f *intake.Fields) { f.Services = s }
}

func WithWorkload(w map[string]int) FieldsOption {
	return func(f *intake.Fields) { f.Workload = w }
}

func WithDates(start, end time.Time) FieldsOption {
	return func(f *intake.Fields) { f.Dates = domain.DateRange{Start: start, End: end} }
}

// NewTestFields returns a complete form state that passes the intake gate.
func NewTestFields(opts ...FieldsOption) intake.Fields {
	f := intake.Fields{
		Office:     domain.OfficeAkron,
		State:      "OH",
		ClientType: domain.ClientIndividual,
		Services:   []string{"Individual Income Tax Return"},
		Workload:   map[string]int{"Staff": 70, "Manager": 30},
		Complexity: domain.ComplexityModerate,
		Hours:      3,
		Dates:      domain.DateRange{Start: Day(1), End: Day(10)},
	}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// NewTestInput returns the ProjectInput the intake gate builds from
// NewTestFields with the same options. It panics if the gate stays closed.
func NewTestInput(opts ...FieldsOption) *domain.ProjectInput {
	in, rep := intake.Aggregate(NewTestFields(opts...))
	if in == nil {
		panic(rep.Err())
	}
	return in
}

// NewTestSubmission wraps NewTestInput with a fresh ID and a feature row.
func NewTestSubmission(features []domain.FeatureValue, opts ...FieldsOption) *domain.Submission {
	return &domain.Submission{
		ID:        uuid.New().String(),
		Input:     *NewTestInput(opts...),
		Features:  features,
		CreatedAt: time.Now().UTC(),
	}
}
