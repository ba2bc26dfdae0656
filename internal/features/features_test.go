package features

import (
	"testing"
	"time"

	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() *domain.ProjectInput {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.ProjectInput{
		Office:        domain.OfficeAkron,
		State:         "OH",
		Region:        domain.RegionMidwest,
		ClientType:    domain.ClientCorporation,
		Services:      []string{"TAX PLANNING"},
		StaffWorkload: map[string]int{"Staff": 100},
		Complexity:    domain.ComplexityEasy,
		Hours:         3,
		Dates:         domain.NewDateRange(start, start),
	}
}

func TestNewSchema_DropsExcludedColumn(t *testing.T) {
	s := NewSchema([]string{"Akron", "ActualBudgetAmount", "Beachwood", "", "Akron"})
	assert.Equal(t, []string{"Akron", "Beachwood"}, s.Columns())
	assert.False(t, s.Has(ExcludedColumn))
	assert.True(t, s.LabelDropped())
	i, ok := s.Index("Beachwood")
	require.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestNewSchema_HeadersMatchExactly(t *testing.T) {
	s := NewSchema([]string{" Akron", "ActualBudgetAmount "})
	assert.Equal(t, []string{" Akron", "ActualBudgetAmount "}, s.Columns())
	assert.False(t, s.LabelDropped(), "a padded label is not the label column")

	row := BuildRow(testInput(), s)
	assert.Empty(t, row.Ones(), "office Akron does not match a padded header")
}

func TestBuildRow_OneHotOffice(t *testing.T) {
	s := NewSchema([]string{"Akron", "Beachwood", "ActualBudgetAmount"})
	row := BuildRow(testInput(), s)

	if diff := cmp.Diff(map[string]int{"Akron": 1, "Beachwood": 0}, row.Map()); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}
	_, ok := row.Get(ExcludedColumn)
	assert.False(t, ok)
}

func TestBuildRow_AllCategoricalFields(t *testing.T) {
	s := NewSchema([]string{
		"ActualBudgetAmount", "Akron", "Cleveland", "OH", "TX",
		"Midwest", "South", "Corporation", "Individual", "TAX PLANNING", "Staff",
	})
	row := BuildRow(testInput(), s)

	assert.Equal(t, []string{"Akron", "OH", "Midwest", "Corporation"}, row.Ones())
	assert.Equal(t, []int{1, 0, 1, 0, 1, 0, 1, 0, 0, 0}, row.Values())
}

func TestBuildRow_UnmatchedValuesDropped(t *testing.T) {
	s := NewSchema([]string{"Beachwood", "TX"})
	row := BuildRow(testInput(), s)

	assert.Empty(t, row.Ones())
	assert.Equal(t, []string{"Beachwood", "TX"}, s.Columns(), "no column is created for unmatched values")
}

func TestBuildRow_EmptySchema(t *testing.T) {
	row := BuildRow(testInput(), NewSchema(nil))
	assert.Empty(t, row.Values())
	assert.Empty(t, row.Map())
}

func TestEncoder_MultiValue(t *testing.T) {
	s := NewSchema([]string{"Akron", "TAX PLANNING", "Staff", "Manager"})

	plain := NewEncoder(s).Encode(testInput())
	assert.Equal(t, []string{"Akron"}, plain.Ones())

	multi := NewEncoder(s, WithMultiValue()).Encode(testInput())
	assert.Equal(t, []string{"Akron", "TAX PLANNING", "Staff"}, multi.Ones())
}

func TestEncoder_MatchedAndUnmatched(t *testing.T) {
	s := NewSchema([]string{"Akron", "OH", "West", "Fiduciary", "Other"})
	e := NewEncoder(s)

	assert.Equal(t, map[string]int{"Akron": 0, "OH": 1, "West": 2, "Fiduciary": 3}, e.Matched())
	unmatched := e.Unmatched()
	assert.Contains(t, unmatched, "Beachwood")
	assert.Contains(t, unmatched, "Unknown")
	assert.NotContains(t, unmatched, "Akron")
	assert.NotContains(t, unmatched, "Other", "only known categories are reported")
}

func TestFeatureValues(t *testing.T) {
	s := NewSchema([]string{"Akron", "Beachwood"})
	fv := BuildRow(testInput(), s).FeatureValues()
	assert.Equal(t, []domain.FeatureValue{{Column: "Akron", Value: 1}, {Column: "Beachwood", Value: 0}}, fv)
}

func TestTable_AppendIsPersistent(t *testing.T) {
	s := NewSchema([]string{"Akron", "OH"})
	empty := NewTable(s)
	row := BuildRow(testInput(), s)

	one := empty.Append(row)
	two := one.Append(row)

	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 1, one.Len())
	assert.Equal(t, 2, two.Len())
	assert.Equal(t, []string{"Akron", "OH"}, two.Columns())
}

func TestTable_IdenticalInputsAppendIdenticalRows(t *testing.T) {
	s := NewSchema([]string{"Akron", "Beachwood", "OH", "Midwest"})
	table := NewTable(s)
	table = table.Append(BuildRow(testInput(), s))
	table = table.Append(BuildRow(testInput(), s))

	rows := table.Rows()
	require.Len(t, rows, 2)
	if diff := cmp.Diff(rows[0].Map(), rows[1].Map()); diff != "" {
		t.Errorf("rows differ (-first +second):\n%s", diff)
	}
}

func TestTable_WithoutSchema(t *testing.T) {
	var table Table
	assert.Nil(t, table.Columns())
	assert.Equal(t, 0, table.Len())
}
