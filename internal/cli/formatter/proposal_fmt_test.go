package formatter

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/proposal/internal/catalog"
	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/features"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func sampleInput() *domain.ProjectInput {
	return &domain.ProjectInput{
		Office:        domain.OfficeWooster,
		State:         "TX",
		Region:        domain.RegionSouth,
		ClientType:    domain.ClientFiduciary,
		Services:      []string{"TAX PLANNING", "1099 Forms"},
		StaffWorkload: map[string]int{"Staff": 50, "Manager": 25, "Intern": 25},
		Complexity:    domain.ComplexityComplex,
		Hours:         domain.HoursExtremelyHigh,
		Dates:         domain.DateRange{Start: day(4), End: day(6)},
	}
}

func TestFormatNotices(t *testing.T) {
	out := stripANSI(FormatNotices([]contract.Notice{
		{Level: contract.NoticeInfo, Text: "Total Allocated: 90%"},
		{Level: contract.NoticeWarning, Text: "Total is less than 100%."},
	}))
	assert.Equal(t, "  ● Total Allocated: 90%\n  ▲ Total is less than 100%.\n", out)
}

func TestFormatWorkload_SortedByRole(t *testing.T) {
	assert.Equal(t, "Intern 25%, Manager 25%, Staff 50%", FormatWorkload(sampleInput().StaffWorkload))
	assert.Equal(t, "--", stripANSI(FormatWorkload(nil)))
}

func TestFormatDateRange(t *testing.T) {
	got := stripANSI(FormatDateRange(domain.DateRange{Start: day(4), End: day(6)}))
	assert.Equal(t, "2024-03-04 → 2024-03-06 (3 days)", got)

	same := stripANSI(FormatDateRange(domain.DateRange{Start: day(4), End: day(4)}))
	assert.Equal(t, "2024-03-04 → 2024-03-04 (1 day)", same)
}

func TestFormatSummary(t *testing.T) {
	out := stripANSI(FormatSummary(sampleInput(), catalog.Default()))

	assert.Contains(t, out, "PROJECT SUMMARY")
	assert.Contains(t, out, "Wooster")
	assert.Contains(t, out, "South")
	assert.Contains(t, out, "TAX PLANNING, 1099 Forms")
	assert.Contains(t, out, "4 · Complex")
	assert.Contains(t, out, "7 · Extremely High")
	assert.Contains(t, out, "2024-03-04 → 2024-03-06")
}

func TestFormatInputJSON_UsesFormFieldNames(t *testing.T) {
	out, err := FormatInputJSON(sampleInput())
	require.NoError(t, err)

	for _, key := range []string{
		"ProjectOffice", "ProjectState", "ProjectRegion", "ClientType", "Services",
		"StaffWorkDistribution", "ProjectComplexity", "ProjectHours", "EstimatedDates",
	} {
		assert.Contains(t, out, `"`+key+`"`)
	}
	assert.Contains(t, out, `"2024-03-04"`)
}

func TestFormatRow(t *testing.T) {
	schema := features.NewSchema([]string{"Wooster", "Akron", "TX", "South"})
	row := features.BuildRow(sampleInput(), schema)
	assert.Equal(t, "Active columns: Wooster, TX, South\n", stripANSI(FormatRow(row)))

	empty := features.BuildRow(sampleInput(), features.NewSchema([]string{"Akron"}))
	assert.Contains(t, stripANSI(FormatRow(empty)), "No matching feature columns.")
}

func TestFormatFeatureTable_HidesAllZeroColumns(t *testing.T) {
	schema := features.NewSchema([]string{"Akron", "Wooster", "TX", "OH", "ActualBudgetAmount"})
	row := features.BuildRow(sampleInput(), schema)
	table := features.NewTable(schema).Append(row).Append(row)

	out := stripANSI(FormatFeatureTable(table, false))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, []string{"Column", "#1", "#2"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"Wooster", "1", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"TX", "1", "1"}, strings.Fields(lines[3]))
	assert.Equal(t, "2 rows × 4 columns, 2 all-zero hidden", lines[4])
	assert.NotContains(t, out, "ActualBudgetAmount")

	full := stripANSI(FormatFeatureTable(table, true))
	assert.Contains(t, full, "Akron")
	assert.NotContains(t, full, "hidden")
}

func TestFormatFeatureTable_EmptyStates(t *testing.T) {
	assert.Contains(t, stripANSI(FormatFeatureTable(features.Table{}, false)), "not loaded")

	table := features.NewTable(features.NewSchema([]string{"Akron"}))
	assert.Contains(t, stripANSI(FormatFeatureTable(table, false)), "No rows yet (1 column).")
}

func TestFormatSchema(t *testing.T) {
	resp := &contract.SchemaResponse{
		Source:       "ref.csv",
		Columns:      []string{"Akron", "OH", "Notes"},
		LabelDropped: true,
		Matched:      map[string]int{"Akron": 0, "OH": 1},
		Unmatched:    []string{"KS"},
		DataRows:     12,
		LoadedAt:     time.Date(2024, 1, 1, 9, 30, 5, 0, time.Local),
	}
	out := stripANSI(FormatSchema(resp, true))
	assert.Contains(t, out, "REFERENCE SCHEMA")
	assert.Contains(t, out, "Source: ref.csv")
	assert.Contains(t, out, "Loaded: 09:30:05")
	assert.Contains(t, out, "Columns: 3 feature columns, 12 data rows")
	assert.Contains(t, out, "Excluded: ActualBudgetAmount")
	assert.Contains(t, out, "No column for: KS")
	assert.Regexp(t, `(?m)^1\s+Akron\s+yes$`, out)
	assert.Regexp(t, `(?m)^2\s+OH\s+yes$`, out)
	assert.Regexp(t, `(?m)^3\s+Notes\s*$`, out)
}

func TestFormatSchema_SingleColumnNoTable(t *testing.T) {
	out := stripANSI(FormatSchema(&contract.SchemaResponse{Source: "ref.csv", Columns: []string{"OH"}, DataRows: 1}, false))
	assert.Contains(t, out, "Columns: 1 feature column, 1 data row")
	assert.NotContains(t, out, "Category")
	assert.NotContains(t, out, "Excluded:")
}

func TestFormatCatalog(t *testing.T) {
	out := stripANSI(FormatCatalog(catalog.Default()))
	assert.Contains(t, out, "OFFICES")
	assert.Contains(t, out, "Non-Profit")
	assert.Contains(t, out, "U.S. Gift Tax Return")
	assert.Contains(t, out, "Intern FT")
	assert.Contains(t, out, "PROJECT HOURS GUIDE")
	assert.Contains(t, out, "80+ hours")
}

func TestFormatRegions(t *testing.T) {
	out := stripANSI(FormatRegions([]domain.StateCode{"OH", "ZZ"}))
	assert.Regexp(t, `(?m)^OH\s+Midwest$`, out)
	assert.Regexp(t, `(?m)^ZZ\s+Unknown$`, out)
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, stripANSI(FormatHistory(nil)), "No submissions")

	subs := []*domain.Submission{{
		ID:        "0123456789abcdef",
		Seq:       1,
		Input:     *sampleInput(),
		Features:  []domain.FeatureValue{{Column: "Wooster", Value: 1}, {Column: "OH", Value: 0}},
		CreatedAt: time.Now(),
	}}
	out := stripANSI(FormatHistory(subs))
	assert.Contains(t, out, "SESSION SUBMISSIONS")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "89abcdef")
	assert.Contains(t, out, "Wooster")
}

func TestRenderTable_RightAlignsNumericColumns(t *testing.T) {
	out := stripANSI(RenderTable([]string{"Name", "Count"}, [][]string{{"a", "5"}, {"bb", "120"}}))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "a         5", lines[2])
	assert.Equal(t, "bb      120", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestSpinner_ClearsLineOnStop(t *testing.T) {
	var buf bytes.Buffer
	stop := StartSpinner(&buf, "Fetching")
	stop()
	stop()
	assert.True(t, strings.HasSuffix(buf.String(), "\r\033[K"))
}
