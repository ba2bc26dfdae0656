package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/proposal/internal/catalog"
	"github.com/alexanderramin/proposal/internal/contract"
	"github.com/alexanderramin/proposal/internal/domain"
	"github.com/alexanderramin/proposal/internal/features"
)

// FormatNotices renders one styled line per notice.
func FormatNotices(notices []contract.Notice) string {
	var b strings.Builder
	for _, n := range notices {
		style := NoticeStyle(n.Level)
		fmt.Fprintf(&b, "  %s %s\n", style.Render(NoticeIcon(n.Level)), style.Render(n.Text))
	}
	return b.String()
}

// FormatWorkload renders "Role 30%" pairs sorted by role.
func FormatWorkload(workload map[string]int) string {
	if len(workload) == 0 {
		return Dim("--")
	}
	in := domain.ProjectInput{StaffWorkload: workload}
	parts := make([]string, 0, len(workload))
	for _, role := range in.Roles() {
		parts = append(parts, fmt.Sprintf("%s %s", role, Percent(workload[role])))
	}
	return strings.Join(parts, ", ")
}

// FormatDateRange renders "2024-01-01 → 2024-01-10 (10 days)".
func FormatDateRange(r domain.DateRange) string {
	if r.Start.IsZero() || r.End.IsZero() {
		return Dim("--")
	}
	return fmt.Sprintf("%s → %s %s",
		r.Start.Format(domain.DateLayout),
		r.End.Format(domain.DateLayout),
		Dim("("+Plural(r.Days(), "day")+")"))
}

// FormatSummary renders the accepted record as a titled box.
func FormatSummary(in *domain.ProjectInput, cat *catalog.Catalog) string {
	label := func(name string) string { return StyleDim.Render(fmt.Sprintf("%-14s", name)) }

	lines := []string{
		label("Office") + " " + string(in.Office),
		label("State") + " " + string(in.State),
		label("Region") + " " + RegionBadge(in.Region),
		label("Client Type") + " " + string(in.ClientType),
		label("Services") + " " + strings.Join(in.Services, ", "),
		label("Staff") + " " + FormatWorkload(in.StaffWorkload),
		label("Complexity") + " " + fmt.Sprintf("%d · %s", in.Complexity, cat.ComplexityLabel(int(in.Complexity))),
		label("Hours") + " " + fmt.Sprintf("%d · %s", in.Hours, cat.HoursLabel(int(in.Hours))),
		label("Dates") + " " + FormatDateRange(in.Dates),
	}
	return RenderBox("Project Summary", strings.Join(lines, "\n"))
}

// FormatInputJSON renders the record with the form's field names.
func FormatInputJSON(in *domain.ProjectInput) (string, error) {
	data, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding project input: %w", err)
	}
	return string(data) + "\n", nil
}

// FormatRow lists the columns a row sets to 1.
func FormatRow(row features.Row) string {
	ones := row.Ones()
	if len(ones) == 0 {
		return Dim("No matching feature columns.") + "\n"
	}
	return fmt.Sprintf("%s %s\n", Dim("Active columns:"), StyleGreen.Render(strings.Join(ones, ", ")))
}

// FormatFeatureTable renders the accumulated table transposed: one line per
// schema column, one value column per row. Unless all is set, columns that
// are zero in every row are hidden and counted in the footer.
func FormatFeatureTable(t features.Table, all bool) string {
	if t.Schema() == nil {
		return Dim("Reference schema not loaded.") + "\n"
	}
	rows := t.Rows()
	if len(rows) == 0 {
		return Dim(fmt.Sprintf("No rows yet (%s).", Plural(t.Schema().Len(), "column"))) + "\n"
	}

	headers := make([]string, 0, len(rows)+1)
	headers = append(headers, "Column")
	values := make([][]int, len(rows))
	for i, r := range rows {
		headers = append(headers, "#"+strconv.Itoa(i+1))
		values[i] = r.Values()
	}

	var body [][]string
	hidden := 0
	for ci, col := range t.Columns() {
		line := make([]string, 0, len(rows)+1)
		line = append(line, col)
		nonZero := false
		for _, vals := range values {
			v := vals[ci]
			if v != 0 {
				nonZero = true
			}
			line = append(line, strconv.Itoa(v))
		}
		if !nonZero && !all {
			hidden++
			continue
		}
		body = append(body, line)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, body))
	footer := fmt.Sprintf("%s × %s", Plural(len(rows), "row"), Plural(t.Schema().Len(), "column"))
	if hidden > 0 {
		footer += fmt.Sprintf(", %d all-zero hidden", hidden)
	}
	b.WriteString(Dim(footer) + "\n")
	return b.String()
}

// FormatSchema describes the loaded reference schema.
func FormatSchema(resp *contract.SchemaResponse, verbose bool) string {
	var b strings.Builder
	b.WriteString(Header("Reference Schema") + "\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Source:"), resp.Source)
	fmt.Fprintf(&b, "%s %s\n", Dim("Loaded:"), ClockTime(resp.LoadedAt))
	fmt.Fprintf(&b, "%s %s, %s\n", Dim("Columns:"),
		Plural(len(resp.Columns), "feature column"), Plural(resp.DataRows, "data row"))
	if resp.LabelDropped {
		fmt.Fprintf(&b, "%s %s\n", Dim("Excluded:"), features.ExcludedColumn)
	}
	if len(resp.Unmatched) > 0 {
		fmt.Fprintf(&b, "%s %s\n", Dim("No column for:"), StyleYellow.Render(strings.Join(resp.Unmatched, ", ")))
	}
	if verbose {
		category := make(map[int]bool, len(resp.Matched))
		for _, i := range resp.Matched {
			category[i] = true
		}
		b.WriteString("\n")
		rows := make([][]string, len(resp.Columns))
		for i, c := range resp.Columns {
			mark := ""
			if category[i] {
				mark = StyleGreen.Render("yes")
			}
			rows[i] = []string{strconv.Itoa(i + 1), c, mark}
		}
		b.WriteString(RenderTable([]string{"#", "Column", "Category"}, rows))
	}
	return b.String()
}

// FormatCatalog lists every form option and the hours guide.
func FormatCatalog(cat *catalog.Catalog) string {
	var b strings.Builder

	section := func(title string, items []string) {
		b.WriteString(Header(title) + "\n")
		for _, it := range items {
			fmt.Fprintf(&b, "  %s\n", it)
		}
		b.WriteString("\n")
	}

	offices := make([]string, len(domain.Offices))
	for i, o := range domain.Offices {
		offices[i] = string(o)
	}
	section("Offices", offices)

	clients := make([]string, len(domain.ClientTypes))
	for i, c := range domain.ClientTypes {
		clients[i] = string(c)
	}
	section("Client Types", clients)

	states := make([]string, len(domain.States))
	for i, s := range domain.States {
		states[i] = string(s)
	}
	b.WriteString(Header("States") + "\n")
	fmt.Fprintf(&b, "  %s\n\n", strings.Join(states, " "))

	section("Services", cat.Services)
	section("Roles", cat.Roles)

	levels := make([][]string, len(cat.Complexity))
	for i, l := range cat.Complexity {
		levels[i] = []string{strconv.Itoa(l.Value), l.Label}
	}
	b.WriteString(Header("Complexity") + "\n")
	b.WriteString(RenderTable([]string{"Level", "Label"}, levels))
	b.WriteString("\n")

	hours := make([][]string, len(cat.Hours))
	for i, l := range cat.Hours {
		hours[i] = []string{strconv.Itoa(l.Value), l.Label, l.Guide}
	}
	b.WriteString(Header("Project Hours Guide") + "\n")
	b.WriteString(RenderTable([]string{"Level", "Label", "Hours"}, hours))
	return b.String()
}

// FormatRegions renders a State/Region table.
func FormatRegions(codes []domain.StateCode) string {
	rows := make([][]string, len(codes))
	for i, c := range codes {
		rows[i] = []string{string(c), RegionBadge(domain.ClassifyRegion(c))}
	}
	return RenderTable([]string{"State", "Region"}, rows)
}

// FormatRegionSets lists the member states of every classified region.
func FormatRegionSets() string {
	var rows [][]string
	for _, r := range domain.Regions {
		states := domain.RegionStates(r)
		if len(states) == 0 {
			continue
		}
		codes := make([]string, len(states))
		for i, c := range states {
			codes[i] = string(c)
		}
		rows = append(rows, []string{RegionBadge(r), strings.Join(codes, " ")})
	}
	return RenderTable([]string{"Region", "States"}, rows)
}

// FormatHistory renders the session's submission log.
func FormatHistory(subs []*domain.Submission) string {
	if len(subs) == 0 {
		return Dim("No submissions this session.") + "\n"
	}
	rows := make([][]string, len(subs))
	for i, s := range subs {
		rows[i] = []string{
			strconv.Itoa(s.Seq),
			TruncID(s.ID),
			ClockTime(s.CreatedAt),
			string(s.Input.Office),
			string(s.Input.State),
			RegionBadge(s.Input.Region),
			string(s.Input.ClientType),
			strconv.Itoa(len(s.Ones())),
		}
	}
	var b strings.Builder
	b.WriteString(Header("Session Submissions") + "\n")
	b.WriteString(RenderTable([]string{"#", "ID", "Time", "Office", "State", "Region", "Client", "Ones"}, rows))
	return b.String()
}
