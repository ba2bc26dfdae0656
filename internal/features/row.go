package features

import "github.com/alexanderramin/proposal/internal/domain"

// Row is one encoded feature row. Values are aligned with the columns of the
// Schema that produced it.
type Row struct {
	columns []string
	values  []int
}

func newZeroRow(s *Schema) Row {
	return Row{columns: s.columns, values: make([]int, len(s.columns))}
}

// Get returns the value of col, or false if the row has no such column.
func (r Row) Get(col string) (int, bool) {
	for i, c := range r.columns {
		if c == col {
			return r.values[i], true
		}
	}
	return 0, false
}

// Values returns a copy of the row values in column order.
func (r Row) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

// Map returns the row as column -> value.
func (r Row) Map() map[string]int {
	m := make(map[string]int, len(r.columns))
	for i, c := range r.columns {
		m[c] = r.values[i]
	}
	return m
}

// Ones returns the columns set to 1, in column order.
func (r Row) Ones() []string {
	var out []string
	for i, v := range r.values {
		if v == 1 {
			out = append(out, r.columns[i])
		}
	}
	return out
}

// FeatureValues converts the row to its storable form.
func (r Row) FeatureValues() []domain.FeatureValue {
	out := make([]domain.FeatureValue, len(r.columns))
	for i, c := range r.columns {
		out[i] = domain.FeatureValue{Column: c, Value: r.values[i]}
	}
	return out
}
