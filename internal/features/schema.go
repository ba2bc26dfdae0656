// Package features turns a validated ProjectInput into a one-hot feature row
// keyed by the reference sheet's columns, and accumulates rows in an
// append-only Table.
package features

// ExcludedColumn is the label column of the reference sheet. It is never a
// feature.
const ExcludedColumn = "ActualBudgetAmount"

// Schema is the ordered feature column set derived from the reference sheet.
type Schema struct {
	columns      []string
	index        map[string]int
	labelDropped bool
}

// NewSchema builds a Schema from the sheet header. Names are matched exactly:
// a padded " Akron" is its own column and a padded label is kept as a
// feature. ExcludedColumn is dropped, empty headers are skipped and
// duplicate names keep their first position.
func NewSchema(header []string) *Schema {
	s := &Schema{index: make(map[string]int, len(header))}
	for _, col := range header {
		if col == ExcludedColumn {
			s.labelDropped = true
			continue
		}
		if col == "" {
			continue
		}
		if _, dup := s.index[col]; dup {
			continue
		}
		s.index[col] = len(s.columns)
		s.columns = append(s.columns, col)
	}
	return s
}

// Columns returns a copy of the feature columns in sheet order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// LabelDropped reports whether the header carried ExcludedColumn.
func (s *Schema) LabelDropped() bool { return s.labelDropped }

func (s *Schema) Len() int { return len(s.columns) }

// Index returns the position of col, or false if the schema has no such
// column.
func (s *Schema) Index(col string) (int, bool) {
	i, ok := s.index[col]
	return i, ok
}

func (s *Schema) Has(col string) bool {
	_, ok := s.index[col]
	return ok
}
