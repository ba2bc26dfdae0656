package features

// Table is an append-only sequence of feature rows sharing one schema. It is
// a value: Append returns a new Table and never alters the receiver.
type Table struct {
	schema *Schema
	rows   []Row
}

func NewTable(schema *Schema) Table {
	return Table{schema: schema}
}

// Append returns a table holding the receiver's rows followed by row.
func (t Table) Append(row Row) Table {
	rows := make([]Row, len(t.rows), len(t.rows)+1)
	copy(rows, t.rows)
	return Table{schema: t.schema, rows: append(rows, row)}
}

func (t Table) Len() int { return len(t.rows) }

// Rows returns a copy of the rows in insertion order.
func (t Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// Columns returns the schema columns, or nil for a table without a schema.
func (t Table) Columns() []string {
	if t.schema == nil {
		return nil
	}
	return t.schema.Columns()
}

func (t Table) Schema() *Schema { return t.schema }
