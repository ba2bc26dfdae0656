package features

import "github.com/alexanderramin/proposal/internal/domain"

// Encoder maps category values to schema column positions. The mapping is
// resolved once against the schema; values without a column are absent from
// it and are dropped during encoding.
type Encoder struct {
	schema     *Schema
	columns    map[string]int
	unmatched  []string
	multiValue bool
}

type EncoderOption func(*Encoder)

// WithMultiValue also encodes each selected service and each staffed role
// whose name is a schema column.
func WithMultiValue() EncoderOption {
	return func(e *Encoder) { e.multiValue = true }
}

// NewEncoder resolves every known office, state, region and client type
// against the schema.
func NewEncoder(schema *Schema, opts ...EncoderOption) *Encoder {
	e := &Encoder{schema: schema, columns: make(map[string]int)}
	for _, opt := range opts {
		opt(e)
	}
	for _, v := range knownCategories() {
		if i, ok := schema.Index(v); ok {
			e.columns[v] = i
		} else {
			e.unmatched = append(e.unmatched, v)
		}
	}
	return e
}

func knownCategories() []string {
	var out []string
	for _, o := range domain.Offices {
		out = append(out, string(o))
	}
	for _, s := range domain.States {
		out = append(out, string(s))
	}
	for _, r := range domain.Regions {
		out = append(out, string(r))
	}
	for _, c := range domain.ClientTypes {
		out = append(out, string(c))
	}
	return out
}

func (e *Encoder) Schema() *Schema { return e.schema }

// Matched returns the category values that have a schema column.
func (e *Encoder) Matched() map[string]int {
	out := make(map[string]int, len(e.columns))
	for k, v := range e.columns {
		out[k] = v
	}
	return out
}

// Unmatched returns the known category values with no schema column.
func (e *Encoder) Unmatched() []string {
	out := make([]string, len(e.unmatched))
	copy(out, e.unmatched)
	return out
}

// Encode builds an all-zero row over the schema and sets 1 for the office,
// state, region and client type columns that exist.
func (e *Encoder) Encode(in *domain.ProjectInput) Row {
	row := newZeroRow(e.schema)
	for _, v := range in.CategoricalValues() {
		if i, ok := e.columns[v]; ok {
			row.values[i] = 1
		}
	}
	if e.multiValue {
		for _, v := range in.Services {
			e.setIfColumn(row, v)
		}
		for _, v := range in.Roles() {
			e.setIfColumn(row, v)
		}
	}
	return row
}

func (e *Encoder) setIfColumn(row Row, v string) {
	if i, ok := e.schema.Index(v); ok {
		row.values[i] = 1
	}
}

// BuildRow encodes in against schema with the default encoder.
func BuildRow(in *domain.ProjectInput, schema *Schema) Row {
	return NewEncoder(schema).Encode(in)
}
