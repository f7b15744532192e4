package entity

import "strconv"

// RawGrid is the verbatim cell matrix returned by a sheet transport:
// row-major, untyped text, possibly ragged, possibly with blank rows.
type RawGrid [][]string

// FieldKind declares how raw cell text is coerced for a canonical field.
type FieldKind int

const (
	KindIntegerQuantity FieldKind = iota
	KindDecimalCurrency
	KindFreeText
	KindEnumStatus
)

// FieldDef describes one canonical column of the domain schema.
type FieldDef struct {
	Name string
	Kind FieldKind

	// MatchKeywords are normalized-substring candidates used to locate the
	// physical column, ordered most specific first.
	MatchKeywords []string

	// Required fields that end up with no physical column must be surfaced
	// to the caller, never silently defaulted.
	Required bool

	// EnumValues / EnumFallback apply to KindEnumStatus fields only.
	EnumValues   []string
	EnumFallback string
}

// Schema is an ordered set of field definitions. Declaration order encodes
// matching priority: earlier fields claim physical columns first.
type Schema struct {
	Fields []FieldDef
}

// Field looks up a definition by canonical name.
func (s Schema) Field(name string) (FieldDef, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// Value is a typed cell value. Number carries numeric kinds, Text the rest.
type Value struct {
	Kind   FieldKind
	Number float64
	Text   string
}

// NumberValue builds a numeric Value of the given kind.
func NumberValue(kind FieldKind, n float64) Value {
	return Value{Kind: kind, Number: n}
}

// TextValue builds a text or status Value.
func TextValue(kind FieldKind, s string) Value {
	return Value{Kind: kind, Text: s}
}

// String renders the value the way it is written back to a sheet cell.
func (v Value) String() string {
	switch v.Kind {
	case KindIntegerQuantity:
		return strconv.Itoa(int(v.Number))
	case KindDecimalCurrency:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return v.Text
	}
}

// ColumnMapping maps canonical field names to 0-based physical column
// indices. Indices are unique: no two fields share a physical column.
type ColumnMapping map[string]int

// TableRow is one data row keyed by canonical field names. SourceRow is the
// row's 0-based position among the data rows of the grid it was loaded from;
// it is the row's identity and never changes.
type TableRow struct {
	SourceRow int

	fields   map[string]Value
	baseline map[string]Value
}

// NewTableRow creates an empty row addressed at sourceRow.
func NewTableRow(sourceRow int) *TableRow {
	return &TableRow{
		SourceRow: sourceRow,
		fields:    make(map[string]Value),
		baseline:  make(map[string]Value),
	}
}

// Set replaces the current value of a field.
func (r *TableRow) Set(field string, v Value) {
	r.fields[field] = v
}

// Value returns the current value of a field.
func (r *TableRow) Value(field string) (Value, bool) {
	v, ok := r.fields[field]
	return v, ok
}

// Number returns the numeric value of a field, zero when absent.
func (r *TableRow) Number(field string) float64 {
	return r.fields[field].Number
}

// Text returns the textual value of a field, empty when absent.
func (r *TableRow) Text(field string) string {
	return r.fields[field].Text
}

// Changed reports whether a field differs from its load-time baseline.
func (r *TableRow) Changed(field string) bool {
	return r.fields[field] != r.baseline[field]
}

// Snapshot resets the baseline of every field to its current value.
func (r *TableRow) Snapshot() {
	for k, v := range r.fields {
		r.baseline[k] = v
	}
}

// Rebase resets the baseline of a single field, used after its cell has
// been written back successfully.
func (r *TableRow) Rebase(field string) {
	r.baseline[field] = r.fields[field]
}

// CellWrite targets one physical cell using the transport's 1-based
// row/column addressing.
type CellWrite struct {
	Row   int
	Col   int
	Value string
}

// TableModel is the in-memory table handed to callers: ordered rows plus
// the column mapping that produced them. It is rebuilt from scratch on
// every load; the external sheet is the only state owner.
type TableModel struct {
	LoadID string
	Sheet  string
	Schema Schema

	Mapping   ColumnMapping
	HeaderRow int // header row index in the raw grid; -1 for an empty table
	Rows      []*TableRow

	// Unmapped lists canonical fields with no physical column;
	// UnmappedRequired is the subset callers must check before trusting
	// the table.
	Unmapped         []string
	UnmappedRequired []string
}

// IsEmpty reports whether the source grid had no header row at all.
func (m *TableModel) IsEmpty() bool {
	return m.HeaderRow < 0
}

// Row returns the row with the given source index.
func (m *TableModel) Row(sourceRow int) (*TableRow, bool) {
	for _, r := range m.Rows {
		if r.SourceRow == sourceRow {
			return r, true
		}
	}
	return nil, false
}

// SetField updates one field of one row in place. Returns false when the
// row does not exist.
func (m *TableModel) SetField(sourceRow int, field string, v Value) bool {
	r, ok := m.Row(sourceRow)
	if !ok {
		return false
	}
	r.Set(field, v)
	return true
}
