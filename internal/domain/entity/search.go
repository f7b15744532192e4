package entity

import "strings"

// Search returns the rows where any field's rendered value contains the
// query, case-insensitively. The model itself is not modified; an empty
// query matches every row.
func (m *TableModel) Search(query string) []*TableRow {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]*TableRow, len(m.Rows))
		copy(out, m.Rows)
		return out
	}

	var out []*TableRow
	for _, r := range m.Rows {
		if rowMatches(r, m.Schema, query) {
			out = append(out, r)
		}
	}
	return out
}

func rowMatches(r *TableRow, schema Schema, query string) bool {
	for _, f := range schema.Fields {
		v, ok := r.Value(f.Name)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v.String()), query) {
			return true
		}
	}
	return false
}
