package usecase

import (
	"strings"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// MapSchema assigns each canonical field to a physical column by exact and
// substring matching against the resolved header names. Fields claim
// columns in schema declaration order, so an earlier field always wins a
// contested column and the later one is reported as unmapped.
func MapSchema(headers []string, schema entity.Schema) (entity.ColumnMapping, []string) {
	normHeaders := make([]string, len(headers))
	for i, h := range headers {
		normHeaders[i] = normalizeKey(h)
	}

	mapping := make(entity.ColumnMapping, len(schema.Fields))
	claimed := make(map[int]bool, len(headers))
	var unmapped []string

	for _, field := range schema.Fields {
		col := matchColumn(field, normHeaders, claimed)
		if col < 0 {
			unmapped = append(unmapped, field.Name)
			continue
		}
		mapping[field.Name] = col
		claimed[col] = true
	}
	return mapping, unmapped
}

// UnmappedRequired filters the unmapped list down to the fields the schema
// marks required.
func UnmappedRequired(schema entity.Schema, unmapped []string) []string {
	var out []string
	for _, name := range unmapped {
		if f, ok := schema.Field(name); ok && f.Required {
			out = append(out, name)
		}
	}
	return out
}

// matchColumn tries every keyword in order, exact matches before substring
// matches, and returns the first unclaimed column that fits.
func matchColumn(field entity.FieldDef, normHeaders []string, claimed map[int]bool) int {
	for _, kw := range field.MatchKeywords {
		kw = normalizeKey(kw)
		if kw == "" {
			continue
		}
		for col, h := range normHeaders {
			if claimed[col] || h == "" {
				continue
			}
			if h == kw {
				return col
			}
		}
	}
	for _, kw := range field.MatchKeywords {
		kw = normalizeKey(kw)
		if kw == "" {
			continue
		}
		for col, h := range normHeaders {
			if claimed[col] || h == "" {
				continue
			}
			// Both directions: "functionalqty" inside "functionalquantity"
			// style headers, and abbreviated headers inside the keyword.
			if strings.Contains(h, kw) || strings.Contains(kw, h) {
				return col
			}
		}
	}
	return -1
}

// normalizeKey lowercases and strips all whitespace.
func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
