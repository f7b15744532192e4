package usecase

import (
	"strconv"
	"strings"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// Coerce converts raw cell text to the declared kind of a canonical field.
// It never fails: malformed numeric text becomes zero, an unknown status
// becomes the field's fallback. Spreadsheet cells are operator-entered and
// a single bad cell must not take down the whole table load.
func Coerce(raw string, field entity.FieldDef) entity.Value {
	raw = strings.TrimSpace(raw)

	switch field.Kind {
	case entity.KindIntegerQuantity:
		n, ok := parseLenientNumber(raw)
		if !ok {
			n = 0
		}
		return entity.NumberValue(entity.KindIntegerQuantity, float64(int(n)))
	case entity.KindDecimalCurrency:
		n, ok := parseLenientNumber(raw)
		if !ok {
			n = 0
		}
		return entity.NumberValue(entity.KindDecimalCurrency, n)
	case entity.KindEnumStatus:
		for _, v := range field.EnumValues {
			if strings.EqualFold(raw, v) {
				return entity.TextValue(entity.KindEnumStatus, v)
			}
		}
		return entity.TextValue(entity.KindEnumStatus, field.EnumFallback)
	default:
		return entity.TextValue(entity.KindFreeText, raw)
	}
}

// parseLenientNumber extracts a non-negative number from operator-entered
// text, disambiguating thousands and decimal separators ("1,400.00",
// "1.400,00", "2 125 000"). Currency symbols and units are ignored.
func parseLenientNumber(raw string) (float64, bool) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == ' ' {
			b.WriteRune(r)
		}
	}
	clean := strings.TrimSpace(b.String())
	if clean == "" {
		return 0, false
	}
	clean = strings.ReplaceAll(clean, " ", "")

	dot := strings.LastIndex(clean, ".")
	comma := strings.LastIndex(clean, ",")

	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		}
	case dot >= 0:
		if strings.Count(clean, ".") > 1 {
			clean = strings.ReplaceAll(clean, ".", "")
		} else if after := clean[dot+1:]; len(after) == 3 {
			clean = strings.ReplaceAll(clean, ".", "")
		}
	case comma >= 0:
		if strings.Count(clean, ",") > 1 {
			clean = strings.ReplaceAll(clean, ",", "")
		} else if after := clean[comma+1:]; len(after) == 3 {
			clean = strings.ReplaceAll(clean, ",", "")
		} else {
			clean = strings.ReplaceAll(clean, ",", ".")
		}
	}

	val, err := strconv.ParseFloat(clean, 64)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}
