package usecase

import (
	"testing"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

func fullMapping() entity.ColumnMapping {
	return entity.ColumnMapping{
		entity.FieldQuantity:         0,
		entity.FieldUnitCost:         1,
		entity.FieldTotalValue:       2,
		entity.FieldFunctionalQty:    3,
		entity.FieldNonFunctionalQty: 4,
	}
}

func numberRow(qty, cost, functional float64) *entity.TableRow {
	row := entity.NewTableRow(0)
	row.Set(entity.FieldQuantity, entity.NumberValue(entity.KindIntegerQuantity, qty))
	row.Set(entity.FieldUnitCost, entity.NumberValue(entity.KindDecimalCurrency, cost))
	row.Set(entity.FieldFunctionalQty, entity.NumberValue(entity.KindIntegerQuantity, functional))
	return row
}

func TestApplyDerivedRow_InvariantClosure(t *testing.T) {
	row := numberRow(10, 500, 4)
	ApplyDerivedRow(fullMapping(), row)

	if got := row.Number(entity.FieldTotalValue); got != 5000 {
		t.Fatalf("Total Value = %v, want 5000", got)
	}
	functional := row.Number(entity.FieldFunctionalQty)
	nonFunctional := row.Number(entity.FieldNonFunctionalQty)
	if functional+nonFunctional != row.Number(entity.FieldQuantity) {
		t.Fatalf("functional %v + non-functional %v != quantity %v", functional, nonFunctional, 10.0)
	}
	if nonFunctional != 6 {
		t.Fatalf("Non-Functional Qty = %v, want 6", nonFunctional)
	}
}

func TestApplyDerivedRow_ClampsFunctionalQty(t *testing.T) {
	row := numberRow(10, 500, 15)
	ApplyDerivedRow(fullMapping(), row)

	if got := row.Number(entity.FieldFunctionalQty); got != 10 {
		t.Fatalf("Functional Qty = %v, want clamped to 10", got)
	}
	if got := row.Number(entity.FieldNonFunctionalQty); got != 0 {
		t.Fatalf("Non-Functional Qty = %v, want 0", got)
	}
}

func TestApplyDerivedRow_NegativeFunctionalClampsToZero(t *testing.T) {
	row := numberRow(10, 500, -3)
	ApplyDerivedRow(fullMapping(), row)

	if got := row.Number(entity.FieldFunctionalQty); got != 0 {
		t.Fatalf("Functional Qty = %v, want 0", got)
	}
	if got := row.Number(entity.FieldNonFunctionalQty); got != 10 {
		t.Fatalf("Non-Functional Qty = %v, want 10", got)
	}
}

func TestApplyDerivedRow_SkipsUnmappedRelationships(t *testing.T) {
	mapping := entity.ColumnMapping{
		entity.FieldQuantity:      0,
		entity.FieldFunctionalQty: 1,
	}
	row := numberRow(10, 500, 7)
	ApplyDerivedRow(mapping, row)

	// Unit Cost is unmapped, so no total may be fabricated.
	if got := row.Number(entity.FieldTotalValue); got != 0 {
		t.Fatalf("Total Value = %v, want untouched 0", got)
	}
	// Non-Functional Qty is unmapped, so it keeps its default.
	if got := row.Number(entity.FieldNonFunctionalQty); got != 0 {
		t.Fatalf("Non-Functional Qty = %v, want untouched 0", got)
	}
}

func TestApplyDerivedRow_Idempotent(t *testing.T) {
	row := numberRow(10, 500, 15)
	ApplyDerivedRow(fullMapping(), row)
	first := map[string]float64{
		entity.FieldTotalValue:       row.Number(entity.FieldTotalValue),
		entity.FieldFunctionalQty:    row.Number(entity.FieldFunctionalQty),
		entity.FieldNonFunctionalQty: row.Number(entity.FieldNonFunctionalQty),
	}

	ApplyDerivedRow(fullMapping(), row)
	for field, want := range first {
		if got := row.Number(field); got != want {
			t.Fatalf("second pass changed %s: %v -> %v", field, want, got)
		}
	}
}
