package usecase

import "github.com/yourusername/asset-sheet-service/internal/domain/entity"

// ApplyDerived recomputes every derived field of every row. It is the one
// place the table's consistency invariants are enforced and it runs both
// after load and before write-back, so an unedited load-then-save never
// produces writes.
func ApplyDerived(model *entity.TableModel) {
	for _, row := range model.Rows {
		ApplyDerivedRow(model.Mapping, row)
	}
}

// ApplyDerivedRow enforces, for a single row:
//
//	Total Value        = Quantity x Unit Cost
//	Functional Qty     clamped to [0, Quantity]
//	Non-Functional Qty = Quantity - Functional Qty
//
// A relationship is skipped when one of its columns is unmapped; values are
// never fabricated from partial data.
func ApplyDerivedRow(mapping entity.ColumnMapping, row *entity.TableRow) {
	_, hasQty := mapping[entity.FieldQuantity]
	_, hasCost := mapping[entity.FieldUnitCost]
	_, hasFunc := mapping[entity.FieldFunctionalQty]
	_, hasNonFunc := mapping[entity.FieldNonFunctionalQty]

	if hasQty && hasCost {
		total := row.Number(entity.FieldQuantity) * row.Number(entity.FieldUnitCost)
		row.Set(entity.FieldTotalValue, entity.NumberValue(entity.KindDecimalCurrency, total))
	}

	if hasQty && hasFunc {
		qty := row.Number(entity.FieldQuantity)
		functional := row.Number(entity.FieldFunctionalQty)
		if functional < 0 {
			functional = 0
		}
		if functional > qty {
			functional = qty
		}
		row.Set(entity.FieldFunctionalQty, entity.NumberValue(entity.KindIntegerQuantity, functional))

		if hasNonFunc {
			row.Set(entity.FieldNonFunctionalQty, entity.NumberValue(entity.KindIntegerQuantity, qty-functional))
		}
	}
}
