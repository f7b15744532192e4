package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
)

// ReconcileUseCase loads untrusted sheet data into a clean table model and
// writes edits back to the exact physical cells they came from.
type ReconcileUseCase interface {
	LoadTable(ctx context.Context, sheet string, schema entity.Schema) (*entity.TableModel, error)
	SaveTable(ctx context.Context, model *entity.TableModel) (int, error)
	RepairDerived(ctx context.Context, sheet string, schema entity.Schema) (int, error)
	AppendAsset(ctx context.Context, model *entity.TableModel, row *entity.TableRow) error
}

type reconcileUseCase struct {
	sheetRepo repository.SheetRepository
	auditRepo repository.AuditRepository // optional, may be nil
}

// NewReconcileUseCase wires the engine to a sheet transport. auditRepo may
// be nil to disable write-back auditing.
func NewReconcileUseCase(sheetRepo repository.SheetRepository, auditRepo repository.AuditRepository) ReconcileUseCase {
	return &reconcileUseCase{
		sheetRepo: sheetRepo,
		auditRepo: auditRepo,
	}
}

// LoadTable reads every cell of a sheet and reconciles it against the
// schema: header resolution, column mapping, per-cell coercion and one
// derived-field pass. The sheet is re-resolved from scratch on every call;
// nothing is cached because other clients may edit it at any time.
//
// A grid with no header row yields an empty model, not an error. Unmapped
// required fields are reported on the model; the rest of the table is
// still usable.
func (u *reconcileUseCase) LoadTable(ctx context.Context, sheet string, schema entity.Schema) (*entity.TableModel, error) {
	return u.loadTable(ctx, sheet, schema, false)
}

func (u *reconcileUseCase) loadTable(ctx context.Context, sheet string, schema entity.Schema, rawBaseline bool) (*entity.TableModel, error) {
	grid, err := u.sheetRepo.ReadAll(ctx, sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	model := &entity.TableModel{
		LoadID:    uuid.New().String(),
		Sheet:     sheet,
		Schema:    schema,
		HeaderRow: -1,
	}

	headerRow, headers, ok := ResolveHeader(grid)
	if !ok {
		log.Printf("[reconcile] sheet %q is empty, nothing to load", sheet)
		return model, nil
	}
	model.HeaderRow = headerRow

	model.Mapping, model.Unmapped = MapSchema(headers, schema)
	model.UnmappedRequired = UnmappedRequired(schema, model.Unmapped)
	if len(model.UnmappedRequired) > 0 {
		log.Printf("[reconcile] sheet %q: required fields without a column: %s",
			sheet, strings.Join(model.UnmappedRequired, ", "))
	}

	for i, rawRow := range grid[headerRow+1:] {
		if rowIsBlank(rawRow) {
			continue
		}
		row := entity.NewTableRow(i)
		for _, field := range schema.Fields {
			raw := ""
			if col, mapped := model.Mapping[field.Name]; mapped && col < len(rawRow) {
				raw = rawRow[col]
			}
			row.Set(field.Name, Coerce(raw, field))
		}
		if rawBaseline {
			row.Snapshot()
		}
		model.Rows = append(model.Rows, row)
	}

	ApplyDerived(model)
	if !rawBaseline {
		for _, row := range model.Rows {
			row.Snapshot()
		}
	}
	return model, nil
}

// SaveTable re-runs the derived-field pass and writes every changed mapped
// cell. Cell writes are independent: a transport failure on one cell does
// not stop the others, and the error lists exactly the cells left
// unwritten so the caller can retry them.
func (u *reconcileUseCase) SaveTable(ctx context.Context, model *entity.TableModel) (int, error) {
	ApplyDerived(model)
	return u.applyPlan(ctx, model, planWrites(model))
}

// RepairDerived reloads a sheet and rewrites only the derived columns
// (Total Value, Functional Qty, Non-Functional Qty) wherever the stored
// cells disagree with their inputs.
func (u *reconcileUseCase) RepairDerived(ctx context.Context, sheet string, schema entity.Schema) (int, error) {
	model, err := u.loadTable(ctx, sheet, schema, true)
	if err != nil {
		return 0, err
	}

	derived := map[string]bool{
		entity.FieldTotalValue:       true,
		entity.FieldFunctionalQty:    true,
		entity.FieldNonFunctionalQty: true,
	}
	var plan []plannedWrite
	for _, w := range planWrites(model) {
		if derived[w.Field] {
			plan = append(plan, w)
		}
	}
	return u.applyPlan(ctx, model, plan)
}

func (u *reconcileUseCase) applyPlan(ctx context.Context, model *entity.TableModel, plan []plannedWrite) (int, error) {
	if len(plan) == 0 {
		return 0, nil
	}

	if u.auditRepo != nil {
		cells := make([]entity.CellWrite, 0, len(plan))
		for _, w := range plan {
			cells = append(cells, w.Cell)
		}
		if err := u.auditRepo.RecordPlan(ctx, model.LoadID, model.Sheet, cells); err != nil {
			log.Printf("[reconcile] audit record failed: %v", err)
		}
	}

	written := 0
	var failed []string
	for _, w := range plan {
		if err := u.sheetRepo.WriteCell(ctx, model.Sheet, w.Cell.Row, w.Cell.Col, w.Cell.Value); err != nil {
			failed = append(failed, fmt.Sprintf("(%d,%d)=%q: %v", w.Cell.Row, w.Cell.Col, w.Cell.Value, err))
			continue
		}
		w.Row.Rebase(w.Field)
		written++
	}

	if len(failed) > 0 {
		return written, fmt.Errorf("%d of %d cell writes failed: %s", len(failed), len(plan), strings.Join(failed, "; "))
	}
	return written, nil
}

// AppendAsset appends a new row laid out in the sheet's physical column
// order and adds it to the model.
func (u *reconcileUseCase) AppendAsset(ctx context.Context, model *entity.TableModel, row *entity.TableRow) error {
	if model.IsEmpty() {
		return fmt.Errorf("append to %q: table has no header row", model.Sheet)
	}
	row.SourceRow = 0
	if n := len(model.Rows); n > 0 {
		row.SourceRow = model.Rows[n-1].SourceRow + 1
	}
	if err := u.sheetRepo.AppendRow(ctx, model.Sheet, PhysicalRow(model, row)); err != nil {
		return fmt.Errorf("append to %q: %w", model.Sheet, err)
	}
	row.Snapshot()
	model.Rows = append(model.Rows, row)
	return nil
}
