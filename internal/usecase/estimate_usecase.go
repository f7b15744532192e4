package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
)

// EstimationUseCase turns a pending damage report into a finalized cost
// estimation: it prices the damage from the asset registry, appends an
// estimation row and flips the report's status cell.
type EstimationUseCase interface {
	Estimate(qtyDamaged, unitCost float64) (total, vat, grand float64)
	FinalizeEstimation(ctx context.Context, caseNo string, qtyDamaged float64, estimatedBy string) (*entity.Estimation, error)
}

type estimationUseCase struct {
	reconcile ReconcileUseCase
	sheetRepo repository.SheetRepository

	registrySheet    string
	reportsSheet     string
	estimationsSheet string
	vatRate          float64
}

// NewEstimationUseCase creates the estimation workflow over the given
// worksheets. vatRate is a fraction, e.g. 0.15 for 15%.
func NewEstimationUseCase(
	reconcile ReconcileUseCase,
	sheetRepo repository.SheetRepository,
	registrySheet, reportsSheet, estimationsSheet string,
	vatRate float64,
) EstimationUseCase {
	return &estimationUseCase{
		reconcile:        reconcile,
		sheetRepo:        sheetRepo,
		registrySheet:    registrySheet,
		reportsSheet:     reportsSheet,
		estimationsSheet: estimationsSheet,
		vatRate:          vatRate,
	}
}

// Estimate prices damaged quantity at unit cost and adds VAT.
func (u *estimationUseCase) Estimate(qtyDamaged, unitCost float64) (total, vat, grand float64) {
	total = qtyDamaged * unitCost
	vat = total * u.vatRate
	return total, vat, total + vat
}

// FinalizeEstimation resolves the pending report for caseNo, prices it and
// records the result. The report row's Status cell is updated through the
// same mapping the report table was loaded with.
func (u *estimationUseCase) FinalizeEstimation(ctx context.Context, caseNo string, qtyDamaged float64, estimatedBy string) (*entity.Estimation, error) {
	caseNo = strings.TrimSpace(caseNo)
	if caseNo == "" {
		return nil, fmt.Errorf("case number is required")
	}

	reports, err := u.reconcile.LoadTable(ctx, u.reportsSheet, entity.DamageReportSchema())
	if err != nil {
		return nil, err
	}
	if len(reports.UnmappedRequired) > 0 {
		return nil, fmt.Errorf("sheet %q is missing required columns: %s",
			u.reportsSheet, strings.Join(reports.UnmappedRequired, ", "))
	}

	report := findReport(reports, caseNo)
	if report == nil {
		return nil, fmt.Errorf("no pending report for case %q", caseNo)
	}
	assetName := report.Text(entity.FieldAssetName)

	registry, err := u.reconcile.LoadTable(ctx, u.registrySheet, entity.AssetRegistrySchema())
	if err != nil {
		return nil, err
	}
	unitCost, ok := lookupUnitCost(registry, assetName)
	if !ok {
		return nil, fmt.Errorf("asset %q not found in %q", assetName, u.registrySheet)
	}

	total, vat, grand := u.Estimate(qtyDamaged, unitCost)
	est := &entity.Estimation{
		CaseNo:          caseNo,
		AssetName:       assetName,
		QuantityDamaged: qtyDamaged,
		UnitCost:        unitCost,
		Total:           total,
		VAT:             vat,
		GrandTotal:      grand,
		EstimatedBy:     estimatedBy,
	}

	if err := u.appendEstimation(ctx, est); err != nil {
		return nil, err
	}

	report.Set(entity.FieldStatus, entity.TextValue(entity.KindEnumStatus, entity.ReportStatusEstimated))
	if _, err := u.reconcile.SaveTable(ctx, reports); err != nil {
		// The estimation row already exists; surface the stale status
		// instead of pretending the whole operation failed cleanly.
		log.Printf("[estimate] case %s: estimation recorded but status update failed: %v", caseNo, err)
		return est, fmt.Errorf("estimation recorded, status update failed: %w", err)
	}
	return est, nil
}

func (u *estimationUseCase) appendEstimation(ctx context.Context, est *entity.Estimation) error {
	values := []string{
		est.CaseNo,
		entity.NumberValue(entity.KindDecimalCurrency, est.QuantityDamaged).String(),
		entity.NumberValue(entity.KindDecimalCurrency, est.Total).String(),
		entity.NumberValue(entity.KindDecimalCurrency, est.VAT).String(),
		entity.NumberValue(entity.KindDecimalCurrency, est.GrandTotal).String(),
		est.EstimatedBy,
	}
	if err := u.sheetRepo.AppendRow(ctx, u.estimationsSheet, values); err != nil {
		return fmt.Errorf("append estimation for case %q: %w", est.CaseNo, err)
	}
	return nil
}

func findReport(reports *entity.TableModel, caseNo string) *entity.TableRow {
	for _, row := range reports.Rows {
		if !strings.EqualFold(strings.TrimSpace(row.Text(entity.FieldCaseNo)), caseNo) {
			continue
		}
		if row.Text(entity.FieldStatus) != entity.ReportStatusPending {
			continue
		}
		return row
	}
	return nil
}

func lookupUnitCost(registry *entity.TableModel, assetName string) (float64, bool) {
	assetName = strings.TrimSpace(strings.ToLower(assetName))
	if assetName == "" {
		return 0, false
	}
	for _, row := range registry.Rows {
		name := strings.TrimSpace(strings.ToLower(row.Text(entity.FieldAssetName)))
		if name == assetName {
			return row.Number(entity.FieldUnitCost), true
		}
	}
	// Fall back to loose matching the way operators actually type names.
	for _, row := range registry.Rows {
		name := strings.TrimSpace(strings.ToLower(row.Text(entity.FieldAssetName)))
		if name == "" {
			continue
		}
		if strings.Contains(name, assetName) || strings.Contains(assetName, name) {
			return row.Number(entity.FieldUnitCost), true
		}
	}
	return 0, false
}
