package usecase

import (
	"context"
	"testing"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/infrastructure/storage"
)

const (
	reportsSheet     = "DamageReports"
	estimationsSheet = "Estimations"
)

func seedDamageStore() *storage.MemorySheetRepository {
	return storage.NewMemorySheetRepository(map[string]entity.RawGrid{
		registrySheet: {
			{"Asset Name", "Quantity", "Unit Cost"},
			{"Lane Camera", "10", "500"},
			{"Generator", "2", "12000"},
		},
		reportsSheet: {
			{"Case No", "Asset Name", "Location", "Date", "Reported By", "Status"},
			{"C-001", "Lane Camera", "KM 12", "2026-08-01", "inspector1", "Pending"},
			{"C-002", "Generator", "Toll Plaza", "2026-08-02", "inspector2", "Estimated"},
		},
		estimationsSheet: {
			{"Case No", "Quantity", "Total", "VAT", "Grand Total", "Estimated By"},
		},
	})
}

func newEstimationUC(repo *storage.MemorySheetRepository) EstimationUseCase {
	reconcile := NewReconcileUseCase(repo, nil)
	return NewEstimationUseCase(reconcile, repo, registrySheet, reportsSheet, estimationsSheet, 0.15)
}

func TestEstimate_AddsVAT(t *testing.T) {
	uc := newEstimationUC(seedDamageStore())
	total, vat, grand := uc.Estimate(2, 500)
	if total != 1000 || vat != 150 || grand != 1150 {
		t.Fatalf("Estimate() = (%v, %v, %v), want (1000, 150, 1150)", total, vat, grand)
	}
}

func TestFinalizeEstimation_AppendsAndFlipsStatus(t *testing.T) {
	repo := seedDamageStore()
	uc := newEstimationUC(repo)

	est, err := uc.FinalizeEstimation(context.Background(), "C-001", 2, "engineer1")
	if err != nil {
		t.Fatalf("FinalizeEstimation() error: %v", err)
	}
	if est.UnitCost != 500 || est.GrandTotal != 1150 {
		t.Fatalf("estimation = %+v, want unit cost 500 and grand total 1150", est)
	}

	if got := repo.RowCount(estimationsSheet); got != 2 {
		t.Fatalf("estimations sheet has %d rows, want 2", got)
	}
	if got := repo.Cell(estimationsSheet, 2, 5); got != "1150" {
		t.Fatalf("grand total cell = %q, want %q", got, "1150")
	}
	if got := repo.Cell(reportsSheet, 2, 6); got != entity.ReportStatusEstimated {
		t.Fatalf("report status cell = %q, want %q", got, entity.ReportStatusEstimated)
	}
}

func TestFinalizeEstimation_IgnoresNonPendingReports(t *testing.T) {
	uc := newEstimationUC(seedDamageStore())
	if _, err := uc.FinalizeEstimation(context.Background(), "C-002", 1, "engineer1"); err == nil {
		t.Fatal("FinalizeEstimation() accepted an already-estimated case, want error")
	}
}

func TestFinalizeEstimation_UnknownAsset(t *testing.T) {
	repo := storage.NewMemorySheetRepository(map[string]entity.RawGrid{
		registrySheet: {
			{"Asset Name", "Quantity", "Unit Cost"},
		},
		reportsSheet: {
			{"Case No", "Asset Name", "Location", "Date", "Reported By", "Status"},
			{"C-009", "Phantom Asset", "KM 1", "2026-08-03", "inspector1", "Pending"},
		},
		estimationsSheet: {
			{"Case No", "Quantity", "Total", "VAT", "Grand Total", "Estimated By"},
		},
	})
	uc := newEstimationUC(repo)
	if _, err := uc.FinalizeEstimation(context.Background(), "C-009", 1, "engineer1"); err == nil {
		t.Fatal("FinalizeEstimation() resolved a missing asset, want error")
	}
}
