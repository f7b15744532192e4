package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/yourusername/asset-sheet-service/config"
	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
	"github.com/yourusername/asset-sheet-service/internal/infrastructure/gsheets"
	"github.com/yourusername/asset-sheet-service/internal/infrastructure/storage"
	"github.com/yourusername/asset-sheet-service/internal/infrastructure/xlsxgrid"
	"github.com/yourusername/asset-sheet-service/internal/usecase"
	"github.com/yourusername/asset-sheet-service/pkg/logger"
)

func main() {
	logger.Init()
	logger.InfoLogger.Println("asset-sheet reconciler starting...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Dependencies

	// 1. Sheet transport
	var sheetRepo repository.SheetRepository
	if cfg.XLSXFile != "" {
		sheetRepo = xlsxgrid.NewFileRepository(cfg.XLSXFile)
		logger.InfoLogger.Printf("transport: local workbook %s", cfg.XLSXFile)
	} else {
		sheetRepo, err = gsheets.NewClient(ctx, cfg.SpreadsheetID, cfg.CredentialsFile)
		if err != nil {
			log.Fatalf("sheets client failed: %v", err)
		}
		logger.InfoLogger.Printf("transport: google sheets %s", cfg.SpreadsheetID)
	}

	// 2. Optional write-back audit store
	var auditRepo repository.AuditRepository
	if cfg.AuditDBDSN != "" {
		auditRepo, err = storage.NewPostgresAuditRepository(ctx, cfg.AuditDBDSN)
		if err != nil {
			log.Fatalf("audit store failed: %v", err)
		}
		defer auditRepo.Close()
		logger.InfoLogger.Println("audit store: postgres")
	}

	// 3. Use cases
	reconcile := usecase.NewReconcileUseCase(sheetRepo, auditRepo)

	model, err := reconcile.LoadTable(ctx, cfg.AssetRegistrySheet, entity.AssetRegistrySchema())
	if err != nil {
		log.Fatalf("load %s failed: %v", cfg.AssetRegistrySheet, err)
	}
	if model.IsEmpty() {
		logger.InfoLogger.Printf("%s: sheet is empty, nothing to reconcile", cfg.AssetRegistrySheet)
		return
	}

	logger.InfoLogger.Printf("%s: %d rows, %d/%d fields mapped",
		cfg.AssetRegistrySheet, len(model.Rows), len(model.Mapping), len(model.Schema.Fields))
	if len(model.UnmappedRequired) > 0 {
		logger.ErrorLogger.Printf("%s: missing required columns: %v", cfg.AssetRegistrySheet, model.UnmappedRequired)
	}

	if cfg.DryRun {
		logger.InfoLogger.Println("dry run, skipping derived-column repair")
		return
	}

	written, err := reconcile.RepairDerived(ctx, cfg.AssetRegistrySheet, entity.AssetRegistrySchema())
	if err != nil {
		log.Fatalf("repair failed after %d writes: %v", written, err)
	}
	if written == 0 {
		logger.InfoLogger.Printf("%s: derived columns already consistent", cfg.AssetRegistrySheet)
	} else {
		logger.InfoLogger.Printf("%s: corrected %d derived cells", cfg.AssetRegistrySheet, written)
	}
}
