package storage

import (
	"context"
	"testing"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

func TestMemorySheetRepository_ReadIsACopy(t *testing.T) {
	repo := NewMemorySheetRepository(map[string]entity.RawGrid{
		"Sheet1": {{"Name"}, {"Camera"}},
	})

	grid, err := repo.ReadAll(context.Background(), "Sheet1")
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	grid[1][0] = "mutated"

	again, _ := repo.ReadAll(context.Background(), "Sheet1")
	if again[1][0] != "Camera" {
		t.Fatalf("stored grid = %q, caller mutation leaked through", again[1][0])
	}
}

func TestMemorySheetRepository_WriteCellGrowsGrid(t *testing.T) {
	repo := NewMemorySheetRepository(map[string]entity.RawGrid{
		"Sheet1": {{"Name"}},
	})
	if err := repo.WriteCell(context.Background(), "Sheet1", 3, 4, "x"); err != nil {
		t.Fatalf("WriteCell() error: %v", err)
	}
	if got := repo.Cell("Sheet1", 3, 4); got != "x" {
		t.Fatalf("cell (3,4) = %q, want %q", got, "x")
	}
}

func TestMemorySheetRepository_UnknownSheet(t *testing.T) {
	repo := NewMemorySheetRepository(nil)
	if _, err := repo.ReadAll(context.Background(), "Nope"); err == nil {
		t.Fatal("ReadAll() on unknown sheet: want error")
	}
	if err := repo.WriteCell(context.Background(), "Nope", 1, 1, "x"); err == nil {
		t.Fatal("WriteCell() on unknown sheet: want error")
	}
	if err := repo.AppendRow(context.Background(), "Nope", []string{"x"}); err == nil {
		t.Fatal("AppendRow() on unknown sheet: want error")
	}
}

func TestMemorySheetRepository_AppendRow(t *testing.T) {
	repo := NewMemorySheetRepository(map[string]entity.RawGrid{
		"Sheet1": {{"Name"}},
	})
	if err := repo.AppendRow(context.Background(), "Sheet1", []string{"Generator"}); err != nil {
		t.Fatalf("AppendRow() error: %v", err)
	}
	if got := repo.RowCount("Sheet1"); got != 2 {
		t.Fatalf("RowCount() = %d, want 2", got)
	}
	if got := repo.Cell("Sheet1", 2, 1); got != "Generator" {
		t.Fatalf("cell (2,1) = %q, want %q", got, "Generator")
	}
}
