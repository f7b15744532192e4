package xlsxgrid

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
)

type fileRepository struct {
	path string
}

// NewFileRepository serves the SheetRepository interface from a local
// .xlsx workbook, one worksheet per logical sheet. Each call reopens the
// file: the workbook stays the single source of truth, exactly like the
// remote transport.
func NewFileRepository(path string) repository.SheetRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) ReadAll(_ context.Context, sheet string) (entity.RawGrid, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	grid := make(entity.RawGrid, 0, len(rows))
	for _, row := range rows {
		grid = append(grid, row)
	}
	return grid, nil
}

func (r *fileRepository) WriteCell(_ context.Context, sheet string, row, col int, value string) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return f.Save()
}

func (r *fileRepository) AppendRow(_ context.Context, sheet string, values []string) error {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	target := len(rows) + 1
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, target)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return f.Save()
}
