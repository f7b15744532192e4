package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// MemorySheetRepository is an in-memory sheet transport for tests and
// local development. Grids grow as cells are written, the way a real
// spreadsheet does.
type MemorySheetRepository struct {
	mu     sync.RWMutex
	sheets map[string]entity.RawGrid
}

// NewMemorySheetRepository seeds the store with initial grids. The seed
// grids are copied; callers keep ownership of their slices.
func NewMemorySheetRepository(seed map[string]entity.RawGrid) *MemorySheetRepository {
	m := &MemorySheetRepository{sheets: make(map[string]entity.RawGrid, len(seed))}
	for name, grid := range seed {
		m.sheets[name] = copyGrid(grid)
	}
	return m
}

func (m *MemorySheetRepository) ReadAll(_ context.Context, sheet string) (entity.RawGrid, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grid, ok := m.sheets[sheet]
	if !ok {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}
	return copyGrid(grid), nil
}

func (m *MemorySheetRepository) WriteCell(_ context.Context, sheet string, row, col int, value string) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("cell (%d,%d) out of range", row, col)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("sheet %q not found", sheet)
	}
	for len(grid) < row {
		grid = append(grid, nil)
	}
	for len(grid[row-1]) < col {
		grid[row-1] = append(grid[row-1], "")
	}
	grid[row-1][col-1] = value
	m.sheets[sheet] = grid
	return nil
}

func (m *MemorySheetRepository) AppendRow(_ context.Context, sheet string, values []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	grid, ok := m.sheets[sheet]
	if !ok {
		return fmt.Errorf("sheet %q not found", sheet)
	}
	row := make([]string, len(values))
	copy(row, values)
	m.sheets[sheet] = append(grid, row)
	return nil
}

// Cell returns the current content of a 1-based cell, for assertions.
func (m *MemorySheetRepository) Cell(sheet string, row, col int) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	grid := m.sheets[sheet]
	if row < 1 || row > len(grid) || col < 1 || col > len(grid[row-1]) {
		return ""
	}
	return grid[row-1][col-1]
}

// RowCount returns the number of physical rows in a sheet.
func (m *MemorySheetRepository) RowCount(sheet string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sheets[sheet])
}

func copyGrid(grid entity.RawGrid) entity.RawGrid {
	out := make(entity.RawGrid, len(grid))
	for i, row := range grid {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}
