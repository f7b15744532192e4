package repository

import (
	"context"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// SheetRepository is the tabular transport boundary. Implementations own
// retry and timeout policy; errors cross this boundary opaquely.
type SheetRepository interface {
	// ReadAll returns every cell of a sheet as text, row-major.
	ReadAll(ctx context.Context, sheet string) (entity.RawGrid, error)

	// WriteCell overwrites a single cell. Row and col are 1-based.
	WriteCell(ctx context.Context, sheet string, row, col int, value string) error

	// AppendRow appends a data row positionally matched to the physical
	// column order of the sheet.
	AppendRow(ctx context.Context, sheet string, values []string) error
}
