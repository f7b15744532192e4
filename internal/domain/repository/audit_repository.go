package repository

import (
	"context"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

// AuditRepository records write-back plans before they are applied, so a
// partially failed save can be reconstructed later.
type AuditRepository interface {
	RecordPlan(ctx context.Context, loadID, sheet string, writes []entity.CellWrite) error
	Close() error
}
