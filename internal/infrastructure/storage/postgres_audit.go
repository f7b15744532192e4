package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
)

type postgresAuditRepository struct {
	db *sql.DB
}

// NewPostgresAuditRepository opens the audit database and makes sure the
// audit table exists.
func NewPostgresAuditRepository(ctx context.Context, dsn string) (repository.AuditRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open audit db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping audit db: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS writeback_audit (
	id         BIGSERIAL PRIMARY KEY,
	load_id    TEXT NOT NULL,
	sheet      TEXT NOT NULL,
	row_num    INT NOT NULL,
	col_num    INT NOT NULL,
	value      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure audit table: %w", err)
	}
	return &postgresAuditRepository{db: db}, nil
}

// RecordPlan stores one row per planned cell write, all in one
// transaction so a plan is either fully recorded or not at all.
func (r *postgresAuditRepository) RecordPlan(ctx context.Context, loadID, sheet string, writes []entity.CellWrite) error {
	if len(writes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, w := range writes {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO writeback_audit (load_id, sheet, row_num, col_num, value)
VALUES ($1, $2, $3, $4, $5)`, loadID, sheet, w.Row, w.Col, w.Value); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (r *postgresAuditRepository) Close() error {
	return r.db.Close()
}
