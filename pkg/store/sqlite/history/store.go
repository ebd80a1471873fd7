package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fin-tools/calc-atlas/pkg/store/history"
)

type historyStore struct {
	db *sql.DB
}

// NewStore creates a sqlite-backed calculation history store.
func NewStore(db *sql.DB) (history.Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &historyStore{db: db}, nil
}

func (s *historyStore) Add(ctx context.Context, record history.Record) error {
	query := `
		INSERT INTO calculation_history (calculator, inputs, outputs, created_at)
		VALUES (?, ?, ?, ?)`

	stmt, err := s.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		record.Calculator,
		record.Inputs,
		record.Outputs,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}

	return nil
}

func (s *historyStore) Recent(ctx context.Context, calculator string, limit int) ([]history.Record, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT calculator, inputs, outputs, created_at
		FROM calculation_history
		WHERE calculator = ?
		ORDER BY created_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, calculator, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []history.Record
	for rows.Next() {
		var r history.Record
		if err := rows.Scan(&r.Calculator, &r.Inputs, &r.Outputs, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}

	return records, rows.Err()
}
