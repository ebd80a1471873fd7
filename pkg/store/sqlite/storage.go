package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const HistoryTableSchema = `
	CREATE TABLE IF NOT EXISTS calculation_history (
		calculator VARCHAR NOT NULL,
		inputs TEXT NOT NULL,
		outputs TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	HistoryTableSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("bootstrap schema: %w", err)
		}
	}

	return db, nil
}
