package history

import (
	"context"
	"time"
)

// Record is one persisted calculation. Inputs and Outputs are JSON documents;
// the store does not interpret them.
type Record struct {
	Calculator string
	Inputs     string
	Outputs    string
	CreatedAt  time.Time
}

// Store persists past calculations. Persistence is best-effort: callers log
// failures and continue, a calculation never fails because its audit row did.
type Store interface {
	Add(ctx context.Context, record Record) error
	Recent(ctx context.Context, calculator string, limit int) ([]Record, error)
}
