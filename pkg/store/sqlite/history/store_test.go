package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fin-tools/calc-atlas/pkg/store/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(db)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectPrepare("INSERT INTO calculation_history").
		ExpectExec().
		WithArgs("loan", `{"principal":100000}`, `{"periodic_payment":1060.66}`, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Add(context.Background(), history.Record{
		Calculator: "loan",
		Inputs:     `{"principal":100000}`,
		Outputs:    `{"periodic_payment":1060.66}`,
		CreatedAt:  now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Recent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(db)
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"calculator", "inputs", "outputs", "created_at"}).
		AddRow("loan", `{}`, `{}`, now).
		AddRow("loan", `{}`, `{}`, now.Add(-time.Hour))

	mock.ExpectQuery("SELECT calculator, inputs, outputs, created_at").
		WithArgs("loan", 5).
		WillReturnRows(rows)

	records, err := store.Recent(context.Background(), "loan", 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "loan", records[0].Calculator)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_NilDB(t *testing.T) {
	_, err := NewStore(nil)
	assert.Error(t, err)
}
