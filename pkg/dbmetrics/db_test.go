package dbmetrics

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/pkg/metrics"
)

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_RecordsPoolStats(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("turnit")
	wrapped := Wrap(db, m)
	wrapped.recordPoolStats("turnit")

	assert.GreaterOrEqual(t, testutil.ToFloat64(m.DBOpenConnections.WithLabelValues("turnit")), 0.0)
}

func TestDB_ExecObservesQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.New("turnit")
	wrapped := Wrap(db, m)

	mock.ExpectExec("DELETE FROM turnos").WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM turnos WHERE id = $1", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_PingContext(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)

	mock.ExpectPing()
	require.NoError(t, wrapped.PingContext(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, wrapped.PingContext(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
