package turno

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/dbmetrics"
	"github.com/m04kA/TurnIt/pkg/txmanager"
	"github.com/m04kA/TurnIt/pkg/types"
)

var resultColumns = []string{
	"id", "place_id", "place_name", "date", "start_time", "date_time",
	"slots", "slots_available", "reservations", "created_at", "updated_at",
}

func newRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), db, mock
}

func turnoRow(rows *sqlmock.Rows, id int64, slots, available int, reservations string) *sqlmock.Rows {
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	dateTime := time.Date(2026, 11, 2, 12, 30, 0, 0, time.UTC)
	return rows.AddRow(id, int64(7), "Barberia Don Pepe", date, []byte("09:30:00"), dateTime,
		slots, available, reservations, dateTime, dateTime)
}

func TestCreate(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO turnos (place_id,place_name,date,start_time,date_time,slots,slots_available)")).
		WithArgs(int64(7), "Barberia Don Pepe", "2026-11-02", "09:30", sqlmock.AnyArg(), 3, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(1), now, now))

	turno, err := repo.Create(context.Background(), &domain.Turno{
		PlaceID:        7,
		PlaceName:      "Barberia Don Pepe",
		Date:           time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:           types.TimeString("09:30"),
		DateTime:       time.Date(2026, 11, 2, 12, 30, 0, 0, time.UTC),
		Slots:          3,
		SlotsAvailable: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), turno.ID)
	assert.Empty(t, turno.Reservations)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Duplicate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO turnos").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Turno{PlaceID: 7, Time: "09:30"})

	assert.ErrorIs(t, err, ErrDuplicateTurno)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM turnos t LEFT JOIN turno_reservations r ON r.turno_id = t.id WHERE t.id = $1 GROUP BY t.id")).
		WithArgs(int64(1)).
		WillReturnRows(turnoRow(sqlmock.NewRows(resultColumns), 1, 3, 1, "{u1,u2}"))

	turno, err := repo.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), turno.Time)
	assert.Equal(t, []string{"u1", "u2"}, turno.Reservations)
	assert.NoError(t, turno.Validate())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM turnos t").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTurnoNotFound)
}

func TestList_DateAndAvailable(t *testing.T) {
	repo, _, mock := newRepo(t)
	date := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.place_id = $1 AND t.date = $2 AND t.slots_available > $3 GROUP BY t.id ORDER BY t.date_time ASC, t.id ASC")).
		WithArgs(int64(7), "2026-11-02", 0).
		WillReturnRows(turnoRow(sqlmock.NewRows(resultColumns), 1, 2, 2, "{}"))

	turnos, err := repo.List(context.Background(), domain.TurnosFilter{PlaceID: 7, Date: &date, OnlyAvailable: true})

	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.Empty(t, turnos[0].Reservations)
}

func TestListByUser(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.id IN (SELECT turno_id FROM turno_reservations WHERE user_id = $1)")).
		WithArgs("u1").
		WillReturnRows(turnoRow(sqlmock.NewRows(resultColumns), 1, 3, 2, "{u1}"))

	turnos, err := repo.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.True(t, turnos[0].HasReservation("u1"))
}

func TestFindAvailable_None(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE t.date = $1 AND t.place_id = $2 AND t.start_time = $3 AND t.slots_available > $4")).
		WithArgs("2026-11-02", int64(7), "09:30", 0).
		WillReturnRows(sqlmock.NewRows(resultColumns))

	_, err := repo.FindAvailable(context.Background(), 7, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), "09:30")

	assert.ErrorIs(t, err, ErrNoAvailability)
}

const decrementQuery = "UPDATE turnos SET slots_available = slots_available - 1, updated_at = NOW() WHERE id = $1 AND slots_available > $2"

func TestDecrementAvailable(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(decrementQuery)).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DecrementAvailable(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementAvailable_Full(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(decrementQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS ( SELECT 1 FROM turnos WHERE id = $1 )")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.DecrementAvailable(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNoAvailability)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementAvailable_Missing(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(decrementQuery)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.DecrementAvailable(context.Background(), 1)

	assert.ErrorIs(t, err, ErrTurnoNotFound)
}

func TestIncrementAvailable_AtCapacity(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE turnos SET slots_available = slots_available + 1, updated_at = NOW() WHERE id = $1 AND slots_available < slots")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementAvailable(context.Background(), 1)

	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestAddReservation_Duplicate(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO turno_reservations (turno_id,user_id) VALUES ($1,$2) RETURNING id, created_at")).
		WithArgs(int64(1), "u1").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.AddReservation(context.Background(), 1, "u1")

	assert.ErrorIs(t, err, ErrAlreadyReserved)
}

func TestRemoveReservation_NotReserved(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM turno_reservations WHERE id = (SELECT id FROM turno_reservations WHERE turno_id = $1 AND user_id = $2 ORDER BY id LIMIT 1 FOR UPDATE)")).
		WithArgs(int64(1), "u9").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveReservation(context.Background(), 1, "u9")

	assert.ErrorIs(t, err, ErrNotReserved)
}

// Резерв в транзакции: условный UPDATE и вставка брони коммитятся вместе
func TestReserveInTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	tm := txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil))
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(decrementQuery)).
		WithArgs(int64(1), 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO turno_reservations").
		WithArgs(int64(1), "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), now))
	mock.ExpectCommit()

	var reservation *domain.Reservation
	err := tm.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.DecrementAvailable(ctx, 1); err != nil {
			return err
		}
		var err error
		reservation, err = repo.AddReservation(ctx, 1, "u1")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), reservation.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Дубликат брони откатывает уже выполненный декремент
func TestReserveInTransaction_RollbackOnDuplicate(t *testing.T) {
	repo, db, mock := newRepo(t)
	tm := txmanager.NewTransactionManager(dbmetrics.Wrap(db, nil))

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(decrementQuery)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO turno_reservations").
		WillReturnError(&pq.Error{Code: "23505"})
	mock.ExpectRollback()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.DecrementAvailable(ctx, 1); err != nil {
			return err
		}
		_, err := repo.AddReservation(ctx, 1, "u1")
		return err
	})

	assert.ErrorIs(t, err, ErrAlreadyReserved)
	require.NoError(t, mock.ExpectationsWereMet())
}
