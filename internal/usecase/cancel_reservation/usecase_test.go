package cancel_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/internal/testutil/turnostore"
	"github.com/m04kA/TurnIt/pkg/logger"
)

func setup(t *testing.T) (*UseCase, *turnostore.Store, *turnostore.Recorder) {
	t.Helper()
	store := turnostore.New()
	rec := turnostore.NewRecorder()
	return NewUseCase(store, store.TxManager(), rec, rec, logger.Nop()), store, rec
}

func newTurno(slots, available int, holders ...string) domain.Turno {
	return domain.Turno{
		PlaceID:        7,
		PlaceName:      "Spa Zen",
		Date:           time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		Time:           "18:00",
		Slots:          slots,
		SlotsAvailable: available,
		Reservations:   holders,
	}
}

func TestExecute(t *testing.T) {
	uc, store, rec := setup(t)
	id := store.Put(newTurno(3, 1, "u1", "u2"))

	resp, err := uc.Execute(context.Background(), &Request{UserID: "u1", TurnoID: id})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.SlotsAvailable)

	turno := store.Snapshot(id)
	assert.Equal(t, []string{"u2"}, turno.Reservations)
	assert.NoError(t, turno.Validate())
	assert.Equal(t, 1, rec.PublishedCount())
	assert.Equal(t, 1, rec.Count("cancel", "success"))
}

func TestExecute_NotReserved(t *testing.T) {
	uc, store, rec := setup(t)
	id := store.Put(newTurno(2, 1, "u1"))

	_, err := uc.Execute(context.Background(), &Request{UserID: "u9", TurnoID: id})

	assert.ErrorIs(t, err, ErrNotReserved)
	turno := store.Snapshot(id)
	assert.Equal(t, 1, turno.SlotsAvailable)
	assert.Equal(t, []string{"u1"}, turno.Reservations)
	assert.Equal(t, 0, rec.PublishedCount())
	assert.Equal(t, 1, rec.Count("cancel", "not_reserved"))
}

func TestExecute_TurnoNotFound(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", TurnoID: 404})

	assert.ErrorIs(t, err, ErrTurnoNotFound)
}

// Счетчик уже на максимуме при наличии записи брони: отмена откатывается целиком
func TestExecute_CorruptCounter_RollsBack(t *testing.T) {
	uc, store, rec := setup(t)
	id := store.Put(newTurno(1, 1, "u1"))

	_, err := uc.Execute(context.Background(), &Request{UserID: "u1", TurnoID: id})

	assert.ErrorIs(t, err, ErrInternal)
	turno := store.Snapshot(id)
	assert.Equal(t, []string{"u1"}, turno.Reservations)
	assert.Equal(t, 1, turno.SlotsAvailable)
	assert.Equal(t, 1, rec.Count("cancel", "error"))
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{TurnoID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: "u1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ReleaseAllHolders(t *testing.T) {
	uc, store, _ := setup(t)
	id := store.Put(newTurno(2, 0, "u1", "u2"))

	_, err := uc.Execute(context.Background(), &Request{UserID: "u2", TurnoID: id})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{UserID: "u1", TurnoID: id})
	require.NoError(t, err)

	turno := store.Snapshot(id)
	assert.Equal(t, 2, turno.SlotsAvailable)
	assert.Empty(t, turno.Reservations)
	assert.NoError(t, turno.Validate())

	_, err = uc.Execute(context.Background(), &Request{UserID: "u1", TurnoID: id})
	assert.ErrorIs(t, err, ErrNotReserved)
}
