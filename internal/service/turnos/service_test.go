package turnos

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	"github.com/m04kA/TurnIt/internal/service/turnos/models"
	"github.com/m04kA/TurnIt/internal/testutil/turnostore"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakePlaces map[int64]*domain.Place

func (f fakePlaces) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	p, ok := f[id]
	if !ok {
		return nil, placeRepo.ErrPlaceNotFound
	}
	return p, nil
}

func fixture() (*turnostore.Store, fakePlaces, int64, int64) {
	store := turnostore.New()
	day := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	full := store.Put(domain.Turno{
		PlaceID: 1, Date: day, Time: "10:00", DateTime: day.Add(10 * time.Hour),
		Slots: 1, SlotsAvailable: 0, Reservations: []string{"ana"},
	})
	open := store.Put(domain.Turno{
		PlaceID: 1, Date: day, Time: "11:00", DateTime: day.Add(11 * time.Hour),
		Slots: 3, SlotsAvailable: 2, Reservations: []string{"bruno"},
	})

	places := fakePlaces{1: {ID: 1, OwnerID: "owner", StaffIDs: []string{"staff"}}}
	return store, places, full, open
}

func TestGetByID_HidesReservationsFromCustomers(t *testing.T) {
	store, places, full, _ := fixture()
	svc := NewService(store, places, store.TxManager(), logger.Nop())

	resp, err := svc.GetByID(context.Background(), full, "ana")
	require.NoError(t, err)
	assert.Nil(t, resp.Reservations)
	assert.True(t, resp.ReservedByMe)
	assert.Equal(t, 1, resp.ReservedCount)

	resp, err = svc.GetByID(context.Background(), full, "staff")
	require.NoError(t, err)
	assert.Equal(t, []string{"ana"}, resp.Reservations)
	assert.False(t, resp.ReservedByMe)

	_, err = svc.GetByID(context.Background(), 404, "")
	assert.ErrorIs(t, err, ErrTurnoNotFound)
}

func TestListByPlace(t *testing.T) {
	store, places, _, open := fixture()
	svc := NewService(store, places, store.TxManager(), logger.Nop())

	resp, err := svc.ListByPlace(context.Background(), &models.ListTurnosRequest{PlaceID: 1})
	require.NoError(t, err)
	assert.Len(t, resp.Turnos, 2)
	assert.Equal(t, "10:00", resp.Turnos[0].Time)
	assert.Equal(t, "2026-11-02", resp.Turnos[0].Date)

	resp, err = svc.ListByPlace(context.Background(), &models.ListTurnosRequest{PlaceID: 1, OnlyAvailable: true, ViewerID: "owner"})
	require.NoError(t, err)
	require.Len(t, resp.Turnos, 1)
	assert.Equal(t, open, resp.Turnos[0].ID)
	assert.Equal(t, []string{"bruno"}, resp.Turnos[0].Reservations)

	_, err = svc.ListByPlace(context.Background(), &models.ListTurnosRequest{PlaceID: 2})
	assert.ErrorIs(t, err, ErrPlaceNotFound)

	_, err = svc.ListByPlace(context.Background(), &models.ListTurnosRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListByUser(t *testing.T) {
	store, places, _, open := fixture()
	svc := NewService(store, places, store.TxManager(), logger.Nop())

	resp, err := svc.ListByUser(context.Background(), "bruno")
	require.NoError(t, err)
	require.Len(t, resp.Turnos, 1)
	assert.Equal(t, open, resp.Turnos[0].ID)
	assert.True(t, resp.Turnos[0].ReservedByMe)
	assert.Nil(t, resp.Turnos[0].Reservations)

	_, err = svc.ListByUser(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type failingTx struct{}

func (failingTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return errors.New("connection reset")
}

func TestReads_TransactionFailure(t *testing.T) {
	store, places, full, _ := fixture()
	svc := NewService(store, places, failingTx{}, logger.Nop())

	_, err := svc.GetByID(context.Background(), full, "")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListByPlace(context.Background(), &models.ListTurnosRequest{PlaceID: 1})
	assert.ErrorIs(t, err, ErrInternal)
}
