package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	userRepo "github.com/m04kA/TurnIt/internal/infra/storage/user"
	"github.com/m04kA/TurnIt/internal/service/users/models"
	"github.com/m04kA/TurnIt/pkg/logger"
)

type fakeUsers struct {
	users map[string]*domain.User
	err   error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*domain.User{}}
}

func (f *fakeUsers) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.users[user.ID]; ok {
		return nil, userRepo.ErrUserAlreadyExists
	}
	created := *user
	f.users[user.ID] = &created
	return &created, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUsers) AddFavorite(ctx context.Context, userID string, placeID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	if !u.HasFavorite(placeID) {
		u.FavoritePlaceIDs = append(u.FavoritePlaceIDs, placeID)
	}
	return nil
}

func (f *fakeUsers) RemoveFavorite(ctx context.Context, userID string, placeID int64) error {
	u, ok := f.users[userID]
	if !ok {
		return userRepo.ErrUserNotFound
	}
	kept := u.FavoritePlaceIDs[:0]
	for _, id := range u.FavoritePlaceIDs {
		if id != placeID {
			kept = append(kept, id)
		}
	}
	u.FavoritePlaceIDs = kept
	return nil
}

type fakePlaces map[int64]*domain.Place

func (f fakePlaces) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	p, ok := f[id]
	if !ok {
		return nil, placeRepo.ErrPlaceNotFound
	}
	return p, nil
}

type fakeGeocoder struct {
	location *domain.Location
	err      error
	calls    int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	f.calls++
	return f.location, f.err
}

func TestRegister(t *testing.T) {
	users := newFakeUsers()
	geo := &fakeGeocoder{location: &domain.Location{Lat: -34.6, Lng: -58.4}}
	svc := NewService(users, fakePlaces{}, geo, logger.Nop())

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		UserID:      "uid-1",
		Email:       " ana@example.com ",
		DisplayName: "Ana",
		Role:        "user",
		Address:     "Av. Corrientes 1234",
	})

	require.NoError(t, err)
	assert.Equal(t, "uid-1", resp.ID)
	assert.Equal(t, "ana@example.com", resp.Email)
	require.NotNil(t, resp.Location)
	assert.InDelta(t, -34.6, resp.Location.Lat, 1e-9)
	assert.Equal(t, 1, geo.calls)
}

func TestRegister_GeocoderFailureKeepsUser(t *testing.T) {
	users := newFakeUsers()
	geo := &fakeGeocoder{err: errors.New("boom")}
	svc := NewService(users, fakePlaces{}, geo, logger.Nop())

	resp, err := svc.Register(context.Background(), &models.RegisterUserRequest{
		UserID: "uid-1", Email: "a@b.c", DisplayName: "A", Role: "place", Address: "somewhere",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Location)
	assert.Equal(t, "place", resp.Role)
}

func TestRegister_Errors(t *testing.T) {
	users := newFakeUsers()
	svc := NewService(users, fakePlaces{}, &fakeGeocoder{}, logger.Nop())
	req := &models.RegisterUserRequest{UserID: "uid-1", Email: "a@b.c", DisplayName: "A", Role: "user"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = svc.Register(context.Background(), &models.RegisterUserRequest{UserID: "uid-2", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	users.err = errors.New("db down")
	_, err = svc.Register(context.Background(), &models.RegisterUserRequest{UserID: "uid-3", Role: "user"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewService(newFakeUsers(), fakePlaces{}, nil, logger.Nop())

	_, err := svc.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFavorites(t *testing.T) {
	users := newFakeUsers()
	users.users["uid-1"] = &domain.User{ID: "uid-1", Role: domain.RoleUser}
	places := fakePlaces{7: {ID: 7, Name: "Barberia Sur"}}
	svc := NewService(users, places, nil, logger.Nop())
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, "uid-1", 7))
	require.NoError(t, svc.AddFavorite(ctx, "uid-1", 7))
	assert.Equal(t, []int64{7}, users.users["uid-1"].FavoritePlaceIDs)

	assert.ErrorIs(t, svc.AddFavorite(ctx, "uid-1", 99), ErrPlaceNotFound)
	assert.ErrorIs(t, svc.AddFavorite(ctx, "uid-1", 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddFavorite(ctx, "ghost", 7), ErrUserNotFound)

	require.NoError(t, svc.RemoveFavorite(ctx, "uid-1", 7))
	assert.Empty(t, users.users["uid-1"].FavoritePlaceIDs)
}
