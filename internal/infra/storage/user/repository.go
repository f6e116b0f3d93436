package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/dbmetrics"
	"github.com/m04kA/TurnIt/pkg/pgerrors"
	"github.com/m04kA/TurnIt/pkg/psqlbuilder"
)

var userColumns = []string{
	"id",
	"email",
	"display_name",
	"role",
	"address",
	"lat",
	"lng",
	"loyalty_points",
	"favorite_place_ids",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует пользователя
// ID задается снаружи (subject из токена)
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	lat, lng := locationArgs(user.Location)
	favorites := user.FavoritePlaceIDs
	if favorites == nil {
		favorites = []int64{}
	}

	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"id",
			"email",
			"display_name",
			"role",
			"address",
			"lat",
			"lng",
			"loyalty_points",
			"favorite_place_ids",
		).
		Values(
			user.ID,
			user.Email,
			user.DisplayName,
			user.Role,
			user.Address,
			lat,
			lng,
			user.LoyaltyPoints,
			pq.Array(favorites),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	user.FavoritePlaceIDs = favorites

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	var lat, lng sql.NullFloat64
	var favorites pq.Int64Array

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.Role,
		&user.Address,
		&lat,
		&lng,
		&user.LoyaltyPoints,
		&favorites,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	user.Location = scanLocation(lat, lng)
	user.FavoritePlaceIDs = []int64(favorites)
	if user.FavoritePlaceIDs == nil {
		user.FavoritePlaceIDs = []int64{}
	}

	return &user, nil
}

// AddFavorite добавляет заведение в избранное
// Повторное добавление ничего не меняет
func (r *Repository) AddFavorite(ctx context.Context, userID string, placeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("favorite_place_ids", squirrel.Expr(
			"CASE WHEN ?::bigint = ANY(favorite_place_ids) THEN favorite_place_ids ELSE array_append(favorite_place_ids, ?::bigint) END",
			placeID, placeID,
		)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddFavorite - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingUser(ctx, executor, "AddFavorite", query, args)
}

// RemoveFavorite удаляет заведение из избранного
func (r *Repository) RemoveFavorite(ctx context.Context, userID string, placeID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("favorite_place_ids", squirrel.Expr("array_remove(favorite_place_ids, ?::bigint)", placeID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveFavorite - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingUser(ctx, executor, "RemoveFavorite", query, args)
}

func (r *Repository) execAffectingUser(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func locationArgs(location *domain.Location) (sql.NullFloat64, sql.NullFloat64) {
	if location == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: location.Lat, Valid: true}, sql.NullFloat64{Float64: location.Lng, Valid: true}
}

func scanLocation(lat, lng sql.NullFloat64) *domain.Location {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
}
