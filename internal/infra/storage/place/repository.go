package place

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

var placeColumns = []string{
	"id",
	"owner_id",
	"staff_ids",
	"name",
	"address",
	"lat",
	"lng",
	"description",
	"photo_url",
	"categories",
	"created_at",
	"updated_at",
}

// Repository репозиторий заведений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заведений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует заведение
func (r *Repository) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var lat, lng sql.NullFloat64
	if place.Location != nil {
		lat = sql.NullFloat64{Float64: place.Location.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: place.Location.Lng, Valid: true}
	}

	staff := place.StaffIDs
	if staff == nil {
		staff = []string{}
	}

	query, args, err := psqlbuilder.Insert("places").
		Columns(
			"owner_id",
			"staff_ids",
			"name",
			"address",
			"lat",
			"lng",
			"description",
			"photo_url",
			"categories",
		).
		Values(
			place.OwnerID,
			pq.Array(staff),
			place.Name,
			place.Address,
			lat,
			lng,
			place.Description,
			place.PhotoURL,
			pq.Array(categoriesToStrings(place.Categories)),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&place.ID, &place.CreatedAt, &place.UpdatedAt)
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	place.StaffIDs = staff

	return place, nil
}

// GetByID получает заведение по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(placeColumns...).
		From("places").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	place, err := scanPlace(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPlaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan place: %v", ErrScanRow, err)
	}

	return place, nil
}

// List получает все заведения, опционально по категории
// Порядок по ID, ранжирование по расстоянию делает сервис
func (r *Repository) List(ctx context.Context, filter domain.PlacesFilter) ([]*domain.Place, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(placeColumns...).
		From("places").
		OrderBy("id ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where("? = ANY(categories)", string(*filter.Category))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0)
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		places = append(places, place)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return places, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlace(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	var lat, lng sql.NullFloat64
	var staff, categories pq.StringArray

	err := row.Scan(
		&place.ID,
		&place.OwnerID,
		&staff,
		&place.Name,
		&place.Address,
		&lat,
		&lng,
		&place.Description,
		&place.PhotoURL,
		&categories,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		place.Location = &domain.Location{Lat: lat.Float64, Lng: lng.Float64}
	}

	place.StaffIDs = []string(staff)
	if place.StaffIDs == nil {
		place.StaffIDs = []string{}
	}

	place.Categories = make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		place.Categories = append(place.Categories, domain.Category(c))
	}

	return &place, nil
}

func categoriesToStrings(categories []domain.Category) []string {
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		out = append(out, string(c))
	}
	return out
}
