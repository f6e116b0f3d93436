package turno

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TurnIt/internal/domain"
	"github.com/m04kA/TurnIt/pkg/dbmetrics"
	"github.com/m04kA/TurnIt/pkg/pgerrors"
	"github.com/m04kA/TurnIt/pkg/psqlbuilder"
	"github.com/m04kA/TurnIt/pkg/types"
)

// Колонки турно вместе со списком держателей мест (по порядку брони)
var turnoColumns = []string{
	"t.id",
	"t.place_id",
	"t.place_name",
	"t.date",
	"t.start_time",
	"t.date_time",
	"t.slots",
	"t.slots_available",
	"COALESCE(array_agg(r.user_id ORDER BY r.id) FILTER (WHERE r.id IS NOT NULL), '{}') AS reservations",
	"t.created_at",
	"t.updated_at",
}

// Repository репозиторий турнос и броней
//
// Все изменения счетчика slots_available выполняются одним условным UPDATE,
// без чтения-изменения-записи. Резервирование и отмена должны вызываться
// внутри одной транзакции (txmanager.Do) вместе с операцией над turno_reservations.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория турнос
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create публикует турно
// Повтор (place_id, date, start_time) отклоняется уникальным индексом
func (r *Repository) Create(ctx context.Context, turno *domain.Turno) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turnos").
		Columns(
			"place_id",
			"place_name",
			"date",
			"start_time",
			"date_time",
			"slots",
			"slots_available",
		).
		Values(
			turno.PlaceID,
			turno.PlaceName,
			turno.Date.Format(domain.DateFormat),
			turno.Time.String(),
			turno.DateTime,
			turno.Slots,
			turno.SlotsAvailable,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&turno.ID, &turno.CreatedAt, &turno.UpdatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrDuplicateTurno
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	if turno.Reservations == nil {
		turno.Reservations = []string{}
	}

	return turno, nil
}

// GetByID получает турно по ID вместе со списком держателей мест
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectTurnos().
		Where(squirrel.Eq{"t.id": id}).
		GroupBy("t.id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	turno, err := scanTurno(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTurnoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan turno: %v", ErrScanRow, err)
	}

	return turno, nil
}

// List получает турнос заведения, упорядоченные по дате-времени
func (r *Repository) List(ctx context.Context, filter domain.TurnosFilter) ([]*domain.Turno, error) {
	selectBuilder := selectTurnos().
		Where(squirrel.Eq{"t.place_id": filter.PlaceID})

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"t.slots_available": 0})
	}

	return r.queryTurnos(ctx, "List", selectBuilder.GroupBy("t.id").OrderBy("t.date_time ASC", "t.id ASC"))
}

// ListByUser получает турнос, в которых пользователь держит место
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.Turno, error) {
	selectBuilder := selectTurnos().
		Where(squirrel.Expr("t.id IN (SELECT turno_id FROM turno_reservations WHERE user_id = ?)", userID)).
		GroupBy("t.id").
		OrderBy("t.date_time ASC", "t.id ASC")

	return r.queryTurnos(ctx, "ListByUser", selectBuilder)
}

// FindAvailable ищет турно заведения на дату и время со свободными местами
func (r *Repository) FindAvailable(ctx context.Context, placeID int64, date time.Time, at types.TimeString) (*domain.Turno, error) {
	turnos, err := r.queryTurnos(ctx, "FindAvailable", selectTurnos().
		Where(squirrel.Eq{
			"t.place_id":   placeID,
			"t.date":       date.Format(domain.DateFormat),
			"t.start_time": at.String(),
		}).
		Where(squirrel.Gt{"t.slots_available": 0}).
		GroupBy("t.id").
		OrderBy("t.id ASC").
		Limit(1))
	if err != nil {
		return nil, err
	}

	if len(turnos) == 0 {
		return nil, ErrNoAvailability
	}

	return turnos[0], nil
}

// DecrementAvailable занимает одно место: slots_available - 1 при условии slots_available > 0
// Если ни одна строка не изменена, различает отсутствие турно и отсутствие мест
func (r *Repository) DecrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turnos").
		Set("slots_available", squirrel.Expr("slots_available - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"slots_available": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DecrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := execRowsAffected(ctx, executor, "DecrementAvailable", query, args)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		exists, err := r.exists(ctx, executor, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTurnoNotFound
		}
		return ErrNoAvailability
	}

	return nil
}

// IncrementAvailable освобождает одно место: slots_available + 1 при условии slots_available < slots
func (r *Repository) IncrementAvailable(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("turnos").
		Set("slots_available", squirrel.Expr("slots_available + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("slots_available < slots").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementAvailable - build update query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := execRowsAffected(ctx, executor, "IncrementAvailable", query, args)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: turnoID=%d", ErrCapacityExceeded, id)
	}

	return nil
}

// AddReservation создает запись брони пользователя в турно
func (r *Repository) AddReservation(ctx context.Context, turnoID int64, userID string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("turno_reservations").
		Columns("turno_id", "user_id").
		Values(turnoID, userID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: AddReservation - build insert query: %v", ErrBuildQuery, err)
	}

	reservation := &domain.Reservation{TurnoID: turnoID, UserID: userID}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &reservation.CreatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrAlreadyReserved
	}
	if pgerrors.IsForeignKeyViolation(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: AddReservation - execute insert: %v", ErrExecQuery, err)
	}

	return reservation, nil
}

// RemoveReservation удаляет ровно одну запись брони пользователя в турно
func (r *Repository) RemoveReservation(ctx context.Context, turnoID int64, userID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("turno_reservations").
		Where(squirrel.Expr(
			"id = (SELECT id FROM turno_reservations WHERE turno_id = ? AND user_id = ? ORDER BY id LIMIT 1 FOR UPDATE)",
			turnoID, userID,
		)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RemoveReservation - build delete query: %v", ErrBuildQuery, err)
	}

	rowsAffected, err := execRowsAffected(ctx, executor, "RemoveReservation", query, args)
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotReserved
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, executor DBExecutor, id int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("turnos").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}

	return exists, nil
}

func (r *Repository) queryTurnos(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Turno, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	turnos := make([]*domain.Turno, 0)
	for rows.Next() {
		turno, err := scanTurno(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		turnos = append(turnos, turno)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return turnos, nil
}

func selectTurnos() squirrel.SelectBuilder {
	return psqlbuilder.Select(turnoColumns...).
		From("turnos t").
		LeftJoin("turno_reservations r ON r.turno_id = t.id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTurno(row rowScanner) (*domain.Turno, error) {
	var turno domain.Turno
	var reservations pq.StringArray

	err := row.Scan(
		&turno.ID,
		&turno.PlaceID,
		&turno.PlaceName,
		&turno.Date,
		&turno.Time,
		&turno.DateTime,
		&turno.Slots,
		&turno.SlotsAvailable,
		&reservations,
		&turno.CreatedAt,
		&turno.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	turno.Reservations = []string(reservations)
	if turno.Reservations == nil {
		turno.Reservations = []string{}
	}

	return &turno, nil
}

func execRowsAffected(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}
