package reserve_turno

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurnIt/internal/domain"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
)

const operationReserve = "reserve"

// Исходы резервирования для метрики
const (
	resultSuccess         = "success"
	resultNoAvailability  = "no_availability"
	resultAlreadyReserved = "already_reserved"
	resultNotFound        = "not_found"
	resultInvalid         = "invalid"
	resultError           = "error"
)

// UseCase use case резервирования места в турно
//
// Место занимается одним условным UPDATE (slots_available > 0) и вставкой записи брони
// в одной транзакции: два конкурентных запроса на последнее место не могут оба пройти.
type UseCase struct {
	turnoRepo TurnoRepository
	txManager TransactionManager
	publisher TurnoPublisher
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	turnoRepo TurnoRepository,
	txManager TransactionManager,
	publisher TurnoPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		turnoRepo: turnoRepo,
		txManager: txManager,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case резервирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BySearch() {
		uc.logger.Info("ReserveTurno: user=%s, place=%d, date=%s, time=%s",
			req.UserID, req.PlaceID, req.Date.Format(domain.DateFormat), req.Time)
	} else {
		uc.logger.Info("ReserveTurno: user=%s, turno=%d", req.UserID, req.TurnoID)
	}

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveTurno: validation failed: %v", err)
		uc.metrics.IncReservation(operationReserve, resultInvalid)
		return nil, err
	}

	var (
		reservation *domain.Reservation
		updated     *domain.Turno
	)

	// 2. Условный декремент, запись брони и чтение результата в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		turnoID := req.TurnoID

		// 2.1. Поиск свободного турно по месту/дате/времени
		if req.BySearch() {
			found, err := uc.turnoRepo.FindAvailable(txCtx, req.PlaceID, req.Date, req.Time)
			if err != nil {
				if errors.Is(err, turnoRepo.ErrNoAvailability) {
					return ErrNoAvailability
				}
				return fmt.Errorf("%w: failed to find available turno: %v", ErrInternal, err)
			}
			turnoID = found.ID
		}

		// 2.2. Занимаем место: slots_available - 1 WHERE slots_available > 0
		if err := uc.turnoRepo.DecrementAvailable(txCtx, turnoID); err != nil {
			switch {
			case errors.Is(err, turnoRepo.ErrTurnoNotFound):
				return ErrTurnoNotFound
			case errors.Is(err, turnoRepo.ErrNoAvailability):
				return ErrNoAvailability
			default:
				return fmt.Errorf("%w: failed to decrement availability: %v", ErrInternal, err)
			}
		}

		// 2.3. Запись брони (уникальна для пары турно-пользователь)
		created, err := uc.turnoRepo.AddReservation(txCtx, turnoID, req.UserID)
		if err != nil {
			switch {
			case errors.Is(err, turnoRepo.ErrAlreadyReserved):
				return ErrAlreadyReserved
			case errors.Is(err, turnoRepo.ErrUserNotFound):
				return ErrUserNotRegistered
			default:
				return fmt.Errorf("%w: failed to add reservation: %v", ErrInternal, err)
			}
		}
		reservation = created

		// 2.4. Актуальное состояние турно для ответа и рассылки
		turno, err := uc.turnoRepo.GetByID(txCtx, turnoID)
		if err != nil {
			return fmt.Errorf("%w: failed to reload turno: %v", ErrInternal, err)
		}
		if err := turno.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		updated = turno

		return nil
	})

	if err != nil {
		uc.observeFailure(req, err)
		return nil, err
	}

	uc.metrics.IncReservation(operationReserve, resultSuccess)
	uc.publisher.PublishTurnoUpdated(updated)

	uc.logger.Info("ReserveTurno: user=%s reserved turno=%d, slotsAvailable=%d/%d",
		req.UserID, updated.ID, updated.SlotsAvailable, updated.Slots)

	return &Response{
		ReservationID:  reservation.ID,
		TurnoID:        updated.ID,
		PlaceID:        updated.PlaceID,
		PlaceName:      updated.PlaceName,
		Date:           updated.Date,
		Time:           updated.Time,
		DateTime:       updated.DateTime,
		Slots:          updated.Slots,
		SlotsAvailable: updated.SlotsAvailable,
		ReservedAt:     reservation.CreatedAt,
	}, nil
}

func (uc *UseCase) observeFailure(req *Request, err error) {
	switch {
	case errors.Is(err, ErrNoAvailability):
		uc.logger.Warn("ReserveTurno: no availability for user=%s, turno=%d, place=%d", req.UserID, req.TurnoID, req.PlaceID)
		uc.metrics.IncReservation(operationReserve, resultNoAvailability)
	case errors.Is(err, ErrAlreadyReserved):
		uc.logger.Warn("ReserveTurno: user=%s already holds turno=%d", req.UserID, req.TurnoID)
		uc.metrics.IncReservation(operationReserve, resultAlreadyReserved)
	case errors.Is(err, ErrTurnoNotFound):
		uc.logger.Warn("ReserveTurno: turno=%d not found", req.TurnoID)
		uc.metrics.IncReservation(operationReserve, resultNotFound)
	case errors.Is(err, ErrUserNotRegistered):
		uc.logger.Warn("ReserveTurno: user=%s is not registered", req.UserID)
		uc.metrics.IncReservation(operationReserve, resultInvalid)
	default:
		uc.logger.Error("ReserveTurno: failed for user=%s: %v", req.UserID, err)
		uc.metrics.IncReservation(operationReserve, resultError)
	}
}
