package cancel_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurnIt/internal/domain"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
)

const operationCancel = "cancel"

const (
	resultSuccess     = "success"
	resultNotReserved = "not_reserved"
	resultNotFound    = "not_found"
	resultInvalid     = "invalid"
	resultError       = "error"
)

// UseCase use case отмены брони
// Удаляет ровно одну запись брони пользователя и освобождает одно место в одной транзакции
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

// Execute выполняет use case отмены брони
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelReservation: user=%s, turno=%d", req.UserID, req.TurnoID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelReservation: validation failed: %v", err)
		uc.metrics.IncReservation(operationCancel, resultInvalid)
		return nil, err
	}

	var updated *domain.Turno

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Турно должно существовать
		if _, err := uc.turnoRepo.GetByID(txCtx, req.TurnoID); err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				return ErrTurnoNotFound
			}
			return fmt.Errorf("%w: failed to get turno: %v", ErrInternal, err)
		}

		// 2. Удаляем одну запись брони пользователя (FOR UPDATE в подзапросе)
		if err := uc.turnoRepo.RemoveReservation(txCtx, req.TurnoID, req.UserID); err != nil {
			if errors.Is(err, turnoRepo.ErrNotReserved) {
				return ErrNotReserved
			}
			return fmt.Errorf("%w: failed to remove reservation: %v", ErrInternal, err)
		}

		// 3. Освобождаем место: slots_available + 1 WHERE slots_available < slots
		// Счетчик уже равен емкости только при нарушенном инварианте: откатываем всю отмену
		if err := uc.turnoRepo.IncrementAvailable(txCtx, req.TurnoID); err != nil {
			return fmt.Errorf("%w: failed to increment availability: %v", ErrInternal, err)
		}

		turno, err := uc.turnoRepo.GetByID(txCtx, req.TurnoID)
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
		switch {
		case errors.Is(err, ErrNotReserved):
			uc.logger.Warn("CancelReservation: user=%s holds nothing in turno=%d", req.UserID, req.TurnoID)
			uc.metrics.IncReservation(operationCancel, resultNotReserved)
		case errors.Is(err, ErrTurnoNotFound):
			uc.logger.Warn("CancelReservation: turno=%d not found", req.TurnoID)
			uc.metrics.IncReservation(operationCancel, resultNotFound)
		default:
			uc.logger.Error("CancelReservation: failed for user=%s, turno=%d: %v", req.UserID, req.TurnoID, err)
			uc.metrics.IncReservation(operationCancel, resultError)
		}
		return nil, err
	}

	uc.metrics.IncReservation(operationCancel, resultSuccess)
	uc.publisher.PublishTurnoUpdated(updated)

	uc.logger.Info("CancelReservation: user=%s released turno=%d, slotsAvailable=%d/%d",
		req.UserID, updated.ID, updated.SlotsAvailable, updated.Slots)

	return &Response{
		TurnoID:        updated.ID,
		PlaceID:        updated.PlaceID,
		PlaceName:      updated.PlaceName,
		Date:           updated.Date,
		Time:           updated.Time,
		DateTime:       updated.DateTime,
		Slots:          updated.Slots,
		SlotsAvailable: updated.SlotsAvailable,
	}, nil
}
