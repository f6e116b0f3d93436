package publish_turno

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
)

const operationPublish = "publish"

// UseCase use case публикации турно
type UseCase struct {
	placeRepo    PlaceRepository
	turnoRepo    TurnoRepository
	publisher    TurnoPublisher
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором интерпретируются дата и время турно
func NewUseCase(
	placeRepo PlaceRepository,
	turnoRepo TurnoRepository,
	publisher TurnoPublisher,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		placeRepo:    placeRepo,
		turnoRepo:    turnoRepo,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case публикации турно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PublishTurno: user=%s, place=%d, date=%s, time=%s, capacity=%d",
		req.UserID, req.PlaceID, req.Date.Format(domain.DateFormat), req.Time, req.Capacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PublishTurno: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата-время не в прошлом
	dateTime, err := req.Time.On(req.Date, uc.location)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateNotInPast(dateTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("PublishTurno: %v", err)
		return nil, err
	}

	// 3. Заведение и права
	place, err := uc.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			uc.logger.Warn("PublishTurno: place id=%d not found", req.PlaceID)
			return nil, ErrPlaceNotFound
		}
		uc.logger.Error("PublishTurno: failed to get place id=%d: %v", req.PlaceID, err)
		return nil, fmt.Errorf("%w: failed to get place: %v", ErrInternal, err)
	}

	if !place.IsManagedBy(req.UserID) {
		uc.logger.Warn("PublishTurno: user=%s is not owner or staff of place=%d", req.UserID, req.PlaceID)
		return nil, ErrAccessDenied
	}

	// 4. Создание: slots = slotsAvailable = capacity, без броней
	y, m, d := req.Date.Date()
	turno := &domain.Turno{
		PlaceID:        place.ID,
		PlaceName:      place.Name,
		Date:           time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Time:           req.Time,
		DateTime:       dateTime,
		Slots:          req.Capacity,
		SlotsAvailable: req.Capacity,
		Reservations:   []string{},
	}

	created, err := uc.turnoRepo.Create(ctx, turno)
	if err != nil {
		if errors.Is(err, turnoRepo.ErrDuplicateTurno) {
			uc.logger.Warn("PublishTurno: duplicate turno place=%d date=%s time=%s",
				req.PlaceID, req.Date.Format(domain.DateFormat), req.Time)
			uc.metrics.IncReservation(operationPublish, "duplicate")
			return nil, ErrDuplicateTurno
		}
		uc.logger.Error("PublishTurno: failed to create turno: %v", err)
		uc.metrics.IncReservation(operationPublish, "error")
		return nil, fmt.Errorf("%w: failed to create turno: %v", ErrInternal, err)
	}

	uc.metrics.IncReservation(operationPublish, "success")
	uc.publisher.PublishTurnoUpdated(created)

	uc.logger.Info("PublishTurno: published turno id=%d for place=%d", created.ID, created.PlaceID)

	return &Response{
		ID:             created.ID,
		PlaceID:        created.PlaceID,
		PlaceName:      created.PlaceName,
		Date:           created.Date,
		Time:           created.Time,
		DateTime:       created.DateTime,
		Slots:          created.Slots,
		SlotsAvailable: created.SlotsAvailable,
		CreatedAt:      created.CreatedAt,
	}, nil
}
