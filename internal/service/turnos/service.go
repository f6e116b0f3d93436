package turnos

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
	"github.com/m04kA/TurnIt/internal/service/turnos/models"
)

// Service сервис чтения турнос
type Service struct {
	turnoRepo TurnoRepository
	placeRepo PlaceRepository
	txManager TxManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса турнос
func NewService(turnoRepo TurnoRepository, placeRepo PlaceRepository, txManager TxManager, logger Logger) *Service {
	return &Service{
		turnoRepo: turnoRepo,
		placeRepo: placeRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает турно; список держателей виден только персоналу заведения
func (s *Service) GetByID(ctx context.Context, id int64, viewerID string) (*models.TurnoResponse, error) {
	var (
		turno *domain.Turno
		place *domain.Place
	)

	err := s.readOnly(ctx, "GetTurno", func(ctx context.Context) error {
		var err error
		turno, err = s.turnoRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, turnoRepo.ErrTurnoNotFound) {
				s.logger.Warn("GetTurno: turno id=%d not found", id)
				return ErrTurnoNotFound
			}
			s.logger.Error("GetTurno: repository error for turno id=%d: %v", id, err)
			return fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
		}

		place, err = s.getPlace(ctx, "GetTurno", turno.PlaceID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return models.FromDomainTurno(turno, viewerID, place.IsManagedBy(viewerID)), nil
}

// ListByPlace получает турнос заведения по фильтру
func (s *Service) ListByPlace(ctx context.Context, req *models.ListTurnosRequest) (*models.TurnoListResponse, error) {
	if req.PlaceID <= 0 {
		return nil, fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	var (
		place  *domain.Place
		turnos []*domain.Turno
	)

	err := s.readOnly(ctx, "ListTurnos", func(ctx context.Context) error {
		var err error
		place, err = s.getPlace(ctx, "ListTurnos", req.PlaceID)
		if err != nil {
			return err
		}

		turnos, err = s.turnoRepo.List(ctx, domain.TurnosFilter{
			PlaceID:       req.PlaceID,
			Date:          req.Date,
			OnlyAvailable: req.OnlyAvailable,
		})
		if err != nil {
			s.logger.Error("ListTurnos: repository error for place id=%d: %v", req.PlaceID, err)
			return fmt.Errorf("%w: ListByPlace - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	manager := place.IsManagedBy(req.ViewerID)
	resp := &models.TurnoListResponse{Turnos: make([]models.TurnoResponse, 0, len(turnos))}
	for _, t := range turnos {
		resp.Turnos = append(resp.Turnos, *models.FromDomainTurno(t, req.ViewerID, manager))
	}

	s.logger.Info("ListTurnos: found %d turnos for place id=%d", len(resp.Turnos), req.PlaceID)
	return resp, nil
}

// ListByUser получает турнос, в которых пользователь держит место
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.TurnoListResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	turnos, err := s.turnoRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListUserReservations: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: ListByUser - repository error: %v", ErrInternal, err)
	}

	resp := &models.TurnoListResponse{Turnos: make([]models.TurnoResponse, 0, len(turnos))}
	for _, t := range turnos {
		resp.Turnos = append(resp.Turnos, *models.FromDomainTurno(t, userID, false))
	}

	return resp, nil
}

// readOnly выполняет чтение заведения и турнос в одной read-only транзакции
func (s *Service) readOnly(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	err := s.txManager.DoReadOnly(ctx, fn)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTurnoNotFound) || errors.Is(err, ErrPlaceNotFound) || errors.Is(err, ErrInternal) {
		return err
	}
	s.logger.Error("%s: read transaction failed: %v", op, err)
	return fmt.Errorf("%w: %s - transaction error: %v", ErrInternal, op, err)
}

func (s *Service) getPlace(ctx context.Context, op string, placeID int64) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("%s: place id=%d not found", op, placeID)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("%s: failed to get place id=%d: %v", op, placeID, err)
		return nil, fmt.Errorf("%w: %s - place repository error: %v", ErrInternal, op, err)
	}
	return place, nil
}
