package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	userRepo "github.com/m04kA/TurnIt/internal/infra/storage/user"
	"github.com/m04kA/TurnIt/internal/service/users/models"
)

// Service сервис пользователей: регистрация, профиль, избранное
type Service struct {
	userRepo  UserRepository
	placeRepo PlaceRepository
	geocoder  Geocoder
	logger    Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	placeRepo PlaceRepository,
	geocoder Geocoder,
	logger Logger,
) *Service {
	return &Service{
		userRepo:  userRepo,
		placeRepo: placeRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Register регистрирует пользователя с id из токена
// Роль фиксируется при регистрации; адрес геокодируется, при ошибке точка остается пустой
func (s *Service) Register(ctx context.Context, req *models.RegisterUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user=%s role=%s", req.UserID, req.Role)

	role := domain.Role(req.Role)
	if req.UserID == "" || !role.IsValid() {
		s.logger.Warn("Register: invalid input for user=%s role=%s", req.UserID, req.Role)
		return nil, fmt.Errorf("%w: userID and valid role are required", ErrInvalidInput)
	}

	user := &domain.User{
		ID:               req.UserID,
		Email:            strings.TrimSpace(req.Email),
		DisplayName:      strings.TrimSpace(req.DisplayName),
		Role:             role,
		Address:          strings.TrimSpace(req.Address),
		FavoritePlaceIDs: []int64{},
	}
	user.Location = s.geocode(ctx, user.Address)

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Register: user=%s already exists", req.UserID)
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Register: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user=%s", created.ID)
	return models.FromDomainUser(created), nil
}

// GetProfile получает профиль пользователя
func (s *Service) GetProfile(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user=%s not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// AddFavorite добавляет существующее заведение в избранное (идемпотентно)
func (s *Service) AddFavorite(ctx context.Context, userID string, placeID int64) error {
	s.logger.Info("AddFavorite: user=%s place=%d", userID, placeID)

	if placeID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if _, err := s.placeRepo.GetByID(ctx, placeID); err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("AddFavorite: place id=%d not found", placeID)
			return ErrPlaceNotFound
		}
		s.logger.Error("AddFavorite: failed to get place id=%d: %v", placeID, err)
		return fmt.Errorf("%w: AddFavorite - place repository error: %v", ErrInternal, err)
	}

	if err := s.userRepo.AddFavorite(ctx, userID, placeID); err != nil {
		return s.mapUserError("AddFavorite", userID, err)
	}

	return nil
}

// RemoveFavorite удаляет заведение из избранного
func (s *Service) RemoveFavorite(ctx context.Context, userID string, placeID int64) error {
	s.logger.Info("RemoveFavorite: user=%s place=%d", userID, placeID)

	if placeID <= 0 {
		return fmt.Errorf("%w: placeID must be positive", ErrInvalidInput)
	}

	if err := s.userRepo.RemoveFavorite(ctx, userID, placeID); err != nil {
		return s.mapUserError("RemoveFavorite", userID, err)
	}

	return nil
}

func (s *Service) mapUserError(op, userID string, err error) error {
	if errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Warn("%s: user=%s not found", op, userID)
		return ErrUserNotFound
	}
	s.logger.Error("%s: repository error for user=%s: %v", op, userID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// geocode возвращает точку адреса; ошибки геокодера не прерывают операцию
func (s *Service) geocode(ctx context.Context, address string) *domain.Location {
	if address == "" || s.geocoder == nil {
		return nil
	}

	location, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.Warn("geocode: failed for address=%q, location left unset: %v", address, err)
		return nil
	}

	return location
}
