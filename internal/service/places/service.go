package places

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurnIt/internal/domain"
	placeRepo "github.com/m04kA/TurnIt/internal/infra/storage/place"
	userRepo "github.com/m04kA/TurnIt/internal/infra/storage/user"
	"github.com/m04kA/TurnIt/internal/service/places/models"
)

// Service сервис заведений
type Service struct {
	placeRepo PlaceRepository
	userRepo  UserRepository
	geocoder  Geocoder
	logger    Logger
}

// NewService создает новый экземпляр сервиса заведений
func NewService(
	placeRepo PlaceRepository,
	userRepo UserRepository,
	geocoder Geocoder,
	logger Logger,
) *Service {
	return &Service{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Register регистрирует заведение; владелец - аккаунт с ролью place
func (s *Service) Register(ctx context.Context, req *models.RegisterPlaceRequest) (*models.PlaceResponse, error) {
	s.logger.Info("RegisterPlace: user=%s name=%q", req.UserID, req.Name)

	categories, err := toDomainCategories(req.Categories)
	if err != nil {
		s.logger.Warn("RegisterPlace: %v", err)
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("RegisterPlace: user=%s not registered", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("RegisterPlace: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: RegisterPlace - user repository error: %v", ErrInternal, err)
	}

	if !owner.IsPlaceOwner() {
		s.logger.Warn("RegisterPlace: user=%s has role=%s", req.UserID, owner.Role)
		return nil, ErrNotPlaceAccount
	}

	place := &domain.Place{
		OwnerID:     owner.ID,
		StaffIDs:    dedupe(req.StaffIDs),
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Description: strings.TrimSpace(req.Description),
		PhotoURL:    strings.TrimSpace(req.PhotoURL),
		Categories:  categories,
	}

	if s.geocoder != nil {
		location, gerr := s.geocoder.Geocode(ctx, place.Address)
		if gerr != nil {
			s.logger.Warn("RegisterPlace: geocoding failed for address=%q, location left unset: %v", place.Address, gerr)
			location = nil
		}
		place.Location = location
	}

	created, err := s.placeRepo.Create(ctx, place)
	if err != nil {
		if errors.Is(err, placeRepo.ErrOwnerNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("RegisterPlace: repository error: %v", err)
		return nil, fmt.Errorf("%w: RegisterPlace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterPlace: successfully registered place id=%d owner=%s", created.ID, created.OwnerID)
	return models.FromDomainPlace(created), nil
}

// GetByID получает заведение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.PlaceResponse, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, placeRepo.ErrPlaceNotFound) {
			s.logger.Warn("GetPlace: place id=%d not found", id)
			return nil, ErrPlaceNotFound
		}
		s.logger.Error("GetPlace: repository error for place id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPlace(place), nil
}

func toDomainCategories(raw []string) ([]domain.Category, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", ErrInvalidInput)
	}

	seen := make(map[domain.Category]struct{}, len(raw))
	out := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		c := domain.Category(strings.ToLower(strings.TrimSpace(r)))
		if !c.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, r)
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return out, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
