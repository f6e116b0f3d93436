// Package turnostore содержит in-memory реализацию хранилища турнос для тестов usecase.
// Семантика совпадает с Postgres-репозиторием: условные обновления счетчика,
// уникальность брони, откат изменений транзакции при ошибке.
package turnostore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/TurnIt/internal/domain"
	turnoRepo "github.com/m04kA/TurnIt/internal/infra/storage/turno"
	"github.com/m04kA/TurnIt/pkg/types"
)

type txKey struct{}

type txLog struct {
	mu   sync.Mutex
	undo []func()
}

// Store in-memory хранилище турнос и броней
type Store struct {
	mu           sync.Mutex
	turnos       map[int64]*domain.Turno
	reservations []domain.Reservation
	nextID       int64
	nextResID    int64
	users        map[string]bool // nil = все пользователи зарегистрированы
}

func New() *Store {
	return &Store{turnos: make(map[int64]*domain.Turno)}
}

// RegisterUsers ограничивает набор зарегистрированных пользователей
func (s *Store) RegisterUsers(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users == nil {
		s.users = make(map[string]bool)
	}
	for _, id := range ids {
		s.users[id] = true
	}
}

// Put добавляет турно как есть и возвращает его ID
func (s *Store) Put(t domain.Turno) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t.ID = s.nextID
	for _, userID := range t.Reservations {
		s.nextResID++
		s.reservations = append(s.reservations, domain.Reservation{ID: s.nextResID, TurnoID: t.ID, UserID: userID})
	}
	t.Reservations = nil
	s.turnos[t.ID] = &t
	return t.ID
}

// Snapshot возвращает текущее состояние турно
func (s *Store) Snapshot(id int64) *domain.Turno {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.turnos[id]
	if !ok {
		return nil
	}
	return s.materialize(t)
}

func (s *Store) Create(ctx context.Context, turno *domain.Turno) (*domain.Turno, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.turnos {
		if t.PlaceID == turno.PlaceID && t.Date.Equal(turno.Date) && t.Time == turno.Time {
			return nil, turnoRepo.ErrDuplicateTurno
		}
	}
	s.nextID++
	created := *turno
	created.ID = s.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	created.Reservations = nil
	s.turnos[created.ID] = &created
	id := created.ID
	s.record(ctx, func() { delete(s.turnos, id) })
	return s.materialize(&created), nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*domain.Turno, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.turnos[id]
	if !ok {
		return nil, turnoRepo.ErrTurnoNotFound
	}
	return s.materialize(t), nil
}

func (s *Store) List(ctx context.Context, filter domain.TurnosFilter) ([]*domain.Turno, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Turno, 0)
	for _, t := range s.turnos {
		if t.PlaceID != filter.PlaceID {
			continue
		}
		if filter.Date != nil && !sameDay(t.Date, *filter.Date) {
			continue
		}
		if filter.OnlyAvailable && t.SlotsAvailable <= 0 {
			continue
		}
		out = append(out, s.materialize(t))
	}
	sortTurnos(out)
	return out, nil
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]*domain.Turno, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Turno, 0)
	for _, t := range s.turnos {
		m := s.materialize(t)
		if m.HasReservation(userID) {
			out = append(out, m)
		}
	}
	sortTurnos(out)
	return out, nil
}

func (s *Store) FindAvailable(ctx context.Context, placeID int64, date time.Time, at types.TimeString) (*domain.Turno, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found *domain.Turno
	for _, t := range s.turnos {
		if t.PlaceID == placeID && sameDay(t.Date, date) && t.Time == at && t.SlotsAvailable > 0 {
			if found == nil || t.ID < found.ID {
				found = t
			}
		}
	}
	if found == nil {
		return nil, turnoRepo.ErrNoAvailability
	}
	return s.materialize(found), nil
}

func (s *Store) DecrementAvailable(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.turnos[id]
	if !ok {
		return turnoRepo.ErrTurnoNotFound
	}
	if t.SlotsAvailable <= 0 {
		return turnoRepo.ErrNoAvailability
	}
	t.SlotsAvailable--
	s.record(ctx, func() { t.SlotsAvailable++ })
	return nil
}

func (s *Store) IncrementAvailable(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.turnos[id]
	if !ok || t.SlotsAvailable >= t.Slots {
		return turnoRepo.ErrCapacityExceeded
	}
	t.SlotsAvailable++
	s.record(ctx, func() { t.SlotsAvailable-- })
	return nil
}

func (s *Store) AddReservation(ctx context.Context, turnoID int64, userID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.users != nil && !s.users[userID] {
		return nil, turnoRepo.ErrUserNotFound
	}
	for _, r := range s.reservations {
		if r.TurnoID == turnoID && r.UserID == userID {
			return nil, turnoRepo.ErrAlreadyReserved
		}
	}
	s.nextResID++
	r := domain.Reservation{ID: s.nextResID, TurnoID: turnoID, UserID: userID, CreatedAt: time.Now()}
	s.reservations = append(s.reservations, r)
	s.record(ctx, func() { s.removeReservationLocked(r.ID) })
	return &r, nil
}

func (s *Store) RemoveReservation(ctx context.Context, turnoID int64, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.TurnoID == turnoID && r.UserID == userID {
			removed := r
			s.removeReservationLocked(r.ID)
			s.record(ctx, func() { s.reservations = append(s.reservations, removed) })
			return nil
		}
	}
	return turnoRepo.ErrNotReserved
}

func (s *Store) removeReservationLocked(id int64) {
	for i, r := range s.reservations {
		if r.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return
		}
	}
}

func (s *Store) materialize(t *domain.Turno) *domain.Turno {
	out := *t
	holders := make([]domain.Reservation, 0)
	for _, r := range s.reservations {
		if r.TurnoID == t.ID {
			holders = append(holders, r)
		}
	}
	sort.Slice(holders, func(i, j int) bool { return holders[i].ID < holders[j].ID })
	out.Reservations = make([]string, 0, len(holders))
	for _, r := range holders {
		out.Reservations = append(out.Reservations, r.UserID)
	}
	return &out
}

// record запоминает компенсирующее действие; вызывается под s.mu
func (s *Store) record(ctx context.Context, undo func()) {
	if log, ok := ctx.Value(txKey{}).(*txLog); ok {
		log.mu.Lock()
		log.undo = append(log.undo, undo)
		log.mu.Unlock()
	}
}

// TxManager менеджер транзакций поверх Store: при ошибке откатывает изменения fn
type TxManager struct {
	store *Store
}

func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txLog); ok {
		return fn(ctx)
	}
	log := &txLog{}
	err := fn(context.WithValue(ctx, txKey{}, log))
	if err != nil {
		m.store.mu.Lock()
		for i := len(log.undo) - 1; i >= 0; i-- {
			log.undo[i]()
		}
		m.store.mu.Unlock()
	}
	return err
}

// DoReadOnly у хранилища в памяти совпадает с Do
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func sortTurnos(turnos []*domain.Turno) {
	sort.Slice(turnos, func(i, j int) bool {
		if !turnos[i].DateTime.Equal(turnos[j].DateTime) {
			return turnos[i].DateTime.Before(turnos[j].DateTime)
		}
		return turnos[i].ID < turnos[j].ID
	})
}
