package turnostore

import (
	"fmt"
	"sync"

	"github.com/m04kA/TurnIt/internal/domain"
)

// Recorder собирает опубликованные события и метрики
type Recorder struct {
	mu        sync.Mutex
	Published []domain.Turno
	Counts    map[string]int // "operation/result" -> количество
}

func NewRecorder() *Recorder {
	return &Recorder{Counts: make(map[string]int)}
}

func (r *Recorder) PublishTurnoUpdated(turno *domain.Turno) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Published = append(r.Published, *turno)
}

func (r *Recorder) IncReservation(operation, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Counts[fmt.Sprintf("%s/%s", operation, result)]++
}

func (r *Recorder) Count(operation, result string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Counts[fmt.Sprintf("%s/%s", operation, result)]
}

func (r *Recorder) PublishedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Published)
}
