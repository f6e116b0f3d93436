package realtime

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/m04kA/TurnIt/internal/domain"
)

const (
	sendBufferSize = 16
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type subscriber struct {
	send chan []byte
}

// Hub рассылает изменения турнос подписчикам заведения
// Медленный подписчик (заполненный буфер) отключается, публикация никогда не блокируется
type Hub struct {
	mu          sync.Mutex
	subscribers map[int64]map[*subscriber]struct{}
	closed      bool
	upgrader    websocket.Upgrader
	log         Logger
}

// NewHub создает хаб; allowedOrigins пустой = разрешены все источники
func NewHub(allowedOrigins []string, log Logger) *Hub {
	h := &Hub{
		subscribers: make(map[int64]map[*subscriber]struct{}),
		log:         log,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

// PublishTurnoUpdated отправляет событие всем подписчикам заведения турно
func (h *Hub) PublishTurnoUpdated(turno *domain.Turno) {
	if turno == nil {
		return
	}

	payload, err := json.Marshal(NewTurnoUpdated(turno))
	if err != nil {
		h.log.Error("Hub.PublishTurnoUpdated: marshal event turnoID=%d: %v", turno.ID, err)
		return
	}

	h.broadcast(turno.PlaceID, payload)
}

func (h *Hub) broadcast(placeID int64, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.subscribers[placeID] {
		select {
		case sub.send <- payload:
		default:
			h.log.Warn("Hub.broadcast: dropping slow subscriber placeID=%d", placeID)
			h.removeLocked(placeID, sub)
		}
	}
}

// subscribe регистрирует подписчика; nil, если хаб закрыт
func (h *Hub) subscribe(placeID int64) *subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	sub := &subscriber{send: make(chan []byte, sendBufferSize)}
	if h.subscribers[placeID] == nil {
		h.subscribers[placeID] = make(map[*subscriber]struct{})
	}
	h.subscribers[placeID][sub] = struct{}{}

	return sub
}

func (h *Hub) unsubscribe(placeID int64, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(placeID, sub)
}

func (h *Hub) removeLocked(placeID int64, sub *subscriber) {
	subs, ok := h.subscribers[placeID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.send)
	if len(subs) == 0 {
		delete(h.subscribers, placeID)
	}
}

// SubscriberCount количество подписчиков заведения
func (h *Hub) SubscriberCount(placeID int64) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[placeID])
}

// Close отключает всех подписчиков; новые подписки отклоняются
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for placeID, subs := range h.subscribers {
		for sub := range subs {
			close(sub.send)
		}
		delete(h.subscribers, placeID)
	}
}

// ServeWS апгрейдит соединение и стримит события заведения до отключения клиента
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, placeID int64) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам пишет ответ с ошибкой
		h.log.Warn("Hub.ServeWS: upgrade failed placeID=%d: %v", placeID, err)
		return
	}

	sub := h.subscribe(placeID)
	if sub == nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	go h.writePump(conn, sub)
	h.readPump(conn, placeID, sub)
}

// readPump читает (и отбрасывает) сообщения клиента, чтобы обнаружить отключение
func (h *Hub) readPump(conn *websocket.Conn, placeID int64, sub *subscriber) {
	defer func() {
		h.unsubscribe(placeID, sub)
		_ = conn.Close()
	}()

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case payload, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(r *http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}
