package animation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/randomtoy/pairs-go/internal/ports"
)

// subscriber is one websocket viewer of a game.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) sendJSON(v any, timeout time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.conn.SetWriteDeadline(time.Now().Add(timeout))
	return s.conn.WriteJSON(v)
}

// Hub pushes animation events to every websocket subscribed to a game.
type Hub struct {
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	logger       *slog.Logger

	mu   sync.Mutex
	subs map[string]map[*subscriber]struct{}
}

func NewHub(writeTimeout time.Duration, logger *slog.Logger) *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		writeTimeout: writeTimeout,
		logger:       logger,
		subs:         make(map[string]map[*subscriber]struct{}),
	}
}

// Subscribe upgrades the request and streams events for gameID until the
// client goes away.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, gameID string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	sub := &subscriber{conn: conn}
	h.add(gameID, sub)
	h.logger.Debug("subscriber joined", "game_id", gameID, "remote", r.RemoteAddr)

	defer func() {
		h.remove(gameID, sub)
		_ = conn.Close()
		h.logger.Debug("subscriber left", "game_id", gameID, "remote", r.RemoteAddr)
	}()

	// Viewers never send anything meaningful; reading only detects close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return nil
		}
	}
}

// Animate implements ports.AnimationDriver.
func (h *Hub) Animate(_ context.Context, ev ports.AnimationEvent) error {
	var errs []error
	for _, sub := range h.subscribers(ev.GameID) {
		if err := sub.sendJSON(ev, h.writeTimeout); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribers returns the number of viewers attached to gameID.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs[gameID])
}

func (h *Hub) add(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*subscriber]struct{})
	}
	h.subs[gameID][sub] = struct{}{}
}

func (h *Hub) remove(gameID string, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subs[gameID], sub)
	if len(h.subs[gameID]) == 0 {
		delete(h.subs, gameID)
	}
}

func (h *Hub) subscribers(gameID string) []*subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*subscriber, 0, len(h.subs[gameID]))
	for sub := range h.subs[gameID] {
		out = append(out, sub)
	}
	return out
}
