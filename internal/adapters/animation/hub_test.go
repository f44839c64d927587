package animation_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomtoy/pairs-go/internal/adapters/animation"
	"github.com/randomtoy/pairs-go/internal/ports"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dial(t *testing.T, srv *httptest.Server, gameID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?game=" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastsToGameSubscribers(t *testing.T) {
	hub := animation.NewHub(time.Second, quietLogger())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r, r.URL.Query().Get("game"))
	}))
	defer srv.Close()

	a := dial(t, srv, "g1")
	b := dial(t, srv, "g1")
	other := dial(t, srv, "g2")
	require.Eventually(t, func() bool {
		return hub.Subscribers("g1") == 2 && hub.Subscribers("g2") == 1
	}, time.Second, 10*time.Millisecond)

	ev := ports.AnimationEvent{GameID: "g1", Kind: ports.AnimateMatch, Slots: []int{0, 3}, FlipCount: 2}
	require.NoError(t, hub.Animate(context.Background(), ev))

	for _, conn := range []*websocket.Conn{a, b} {
		var got ports.AnimationEvent
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, ev, got)
	}

	_ = other.SetReadDeadline(time.Now().Add(50 * time.Millisecond))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "g2 viewer must not see g1 events")
}

func TestHub_DropsClosedSubscribers(t *testing.T) {
	hub := animation.NewHub(time.Second, quietLogger())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Subscribe(w, r, "g1")
	}))
	defer srv.Close()

	conn := dial(t, srv, "g1")
	require.Eventually(t, func() bool { return hub.Subscribers("g1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers("g1") == 0 }, time.Second, 10*time.Millisecond)
	assert.NoError(t, hub.Animate(context.Background(), ports.AnimationEvent{GameID: "g1"}))
}

type failingDriver struct{ err error }

func (d failingDriver) Animate(context.Context, ports.AnimationEvent) error { return d.err }

func TestFanout_JoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	f := animation.Fanout{
		animation.NewLogDriver(quietLogger()),
		failingDriver{err: boom},
	}

	err := f.Animate(context.Background(), ports.AnimationEvent{GameID: "g", Kind: ports.AnimateFlip})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, animation.Fanout{animation.NewLogDriver(quietLogger())}.Animate(context.Background(), ports.AnimationEvent{}))
}
