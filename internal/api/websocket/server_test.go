package websocket

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer backs the poller with a fake scoreboard upstream. The long
// interval keeps ticks out of the way so tests drive transitions directly.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"gamesByDate": [{"date": "2026-01-10", "games": [
			{"gameState": "FUT", "gameDate": "2026-01-10", "startTimeUTC": "2026-01-11T00:00:00Z",
				"homeTeam": {"abbrev": "TBL"}, "awayTeam": {"abbrev": "NYR"}}
		]}]}`))
	}))
	t.Cleanup(upstream.Close)

	s := NewServer(service.NewGameService(nhl.New(upstream.URL)), time.Hour)
	t.Cleanup(func() { s.cancel() })
	return s
}

func TestSubscribeSurvivesDroppedHub(t *testing.T) {
	s := newTestServer(t)

	// Idle stream gets retired, exactly as the poller does on a tick with
	// no clients.
	stale := s.streamFor("TBL")
	s.dropHub("TBL")

	// A subscriber holding the stale hub must not hang on registration; it
	// has to end up on a fresh, running hub.
	client := &Client{send: make(chan []byte, 4)}
	done := make(chan *Hub, 1)
	go func() { done <- s.subscribe("TBL", client) }()

	select {
	case hub := <-done:
		assert.NotSame(t, stale.hub, hub)
		assert.Same(t, hub, client.hub)
		waitFor(t, func() bool { return hub.ClientCount() == 1 })
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe blocked on a retired hub")
	}
}

func TestSubscribeReplaysLatestSnapshot(t *testing.T) {
	s := newTestServer(t)

	// Let the poller's initial broadcast land before anyone subscribes —
	// the empty-hub case the replay exists for.
	th := s.streamFor("TBL")
	waitFor(t, func() bool { return th.latestSnapshot() != nil })

	client := &Client{send: make(chan []byte, 4)}
	s.subscribe("TBL", client)

	select {
	case payload := <-client.send:
		assert.Contains(t, string(payload), `"team":"TBL"`)
	case <-time.After(2 * time.Second):
		t.Fatal("subscriber did not receive the initial snapshot")
	}
}

func TestDropHubRemovesStream(t *testing.T) {
	s := newTestServer(t)

	s.streamFor("TBL")
	s.mu.Lock()
	_, present := s.hubs["TBL"]
	s.mu.Unlock()
	require.True(t, present)

	s.dropHub("TBL")
	s.mu.Lock()
	_, present = s.hubs["TBL"]
	s.mu.Unlock()
	assert.False(t, present)

	// Dropping an already-dropped stream is a no-op.
	s.dropHub("TBL")
}
