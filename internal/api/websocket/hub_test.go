package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub) *Client {
	return &Client{hub: hub, send: make(chan []byte, 4)}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	a := newTestClient(hub)
	b := newTestClient(hub)
	hub.register <- a
	hub.register <- b
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Broadcast([]byte("snapshot"))

	require.Equal(t, "snapshot", string(<-a.send))
	require.Equal(t, "snapshot", string(<-b.send))

	hub.unregister <- a
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	// Unregistering closes the client's send channel.
	_, open := <-a.send
	assert.False(t, open)
}

func TestHubStopDisconnectsClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	c := newTestClient(hub)
	hub.register <- c
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Stop()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	_, open := <-c.send
	assert.False(t, open)

	// Broadcast after stop must not block.
	done := make(chan struct{})
	go func() {
		hub.Broadcast([]byte("late"))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast blocked after Stop")
	}
}

func TestHubRegisterRefusedAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	accepted := newTestClient(hub)
	require.True(t, hub.Register(accepted))
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Stop()
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	// A stopped hub must refuse registration promptly instead of leaving
	// the caller blocked on a channel nobody reads.
	refused := newTestClient(hub)
	done := make(chan bool, 1)
	go func() { done <- hub.Register(refused) }()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Register blocked on a stopped hub")
	}

	// Unregister after stop must not block either.
	finished := make(chan struct{})
	go func() {
		hub.Unregister(accepted)
		close(finished)
	}()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked on a stopped hub")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	slow := &Client{hub: hub, send: make(chan []byte)} // unbuffered, never read
	hub.register <- slow
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Broadcast([]byte("x"))
	waitFor(t, func() bool { return hub.ClientCount() == 0 })
}
