package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fortuna/rinkside/internal/service"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // widgets are served from another origin
	},
}

// Server streams normalized scoreboards to web clients. Each subscribed
// team gets one hub and one poller; the poller refetches the scoreboard on
// an interval and broadcasts it, and winds down once the last client for
// that team disconnects. The normalization core stays stateless — all
// stream state lives here in the serving layer.
type Server struct {
	port     string
	server   *http.Server
	games    *service.GameService
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	hubs map[string]*teamHub
}

// teamHub pairs a team's hub with its poller and the most recent scoreboard
// payload, so a new subscriber gets a snapshot immediately instead of
// waiting out a poll interval.
type teamHub struct {
	hub    *Hub
	cancel context.CancelFunc

	mu     sync.Mutex
	latest []byte
}

func (th *teamHub) storeSnapshot(payload []byte) {
	th.mu.Lock()
	th.latest = payload
	th.mu.Unlock()
}

func (th *teamHub) latestSnapshot() []byte {
	th.mu.Lock()
	defer th.mu.Unlock()
	return th.latest
}

// NewServer creates a new websocket server polling at the given interval.
func NewServer(games *service.GameService, interval time.Duration) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		games:    games,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		hubs:     make(map[string]*teamHub),
	}
}

// Start starts the websocket server.
func (s *Server) Start(port string) error {
	s.port = port

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/scoreboard/", s.handleScoreboard)
	mux.HandleFunc("/ws/health", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: mux,
	}

	log.Printf("[ws] listening on :%s", port)
	return s.server.ListenAndServe()
}

// handleScoreboard upgrades the connection and subscribes it to the team's
// scoreboard stream.
func (s *Server) handleScoreboard(w http.ResponseWriter, r *http.Request) {
	team := service.CanonicalTeamCode(strings.TrimPrefix(r.URL.Path, "/ws/scoreboard/"))
	if team == "" || strings.Contains(team, "/") {
		http.Error(w, "team code required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	s.subscribe(team, client)

	go client.writePump()
	go client.readPump()
}

// subscribe attaches a client to the team's stream. The stream map lookup
// and the hub registration are two steps, and the poller may retire a hub
// between them once its last client leaves; a refused registration means
// exactly that, so the loop re-resolves the stream and lands on the fresh
// hub. The latest snapshot is handed to the client directly — broadcasts
// made before this registration cannot have reached it.
func (s *Server) subscribe(team string, client *Client) *Hub {
	for {
		th := s.streamFor(team)
		client.hub = th.hub
		if !th.hub.Register(client) {
			continue
		}
		if snapshot := th.latestSnapshot(); snapshot != nil {
			select {
			case client.send <- snapshot:
			default:
			}
		}
		return th.hub
	}
}

// handleHealth returns websocket server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	streams := len(s.hubs)
	clients := 0
	for _, th := range s.hubs {
		clients += th.hub.ClientCount()
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status": "healthy", "streams": %d, "clients": %d}`, streams, clients)
}

// streamFor returns the stream for a team, starting its hub and poller on
// first use.
func (s *Server) streamFor(team string) *teamHub {
	s.mu.Lock()
	defer s.mu.Unlock()

	if th, ok := s.hubs[team]; ok {
		return th
	}

	ctx, cancel := context.WithCancel(s.ctx)
	th := &teamHub{hub: NewHub(), cancel: cancel}
	s.hubs[team] = th

	go th.hub.Run()
	go s.poll(ctx, team, th)

	log.Printf("[ws] started scoreboard stream for %s", team)
	return th
}

// poll refetches and broadcasts the team's scoreboard until cancelled or
// until the stream has no clients left.
func (s *Server) poll(ctx context.Context, team string, th *teamHub) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// First snapshot straight away; subscribe replays it to clients that
	// register after this broadcast.
	s.broadcastScoreboard(ctx, team, th)

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			if th.hub.ClientCount() == 0 {
				s.dropHub(team)
				return
			}
			s.broadcastScoreboard(ctx, team, th)
		}
	}
}

func (s *Server) broadcastScoreboard(ctx context.Context, team string, th *teamHub) {
	fetchCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	scoreboard, err := s.games.GetTeamScoreboard(fetchCtx, team)
	if err != nil {
		log.Printf("[ws] scoreboard fetch for %s failed: %v", team, err)
		return
	}

	payload, err := json.Marshal(scoreboard)
	if err != nil {
		log.Printf("[ws] marshal scoreboard for %s: %v", team, err)
		return
	}

	th.storeSnapshot(payload)
	th.hub.Broadcast(payload)
}

// dropHub retires a team's stream. The map entry is removed before the hub
// stops, so a subscriber that raced the removal sees its registration
// refused only after streamFor can no longer hand out the dying hub.
func (s *Server) dropHub(team string) {
	s.mu.Lock()
	th, ok := s.hubs[team]
	if ok {
		delete(s.hubs, team)
	}
	s.mu.Unlock()

	if ok {
		th.cancel()
		th.hub.Stop()
		log.Printf("[ws] stopped scoreboard stream for %s (no clients)", team)
	}
}

// Shutdown gracefully shuts down the server and all streams.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	for team, th := range s.hubs {
		th.cancel()
		th.hub.Stop()
		delete(s.hubs, team)
	}
	s.mu.Unlock()

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
