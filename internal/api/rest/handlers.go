package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/fortuna/rinkside/internal/service"
	"github.com/fortuna/rinkside/internal/tools"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers. Every operation goes
// through the registry, so the tool dispatch endpoint and the direct REST
// views cannot drift apart.
type Handler struct {
	registry *tools.Registry
	version  string
}

// NewHandler creates a new handler.
func NewHandler(registry *tools.Registry, version string) *Handler {
	return &Handler{registry: registry, version: version}
}

// HealthCheck handles health check requests.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "rinkside",
		"version": h.version,
	})
}

// ListTools returns the registered operations with their input schemas.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tools": h.registry.List(),
	})
}

// CallTool dispatches a tool invocation. The request body is the JSON
// argument object; an empty body means no arguments. The envelope is always
// returned with status 200 — the invocation framework branches on isError,
// not on HTTP status.
func (h *Handler) CallTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	args := tools.Arguments{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, tools.Failure(errors.New("request body must be a JSON object")))
		return
	}

	respondJSON(w, http.StatusOK, h.registry.Dispatch(r.Context(), name, args))
}

// GetTeamRoster returns a team's current roster.
func (h *Handler) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	h.dispatchView(w, r, service.ToolTeamRoster, tools.Arguments{"team": mux.Vars(r)["team"]})
}

// GetTeamScoreboard returns a team's live and upcoming games.
func (h *Handler) GetTeamScoreboard(w http.ResponseWriter, r *http.Request) {
	h.dispatchView(w, r, service.ToolTeamScoreboard, tools.Arguments{"team": mux.Vars(r)["team"]})
}

// GetNextGame returns the one-line next-game summary for a team.
func (h *Handler) GetNextGame(w http.ResponseWriter, r *http.Request) {
	h.dispatchView(w, r, service.ToolNextGame, tools.Arguments{"team": mux.Vars(r)["team"]})
}

// GetLeaders returns the current skater statistical leaders.
func (h *Handler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	args := tools.Arguments{}

	if raw := r.URL.Query().Get("categories"); raw != "" {
		categories := make([]interface{}, 0)
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				categories = append(categories, c)
			}
		}
		args["categories"] = categories
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			args["limit"] = limit
		}
	}

	h.dispatchView(w, r, service.ToolSkaterLeaders, args)
}

// GetPlayerStats returns a player's current-season stat line.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(mux.Vars(r)["playerID"])
	if err != nil {
		respondJSON(w, http.StatusBadRequest, tools.Failure(errors.New("invalid player ID")))
		return
	}

	h.dispatchView(w, r, service.ToolPlayerStats, tools.Arguments{"playerId": playerID})
}

// dispatchView serves a direct REST view through the registry. Unlike the
// tool endpoint, views map an error envelope to 502 as a convenience for
// plain HTTP clients; the envelope body is identical either way.
func (h *Handler) dispatchView(w http.ResponseWriter, r *http.Request, tool string, args tools.Arguments) {
	envelope := h.registry.Dispatch(r.Context(), tool, args)

	status := http.StatusOK
	if envelope.IsError {
		status = http.StatusBadGateway
	}
	respondJSON(w, status, envelope)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
