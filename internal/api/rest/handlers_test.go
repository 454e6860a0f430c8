package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/service"
	"github.com/fortuna/rinkside/internal/tools"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, responses map[string]string) *mux.Router {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	client := nhl.New(upstream.URL)
	registry := service.BuildRegistry(
		service.NewTeamService(client),
		service.NewGameService(client),
		service.NewStatsService(client),
	)
	handler := NewHandler(registry, "test")

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/tools", handler.ListTools).Methods("GET")
	api.HandleFunc("/tools/{name}", handler.CallTool).Methods("POST")
	api.HandleFunc("/teams/{team}/roster", handler.GetTeamRoster).Methods("GET")
	api.HandleFunc("/teams/{team}/next-game", handler.GetNextGame).Methods("GET")
	api.HandleFunc("/leaders", handler.GetLeaders).Methods("GET")
	api.HandleFunc("/players/{playerID}/stats", handler.GetPlayerStats).Methods("GET")
	return router
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) tools.Envelope {
	t.Helper()
	var env tools.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy"`)
	assert.Contains(t, rec.Body.String(), `"rinkside"`)
}

func TestListTools(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/tools", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tools []tools.Tool `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tools, 5)
	assert.Equal(t, service.ToolTeamRoster, body.Tools[0].Name)
	assert.NotEmpty(t, body.Tools[0].InputSchema)
}

func TestCallToolSuccess(t *testing.T) {
	router := testRouter(t, map[string]string{
		"/v1/roster/TBL/current": `{"forwards": [{"id": 1, "lastName": {"default": "Kucherov"}}]}`,
	})

	req := httptest.NewRequest("POST", "/api/v1/tools/get-team-roster", strings.NewReader(`{"team": "tbl"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.IsError)
	assert.Equal(t, "TBL roster: 1 player", env.SummaryText)
	assert.NotNil(t, env.StructuredContent)
}

func TestCallToolErrorsStayHTTP200(t *testing.T) {
	router := testRouter(t, nil)

	tests := []struct {
		name string
		url  string
		body string
	}{
		{"unknown tool", "/api/v1/tools/does-not-exist", `{}`},
		{"missing argument", "/api/v1/tools/get-team-roster", `{}`},
		{"upstream failure", "/api/v1/tools/get-team-roster", `{"team": "TBL"}`},
		{"empty body", "/api/v1/tools/get-team-roster", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", tt.url, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// The tool endpoint signals errors only through the envelope.
			require.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.True(t, env.IsError)
			assert.True(t, strings.HasPrefix(env.SummaryText, tools.ErrorPrefix))
		})
	}
}

func TestCallToolRejectsMalformedBody(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest("POST", "/api/v1/tools/get-team-roster", strings.NewReader(`[1,2]`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.IsError)
}

func TestDirectRosterView(t *testing.T) {
	router := testRouter(t, map[string]string{
		"/v1/roster/TBL/current": `{"goalies": [{"id": 2, "lastName": {"default": "Vasilevskiy"}}]}`,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/teams/tbl/roster", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.IsError)
	assert.Equal(t, "TBL roster: 1 player", env.SummaryText)
}

func TestDirectViewUpstreamFailureIs502(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/teams/tbl/roster", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.IsError)
}

func TestNextGameView(t *testing.T) {
	router := testRouter(t, map[string]string{
		"/v1/scoreboard/TBL/now": `{"gamesByDate": []}`,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/teams/TBL/next-game", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.IsError)
	assert.Equal(t, "No live or upcoming games found for TBL.", env.SummaryText)
	assert.Nil(t, env.StructuredContent)
}

func TestLeadersViewForwardsQueryParams(t *testing.T) {
	router := testRouter(t, map[string]string{
		"/v1/skater-stats-leaders/current": `{"goals": [{"id": 1, "value": 40}]}`,
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/leaders?categories=goals&limit=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.IsError)
	assert.Equal(t, "Skater leaders: goals", env.SummaryText)
}

func TestPlayerStatsViewInvalidID(t *testing.T) {
	router := testRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/players/abc/stats", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.IsError)
}
