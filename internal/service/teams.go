package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

// TeamService handles roster-related business logic.
type TeamService struct {
	client *nhl.Client
}

// NewTeamService creates a new team service.
func NewTeamService(client *nhl.Client) *TeamService {
	return &TeamService{client: client}
}

// GetTeamRoster fetches and normalizes a team's current roster. The team
// code is case-insensitive and canonicalized to upper case before the
// request and in the result.
func (s *TeamService) GetTeamRoster(ctx context.Context, team string) (*nhl.Roster, error) {
	code := CanonicalTeamCode(team)
	data, err := s.client.FetchRoster(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("fetching roster for %s: %w", code, err)
	}
	return nhl.ParseRoster(data, code), nil
}

// CanonicalTeamCode upper-cases and trims a caller-supplied team code.
func CanonicalTeamCode(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}
