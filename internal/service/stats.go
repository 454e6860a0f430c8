package service

import (
	"context"
	"fmt"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

// StatsService handles leaders and per-player stats business logic.
type StatsService struct {
	client *nhl.Client
}

// NewStatsService creates a new stats service.
func NewStatsService(client *nhl.Client) *StatsService {
	return &StatsService{client: client}
}

// GetSkaterLeaders fetches and normalizes the current statistical leaders.
// An empty category list means points, goals, and assists; a non-positive
// limit means the default of 10.
func (s *StatsService) GetSkaterLeaders(ctx context.Context, categories []string, limit int) (*nhl.Leaders, error) {
	if len(categories) == 0 {
		categories = nhl.DefaultLeaderCategories
	}
	if limit <= 0 {
		limit = nhl.DefaultLeaderLimit
	}

	data, err := s.client.FetchSkaterLeaders(ctx, categories, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching skater leaders: %w", err)
	}
	return nhl.ParseLeaders(data, categories), nil
}

// GetPlayerStats fetches a player's current-season stat line. A player with
// no current sub-season record yields an ID-only result, which is a success.
func (s *StatsService) GetPlayerStats(ctx context.Context, playerID int) (*nhl.PlayerSeasonStats, error) {
	data, err := s.client.FetchPlayerLanding(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("fetching player %d: %w", playerID, err)
	}
	return nhl.ParsePlayerLanding(data, playerID), nil
}
