package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
)

// GameService handles scoreboard and next-game business logic.
type GameService struct {
	client *nhl.Client
	loc    *time.Location
}

// NewGameService creates a new game service. Game times are rendered in
// Eastern Time, the league's scheduling timezone.
func NewGameService(client *nhl.Client) *GameService {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Printf("[games] Warning: failed to load America/New_York timezone, falling back to UTC: %v", err)
		loc = time.UTC
	}
	return &GameService{client: client, loc: loc}
}

// GetTeamScoreboard fetches and normalizes a team's watchable games,
// soonest first.
func (s *GameService) GetTeamScoreboard(ctx context.Context, team string) (*nhl.Scoreboard, error) {
	code := CanonicalTeamCode(team)
	data, err := s.client.FetchScoreboard(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("fetching scoreboard for %s: %w", code, err)
	}
	return nhl.ParseScoreboard(data, code), nil
}

// GetNextGame returns a single human-readable line describing the team's
// most relevant game. "No games found" is a valid outcome, not an error.
func (s *GameService) GetNextGame(ctx context.Context, team string) (string, error) {
	scoreboard, err := s.GetTeamScoreboard(ctx, team)
	if err != nil {
		return "", err
	}

	game := nhl.SelectNextGame(scoreboard.Games)
	if game == nil {
		return fmt.Sprintf("No live or upcoming games found for %s.", scoreboard.Team), nil
	}

	return s.NextGameLine(scoreboard.Team, game), nil
}

// NextGameLine renders the next-game summary: matchup designation (vs for
// home, @ for away), localized start time, venue, state, and optional TV
// and link clauses.
func (s *GameService) NextGameLine(team string, game *nhl.Game) string {
	opponent := game.Away.Abbrev
	designation := "vs"
	if game.Home.Abbrev != team {
		opponent = game.Home.Abbrev
		designation = "@"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s on %s", team, designation, opponent, s.formatStartTime(game.StartTimeUTC))
	if game.Venue != "" {
		fmt.Fprintf(&b, " at %s", game.Venue)
	}
	fmt.Fprintf(&b, " (%s).", game.State)

	if len(game.TV) > 0 {
		fmt.Fprintf(&b, " TV: %s.", strings.Join(game.TV, ", "))
	}
	if game.Links.GameCenter != nil {
		fmt.Fprintf(&b, " Game Center: %s", *game.Links.GameCenter)
	}
	if game.Links.Tickets != nil {
		fmt.Fprintf(&b, " Tickets: %s", *game.Links.Tickets)
	}

	return b.String()
}

func (s *GameService) formatStartTime(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.In(s.loc).Format("Mon Jan 2, 3:04 PM MST")
}
