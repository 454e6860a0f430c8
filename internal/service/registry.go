package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/rinkside/internal/ingest/nhl"
	"github.com/fortuna/rinkside/internal/tools"
)

// Tool names exposed to the invocation framework.
const (
	ToolTeamRoster     = "get-team-roster"
	ToolTeamScoreboard = "get-team-scoreboard"
	ToolNextGame       = "get-next-game"
	ToolSkaterLeaders  = "get-skater-leaders"
	ToolPlayerStats    = "get-player-stats"
)

// BuildRegistry wires every operation into an explicit registry handed to
// the serving layer at startup. Summary lines are derived from the
// structured result, never maintained separately.
func BuildRegistry(teams *TeamService, games *GameService, stats *StatsService) *tools.Registry {
	r := tools.NewRegistry()

	teamSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"team": map[string]interface{}{
				"type":        "string",
				"description": "Three-letter team code, e.g. TBL. Case-insensitive.",
			},
		},
		"required": []string{"team"},
	}

	r.MustRegister(tools.Tool{
		Name:        ToolTeamRoster,
		Description: "Current roster for an NHL team, ordered by position group, sweater number, and last name.",
		InputSchema: teamSchema,
		Handler: func(ctx context.Context, args tools.Arguments) *tools.Envelope {
			team := args.String("team", "")
			if team == "" {
				return tools.Failure(fmt.Errorf("missing required argument: team"))
			}
			roster, err := teams.GetTeamRoster(ctx, team)
			if err != nil {
				return tools.Failure(err)
			}
			return tools.Success(roster, RosterSummary(roster))
		},
	})

	r.MustRegister(tools.Tool{
		Name:        ToolTeamScoreboard,
		Description: "Live and upcoming games for an NHL team, soonest first. Finished games are excluded.",
		InputSchema: teamSchema,
		Handler: func(ctx context.Context, args tools.Arguments) *tools.Envelope {
			team := args.String("team", "")
			if team == "" {
				return tools.Failure(fmt.Errorf("missing required argument: team"))
			}
			scoreboard, err := games.GetTeamScoreboard(ctx, team)
			if err != nil {
				return tools.Failure(err)
			}
			return tools.Success(scoreboard, ScoreboardSummary(scoreboard))
		},
	})

	r.MustRegister(tools.Tool{
		Name:        ToolNextGame,
		Description: "One-line summary of an NHL team's most relevant game: live first, then the next one scheduled.",
		InputSchema: teamSchema,
		Handler: func(ctx context.Context, args tools.Arguments) *tools.Envelope {
			team := args.String("team", "")
			if team == "" {
				return tools.Failure(fmt.Errorf("missing required argument: team"))
			}
			line, err := games.GetNextGame(ctx, team)
			if err != nil {
				return tools.Failure(err)
			}
			return tools.Text(line)
		},
	})

	r.MustRegister(tools.Tool{
		Name:        ToolSkaterLeaders,
		Description: "Current NHL skater statistical leaders by category.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"categories": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Stat categories, e.g. points, goals, assists. Defaults to all three.",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Entries per category, default 10.",
				},
			},
		},
		Handler: func(ctx context.Context, args tools.Arguments) *tools.Envelope {
			leaders, err := stats.GetSkaterLeaders(ctx, args.StringList("categories"), args.Int("limit", 0))
			if err != nil {
				return tools.Failure(err)
			}
			return tools.Success(leaders, LeadersSummary(leaders))
		},
	})

	r.MustRegister(tools.Tool{
		Name:        ToolPlayerStats,
		Description: "Current-season stat line for an NHL player by ID.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"playerId": map[string]interface{}{
					"type":        "integer",
					"description": "NHL player ID, e.g. 8478010.",
				},
			},
			"required": []string{"playerId"},
		},
		Handler: func(ctx context.Context, args tools.Arguments) *tools.Envelope {
			playerID := args.Int("playerId", 0)
			if playerID <= 0 {
				return tools.Failure(fmt.Errorf("missing required argument: playerId"))
			}
			line, err := stats.GetPlayerStats(ctx, playerID)
			if err != nil {
				return tools.Failure(err)
			}
			return tools.Success(line, PlayerStatsSummary(line))
		},
	})

	return r
}

// RosterSummary derives the roster envelope summary line.
func RosterSummary(r *nhl.Roster) string {
	return fmt.Sprintf("%s roster: %d %s", r.Team, len(r.Players), plural(len(r.Players), "player"))
}

// ScoreboardSummary derives the scoreboard envelope summary line.
func ScoreboardSummary(s *nhl.Scoreboard) string {
	return fmt.Sprintf("%s games: %d", s.Team, len(s.Games))
}

// LeadersSummary derives the leaders envelope summary line.
func LeadersSummary(l *nhl.Leaders) string {
	return fmt.Sprintf("Skater leaders: %s", strings.Join(l.Categories, ", "))
}

// PlayerStatsSummary derives the player-stats envelope summary line. An
// ID-only result reads as "no current season stats".
func PlayerStatsSummary(p *nhl.PlayerSeasonStats) string {
	if p.GamesPlayed == nil && p.Goals == nil && p.Assists == nil && p.Points == nil {
		return fmt.Sprintf("Player %d: no current season stats", p.ID)
	}
	return fmt.Sprintf("Player %d: %d GP, %d G, %d A, %d PTS",
		p.ID, intOrZero(p.GamesPlayed), intOrZero(p.Goals), intOrZero(p.Assists), intOrZero(p.Points))
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
