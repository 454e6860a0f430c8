package nhl

import (
	"sort"
	"strings"
	"time"
)

// relevantGameStates is the "what to watch" filter: live, critical (late
// third period or overtime), pre-game warmup, and future scheduled games.
// Finished and postponed games are dropped deliberately — this view is not
// a historical record.
var relevantGameStates = map[string]bool{
	StateLive:     true,
	StateCritical: true,
	StatePregame:  true,
	StateFuture:   true,
}

// ParseScoreboard normalizes a raw scoreboard document into a Scoreboard.
// Games are grouped by calendar date upstream; they are flattened into one
// sequence, filtered to the relevant states, and sorted ascending by start
// time.
func ParseScoreboard(data map[string]interface{}, team string) *Scoreboard {
	code := strings.ToUpper(team)

	games := make([]Game, 0)
	for _, dayEntry := range extractArray(data, "gamesByDate") {
		day, ok := dayEntry.(map[string]interface{})
		if !ok {
			continue
		}
		bucketDate := extractString(day, "date")

		for _, gameEntry := range extractArray(day, "games") {
			raw, ok := gameEntry.(map[string]interface{})
			if !ok {
				continue
			}
			if !relevantGameStates[extractString(raw, "gameState")] {
				continue
			}
			games = append(games, parseGame(raw, bucketDate))
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return parseStartTime(games[i].StartTimeUTC).Before(parseStartTime(games[j].StartTimeUTC))
	})

	return &Scoreboard{Team: code, Games: games}
}

func parseGame(raw map[string]interface{}, bucketDate string) Game {
	date := extractString(raw, "gameDate")
	if date == "" {
		date = bucketDate
	}

	g := Game{
		State:        extractString(raw, "gameState"),
		Date:         date,
		StartTimeUTC: extractString(raw, "startTimeUTC"),
		Venue:        extractLocalized(raw, "venue"),
		Home:         parseTeamInfo(extractMap(raw, "homeTeam")),
		Away:         parseTeamInfo(extractMap(raw, "awayTeam")),
		TV:           parseBroadcasts(raw),
		Links: GameLinks{
			Tickets: optionalString(raw, "ticketsLink"),
		},
	}

	if link := extractString(raw, "gameCenterLink"); link != "" {
		full := SiteURL + link
		g.Links.GameCenter = &full
	}

	return g
}

func parseTeamInfo(raw map[string]interface{}) TeamInfo {
	return TeamInfo{
		Abbrev: extractString(raw, "abbrev"),
		Name:   extractLocalized(raw, "name"),
		Record: optionalString(raw, "record"),
		// Only a numeric score counts: "not started" must stay distinct
		// from a real 0-0.
		Score: optionalInt(raw, "score"),
		Logo:  extractString(raw, "logo"),
	}
}

func parseBroadcasts(raw map[string]interface{}) []string {
	networks := make([]string, 0)
	for _, entry := range extractArray(raw, "tvBroadcasts") {
		broadcast, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		if network := extractString(broadcast, "network"); network != "" {
			networks = append(networks, network)
		}
	}
	return networks
}

func parseStartTime(iso string) time.Time {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		// Unparseable start times sort first rather than dropping the game.
		return time.Time{}
	}
	return t
}
