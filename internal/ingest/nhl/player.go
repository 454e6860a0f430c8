package nhl

// ParsePlayerLanding extracts a player's current-season line from a landing
// document. The line lives under featuredStats → regularSeason → subSeason;
// the season identifier falls back to the featuredStats-level season when
// the inner one is absent. A player with no current sub-season record (not
// active this season) yields an ID-only result, which is a valid outcome,
// not an error.
func ParsePlayerLanding(data map[string]interface{}, playerID int) *PlayerSeasonStats {
	stats := &PlayerSeasonStats{ID: playerID}

	featured := extractMap(data, "featuredStats")
	subSeason := extractMap(extractMap(featured, "regularSeason"), "subSeason")
	if len(subSeason) == 0 {
		return stats
	}

	season := optionalInt(subSeason, "season")
	if season == nil {
		season = optionalInt(featured, "season")
	}

	stats.Season = season
	stats.GamesPlayed = optionalInt(subSeason, "gamesPlayed")
	stats.Goals = optionalInt(subSeason, "goals")
	stats.Assists = optionalInt(subSeason, "assists")
	stats.Points = optionalInt(subSeason, "points")

	return stats
}
