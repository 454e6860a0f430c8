package nhl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlayerLandingCurrentSeason(t *testing.T) {
	data := mustParse(t, `{
		"playerId": 8478010,
		"featuredStats": {
			"season": 20252026,
			"regularSeason": {
				"subSeason": {"gamesPlayed": 30, "goals": 18, "assists": 25, "points": 43}
			}
		}
	}`)

	stats := ParsePlayerLanding(data, 8478010)

	assert.Equal(t, 8478010, stats.ID)
	require.NotNil(t, stats.Season)
	assert.Equal(t, 20252026, *stats.Season)
	require.NotNil(t, stats.GamesPlayed)
	assert.Equal(t, 30, *stats.GamesPlayed)
	require.NotNil(t, stats.Goals)
	assert.Equal(t, 18, *stats.Goals)
	require.NotNil(t, stats.Assists)
	assert.Equal(t, 25, *stats.Assists)
	require.NotNil(t, stats.Points)
	assert.Equal(t, 43, *stats.Points)
}

func TestParsePlayerLandingInnerSeasonWins(t *testing.T) {
	data := mustParse(t, `{
		"featuredStats": {
			"season": 20252026,
			"regularSeason": {
				"subSeason": {"season": 20242025, "gamesPlayed": 82}
			}
		}
	}`)

	stats := ParsePlayerLanding(data, 1)
	require.NotNil(t, stats.Season)
	assert.Equal(t, 20242025, *stats.Season)
}

func TestParsePlayerLandingNoSubSeason(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty document", `{}`},
		{"no featured stats", `{"playerId": 7}`},
		{"no regular season", `{"featuredStats": {"season": 20252026}}`},
		{"empty sub season path", `{"featuredStats": {"regularSeason": {}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ParsePlayerLanding(mustParse(t, tt.raw), 7)

			// Not active this season: ID-only result, all stat fields
			// omitted together.
			assert.Equal(t, 7, stats.ID)
			assert.Nil(t, stats.Season)
			assert.Nil(t, stats.GamesPlayed)
			assert.Nil(t, stats.Goals)
			assert.Nil(t, stats.Assists)
			assert.Nil(t, stats.Points)
		})
	}
}

func TestParsePlayerLandingPartialSubSeason(t *testing.T) {
	data := mustParse(t, `{
		"featuredStats": {
			"regularSeason": {"subSeason": {"gamesPlayed": 3}}
		}
	}`)

	stats := ParsePlayerLanding(data, 2)
	require.NotNil(t, stats.GamesPlayed)
	assert.Equal(t, 3, *stats.GamesPlayed)
	assert.Nil(t, stats.Season)
	assert.Nil(t, stats.Goals)
}
