package nhl

// Position groups as the roster endpoint partitions them.
const (
	GroupForwards   = "forwards"
	GroupDefensemen = "defensemen"
	GroupGoalies    = "goalies"
)

// Player is one roster entry. Optional fields are pointers so a caller can
// tell "unknown" apart from a genuine zero (a scratched player has no
// sweater number, not number 0).
type Player struct {
	ID            int     `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Number        *int    `json:"number,omitempty"`
	PositionCode  string  `json:"positionCode"`
	PositionGroup string  `json:"positionGroup"`
	ShootsCatches *string `json:"shootsCatches,omitempty"`
	Headshot      *string `json:"headshot,omitempty"`
	Link          *string `json:"link,omitempty"`
}

// Roster is a team's current roster in display order.
type Roster struct {
	Team    string   `json:"team"`
	Players []Player `json:"players"`
}

// TeamInfo is one side of a game. Score is present only once the game has
// started; record is absent early in the season.
type TeamInfo struct {
	Abbrev string  `json:"abbrev"`
	Name   string  `json:"name"`
	Record *string `json:"record,omitempty"`
	Score  *int    `json:"score,omitempty"`
	Logo   string  `json:"logo"`
}

// GameLinks holds the optional outbound links for a game.
type GameLinks struct {
	GameCenter *string `json:"gameCenter,omitempty"`
	Tickets    *string `json:"tickets,omitempty"`
}

// Game is one scheduled, live, or critical matchup from the scoreboard feed.
type Game struct {
	State        string    `json:"state"`
	Date         string    `json:"date"`
	StartTimeUTC string    `json:"startTimeUTC"`
	Venue        string    `json:"venue"`
	Home         TeamInfo  `json:"home"`
	Away         TeamInfo  `json:"away"`
	TV           []string  `json:"tv"`
	Links        GameLinks `json:"links"`
}

// Scoreboard is a team's watchable games, soonest first.
type Scoreboard struct {
	Team  string `json:"team"`
	Games []Game `json:"games"`
}

// LeaderItem is one entry in a statistical-leaders category, in upstream
// rank order.
type LeaderItem struct {
	ID            int     `json:"id"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	TeamAbbrev    string  `json:"teamAbbrev"`
	TeamName      *string `json:"teamName,omitempty"`
	SweaterNumber *int    `json:"sweaterNumber,omitempty"`
	Position      *string `json:"position,omitempty"`
	Headshot      *string `json:"headshot,omitempty"`
	TeamLogo      *string `json:"teamLogo,omitempty"`
	Value         float64 `json:"value"`
}

// Leaders maps requested categories to their ranked entries. Categories
// keeps the caller's order, which a bare map would lose on serialization.
type Leaders struct {
	Categories []string                `json:"categories"`
	Leaders    map[string][]LeaderItem `json:"leaders"`
}

// PlayerSeasonStats is a player's current-season line. The stat fields are
// omitted together when the player has no current sub-season record; ID is
// always present.
type PlayerSeasonStats struct {
	ID          int  `json:"id"`
	Season      *int `json:"season,omitempty"`
	GamesPlayed *int `json:"gamesPlayed,omitempty"`
	Goals       *int `json:"goals,omitempty"`
	Assists     *int `json:"assists,omitempty"`
	Points      *int `json:"points,omitempty"`
}
