package nhl

// Game state codes used by the scoreboard feed. The feed carries more codes
// (OFF, FINAL, PPD, ...); anything outside this set falls into the unknown
// bucket below.
const (
	StateLive     = "LIVE"
	StateCritical = "CRIT"
	StatePregame  = "PRE"
	StateFuture   = "FUT"
)

// unknownStatePriority ranks unrecognized states after every known one
// without excluding them from selection.
const unknownStatePriority = 99

var statePriority = map[string]int{
	StateLive:     0,
	StateCritical: 1,
	StatePregame:  2,
	StateFuture:   3,
}

// StatePriority is the total ordering used to pick the most relevant game:
// in-progress beats critical beats warmup beats scheduled, and unknown
// states sort last. An explicit lookup, so a new upstream state code cannot
// silently reorder results.
func StatePriority(state string) int {
	if rank, ok := statePriority[state]; ok {
		return rank
	}
	return unknownStatePriority
}

// SelectNextGame reduces a game list to the single most relevant game: the
// minimum by (state priority, start time). Ties on both keys resolve to the
// first element encountered, so selection is stable over an already
// time-sorted list. Returns nil when the list is empty.
func SelectNextGame(games []Game) *Game {
	var best *Game
	for i := range games {
		g := &games[i]
		if best == nil {
			best = g
			continue
		}
		bp, gp := StatePriority(best.State), StatePriority(g.State)
		if gp < bp {
			best = g
			continue
		}
		if gp == bp && parseStartTime(g.StartTimeUTC).Before(parseStartTime(best.StartTimeUTC)) {
			best = g
		}
	}
	return best
}
