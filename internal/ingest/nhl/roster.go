package nhl

import (
	"fmt"
	"sort"
	"strings"
)

// unsetNumber sorts players without a sweater number after every numbered
// player in their group.
const unsetNumber = 999

var groupRank = map[string]int{
	GroupForwards:   0,
	GroupDefensemen: 1,
	GroupGoalies:    2,
}

// ParseRoster normalizes a raw roster document into an ordered Roster. The
// document exposes three position groups; entries are merged and sorted by
// (group rank, sweater number, last name). The team code is echoed back
// canonicalized.
func ParseRoster(data map[string]interface{}, team string) *Roster {
	code := strings.ToUpper(team)

	players := make([]Player, 0)
	for _, group := range []string{GroupForwards, GroupDefensemen, GroupGoalies} {
		for _, entry := range extractArray(data, group) {
			raw, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			players = append(players, parseRosterEntry(raw, group))
		}
	}

	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i], players[j]
		if groupRank[a.PositionGroup] != groupRank[b.PositionGroup] {
			return groupRank[a.PositionGroup] < groupRank[b.PositionGroup]
		}
		an, bn := unsetNumber, unsetNumber
		if a.Number != nil {
			an = *a.Number
		}
		if b.Number != nil {
			bn = *b.Number
		}
		if an != bn {
			return an < bn
		}
		return a.LastName < b.LastName
	})

	return &Roster{Team: code, Players: players}
}

func parseRosterEntry(raw map[string]interface{}, group string) Player {
	p := Player{
		ID:            extractInt(raw, "id"),
		FirstName:     extractLocalized(raw, "firstName"),
		LastName:      extractLocalized(raw, "lastName"),
		Number:        optionalInt(raw, "sweaterNumber"),
		PositionCode:  extractString(raw, "positionCode"),
		PositionGroup: group,
		ShootsCatches: optionalString(raw, "shootsCatches"),
		Headshot:      optionalString(raw, "headshot"),
	}

	if p.ID != 0 {
		link := fmt.Sprintf("%s%d", PlayerProfileURL, p.ID)
		p.Link = &link
	}

	return p
}
