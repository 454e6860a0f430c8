package nhl

// DefaultLeaderCategories is used when the caller does not specify any.
var DefaultLeaderCategories = []string{"points", "goals", "assists"}

// DefaultLeaderLimit caps each category when the caller does not specify one.
const DefaultLeaderLimit = 10

// ParseLeaders normalizes a raw leaders document into per-category entry
// lists. The result holds exactly the requested categories in the caller's
// order; a category absent upstream yields an empty list, not an omitted
// key. Entries keep upstream order — it is already the leaders ranking.
func ParseLeaders(data map[string]interface{}, categories []string) *Leaders {
	out := &Leaders{
		Categories: append([]string(nil), categories...),
		Leaders:    make(map[string][]LeaderItem, len(categories)),
	}

	for _, category := range categories {
		items := make([]LeaderItem, 0)
		for _, entry := range extractArray(data, category) {
			raw, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			items = append(items, parseLeaderEntry(raw))
		}
		out.Leaders[category] = items
	}

	return out
}

func parseLeaderEntry(raw map[string]interface{}) LeaderItem {
	item := LeaderItem{
		ID:            extractInt(raw, "id"),
		FirstName:     extractLocalized(raw, "firstName"),
		LastName:      extractLocalized(raw, "lastName"),
		TeamAbbrev:    extractString(raw, "teamAbbrev"),
		SweaterNumber: optionalInt(raw, "sweaterNumber"),
		Position:      optionalString(raw, "position"),
		Headshot:      optionalString(raw, "headshot"),
		TeamLogo:      optionalString(raw, "teamLogo"),
	}

	if name := extractLocalized(raw, "teamName"); name != "" {
		item.TeamName = &name
	}

	// An absent value reads as 0, indistinguishable from a genuine
	// zero-valued leader. Kept as-is; see leaders_test.go.
	if v := optionalFloat(raw, "value"); v != nil {
		item.Value = *v
	}

	return item
}
