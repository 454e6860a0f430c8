package nhl

import "strconv"

// The NHL API omits fields inconsistently (scratched players have no sweater
// number, unstarted games have no score), so every read goes through these
// helpers instead of failing on absence. One documented default per shape:
// empty string, nil pointer, empty map, empty array.

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

// extractLocalized reads a default-locale name wrapper such as
// {"default": "Kucherov"}. Missing wrapper or missing default reads as "".
func extractLocalized(m map[string]interface{}, key string) string {
	return extractString(extractMap(m, key), "default")
}

func extractInt(m map[string]interface{}, key string) int {
	if v, ok := m[key]; ok {
		return parseInt(v)
	}
	return 0
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}

// optionalInt returns nil when the field is absent or non-numeric, so the
// caller can keep "unset" distinct from zero.
func optionalInt(m map[string]interface{}, key string) *int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	switch val := v.(type) {
	case float64:
		n := int(val)
		return &n
	case int:
		n := val
		return &n
	default:
		return nil
	}
}

// optionalString returns nil for absent or empty string fields.
func optionalString(m map[string]interface{}, key string) *string {
	if s := extractString(m, key); s != "" {
		return &s
	}
	return nil
}

// optionalFloat returns nil when the field is absent or non-numeric.
func optionalFloat(m map[string]interface{}, key string) *float64 {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return &f
		}
	}
	return nil
}

func parseInt(v interface{}) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case string:
		i, _ := strconv.Atoi(val)
		return i
	case int:
		return val
	default:
		return 0
	}
}
