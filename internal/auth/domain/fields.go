package domain

import "time"

// Helpers for reading decoded JSON document fields. Numbers come back from
// the store as float64, timestamps as RFC 3339 strings.

func FieldString(fields map[string]any, key string) string {
	if fields == nil {
		return ""
	}
	s, _ := fields[key].(string)

	return s
}

func FieldInt(fields map[string]any, key string) int {
	if fields == nil {
		return 0
	}
	switch v := fields[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}

	return 0
}

func FieldTime(fields map[string]any, key string) (time.Time, bool) {
	if fields == nil {
		return time.Time{}, false
	}
	switch v := fields[key].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return time.Time{}, false
		}

		return t, true
	}

	return time.Time{}, false
}
