package state

import "math"

// IsAbsent reports whether v is one of the wire protocol's absent-value
// sentinels (§6): empty string, "--", NaN, or nil. Endpoint-specific
// sentinels (cabin temperature -129, time-to-full -1) are normalized by the
// adapter that knows the field's meaning before the value ever reaches the
// store, since -129 is only a sentinel for tempInCar, not for every field.
func IsAbsent(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == "" || x == "--"
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	default:
		return false
	}
}
