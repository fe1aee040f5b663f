package domain

import "time"

// RateQuota is a remote API's reported rate-limit budget, taken from the
// quota headers of each response. State is replaced wholesale on every
// refresh (last-write-wins, no smoothing).
type RateQuota struct {
	// Limit is the total permitted calls in the current window.
	Limit int

	// Remaining is the calls left in the current window.
	Remaining int

	// Reset is when the window rolls over.
	Reset time.Time

	// Used is the calls already spent, as reported by the API.
	Used int
}

// UsageFraction returns (limit - remaining) / limit, or zero when the
// limit is unknown.
func (q RateQuota) UsageFraction() float64 {
	if q.Limit <= 0 {
		return 0
	}
	return float64(q.Limit-q.Remaining) / float64(q.Limit)
}

// DebounceMultiplier derives the factor applied to the auto-sync base
// delay from current usage. Thresholds are fixed:
//
//	< 40%  -> 1x
//	40-60% -> 1.5x
//	60-80% -> 2x
//	80-90% -> 4x
//	> 90%  -> 8x
func (q RateQuota) DebounceMultiplier() float64 {
	usage := q.UsageFraction()
	switch {
	case usage < 0.4:
		return 1
	case usage < 0.6:
		return 1.5
	case usage < 0.8:
		return 2
	case usage < 0.9:
		return 4
	default:
		return 8
	}
}
