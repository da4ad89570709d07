package grading

// Plan Building Guidelines, as published to students. Target-duration
// increases are judged against a percentage band picked by the magnitude of
// the previous duration; warmup counts against a step function of the target.

// PercentRange returns the approved percentage-increase band for a plan
// following one with the given target duration: 10-20% under 2 minutes,
// 5-10% at or over.
func PercentRange(oldSeconds float64) (min, max float64) {
	if oldSeconds < 120 {
		return 10, 20
	}
	return 5, 10
}

// WarmupRange returns the approved number of warmup steps for a target
// duration.
func WarmupRange(targetSeconds float64) (min, max int) {
	switch {
	case targetSeconds < 60:
		return 7, 9
	case targetSeconds < 300:
		return 4, 7
	case targetSeconds < 900:
		return 1, 5
	default:
		return 1, 2
	}
}
