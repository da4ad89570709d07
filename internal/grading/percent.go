package grading

import (
	"fmt"
	"math"
)

// increaseCalc renders the literal derivation shown alongside Shape-B grades.
func increaseCalc(fromLabel, toLabel string, old, new, pct float64) string {
	return fmt.Sprintf("Your %s: %s -> %s: %s = %.1f%% increase",
		fromLabel, FormatDuration(old), toLabel, FormatDuration(new), pct)
}

func decreaseCalc(fromLabel, toLabel string, old, new float64, note string) string {
	return fmt.Sprintf("Your %s: %s -> %s: %s%s",
		fromLabel, FormatDuration(old), toLabel, FormatDuration(new), note)
}

// reviewNearEdges flags a percentage increase sitting within margin points of
// either guideline edge, or within overMargin points just past the upper
// edge. The windows derive from the same min/max used for the verdict.
func reviewNearEdges(pct, min, max, margin, overMargin float64) Confidence {
	if math.Abs(pct-min) <= margin || math.Abs(pct-max) <= margin {
		return ConfidenceReview
	}
	if overMargin > 0 && pct > max && pct <= max+overMargin {
		return ConfidenceReview
	}
	return ConfidenceHigh
}
