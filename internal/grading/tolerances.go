package grading

// Tuning margins carried over from the human grader's rubric. These are
// deliberate per-rule allowances, not derived from a common formula.
const (
	// passTolerance is the overshoot above the guideline max still graded
	// correct on a standard percentage-increase check.
	passTolerance = 0.5

	// edgeMargin is the review-window half-width, in percentage points,
	// around either guideline edge.
	edgeMargin = 2.0

	// overMargin extends the review window this far past the guideline max,
	// where "a tad high" verdicts cluster.
	overMargin = 3.0

	// dropTolerance is how far, in seconds, a first drop may miss the last
	// successful duration and still count as landing on it.
	dropTolerance = 5.0
)
