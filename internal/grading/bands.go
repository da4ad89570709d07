package grading

import "math"

// inf terminates every band table.
var inf = math.Inf(1)

// band is one row of an absolute-threshold rule table: values up to Upper
// (inclusive unless Excl) that did not match an earlier row land here.
// ReviewBelow/ReviewAbove define a review window around Upper itself, so the
// flagging margin always derives from the same threshold as the verdict.
type band struct {
	Upper       float64
	Excl        bool // match v < Upper instead of v <= Upper
	Correct     bool
	Feedback    string
	ReviewBelow float64
	ReviewAbove float64
}

// bandTable classifies a single parsed duration. Rows are ordered,
// first match wins; the last row should have Upper = +Inf.
type bandTable struct {
	Special Result // outcome when the respondent chose the alternative protocol
	Missing string // feedback when the answer is unparseable
	Bands   []band
}

func (t bandTable) grade(d Duration, scale float64) Result {
	if !d.Valid {
		return incorrect(t.Missing)
	}
	if d.Special {
		if t.Special == (Result{}) {
			panic("grading: band table has no special-case outcome")
		}
		return t.Special
	}
	v := d.Seconds / scale

	conf := ConfidenceHigh
	for _, b := range t.Bands {
		if b.ReviewBelow == 0 && b.ReviewAbove == 0 {
			continue
		}
		if v >= b.Upper-b.ReviewBelow && v <= b.Upper+b.ReviewAbove {
			conf = ConfidenceReview
			break
		}
	}

	for _, b := range t.Bands {
		if v < b.Upper || (!b.Excl && v == b.Upper) {
			return Result{Correct: b.Correct, Feedback: b.Feedback, Confidence: conf}
		}
	}
	// Tables end with an +Inf row; reaching here is a programming error.
	panic("grading: band table has no terminal row")
}
