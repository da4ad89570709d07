package grading

// Confidence marks how close a graded answer sits to a decision boundary.
// Review means the verdict is technically determined but a human should
// double-check it before sending feedback.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceReview Confidence = "review"
)

// Result is the outcome of grading a single question.
type Result struct {
	Correct     bool       `json:"correct"`
	Feedback    string     `json:"feedback"`
	Calculation string     `json:"calculation,omitempty"` // shown when a numeric derivation is relevant
	Confidence  Confidence `json:"confidence"`
}

func incorrect(feedback string) Result {
	return Result{Correct: false, Feedback: feedback, Confidence: ConfidenceHigh}
}

func correct(feedback string) Result {
	return Result{Correct: true, Feedback: feedback, Confidence: ConfidenceHigh}
}
