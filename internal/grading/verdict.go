package grading

// Verdict is the holistic outcome for a whole submission.
type Verdict string

const (
	VerdictCleared  Verdict = "Cleared"
	VerdictResubmit Verdict = "Resubmit"
)

// FlaggedQuestion identifies one incorrect answer in a resubmit list.
type FlaggedQuestion struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// criticalQuestions force a resubmission on their own: the first duration
// call of each case study, plus the Maisie after-struggle protocol choice.
// An empirically tuned policy, kept as data rather than derived.
var criticalQuestions = map[string]bool{
	"q1": true, "q4": true, "q5": true, "q9": true, "q13": true,
}

// Decide reduces per-question results to an overall verdict. A clean pass
// clears; one or two misses clear unless a critical question is among them;
// three or more always resubmit. The returned list follows assignment order.
func Decide(results map[string]Result) (Verdict, []FlaggedQuestion) {
	var flagged []FlaggedQuestion
	critical := false
	for _, id := range QuestionIDs {
		r, ok := results[id]
		if !ok || r.Correct {
			continue
		}
		flagged = append(flagged, FlaggedQuestion{ID: id, Label: QuestionLabels[id]})
		if criticalQuestions[id] {
			critical = true
		}
	}

	switch {
	case len(flagged) == 0:
		return VerdictCleared, nil
	case len(flagged) <= 2 && !critical:
		return VerdictCleared, flagged
	default:
		return VerdictResubmit, flagged
	}
}
