package submission

import (
	"github.com/pawsteady/pba-grader/internal/grading"
)

// Submission is one graded Plan Building Assignment: the raw answers as
// received, the per-question results, and the overall verdict. Records are
// immutable once stored; regrading creates a new submission.
type Submission struct {
	ID           string                    `json:"id"`
	StudentName  string                    `json:"student_name"`
	StudentEmail string                    `json:"student_email,omitempty"`
	Answers      grading.Answers           `json:"answers"`
	Results      map[string]grading.Result `json:"results"`
	Verdict      grading.Verdict           `json:"verdict"`
	Flagged      []grading.FlaggedQuestion `json:"flagged,omitempty"`
	CreatedAt    int64                     `json:"created_at"`
}

// ReviewQuestions lists the question IDs whose result confidence asks for a
// human look, in assignment order. Used by the reviewer audit surface.
func (s Submission) ReviewQuestions() []string {
	var ids []string
	for _, id := range grading.QuestionIDs {
		if r, ok := s.Results[id]; ok && r.Confidence == grading.ConfidenceReview {
			ids = append(ids, id)
		}
	}
	return ids
}
