package submission

import (
	"context"
	"errors"
	"testing"

	"github.com/pawsteady/pba-grader/internal/grading"
)

func passingAnswers() grading.Answers {
	return grading.Answers{
		"q1":   "15 seconds",
		"q2":   "17 seconds",
		"q3":   "19 seconds",
		"q4":   "Door is a bore",
		"q5":   "Door",
		"q6":   "5 seconds",
		"q7":   "6 seconds",
		"q8":   "15%",
		"q9":   "5:00",
		"q10":  "5:25",
		"q11":  "5:00",
		"q12":  "decrease the target duration",
		"q13":  "2:45",
		"q13b": "5",
		"q14":  "3:00",
		"q14b": "3",
		"q15":  "3:15",
		"q15b": "3",
		"q16":  "Car is a bore starting at step 5",
		"q17":  "2 reps of the previous steps",
	}
}

func TestServiceCreateAndGet(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	s, err := svc.Create(context.Background(), "Pat", "pat@example.com", passingAnswers())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.ID == "" || s.CreatedAt == 0 {
		t.Fatalf("record not stamped: %+v", s)
	}
	if s.Verdict != grading.VerdictCleared {
		t.Fatalf("verdict = %s, flagged = %v", s.Verdict, s.Flagged)
	}
	if len(s.Results) != len(grading.QuestionIDs) {
		t.Fatalf("got %d results", len(s.Results))
	}

	got, err := svc.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.StudentName != "Pat" || got.Verdict != s.Verdict {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestServiceGetMissing(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	if _, err := svc.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestServiceCreateResubmit(t *testing.T) {
	answers := passingAnswers()
	answers["q1"] = "2 minutes" // critical miss
	svc := NewService(NewInMemoryStore(), nil)
	s, err := svc.Create(context.Background(), "Pat", "", answers)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Verdict != grading.VerdictResubmit {
		t.Fatalf("verdict = %s", s.Verdict)
	}
	if len(s.Flagged) != 1 || s.Flagged[0].ID != "q1" {
		t.Fatalf("flagged = %v", s.Flagged)
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	svc := NewService(NewInMemoryStore(), nil)
	var ids []string
	for i := 0; i < 3; i++ {
		s, err := svc.Create(context.Background(), "Pat", "", passingAnswers())
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, s.ID)
	}
	list, err := svc.List(10, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("got %d submissions", len(list))
	}
	for i, s := range list {
		if want := ids[len(ids)-1-i]; s.ID != want {
			t.Errorf("list[%d] = %s, want %s", i, s.ID, want)
		}
	}

	page, err := svc.List(2, 2)
	if err != nil {
		t.Fatalf("List page: %v", err)
	}
	if len(page) != 1 || page[0].ID != ids[0] {
		t.Fatalf("page = %v", page)
	}
}

func TestServiceNormalizerWiredThrough(t *testing.T) {
	called := false
	normalize := func(ctx context.Context, raw string) (string, error) {
		called = true
		return "15 seconds", nil
	}
	svc := NewService(NewInMemoryStore(), normalize)
	answers := passingAnswers()
	answers["q1"] = "fifteen seconds"
	s, err := svc.Create(context.Background(), "Pat", "", answers)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !called {
		t.Fatalf("normalizer was not invoked")
	}
	if !s.Results["q1"].Correct {
		t.Fatalf("normalized answer should grade correct: %q", s.Results["q1"].Feedback)
	}
	if s.Answers["q1"] != "fifteen seconds" {
		t.Fatalf("stored answers must stay raw, got %q", s.Answers["q1"])
	}
}

func TestReviewQuestions(t *testing.T) {
	s := Submission{Results: map[string]grading.Result{
		"q1": {Correct: true, Confidence: grading.ConfidenceReview},
		"q2": {Correct: true, Confidence: grading.ConfidenceHigh},
		"q9": {Correct: false, Confidence: grading.ConfidenceReview},
	}}
	got := s.ReviewQuestions()
	if len(got) != 2 || got[0] != "q1" || got[1] != "q9" {
		t.Fatalf("ReviewQuestions = %v", got)
	}
}

type failingStore struct{ Store }

func (failingStore) Put(Submission) error { return errors.New("disk full") }

func TestServiceCreateStoreError(t *testing.T) {
	svc := NewService(failingStore{}, nil)
	if _, err := svc.Create(context.Background(), "Pat", "", passingAnswers()); err == nil {
		t.Fatalf("expected the store error to surface")
	}
}
