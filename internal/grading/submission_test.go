package grading

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// Two real submissions with instructor-verified per-question outcomes.
// These pin the whole pipeline end to end.

var laraAnswers = Answers{
	"q1":   "30 seconds",
	"q2":   "35 seconds",
	"q3":   "40 seconds",
	"q4":   "DOOR",
	"q5":   "Door",
	"q6":   "5 seconds",
	"q7":   "6 seconds",
	"q8":   "Guideline is 5% - 10%. I would opt for 10% since she's been doing well.",
	"q9":   "3:20",
	"q10":  "3:40",
	"q11":  "3:20",
	"q12":  "Decrease the target duration",
	"q13":  "1:25",
	"q13b": "8-10 warm ups",
	"q14":  "1:35",
	"q14b": "5-8 steps",
	"q15":  "1:54",
	"q15b": "5-8 steps",
	"q16":  "reduce the intensity of them turning on the car engine by parking their car further down the street and begin the Car is a bore training at step 7",
	"q17":  "1 rep of steps 1 & 2",
}

var laraExpected = map[string]bool{
	"q1": false, "q2": true, "q3": true, "q4": true,
	"q5": true, "q6": true, "q7": true, "q8": false,
	"q9": false, "q10": true, "q11": true, "q12": true,
	"q13": false, "q13b": false, "q14": true, "q14b": true,
	"q15": true, "q15b": true, "q16": true,
	"q17": true,
}

var monicaAnswers = Answers{
	"q1":   "10 seconds",
	"q2":   "15 seconds",
	"q3":   "20 seconds",
	"q4":   "Door is a bore",
	"q5":   "Door",
	"q6":   "3 seconds absence",
	"q7":   "5 seconds",
	"q8":   "8 minutes and 8 seconds",
	"q9":   "5 minutes and 30 seconds",
	"q10":  "5:45",
	"q11":  "5:30",
	"q12":  "Key is a bore",
	"q13":  "2:45",
	"q13b": "5",
	"q14":  "2:00",
	"q14b": "4",
	"q15":  "2:30",
	"q15b": "4",
	"q16":  "Open the car, get in, close door, sit in car for 10 seconds.",
	"q17":  "5 repetitions of step 1 and 2",
}

var monicaExpected = map[string]bool{
	"q1": true, "q2": false, "q3": false, "q4": true,
	"q5": true, "q6": true, "q7": true, "q8": false,
	"q9": true, "q10": true, "q11": true, "q12": false,
	"q13": true, "q13b": true, "q14": false, "q14b": true,
	"q15": false, "q15b": true, "q16": true,
	"q17": false,
}

func checkSubmission(t *testing.T, name string, answers Answers, expected map[string]bool, wantVerdict Verdict) {
	t.Helper()
	results := GradeSubmission(context.Background(), answers, nil)
	for _, id := range QuestionIDs {
		r, ok := results[id]
		if !ok {
			t.Errorf("%s: no result for %s", name, id)
			continue
		}
		if r.Correct != expected[id] {
			t.Errorf("%s %s: got correct=%v, want %v (feedback: %q, calc: %q)",
				name, id, r.Correct, expected[id], r.Feedback, r.Calculation)
		}
	}
	verdict, flagged := Decide(results)
	if verdict != wantVerdict {
		t.Errorf("%s: verdict = %s, want %s (flagged %v)", name, verdict, wantVerdict, flagged)
	}
}

func TestGradeSubmissionLara(t *testing.T) {
	checkSubmission(t, "lara", laraAnswers, laraExpected, VerdictResubmit)
}

func TestGradeSubmissionMonica(t *testing.T) {
	checkSubmission(t, "monica", monicaAnswers, monicaExpected, VerdictResubmit)
}

func TestGradeSubmissionFlaggedOrder(t *testing.T) {
	results := GradeSubmission(context.Background(), monicaAnswers, nil)
	_, flagged := Decide(results)
	want := []string{"q2", "q3", "q8", "q12", "q14", "q15", "q17"}
	if len(flagged) != len(want) {
		t.Fatalf("flagged %d questions, want %d: %v", len(flagged), len(want), flagged)
	}
	for i, f := range flagged {
		if f.ID != want[i] {
			t.Errorf("flagged[%d] = %s, want %s", i, f.ID, want[i])
		}
		if f.Label != QuestionLabels[f.ID] {
			t.Errorf("flagged[%d] label = %q, want %q", i, f.Label, QuestionLabels[f.ID])
		}
	}
}

// Every question gets a result no matter how degenerate the input.
func TestGradeSubmissionTotality(t *testing.T) {
	for _, answers := range []Answers{nil, {}, {"q1": "???", "q9": "soon"}} {
		results := GradeSubmission(context.Background(), answers, nil)
		if len(results) != len(QuestionIDs) {
			t.Fatalf("got %d results for %d questions", len(results), len(QuestionIDs))
		}
		for id, r := range results {
			if r.Correct {
				t.Errorf("%s graded correct on empty input", id)
			}
			if r.Feedback == "" {
				t.Errorf("%s has no feedback", id)
			}
		}
	}
}

func TestGradeSubmissionDoesNotMutateInput(t *testing.T) {
	answers := Answers{"q1": "15 secs"}
	normalize := func(ctx context.Context, raw string) (string, error) {
		return "15 seconds", nil
	}
	GradeSubmission(context.Background(), answers, normalize)
	if answers["q1"] != "15 secs" {
		t.Fatalf("input map was modified: %q", answers["q1"])
	}
}

func TestGradeSubmissionIdempotent(t *testing.T) {
	a := GradeSubmission(context.Background(), laraAnswers, nil)
	b := GradeSubmission(context.Background(), laraAnswers, nil)
	for _, id := range QuestionIDs {
		if a[id] != b[id] {
			t.Errorf("%s: results differ across runs: %+v vs %+v", id, a[id], b[id])
		}
	}
}

func TestNormalizerRouting(t *testing.T) {
	var seen []string
	normalize := func(ctx context.Context, raw string) (string, error) {
		seen = append(seen, raw)
		return "15 seconds", nil
	}
	answers := Answers{
		"q1":  "quarter of a minute", // exotic, goes out
		"q2":  "17 seconds",          // well formed, stays local
		"q4":  "weird door thing",    // keyword question, never normalized
		"q5":  "Door",                // protocol answer, stays local
		"q9":  "0:05:30",             // exotic
		"q13": "2:45",                // plain clock, stays local
	}
	GradeSubmission(context.Background(), answers, normalize)

	want := map[string]bool{"quarter of a minute": true, "0:05:30": true}
	if len(seen) != len(want) {
		t.Fatalf("normalizer saw %v, want exactly the exotic duration answers", seen)
	}
	for _, raw := range seen {
		if !want[raw] {
			t.Errorf("normalizer saw %q unexpectedly", raw)
		}
	}
}

func TestNormalizerFailOpen(t *testing.T) {
	normalize := func(ctx context.Context, raw string) (string, error) {
		return "", errors.New("upstream unavailable")
	}
	results := GradeSubmission(context.Background(), Answers{"q1": "fifteen seconds or so"}, normalize)
	r := results["q1"]
	if r.Correct {
		t.Fatalf("unparsed exotic answer graded correct")
	}
	if !strings.Contains(r.Feedback, "provide a target duration") {
		t.Fatalf("expected the missing-duration prompt, got %q", r.Feedback)
	}
}

func TestNormalizerRewriteIsGraded(t *testing.T) {
	normalize := func(ctx context.Context, raw string) (string, error) {
		return "15", nil
	}
	results := GradeSubmission(context.Background(), Answers{"q1": "fifteen seconds"}, normalize)
	if !results["q1"].Correct {
		t.Fatalf("normalized answer should grade correct: %q", results["q1"].Feedback)
	}
}
