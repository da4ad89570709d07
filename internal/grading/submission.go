package grading

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Answers maps question IDs ("q1".."q17", plus lettered variants like "q13b")
// to raw free-text responses. A missing key grades the same as an empty string.
type Answers map[string]string

// Normalizer optionally rewrites an exotic duration answer ("0:00:10",
// "5m 57 seconds") into a form the local parser understands, typically by
// calling an external text-normalization service. Implementations must fail
// open: on any error the original text is used unchanged.
type Normalizer func(ctx context.Context, raw string) (string, error)

// QuestionIDs is the fixed question set, in assignment order.
var QuestionIDs = []string{
	"q1", "q2", "q3", "q4",
	"q5", "q6", "q7", "q8",
	"q9", "q10", "q11", "q12",
	"q13", "q13b", "q14", "q14b", "q15", "q15b", "q16",
	"q17",
}

// QuestionLabels names each question for reports and resubmit lists.
var QuestionLabels = map[string]string{
	"q1":   "Maisie's Plan 1 Target Duration",
	"q2":   "Maisie's Plan 2 Target Duration",
	"q3":   "Maisie's Plan 3 Target Duration",
	"q4":   "Maisie After Struggle",
	"q5":   "Minna's Plan 1 Target Duration",
	"q6":   "Minna's Plan 2 Target Duration",
	"q7":   "Minna's Plan 3 Target Duration",
	"q8":   "Minna Target Duration Increase",
	"q9":   "Oliver's Plan 1 Target Duration",
	"q10":  "Oliver's Plan 2 Target Duration",
	"q11":  "Oliver's Plan 3 Target Duration",
	"q12":  "Oliver Keys Testing",
	"q13":  "Bella's Plan 1 Target Duration",
	"q13b": "Bella's Plan 1 Warmups",
	"q14":  "Bella's Plan 2 Target Duration",
	"q14b": "Bella's Plan 2 Warmups",
	"q15":  "Bella's Plan 3 Target Duration",
	"q15b": "Bella's Plan 3 Warmups",
	"q16":  "Bella Car Protocol",
	"q17":  "DIAB Warmups",
}

// durationQuestions are the answers routed through the normalizer before
// grading. Keyword and count questions are never normalized.
var durationQuestions = []string{
	"q1", "q2", "q3", "q5", "q6", "q7", "q9", "q10", "q11", "q13", "q14", "q15",
}

var (
	reBareInt    = regexp.MustCompile(`^\d+$`)
	rePlainClock = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	rePlainWordy = regexp.MustCompile(`^\d+\s*minutes?\s*\d*\s*seconds?$`)
	rePlainUnit  = regexp.MustCompile(`^\d+\s*(?:min(?:ute)?s?|sec(?:ond)?s?|s|m)$`)
)

// needsNormalization reports whether a raw duration answer is worth sending
// to the external normalizer. Well-formed inputs and alternative-protocol
// answers are always handled locally.
func needsNormalization(raw string) bool {
	low := strings.ToLower(strings.TrimSpace(raw))
	if low == "" {
		return false
	}
	if strings.Contains(low, "door") || strings.Contains(low, "diab") {
		return false
	}
	if reBareInt.MatchString(low) || rePlainClock.MatchString(low) ||
		rePlainWordy.MatchString(low) || rePlainUnit.MatchString(low) {
		return false
	}
	return true
}

// GradeSubmission grades a complete submission and returns one Result per
// question in QuestionIDs. The normalizer, when non-nil, is applied once to
// every duration-bearing answer before any grader runs, so graders that
// depend on a prior answer see the same normalized value the prior question
// was graded on. Grading itself is pure: the input map is never modified.
func GradeSubmission(ctx context.Context, answers Answers, normalize Normalizer) map[string]Result {
	norm := make(Answers, len(answers))
	for k, v := range answers {
		norm[k] = v
	}
	if normalize != nil {
		for _, id := range durationQuestions {
			raw := answers[id]
			if !needsNormalization(raw) {
				continue
			}
			if v, err := normalize(ctx, raw); err == nil && v != "" {
				norm[id] = v
			}
		}
	}

	results := map[string]Result{
		"q1": gradeMaisiePlan1(norm["q1"]),
		"q2": gradeMaisiePlan2(norm["q2"], norm["q1"]),
		"q3": gradeMaisiePlan3(norm["q3"], norm["q2"]),
		"q4": gradeMaisieAfterStruggle(answers["q4"]),

		"q5": gradeMinnaPlan1(norm["q5"]),
		"q6": gradeMinnaPlan2(norm["q6"], norm["q5"]),
		"q7": gradeMinnaPlan3(norm["q7"], norm["q6"]),
		"q8": gradeMinnaNextPush(answers["q8"]),

		"q9":  gradeOliverPlan1(norm["q9"]),
		"q10": gradeOliverPlan2(norm["q10"], norm["q9"]),
		"q11": gradeOliverPlan3(norm["q11"], norm["q9"], norm["q10"]),
		"q12": gradeOliverKeys(answers["q12"]),

		"q13":  gradeBellaPlan1(norm["q13"]),
		"q13b": gradeBellaPlan1Warmups(answers["q13b"], norm["q13"]),
		"q14":  gradeBellaPlan2(norm["q14"], norm["q13"]),
		"q14b": gradeBellaPlan2Warmups(answers["q14b"], answers["q13b"]),
		"q15":  gradeBellaPlan3(norm["q15"], norm["q14"]),
		"q15b": gradeBellaPlan3Warmups(answers["q15b"], answers["q14b"]),
		"q16":  gradeBellaCar(answers["q16"]),

		"q17": gradeDIABWarmups(answers["q17"]),
	}

	if len(results) != len(QuestionIDs) {
		panic(fmt.Sprintf("grading: %d results for %d questions", len(results), len(QuestionIDs)))
	}
	return results
}
