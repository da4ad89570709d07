package grading

import (
	"fmt"
	"strings"
)

// Minna, case study 2 (q5-q8). Minna paces and whines before her owner even
// gets out the door, so Plan 1 is DIAB. The assignment assumes she completes
// DIAB (repeating step 10 up to 5 seconds outside the door), so the first
// target-duration exercise after it starts around 5-6 seconds.

func gradeMinnaPlan1(answer string) Result {
	d := ParseDuration(answer)
	if !d.Valid {
		return incorrect("Please provide a target duration or protocol for this plan.")
	}
	if d.Special {
		return correct("Spot on selecting DIAB! Minna was showing anxiety before her owner got out the door.")
	}
	return incorrect("Minna shows signs of anxiety such as pacing and whining very early on, even before the owner gets out the door. Where would you start a dog who is stressed before the owner even gets out of the door? Be sure to adjust Plans 2 and 3 accordingly.")
}

// minnaPostDIAB bands the first target-duration exercise after DIAB.
var minnaPostDIAB = bandTable{
	Missing: "Please provide a target duration for Plan 2.",
	Bands: []band{
		{Upper: 3, Excl: true, Correct: false, ReviewBelow: 1, ReviewAbove: 1,
			Feedback: "There is some trainer's choice once the dog has been able to do 1 sec in DIAB. Nice job not jumping up too high. We do recommend continuing with DIAB format for anything under 5 seconds. For instance, you'd repeat step 10 building up in 1sec increments to 5sec."},
		{Upper: 6, Correct: true,
			Feedback: "Nice progression of increases following DIAB! There is some trainer's choice once the dog has been able to do 1 sec with the owner outside the door in DIAB."},
		{Upper: 7, Correct: false, ReviewBelow: 1, ReviewAbove: 1,
			Feedback: "There is some trainer's choice once the dog has been able to do 1 sec with the owner outside the door in DIAB. The first target duration exercise after DIAB would typically start at 5 sec. If you built up to 5sec in DIAB format, you might get away with 7 sec but we don't want to push our luck."},
		{Upper: inf, Correct: false,
			Feedback: "There is some trainer's choice once the dog has been able to do 1 sec with the owner outside the door in DIAB. You can repeat step 10 building up in 1sec increments to 5sec or try 3sec then switch to a target duration. Either way, this would be too big of a jump for Plan 2."},
	},
}

func gradeMinnaPlan2(answer, plan1 string) Result {
	d := ParseDuration(answer)
	p1 := ParseDuration(plan1)

	if d.Special {
		if p1.Special {
			return correct("For this assignment, we were assuming Minna completed DIAB in Plan 1 (repeating step 10 up to 5 seconds outside the door). You didn't need to choose DIAB for Plan 2, as that would be overly conservative, but it's acceptable.")
		}
		return incorrect("Please provide a target duration for Plan 2.")
	}

	// If Plan 1 was graded as a duration instead of DIAB, a guideline-sized
	// increase from it still earns credit.
	if p1.IsTime() && d.IsTime() && d.Seconds > 0 {
		pct := PercentIncrease(p1.Seconds, d.Seconds)
		if pct >= 10 && pct <= 20+passTolerance {
			r := correct(fmt.Sprintf("This is a %.1f%% increase from Plan 1, which follows the guidelines.", pct))
			r.Calculation = fmt.Sprintf("Plan 1: %s -> Plan 2: %s", FormatDuration(p1.Seconds), FormatDuration(d.Seconds))
			r.Confidence = reviewNearEdges(pct, 10, 20, edgeMargin, 0)
			return r
		}
	}

	return minnaPostDIAB.grade(d, 1)
}

// minnaPlan3PostDIAB bands Plan 3 when Plan 2 stayed on DIAB.
var minnaPlan3PostDIAB = bandTable{
	Special: incorrect("Minna doesn't need to stay on DIAB at this point. For this assignment, we were assuming she completed DIAB, so Plan 3 should move to a target duration starting around 5-6 seconds."),
	Missing: "Please provide a target duration for this plan.",
	Bands: []band{
		{Upper: 5, Excl: true, Correct: false, ReviewBelow: 1, ReviewAbove: 1,
			Feedback: "We recommend continuing with DIAB format for anything under 5 seconds."},
		{Upper: 6, Correct: true, ReviewAbove: 1,
			Feedback: "Nice increase from DIAB to Plan 3. For this assignment, we were assuming Minna completed DIAB in Plan 1."},
		{Upper: inf, Correct: false,
			Feedback: "This is too big of a jump after DIAB."},
	},
}

func gradeMinnaPlan3(answer, plan2 string) Result {
	newD := ParseDuration(answer)
	oldD := ParseDuration(plan2)

	if oldD.Special {
		return minnaPlan3PostDIAB.grade(newD, 1)
	}
	if !newD.Valid {
		return incorrect("Please provide a target duration for this plan.")
	}
	if newD.Special {
		return incorrect("Minna doesn't need DIAB at this point. Please provide a target duration.")
	}
	if !oldD.Valid {
		return incorrect("Please provide a target duration for this plan.")
	}
	if newD.Seconds <= oldD.Seconds {
		return incorrect("Minna aced Plan 2, so you should increase the target duration for Plan 3.")
	}

	pct := PercentIncrease(oldD.Seconds, newD.Seconds)
	min, max := PercentRange(oldD.Seconds)
	calc := increaseCalc("Plan 2", "Plan 3", oldD.Seconds, newD.Seconds, pct)
	conf := reviewNearEdges(pct, min, max, edgeMargin, 0)

	// Tiny durations turn small absolute bumps into huge percentages, so an
	// absolute cap applies before the percentage bands do.
	if oldD.Seconds <= 6 {
		if newD.Seconds >= 7 && newD.Seconds <= 9 {
			conf = ConfidenceReview
		}
		if newD.Seconds <= 8 {
			return Result{
				Correct:     true,
				Feedback:    "Nice job selecting an appropriate increase for Plan 3. For such short durations, small absolute increases are appropriate.",
				Calculation: calc,
				Confidence:  conf,
			}
		}
	}

	r := Result{Calculation: calc, Confidence: conf}
	switch {
	case pct < min-2:
		r.Feedback = fmt.Sprintf("This increase of %.1f%% is a bit conservative.", pct)
	case pct <= max+5:
		r.Correct = true
		r.Feedback = "Nice job selecting an appropriate increase for Plan 3."
	default:
		r.Feedback = fmt.Sprintf("You selected quite a jump from Plan 2 at %.1f%%. This might be more than Minna can cope with.", pct)
	}
	return r
}

// gradeMinnaNextPush: after five aced sessions at 10%, the next increase
// should test above the guideline band, in the 11-20% range.
func gradeMinnaNextPush(answer string) Result {
	low := strings.ToLower(strings.TrimSpace(answer))

	if strings.Contains(low, "minute") || strings.Contains(low, ":") {
		return incorrect("This question is asking what percentage you would increase by, not the actual target duration. Since Minna has been acing session after session, this is a good time to test out pushing a little higher than the guidelines.")
	}

	if pct, ok := firstNumber(low); ok {
		switch {
		case pct > 10 && pct <= 20:
			return correct("Excellent choice for Minna's next push! Since she is acing session after session this is a good time to test out pushing a little higher than the guidelines.")
		case pct <= 10:
			return incorrect("Since Minna has been acing session after session, this is a good time to test out pushing a little higher than the guidelines. What might we try instead when a dog is consistently acing sessions?")
		default:
			return incorrect("Since Minna is acing session after session this is a good time to test out pushing a little higher than the guidelines. Nice job thinking to do that, however, we don't want to risk pushing too high. An increase around 15-20% would be good here.")
		}
	}

	for _, kw := range []string{"higher", "more", "push"} {
		if strings.Contains(low, kw) {
			return correct("Excellent choice! Since she is acing session after session this is a good time to test out pushing a little higher than the guidelines.")
		}
	}
	return incorrect("Since Minna has been acing session after session, this is a good time to test out pushing a little higher than the guidelines. What might we try instead when a dog is consistently acing sessions?")
}
