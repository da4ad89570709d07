package grading

import (
	"fmt"
	"strings"
)

// Maisie, case study 1 (q1-q4). Maisie does well for the first 19 seconds of
// her video, then shows escalating anxiety starting with yawns and lip licks
// at 20 seconds. Plan 1 should land under 20 seconds; Plans 2 and 3 follow
// the percentage guidelines; after two drops in a row the right call is DIAB.

var maisiePlan1 = bandTable{
	Special: incorrect("Maisie did show signs of anxiety early on, so well done! It is okay to err on the side of caution, especially when just starting out with a dog. However, for Plan 1 Maisie could have started with a target duration exercise rather than Door is a Bore."),
	Missing: "Please provide a target duration for this plan.",
	Bands: []band{
		{Upper: 4, Correct: false, ReviewAbove: 2,
			Feedback: "Maisie did show signs of anxiety early on, so well done! It is okay to err on the side of caution, especially when just starting out with a dog. However, for anything under 5 seconds we'd start a dog on DIAB and in Maisie's case she does not need to start on DIAB. Maisie was doing well for the first 19 seconds of the video."},
		{Upper: 9, Correct: false, ReviewAbove: 2,
			Feedback: "Maisie was doing well for the first 19 seconds of the video. We start to see her struggle with those repeated yawns and lip licks starting at 20 seconds. It would have been okay to start her around 15 seconds to shave a little time off from those first signs of anxiety. However, it's always okay to err on the side of caution, especially when just starting out with a client."},
		{Upper: 16, Correct: true,
			Feedback: "Excellent choice for Maisie's Plan 1. Maisie starts showing anxiety with repeated yawning and lip licking starting at 20 seconds. More signs of anxiety follow throughout the absence. You identified those early signs and set a safe target duration well before they appeared."},
		{Upper: 19, Correct: true, ReviewAbove: 3,
			Feedback: "Nice job catching that Maisie starts showing anxiety with repeated yawning and lip licking starting at 20 seconds. More signs of anxiety follow throughout the absence. Since this is your first time seeing Maisie you could even start closer to 15 seconds just to shave a little time off from where we saw those first signs of anxiety."},
		{Upper: 20, Correct: true,
			Feedback: "Nice job catching that when Maisie started yawning and lip licking around 20 seconds she was beginning to go over threshold. After that more signs of anxiety followed through the absence. Since her first yawn is 20 seconds into the absence we'd want to start her first exercise slightly before those first signs of anxiety. Starting closer to 15 seconds would be a better choice for Maisie."},
		{Upper: 43, Correct: false, ReviewBelow: 2, ReviewAbove: 2,
			Feedback: "This target duration is slightly pushy. Maisie does start showing signs of anxiety pretty early on; repeated lip licks and yawns starting at 20 seconds, after which she gets up with a gruff, stretches, and looks at the door stiffly. Then she scratches and stretches. Some of these things could be okay on their own, but we are seeing an escalation of behaviors here. For Maisie, you'd want to set the target duration for Plan 1 to slightly before those very first signs of anxiety."},
		{Upper: inf, Correct: false,
			Feedback: "Take another look at the video for Maisie. She starts to show signs of anxiety pretty early on. Watch closely. For Maisie, you'd want to set the target duration for Plan 1 to something you're pretty certain she'll be comfortable doing - a duration that's shorter than where we see those first signs of anxiety. We are looking for less than 20 seconds."},
	},
}

func gradeMaisiePlan1(answer string) Result {
	return maisiePlan1.grade(ParseDuration(answer), 1)
}

func gradeMaisiePlan2(answer, plan1 string) Result {
	return gradeMaisieIncrease(answer, plan1, "Plan 1", "Plan 2",
		"Well done on selecting a reasonable target increase for Plan 2! This is a %.1f%% increase, which is correctly following the guidelines for increases to target durations under 2 minutes.")
}

func gradeMaisiePlan3(answer, plan2 string) Result {
	return gradeMaisieIncrease(answer, plan2, "Plan 2", "Plan 3",
		"Well done on selecting another reasonable target increase for Plan 3! This is a %.1f%% increase, which is within the guidelines.")
}

// gradeMaisieIncrease judges a plan-to-plan duration increase for Maisie.
// She aced each exercise, so a hold or drop is wrong; otherwise the increase
// percentage is graded against the guideline band for the prior duration.
func gradeMaisieIncrease(answer, prior, fromLabel, toLabel, passFormat string) Result {
	newD := ParseDuration(answer)
	oldD := ParseDuration(prior)

	if !oldD.IsTime() || !newD.IsTime() {
		return incorrect("Please provide a target duration for this plan.")
	}
	if newD.Seconds <= oldD.Seconds {
		r := incorrect(fmt.Sprintf("This is not correct. Maisie did not need to drop here. Since she aced %s, you should increase the target duration.", fromLabel))
		r.Calculation = decreaseCalc(fromLabel, toLabel, oldD.Seconds, newD.Seconds, " (decrease)")
		return r
	}

	pct := PercentIncrease(oldD.Seconds, newD.Seconds)
	min, max := PercentRange(oldD.Seconds)
	r := Result{
		Calculation: increaseCalc(fromLabel, toLabel, oldD.Seconds, newD.Seconds, pct),
		Confidence:  reviewNearEdges(pct, min, max, edgeMargin, overMargin),
	}
	switch {
	case pct < min:
		r.Feedback = fmt.Sprintf("Maisie would have been okay to push by the normal guidelines for under 2 minutes of 10-20%%. This increase of %.1f%% is a bit conservative.", pct)
	case pct <= max+passTolerance:
		r.Correct = true
		r.Feedback = fmt.Sprintf(passFormat, pct)
	case pct <= 25:
		r.Feedback = fmt.Sprintf("You were right to increase the target duration but this increase of %.1f%% is a little over the guidelines for durations under 2 minutes of 10-20%%. When just starting out with a dog we'd be more likely to stay within those guidelines.", pct)
	default:
		r.Feedback = fmt.Sprintf("The increases here are too high at %.1f%%. Please see the Plan Building Guidelines for target duration increases.", pct)
	}
	return r
}

// gradeMaisieAfterStruggle: after the second drop Maisie struggled before the
// owners could even get out the door, so the right call is DIAB.
func gradeMaisieAfterStruggle(answer string) Result {
	low := strings.ToLower(strings.TrimSpace(answer))
	if strings.Contains(low, "door") || strings.Contains(low, "diab") {
		return correct("Good choice of DIAB to get Maisie back to acing sessions, since after the 2nd drop she struggled before the owners could even get out the door.")
	}
	return incorrect("Since Maisie has already needed a couple of drops in a row and is now struggling before the owners can get out the door, we'd want to drop to something so easy she almost can't miss. Consider what would be most appropriate here.")
}
