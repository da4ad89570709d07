package grading

import (
	"fmt"
	"math"
	"strings"
)

// Oliver, case study 3 (q9-q12). Oliver stays relaxed through his roughly
// 5.5-minute assessment video, so Plan 1 starts in the 4:00-6:09 range.
// He aces Plan 1, struggles with Plan 2 (so Plan 3 drops back to the Plan 1
// duration), and his owner's keys are a known pre-departure trigger.

// oliverPlan1 is banded in minutes rather than seconds.
var oliverPlan1 = bandTable{
	Special: incorrect("Oliver did not need to start on Door is a Bore. He did well throughout the video. What would be a good target duration to start him on?"),
	Missing: "Please provide a target duration for this plan.",
	Bands: []band{
		{Upper: 1, Excl: true, Correct: false,
			Feedback: "It's okay for dogs to move around and to walk to the door to watch. This game of going and coming is different, so we will often see this, especially in earlier stages of training even when dogs are not upset. Oliver settled and looked pretty relaxed; He walks toward the door at a normal pace (not frantic), turns his head and moves a bit when he's at the door (so he's not frozen), has alert but soft eyes and soft mouth, and he sits. All that said, Oliver did well here, so what would a good target duration be to start him on?"},
		{Upper: 4, Excl: true, Correct: false, ReviewBelow: 0.25, ReviewAbove: 0.25,
			Feedback: "It's okay for dogs to move around and to walk to the door to watch. This game of going and coming is different, so we will often see this, especially in earlier stages of training even when dogs are not upset. Oliver settled and looked pretty relaxed. His Plan 1 target duration could have been closer to the 5-minute range. Take another look at the video."},
		{Upper: 4.75, Excl: true, Correct: true,
			Feedback: "It's okay for dogs to move around and to walk to the door to watch. Oliver settled and looked pretty relaxed. His Plan 1 target duration could have been closer to the 5-minute range, but it's best to err on the side of caution!"},
		{Upper: 5.5, Correct: true,
			Feedback: "Well done recognizing that Oliver did well for the duration of this exercise! It's okay for dogs to move around and go to the door, as long as there aren't signs of anxiety. You chose an excellent starting duration for Plan 1."},
		{Upper: 6.15, Correct: true, ReviewBelow: 0.25, ReviewAbove: 0.15,
			Feedback: "Well done recognizing that Oliver did well for the duration of this exercise! It's okay for dogs to move around and go to the door, as long as there aren't signs of anxiety. Since this is an assessment, it was smart that you chose to shave some time off for the first exercise, just in case this happened to be a really good day for Oliver."},
		{Upper: 6.25, Correct: false,
			Feedback: "Well done recognizing that Oliver did well for the duration of this exercise! It's okay for dogs to move around and go to the door, as long as there aren't signs of anxiety. The starting target is a little high though with a push over 10% when just starting with Oliver and if this was an assessment, it would be a good idea to shave some time off for the first exercise instead of push."},
		{Upper: inf, Correct: false,
			Feedback: "Well done recognizing that Oliver did well for the duration of this exercise! However, the duration increase from the video is too high and since you are just starting with Oliver, it would be better to shave some time off for the first exercise, just in case this happened to be a really good day for Oliver."},
	},
}

func gradeOliverPlan1(answer string) Result {
	return oliverPlan1.grade(ParseDuration(answer), 60)
}

// gradeOliverPlan2: Oliver's durations sit over 2 minutes, so the 5-10%
// guideline applies to the Plan 1 -> Plan 2 increase.
func gradeOliverPlan2(answer, plan1 string) Result {
	newD := ParseDuration(answer)
	oldD := ParseDuration(plan1)

	if !oldD.IsTime() || !newD.IsTime() {
		return incorrect("Please provide a target duration for this plan.")
	}
	if newD.Seconds <= oldD.Seconds {
		r := incorrect("Oliver did well with Plan 1, so you should increase the target duration for Plan 2.")
		r.Calculation = decreaseCalc("Plan 1", "Plan 2", oldD.Seconds, newD.Seconds, "")
		return r
	}

	pct := PercentIncrease(oldD.Seconds, newD.Seconds)
	r := Result{
		Calculation: increaseCalc("Plan 1", "Plan 2", oldD.Seconds, newD.Seconds, pct),
		Confidence:  reviewNearEdges(pct, 5, 10, edgeMargin, overMargin),
	}
	switch {
	case pct < 4:
		r.Feedback = fmt.Sprintf("It would have been okay to follow the guidelines here and push by 5-10%% for Plan 2. This %.1f%% increase is a bit conservative.", pct)
	case pct <= 10+passTolerance:
		r.Correct = true
		r.Feedback = fmt.Sprintf("Excellent progress of duration to Plan 2! This is a %.1f%% increase from Oliver's Plan 1 target duration, which is correctly following the guidelines for increases to target durations over 2 minutes.", pct)
	case pct <= 15:
		r.Feedback = fmt.Sprintf("The increase from Plan 1 to Plan 2 is a tad higher than the guideline of 5-10%% for durations over 2 min at %.1f%%. When just starting out with a dog we'd be more likely to stay within those guidelines.", pct)
	default:
		r.Feedback = fmt.Sprintf("The increase to Plan 2 is too high at %.1f%%. Please see the Plan Building Guidelines as a refresher.", pct)
	}
	return r
}

// gradeOliverPlan3: Oliver struggled with Plan 2, so Plan 3 should drop back
// to the last successful target duration (Plan 1), within a few seconds.
func gradeOliverPlan3(answer, plan1, plan2 string) Result {
	newD := ParseDuration(answer)
	p1 := ParseDuration(plan1)
	p2 := ParseDuration(plan2)

	if !newD.IsTime() {
		return incorrect("Oliver struggled with Plan 2 but doesn't need DIAB. Please provide a target duration.")
	}
	if p2.IsTime() && newD.Seconds >= p2.Seconds {
		return incorrect("Oliver struggled with his Plan 2 exercise so we would not want to stick or push. What do we do when a dog struggles?")
	}

	if p1.IsTime() {
		diff := math.Abs(newD.Seconds - p1.Seconds)
		conf := ConfidenceHigh
		if diff >= dropTolerance-2 && diff <= dropTolerance+3 {
			conf = ConfidenceReview
		}
		switch {
		case diff <= dropTolerance:
			return Result{
				Correct:    true,
				Feedback:   "Excellent job dropping back to the target duration from the last successful exercise when Oliver struggled! This is the rule of thumb for a first drop.",
				Confidence: conf,
			}
		case newD.Seconds < p1.Seconds:
			return Result{
				Feedback:   fmt.Sprintf("Great job selecting a drop here. But what should we be aiming to drop back to on the first drop? The rule of thumb is to go back to the last successful target duration, which was %s.", FormatDuration(p1.Seconds)),
				Confidence: conf,
			}
		default:
			return Result{
				Feedback:   "This is not correctly following the protocol for a dog's first drop. When a dog struggles, we drop back to the last successful target duration.",
				Confidence: conf,
			}
		}
	}

	return incorrect("Oliver struggled with Plan 2, so we need to drop. The rule of thumb is to drop back to the last successful exercise.")
}

// gradeOliverKeys: reintroducing a previously triggering pre-departure cue
// calls for decreasing the target duration first.
func gradeOliverKeys(answer string) Result {
	low := strings.ToLower(strings.TrimSpace(answer))

	for _, kw := range []string{"decrease", "drop", "lower", "reduce"} {
		if strings.Contains(low, kw) {
			return correct("Great choice to drop the target duration down when testing out reintroducing the keys. This gives Oliver the best chance of success with this previously triggering cue.")
		}
	}
	if strings.Contains(low, "key is a bore") || strings.Contains(low, "kiab") {
		return incorrect("Before going right to the Key is A Bore, what can we do with the TD to retest the keys since there is a chance that they will no longer be an issue now that we've built up some solid duration?")
	}
	if strings.Contains(low, "increase") || strings.Contains(low, "same") {
		return incorrect("When testing out adding a previously anxiety-provoking pre-departure cue we'd want to decrease the TD.")
	}
	if strings.Contains(low, "bore") && (strings.Contains(low, "first") || strings.Contains(low, "try")) {
		return correct("Great choice to drop the target duration down when testing out reintroducing the keys.")
	}
	return incorrect("When testing out adding a previously anxiety-provoking pre-departure cue, what would you do with the target duration?")
}
