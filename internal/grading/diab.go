package grading

import (
	"strconv"
	"strings"
)

// gradeDIABWarmups (q17): warming up within DIAB only takes 1-4 repetitions
// of the previous step or two, never a full re-run of earlier steps.
func gradeDIABWarmups(answer string) Result {
	low := strings.ToLower(strings.TrimSpace(answer))

	m := reInt.FindString(answer)
	if m == "" {
		// "one", "a rep or two", "a couple" all describe an acceptable count.
		if strings.Contains(low, "one") || strings.Contains(low, "a rep") || strings.Contains(low, "couple") {
			return correct("Excellent! We would only need to do a couple repetitions to warmup the dog.")
		}
		return incorrect("Please specify how many repetitions.")
	}
	reps, _ := strconv.Atoi(m)

	switch {
	case reps == 0:
		return incorrect("You might get away with not doing any warmups for DIAB, especially once the dog becomes a pro at the game. However, when starting it would be good to do 2-3 reps of the previous step or 2 to warm the dog up.")
	case reps <= 3:
		return correct("Excellent! We would only need to do a couple repetitions to warmup the dog.")
	case reps <= 4:
		return correct("You are right that you would not need them to repeat the entire previous step or steps. We'd only need to do a couple of reps to warm up the dog, even 2-3 reps of the previous step or 2 might be enough.")
	case reps <= 10:
		return incorrect("We'd only need to do a couple of reps to warm up the dog. 2-3 reps of the previous step or 2 is usually good for most dogs.")
	default:
		return incorrect("When doing DIAB we do not need to repeat all 10 reps of the previous steps. That would be too many reps just to complete Step 3. We only need to warm the dog up a little.")
	}
}
