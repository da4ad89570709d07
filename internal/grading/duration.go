package grading

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Duration is the parsed form of a free-text duration answer.
// Exactly one of the three states applies: a concrete number of seconds,
// the special case where the respondent picked an alternative protocol
// (Door is a Bore) instead of a time, or unparseable input.
type Duration struct {
	Seconds float64
	Special bool
	Valid   bool
}

func seconds(v float64) Duration { return Duration{Seconds: v, Valid: true} }

// IsTime reports whether d carries a usable seconds value.
func (d Duration) IsTime() bool { return d.Valid && !d.Special }

var (
	// "1minutes 20 secondes" / "2 minutes 30 secondes"
	reFullFR = regexp.MustCompile(`^(\d+)\s*minutes?\s*(\d+)\s*secondes?$`)
	// "5 minutes 30 seconds" / "5minutes30seconds"
	reFullEN = regexp.MustCompile(`^(\d+)\s*minutes?\s*(\d+)\s*seconds?$`)
	// decimal-comma time notation: "0,13" = 13 sec, "2,20" = 2 min 20 sec
	reCommaTime = regexp.MustCompile(`^(\d+),(\d{1,2})$`)
	// shorthand "3mn2" = 3 min 2 sec, "1m06" = 1 min 6 sec
	reShorthand = regexp.MustCompile(`^(\d+)\s*(?:mn|m)\s*(\d+)$`)
	// minutes alone, decimal comma or dot allowed
	reMinsOnly = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(?:minutes?|mins?|mn|m)$`)
	// seconds alone
	reSecsOnly = regexp.MustCompile(`^(\d+(?:[.,]\d+)?)\s*(?:secondes?|seconds?|secs?|s)$`)

	reSpaces     = regexp.MustCompile(`\s+`)
	reColons     = regexp.MustCompile(`:+`)
	reConnectors = regexp.MustCompile(`\b(?:and|et)\b`)
)

// unitCleaner rewrites unit words to a single colon (minutes) or nothing
// (seconds) so that generic "minutes:seconds" splitting can take over.
// Longest forms first so "secondes" is not left half-replaced.
var unitCleaner = strings.NewReplacer(
	"secondes", "", "seconde", "",
	"seconds", "", "second", "",
	"minutes", ":", "minute", ":",
	"mins", ":", "min", ":",
	"secs", "", "sec", "",
	"'", ":", `"`, "",
)

// ParseDuration converts a free-text duration answer into canonical seconds.
// Interpretation precedence is fixed; the first matching rule wins:
//
//  1. alternative-protocol keywords ("door", "diab"), even when digits are present
//  2. "N minutes M seconds" (English or French wording, whitespace optional)
//  3. decimal-comma time notation "D,SS" (D minutes, SS seconds)
//  4. shorthand "N m M" / "N mn M"
//  5. "N minutes" alone (decimal allowed, comma or dot)
//  6. "N seconds" alone
//  7. generic "minutes:seconds" after normalizing unit words and punctuation
//  8. bare number, read as seconds
//
// Anything else is unparseable.
func ParseDuration(s string) Duration {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Duration{}
	}

	if strings.Contains(s, "door") || strings.Contains(s, "diab") {
		return Duration{Special: true, Valid: true}
	}

	for _, re := range []*regexp.Regexp{reFullFR, reFullEN, reCommaTime, reShorthand} {
		if m := re.FindStringSubmatch(s); m != nil {
			mins, _ := strconv.Atoi(m[1])
			secs, _ := strconv.Atoi(m[2])
			return seconds(float64(mins*60 + secs))
		}
	}

	if m := reMinsOnly.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			return Duration{}
		}
		return seconds(v * 60)
	}
	if m := reSecsOnly.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil {
			return Duration{}
		}
		return seconds(v)
	}

	// Normalize everything else to a colon-separated form.
	s = strings.ReplaceAll(s, ",", ".")
	s = unitCleaner.Replace(s)
	s = reConnectors.ReplaceAllString(s, "")
	s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
	s = strings.Trim(reColons.ReplaceAllString(s, ":"), ":")

	if strings.Contains(s, ":") {
		var parts []string
		for _, p := range strings.Split(s, ":") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		switch len(parts) {
		case 1:
			if v, err := strconv.ParseFloat(parts[0], 64); err == nil {
				return seconds(v)
			}
		case 2:
			mins, errM := strconv.ParseFloat(parts[0], 64)
			secs, errS := strconv.ParseFloat(parts[1], 64)
			if errM == nil && errS == nil {
				return seconds(mins*60 + secs)
			}
		}
		return Duration{}
	}

	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return seconds(v)
	}
	return Duration{}
}

// FormatDuration renders seconds for display in feedback and calculations:
// under a minute as "N seconds", whole minutes as "N minute(s)", otherwise "M:SS".
func FormatDuration(secs float64) string {
	if secs < 60 {
		return fmt.Sprintf("%d seconds", int(secs))
	}
	m := int(secs) / 60
	s := int(secs) % 60
	if s == 0 {
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// PercentIncrease returns the percentage increase from old to new.
func PercentIncrease(old, new float64) float64 {
	if old == 0 {
		return 0
	}
	return (new - old) / old * 100
}
