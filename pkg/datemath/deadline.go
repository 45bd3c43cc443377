package datemath

import (
	"strings"
	"time"
)

// DeadlineRule turns a free-text phrase into a due date. Match receives the
// lower-cased phrase.
type DeadlineRule struct {
	Name    string
	Match   func(phrase string) bool
	Resolve func(now time.Time) time.Time
}

// RuleFallback is the name reported when no rule matched.
const RuleFallback = "fallback"

func contains(sub string) func(string) bool {
	return func(phrase string) bool { return strings.Contains(phrase, sub) }
}

func addDays(n int) func(time.Time) time.Time {
	return func(now time.Time) time.Time { return now.AddDate(0, 0, n) }
}

// deadlineRules is evaluated top-down and the first match wins.
var deadlineRules = []DeadlineRule{
	{
		Name:    "tomorrow",
		Match:   contains("tomorrow"),
		Resolve: addDays(1),
	},
	{
		Name:  "this week",
		Match: contains("this week"),
		Resolve: func(now time.Time) time.Time {
			return now.AddDate(0, 0, 7-int(now.Weekday()))
		},
	},
	{
		Name:    "next week",
		Match:   contains("next week"),
		Resolve: addDays(7),
	},
	{
		Name:  "monday",
		Match: contains("monday"),
		Resolve: func(now time.Time) time.Time {
			days := (8 - int(now.Weekday())) % 7
			if days == 0 {
				days = 7
			}
			return now.AddDate(0, 0, days)
		},
	},
}

// DeadlineRules returns a copy of the ordered rule table.
func DeadlineRules() []DeadlineRule {
	out := make([]DeadlineRule, len(deadlineRules))
	copy(out, deadlineRules)
	return out
}

// MatchDeadlineRule returns the rule that fires for phrase. ok is false when
// the phrase falls through to the one-week default.
func MatchDeadlineRule(phrase string) (DeadlineRule, bool) {
	p := strings.ToLower(phrase)
	for _, r := range deadlineRules {
		if r.Match(p) {
			return r, true
		}
	}
	return DeadlineRule{Name: RuleFallback, Resolve: addDays(7)}, false
}

// ResolveDeadline maps a relative deadline phrase to an absolute due date.
// It never fails: unknown or empty phrases resolve to one week after now.
// Calendar arithmetic runs in now's location and keeps now's time of day.
func ResolveDeadline(phrase string, now time.Time) time.Time {
	rule, _ := MatchDeadlineRule(phrase)
	return rule.Resolve(now)
}
