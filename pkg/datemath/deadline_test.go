package datemath_test

import (
	"testing"
	"time"

	"note-task-planner/pkg/datemath"
)

func TestResolveDeadline(t *testing.T) {
	// Wednesday, May 1, 2024 15:30 UTC
	wed := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	mon := time.Date(2024, 4, 29, 9, 0, 0, 0, time.UTC)
	sun := time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		phrase string
		now    time.Time
		want   time.Time
	}{
		{"tomorrow", "tomorrow", wed, wed.AddDate(0, 0, 1)},
		{"tomorrow inside sentence", "Finish it by Tomorrow evening", wed, wed.AddDate(0, 0, 1)},
		{"this week from wednesday", "this week", wed, wed.AddDate(0, 0, 4)},
		{"this week from sunday", "this week", sun, sun.AddDate(0, 0, 7)},
		{"next week", "NEXT WEEK", wed, wed.AddDate(0, 0, 7)},
		{"monday from wednesday", "by monday", wed, wed.AddDate(0, 0, 5)},
		{"monday on a monday", "monday", mon, mon.AddDate(0, 0, 7)},
		{"monday from sunday", "next monday", sun, sun.AddDate(0, 0, 1)},
		{"tomorrow beats next week", "tomorrow or next week", wed, wed.AddDate(0, 0, 1)},
		{"empty", "", wed, wed.AddDate(0, 0, 7)},
		{"gibberish", "asdfgh", wed, wed.AddDate(0, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.ResolveDeadline(tt.phrase, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("ResolveDeadline(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolveDeadline_EmptyEqualsGibberish(t *testing.T) {
	now := time.Date(2024, 11, 13, 8, 0, 0, 0, time.UTC)
	a := datemath.ResolveDeadline("", now)
	b := datemath.ResolveDeadline("qwerty zxcv", now)
	if !a.Equal(b) {
		t.Errorf("empty and gibberish differ: %v vs %v", a, b)
	}
}

func TestResolveDeadline_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// Saturday before the DST change on Sunday Nov 3, 2024.
	now := time.Date(2024, 11, 2, 10, 0, 0, 0, loc)
	got := datemath.ResolveDeadline("tomorrow", now)
	if got.Hour() != 10 || got.Day() != 3 {
		t.Errorf("expected Nov 3 10:00 local, got %v", got)
	}
	if got.Location() != loc {
		t.Errorf("location changed to %v", got.Location())
	}
}

func TestMatchDeadlineRule(t *testing.T) {
	tests := []struct {
		phrase string
		want   string
		wantOK bool
	}{
		{"tomorrow", "tomorrow", true},
		{"sometime this week", "this week", true},
		{"next week please", "next week", true},
		{"Monday", "monday", true},
		{"whenever", datemath.RuleFallback, false},
	}
	for _, tt := range tests {
		rule, ok := datemath.MatchDeadlineRule(tt.phrase)
		if rule.Name != tt.want || ok != tt.wantOK {
			t.Errorf("MatchDeadlineRule(%q) = %q,%v want %q,%v", tt.phrase, rule.Name, ok, tt.want, tt.wantOK)
		}
	}
}

func TestDeadlineRulesOrder(t *testing.T) {
	want := []string{"tomorrow", "this week", "next week", "monday"}
	rules := datemath.DeadlineRules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Name != want[i] {
			t.Errorf("rule %d = %q, want %q", i, r.Name, want[i])
		}
	}
}
