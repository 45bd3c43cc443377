package datemath

import (
	"fmt"
	"strings"
	"time"
)

// LoadLocation resolves an IANA timezone name. An empty name means UTC.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// StartOfDay returns the first instant of t's calendar day in t's location.
// That is midnight, except where a DST jump skips midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d, t.Location())
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d+1, t.Location()).Add(-time.Millisecond)
}

// dayStart returns the first instant of the calendar day y-m-d in loc.
// Out-of-range days are normalized the way time.Date does.
func dayStart(y int, m time.Month, d int, loc *time.Location) time.Time {
	wy, wm, wd := time.Date(y, m, d, 12, 0, 0, 0, loc).Date()
	start := time.Date(wy, wm, wd, 0, 0, 0, 0, loc)
	if sy, sm, sd := start.Date(); sy != wy || sm != wm || sd != wd {
		// Midnight does not exist; the day opens at the zone transition.
		if _, end := start.ZoneBounds(); !end.IsZero() {
			start = end
		}
	}
	return start
}

// SameDay reports whether a, viewed in b's location, falls on b's calendar day.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns the start of Sunday of the week containing t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	return dayStart(y, m, d-int(t.Weekday()), t.Location())
}

// WeekAnchor selects a week relative to the current one.
type WeekAnchor string

const (
	WeekLast    WeekAnchor = "last"
	WeekCurrent WeekAnchor = "current"
	WeekNext    WeekAnchor = "next"
)

func (a WeekAnchor) offset() int {
	switch a {
	case WeekLast:
		return -7
	case WeekNext:
		return 7
	}
	return 0
}

// ParseWeekAnchor accepts last, current or next. An empty string is current.
func ParseWeekAnchor(raw string) (WeekAnchor, error) {
	switch a := WeekAnchor(strings.ToLower(strings.TrimSpace(raw))); a {
	case "":
		return WeekCurrent, nil
	case WeekLast, WeekCurrent, WeekNext:
		return a, nil
	}
	return "", fmt.Errorf("unknown week %q: want last, current or next", raw)
}

// Window is an inclusive time range covering one Sunday-to-Saturday week.
type Window struct {
	Anchor WeekAnchor
	Start  time.Time
	End    time.Time
}

// WeekWindow returns the week selected by anchor relative to now, computed in
// now's location. Start is Sunday 00:00:00.000, End is Saturday 23:59:59.999.
func WeekWindow(anchor WeekAnchor, now time.Time) Window {
	y, m, d := StartOfWeek(now).Date()
	d += anchor.offset()
	start := dayStart(y, m, d, now.Location())
	end := dayStart(y, m, d+7, now.Location()).Add(-time.Millisecond)
	if anchor == "" {
		anchor = WeekCurrent
	}
	return Window{Anchor: anchor, Start: start, End: end}
}

// Contains reports whether t lies within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days returns the seven day starts of the window, Sunday first.
func (w Window) Days() []time.Time {
	y, m, d := w.Start.Date()
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = dayStart(y, m, d+i, w.Start.Location())
	}
	return days
}
