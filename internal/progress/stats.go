// Package progress derives gamified completion statistics from a task set.
// Nothing here is stored; every value is recomputed from tasks and now.
package progress

import (
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
)

// TasksPerLevel is the number of completions needed to grow one tree level.
const TasksPerLevel = 10

// Compute derives the stats snapshot for tasks at now. Week and day
// boundaries are taken in now's location.
func Compute(tasks []model.Task, now time.Time) model.UserStats {
	weekStart := datemath.StartOfWeek(now)

	var stats model.UserStats
	for _, t := range tasks {
		if t.IsCompleted() {
			stats.TotalCompleted++
			if t.CompletedAt != nil && !t.CompletedAt.Before(weekStart) {
				stats.CompletedThisWeek++
			}
			continue
		}
		if t.IsOverdue(now) {
			stats.OverdueTasks++
		}
	}
	stats.CurrentStreak = Streak(tasks, now)
	stats.TreeLevel = TreeLevel(stats.TotalCompleted)
	return stats
}

// TreeLevel maps a completion count to a tree level, starting at 1.
func TreeLevel(totalCompleted int) int {
	if totalCompleted < 0 {
		totalCompleted = 0
	}
	return totalCompleted/TasksPerLevel + 1
}

// Streak counts consecutive calendar days with at least one completion,
// walking back from today. A day without completions yet does not break the
// streak: when today is empty the walk starts at yesterday.
func Streak(tasks []model.Task, now time.Time) int {
	loc := now.Location()
	days := make(map[calendarDate]struct{})
	for _, t := range tasks {
		if t.IsCompleted() && t.CompletedAt != nil {
			days[dateOf(t.CompletedAt.In(loc))] = struct{}{}
		}
	}
	if len(days) == 0 {
		return 0
	}

	day := dateOf(now)
	if _, ok := days[day]; !ok {
		day = day.prev()
	}

	streak := 0
	for {
		if _, ok := days[day]; !ok {
			return streak
		}
		streak++
		day = day.prev()
	}
}

// calendarDate is a wall-calendar day, independent of clock shifts.
type calendarDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) calendarDate {
	y, m, d := t.Date()
	return calendarDate{y, m, d}
}

func (c calendarDate) prev() calendarDate {
	return dateOf(time.Date(c.year, c.month, c.day-1, 12, 0, 0, 0, time.UTC))
}
