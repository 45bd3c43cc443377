package progress

import (
	"fmt"
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
)

// Level describes progress within the current tree level.
type Level struct {
	Current   int
	IntoLevel int
	ToNext    int
	Percent   float64
}

// LevelProgress reports how far totalCompleted is into its tree level.
func LevelProgress(totalCompleted int) Level {
	if totalCompleted < 0 {
		totalCompleted = 0
	}
	into := totalCompleted % TasksPerLevel
	return Level{
		Current:   TreeLevel(totalCompleted),
		IntoLevel: into,
		ToNext:    TasksPerLevel - into,
		Percent:   float64(into) * 100 / TasksPerLevel,
	}
}

// Stage names the tree for a level.
func Stage(level int) string {
	switch {
	case level >= 10:
		return "Mighty Productivity Oak"
	case level >= 7:
		return "Flourishing Pine"
	case level >= 5:
		return "Growing Bush"
	case level >= 3:
		return "Young Sprout"
	}
	return "Tiny Seedling"
}

// Achievement is a badge unlocked by a stats snapshot.
type Achievement struct {
	Key         string
	Title       string
	Description string
}

// Achievements lists the badges stats currently unlock.
func Achievements(stats model.UserStats) []Achievement {
	var out []Achievement
	if stats.CompletedThisWeek >= 10 {
		out = append(out, Achievement{
			Key:         "week_warrior",
			Title:       "Week Warrior",
			Description: "Completed 10+ tasks this week",
		})
	}
	if stats.CurrentStreak >= 7 {
		out = append(out, Achievement{
			Key:         "streak_master",
			Title:       "Streak Master",
			Description: fmt.Sprintf("%d-day completion streak", stats.CurrentStreak),
		})
	}
	if stats.TotalCompleted >= 25 {
		out = append(out, Achievement{
			Key:         "scanner_pro",
			Title:       "Scanner Pro",
			Description: "Completed 25 tasks",
		})
	}
	return out
}

// DayCount is the number of completions on one day.
type DayCount struct {
	Date      time.Time
	Completed int
}

// DailyCompletions counts completions per day of now's week, Sunday first.
func DailyCompletions(tasks []model.Task, now time.Time) []DayCount {
	win := datemath.WeekWindow(datemath.WeekCurrent, now)
	days := win.Days()
	out := make([]DayCount, len(days))
	for i, d := range days {
		out[i].Date = d
	}
	for _, t := range tasks {
		if !t.IsCompleted() || t.CompletedAt == nil || !win.Contains(*t.CompletedAt) {
			continue
		}
		for i := range out {
			if datemath.SameDay(*t.CompletedAt, out[i].Date) {
				out[i].Completed++
				break
			}
		}
	}
	return out
}
