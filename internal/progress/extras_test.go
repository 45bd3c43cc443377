package progress_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"note-task-planner/internal/model"
	"note-task-planner/internal/progress"
)

func TestLevelProgress(t *testing.T) {
	assert.Equal(t, progress.Level{Current: 1, IntoLevel: 0, ToNext: 10, Percent: 0}, progress.LevelProgress(0))
	assert.Equal(t, progress.Level{Current: 3, IntoLevel: 4, ToNext: 6, Percent: 40}, progress.LevelProgress(24))
}

func TestStage(t *testing.T) {
	tests := map[int]string{
		1:  "Tiny Seedling",
		3:  "Young Sprout",
		5:  "Growing Bush",
		8:  "Flourishing Pine",
		10: "Mighty Productivity Oak",
		42: "Mighty Productivity Oak",
	}
	for level, want := range tests {
		assert.Equal(t, want, progress.Stage(level), "level %d", level)
	}
}

func TestAchievements(t *testing.T) {
	assert.Empty(t, progress.Achievements(model.UserStats{TotalCompleted: 3, CompletedThisWeek: 3, CurrentStreak: 2}))

	got := progress.Achievements(model.UserStats{TotalCompleted: 30, CompletedThisWeek: 12, CurrentStreak: 8})
	require.Len(t, got, 3)
	assert.Equal(t, "Week Warrior", got[0].Title)
	assert.Equal(t, "Streak Master", got[1].Title)
	assert.Equal(t, "8-day completion streak", got[1].Description)
	assert.Equal(t, "Scanner Pro", got[2].Title)
}

func TestDailyCompletions(t *testing.T) {
	tasks := []model.Task{
		completedAt(now),
		completedAt(now.Add(-time.Hour)),
		completedAt(now.AddDate(0, 0, -3)),  // Sunday
		completedAt(now.AddDate(0, 0, -10)), // previous week
		pendingDue(now),
	}

	got := progress.DailyCompletions(tasks, now)
	require.Len(t, got, 7)

	counts := make([]int, 7)
	for i, d := range got {
		counts[i] = d.Completed
	}
	assert.Equal(t, []int{1, 0, 0, 2, 0, 0, 0}, counts)
	assert.Equal(t, time.Sunday, got[0].Date.Weekday())
}
