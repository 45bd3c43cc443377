package planner

import (
	"time"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
)

// Item is a task as shown in a week view. Undated pending tasks appear in the
// current week with the window end as a display deadline; Undated marks them.
type Item struct {
	model.Task
	Undated bool
}

// DayBucket holds the items due on one calendar day.
type DayBucket struct {
	Date  time.Time
	Items []Item
}

// Summary counts the items of a week view.
type Summary struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// TasksInWindow selects the tasks to show for win. Dated tasks are kept when
// their due date lies inside the window. Undated tasks are kept only for the
// current week and only while pending. Input tasks are never modified.
func TasksInWindow(tasks []model.Task, win datemath.Window) []Item {
	out := make([]Item, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate != nil {
			if win.Contains(*t.DueDate) {
				out = append(out, Item{Task: t})
			}
			continue
		}
		if win.Anchor != datemath.WeekCurrent || t.Status != model.StatusPending {
			continue
		}
		end := win.End
		t.DueDate = &end
		out = append(out, Item{Task: t, Undated: true})
	}
	return out
}

// TasksByDay returns the items due on day's calendar day in day's location.
func TasksByDay(items []Item, day time.Time) []Item {
	var out []Item
	for _, it := range items {
		if it.DueDate != nil && datemath.SameDay(*it.DueDate, day) {
			out = append(out, it)
		}
	}
	return out
}

// BucketWeek splits items into the seven days of win, Sunday first.
func BucketWeek(items []Item, win datemath.Window) []DayBucket {
	days := win.Days()
	buckets := make([]DayBucket, len(days))
	for i, d := range days {
		buckets[i] = DayBucket{Date: d, Items: TasksByDay(items, d)}
	}
	return buckets
}

// Summarize counts items by state at now.
func Summarize(items []Item, now time.Time) Summary {
	var s Summary
	for _, it := range items {
		s.Total++
		if it.IsCompleted() {
			s.Completed++
			continue
		}
		s.Pending++
		if !it.Undated && it.IsOverdue(now) {
			s.Overdue++
		}
	}
	return s
}
