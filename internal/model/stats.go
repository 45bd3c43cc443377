package model

// UserStats is the derived progress snapshot of an owner. It is recomputed
// from the task set on every read and never stored.
type UserStats struct {
	TotalCompleted    int
	CompletedThisWeek int
	OverdueTasks      int
	CurrentStreak     int
	TreeLevel         int
}
