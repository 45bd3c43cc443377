package model_test

import (
	"testing"
	"time"

	"note-task-planner/internal/model"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		raw    string
		want   model.Priority
		wantOK bool
	}{
		{"low", model.PriorityLow, true},
		{" HIGH ", model.PriorityHigh, true},
		{"Medium", model.PriorityMedium, true},
		{"URGENT", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := model.ParsePriority(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePriority(%q) = %q,%v want %q,%v", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRawMediaKind(t *testing.T) {
	tests := []struct {
		mime string
		want model.MediaKind
	}{
		{"image/jpeg", model.MediaKindImage},
		{"IMAGE/PNG", model.MediaKindImage},
		{"audio/webm", model.MediaKindAudio},
		{"video/webm", model.MediaKindAudio},
		{"application/pdf", model.MediaKindUnknown},
	}
	for _, tt := range tests {
		if got := (model.RawMedia{MIMEType: tt.mime}).Kind(); got != tt.want {
			t.Errorf("Kind(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestTaskIsOverdue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if !(model.Task{Status: model.StatusPending, DueDate: &past}).IsOverdue(now) {
		t.Errorf("pending past-due task should be overdue")
	}
	if (model.Task{Status: model.StatusCompleted, DueDate: &past}).IsOverdue(now) {
		t.Errorf("completed task is never overdue")
	}
	if (model.Task{Status: model.StatusPending, DueDate: &future}).IsOverdue(now) {
		t.Errorf("future task is not overdue")
	}
	if (model.Task{Status: model.StatusPending}).IsOverdue(now) {
		t.Errorf("undated task is not overdue")
	}
}
