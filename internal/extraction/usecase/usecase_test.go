package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/extraction/usecase"
	"note-task-planner/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockProvider struct {
	text         string
	textErr      error
	reply        string
	replyErr     error
	block        bool
	recognized   int
	structured   int
	lastText     string
	lastDeadline bool
}

func (m *mockProvider) RecognizeText(ctx context.Context, media model.RawMedia) (string, error) {
	m.recognized++
	if m.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return m.text, m.textErr
}

func (m *mockProvider) StructureTasks(ctx context.Context, text string) (string, error) {
	m.structured++
	m.lastText = text
	_, m.lastDeadline = ctx.Deadline()
	return m.reply, m.replyErr
}

var jpeg = model.RawMedia{Data: []byte{0xff, 0xd8, 0xff}, MIMEType: "image/jpeg"}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		media   model.RawMedia
		mock    *mockProvider
		want    string
		wantErr []error
	}{
		{
			name:  "success trims whitespace",
			media: jpeg,
			mock:  &mockProvider{text: "  Buy milk\n"},
			want:  "Buy milk",
		},
		{
			name:    "whitespace only",
			media:   jpeg,
			mock:    &mockProvider{text: " \n\t "},
			wantErr: []error{extraction.ErrExtractionFailed, extraction.ErrNoTextExtracted},
		},
		{
			name:    "provider error",
			media:   jpeg,
			mock:    &mockProvider{textErr: errors.New("quota exceeded")},
			wantErr: []error{extraction.ErrExtractionFailed},
		},
		{
			name:    "empty upload",
			media:   model.RawMedia{MIMEType: "image/png"},
			mock:    &mockProvider{},
			wantErr: []error{extraction.ErrUnsupportedMedia},
		},
		{
			name:    "unknown kind",
			media:   model.RawMedia{Data: []byte("x"), MIMEType: "text/plain"},
			mock:    &mockProvider{},
			wantErr: []error{extraction.ErrUnsupportedMedia},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := usecase.New(&mockLogger{}, tt.mock, time.Second)
			got, err := uc.ExtractText(context.Background(), tt.media)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("got %q, want %q", got, tt.want)
				}
				return
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("expected %v in chain, got %v", want, err)
				}
			}
		})
	}
}

func TestExtractText_Timeout(t *testing.T) {
	uc := usecase.New(&mockLogger{}, &mockProvider{block: true}, 10*time.Millisecond)

	_, err := uc.ExtractText(context.Background(), jpeg)
	if !errors.Is(err, extraction.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("cause should survive wrapping, got %v", err)
	}
}

func TestStructureTasks(t *testing.T) {
	t.Run("three tasks", func(t *testing.T) {
		mock := &mockProvider{reply: `{"tasks":[
			{"title":"Buy milk","priority":"low","deadlinePhrase":"tomorrow"},
			{"title":"Call the dentist","priority":"medium","deadlinePhrase":"this week"},
			{"title":"Finish report","priority":"high","estimatedHours":3,"deadlinePhrase":"monday"}
		]}`}
		uc := usecase.New(&mockLogger{}, mock, time.Second)

		got, err := uc.StructureTasks(context.Background(), "Buy milk tomorrow, call the dentist this week, finish report by Monday")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 candidates, got %d", len(got))
		}
		wantPhrases := []string{"tomorrow", "this week", "monday"}
		for i, c := range got {
			if c.DeadlinePhrase != wantPhrases[i] {
				t.Errorf("candidate %d phrase = %q, want %q", i, c.DeadlinePhrase, wantPhrases[i])
			}
		}
		if !mock.lastDeadline {
			t.Errorf("provider call should carry a deadline")
		}
	})

	t.Run("URGENT and empty title", func(t *testing.T) {
		mock := &mockProvider{reply: `{"tasks":[{"title":"","priority":"URGENT"}]}`}
		uc := usecase.New(&mockLogger{}, mock, time.Second)

		got, err := uc.StructureTasks(context.Background(), "do the thing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Title != "Untitled Task" || got[0].Priority != model.PriorityMedium {
			t.Errorf("unexpected candidates: %+v", got)
		}
	})

	t.Run("malformed reply is not an error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockProvider{reply: "sorry, no idea"}, time.Second)

		got, err := uc.StructureTasks(context.Background(), "hello")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no candidates, got %d", len(got))
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockProvider{replyErr: errors.New("503")}, time.Second)

		_, err := uc.StructureTasks(context.Background(), "hello")
		if !errors.Is(err, extraction.ErrStructuringFailed) {
			t.Errorf("expected ErrStructuringFailed, got %v", err)
		}
	})

	t.Run("blank text skips the provider", func(t *testing.T) {
		mock := &mockProvider{}
		uc := usecase.New(&mockLogger{}, mock, time.Second)

		got, err := uc.StructureTasks(context.Background(), "   ")
		if err != nil || len(got) != 0 {
			t.Errorf("expected empty result, got %v %v", got, err)
		}
		if mock.structured != 0 {
			t.Errorf("provider should not be called")
		}
	})
}

func TestExtractCandidates(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("success", func(t *testing.T) {
		mock := &mockProvider{text: "Buy milk tomorrow", reply: `[{"title":"Buy milk","deadlinePhrase":"tomorrow"}]`}
		uc := usecase.New(&mockLogger{}, mock, time.Second)

		out, err := uc.ExtractCandidates(context.Background(), sc, jpeg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "Buy milk tomorrow" || len(out.Candidates) != 1 {
			t.Errorf("unexpected output: %+v", out)
		}
		if mock.lastText != "Buy milk tomorrow" {
			t.Errorf("structuring should receive extracted text, got %q", mock.lastText)
		}
	})

	t.Run("no text stops before structuring", func(t *testing.T) {
		mock := &mockProvider{text: ""}
		uc := usecase.New(&mockLogger{}, mock, time.Second)

		_, err := uc.ExtractCandidates(context.Background(), sc, jpeg)
		if !errors.Is(err, extraction.ErrNoTextExtracted) {
			t.Errorf("expected ErrNoTextExtracted, got %v", err)
		}
		if mock.structured != 0 {
			t.Errorf("structuring should not run")
		}
	})
}
