package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/middleware"
	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/pkg/log"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type mockExtraction struct {
	out       extraction.ExtractOutput
	err       error
	lastMedia model.RawMedia
	calls     int
}

func (m *mockExtraction) ExtractText(ctx context.Context, media model.RawMedia) (string, error) {
	return m.out.Text, m.err
}

func (m *mockExtraction) StructureTasks(ctx context.Context, text string) ([]model.CandidateTask, error) {
	return m.out.Candidates, m.err
}

func (m *mockExtraction) ExtractCandidates(ctx context.Context, sc model.Scope, media model.RawMedia) (extraction.ExtractOutput, error) {
	m.calls++
	m.lastMedia = media
	return m.out, m.err
}

// mockTasks only implements the batch save used by the voice flow.
type mockTasks struct {
	task.UseCase
	saved []model.CandidateTask
}

func (m *mockTasks) SaveCandidates(ctx context.Context, sc model.Scope, cs []model.CandidateTask) (task.BatchResult, error) {
	m.saved = cs
	res := task.BatchResult{}
	for i, c := range cs {
		if c.Title == "" {
			res.Skipped = append(res.Skipped, task.SkippedCandidate{Index: i, Reason: "invalid task: title is required"})
			continue
		}
		due := time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC)
		res.Tasks = append(res.Tasks, model.Task{ID: fmt.Sprintf("t-%d", i), Title: c.Title, Priority: c.Priority, Status: model.StatusPending, DueDate: &due})
		res.Succeeded++
	}
	return res, nil
}

func newTestServer(uc extraction.UseCase, tasks task.UseCase, maxBytes int64, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), time.UTC, perMin)
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, tasks, maxBytes), mw)
	return r
}

func upload(r *gin.Engine, path, field, contentType string, data []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if field != "" {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="upload"`, field))
		if contentType != "" {
			hdr.Set("Content-Type", contentType)
		}
		part, _ := mw.CreatePart(hdr)
		part.Write(data)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(middleware.HeaderUserID, "alice")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad body %q: %v", w.Body.String(), err)
	}
	return env
}

func TestExtractImage(t *testing.T) {
	uc := &mockExtraction{out: extraction.ExtractOutput{
		Text:       "buy milk tomorrow",
		Candidates: []model.CandidateTask{{Title: "Buy milk", Priority: model.PriorityMedium, DeadlinePhrase: "tomorrow"}},
	}}
	r := newTestServer(uc, nil, 0, 0)

	w := upload(r, "/api/v1/extractions/image", fieldImage, "image/jpeg", []byte("jpeg bytes"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if uc.lastMedia.MIMEType != "image/jpeg" || string(uc.lastMedia.Data) != "jpeg bytes" {
		t.Errorf("unexpected media: %+v", uc.lastMedia)
	}

	var data extractResp
	json.Unmarshal(decode(t, w).Data, &data)
	if data.Text != "buy milk tomorrow" || len(data.Candidates) != 1 || data.Candidates[0].DeadlinePhrase != "tomorrow" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestExtractImage_SniffsGenericType(t *testing.T) {
	uc := &mockExtraction{}
	r := newTestServer(uc, nil, 0, 0)

	w := upload(r, "/api/v1/extractions/image", fieldImage, "application/octet-stream", pngHeader)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if uc.lastMedia.MIMEType != "image/png" {
		t.Errorf("mime = %q, want image/png", uc.lastMedia.MIMEType)
	}
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		field       string
		contentType string
		data        []byte
		wantStatus  int
	}{
		{"missing file", "/api/v1/extractions/image", "", "", nil, http.StatusBadRequest},
		{"wrong field", "/api/v1/extractions/image", fieldAudio, "image/png", pngHeader, http.StatusBadRequest},
		{"audio sent as image", "/api/v1/extractions/image", fieldImage, "audio/ogg", []byte("ogg"), http.StatusUnsupportedMediaType},
		{"image sent as audio", "/api/v1/extractions/audio", fieldAudio, "image/png", pngHeader, http.StatusUnsupportedMediaType},
		{"too large", "/api/v1/extractions/audio", fieldAudio, "audio/ogg", bytes.Repeat([]byte("a"), 128), http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockExtraction{}
			r := newTestServer(uc, nil, 64, 0)

			w := upload(r, tt.path, tt.field, tt.contentType, tt.data)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d body=%s", w.Code, tt.wantStatus, w.Body.String())
			}
			if uc.calls != 0 {
				t.Error("provider must not be called for a rejected upload")
			}
		})
	}
}

func TestExtractAudio_WebmRecording(t *testing.T) {
	uc := &mockExtraction{}
	r := newTestServer(uc, nil, 0, 0)

	w := upload(r, "/api/v1/extractions/audio", fieldAudio, "video/webm; codecs=opus", []byte("webm"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if uc.lastMedia.MIMEType != "video/webm" {
		t.Errorf("mime = %q", uc.lastMedia.MIMEType)
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{extraction.ErrNoTextExtracted, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", extraction.ErrExtractionFailed, context.DeadlineExceeded), http.StatusBadGateway},
		{fmt.Errorf("%w: bad json", extraction.ErrStructuringFailed), http.StatusBadGateway},
		{fmt.Errorf("%w: text/plain", extraction.ErrUnsupportedMedia), http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			r := newTestServer(&mockExtraction{err: tt.err}, nil, 0, 0)
			w := upload(r, "/api/v1/extractions/audio", fieldAudio, "audio/mpeg", []byte("mp3"))
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if msg := decode(t, w).Message; bytes.Contains([]byte(msg), []byte("deadline")) {
				t.Errorf("cause leaked into message: %q", msg)
			}
		})
	}
}

func TestSaveVoice(t *testing.T) {
	uc := &mockExtraction{out: extraction.ExtractOutput{
		Text: "call mom, and something",
		Candidates: []model.CandidateTask{
			{Title: "Call mom", Priority: model.PriorityHigh, DeadlinePhrase: "tomorrow"},
			{Title: "", Priority: model.PriorityMedium},
			{Title: "Pay rent", Priority: model.PriorityLow},
		},
	}}
	tasks := &mockTasks{}
	r := newTestServer(uc, tasks, 0, 0)

	w := upload(r, "/api/v1/tasks/voice", fieldAudio, "audio/ogg", []byte("ogg"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", w.Code, w.Body.String())
	}
	if len(tasks.saved) != 3 {
		t.Fatalf("saved %d candidates, want 3", len(tasks.saved))
	}

	var data voiceResp
	json.Unmarshal(decode(t, w).Data, &data)
	if data.Succeeded != 2 || len(data.Tasks) != 2 || len(data.Skipped) != 1 || data.Skipped[0].Index != 1 {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if data.Text != "call mom, and something" {
		t.Errorf("text = %q", data.Text)
	}
}

func TestSaveVoice_ExtractionFailureSavesNothing(t *testing.T) {
	tasks := &mockTasks{}
	r := newTestServer(&mockExtraction{err: extraction.ErrNoTextExtracted}, tasks, 0, 0)

	w := upload(r, "/api/v1/tasks/voice", fieldAudio, "audio/ogg", []byte("ogg"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if tasks.saved != nil {
		t.Error("nothing should be saved when extraction fails")
	}
}

func TestExtract_RateLimited(t *testing.T) {
	uc := &mockExtraction{}
	r := newTestServer(uc, nil, 0, 6)

	if w := upload(r, "/api/v1/extractions/image", fieldImage, "image/png", pngHeader); w.Code != http.StatusOK {
		t.Fatalf("first status = %d", w.Code)
	}
	if w := upload(r, "/api/v1/extractions/image", fieldImage, "image/png", pngHeader); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", w.Code)
	}
	if uc.calls != 1 {
		t.Errorf("calls = %d, want 1", uc.calls)
	}
}

func TestMediaType(t *testing.T) {
	tests := []struct {
		declared string
		data     []byte
		want     string
	}{
		{"IMAGE/JPEG", nil, "image/jpeg"},
		{"audio/ogg; codecs=opus", nil, "audio/ogg"},
		{"", pngHeader, "image/png"},
		{"not a type;;", pngHeader, "image/png"},
		{"application/octet-stream", []byte("plain words"), "text/plain"},
	}
	for _, tt := range tests {
		if got := mediaType(tt.declared, tt.data); got != tt.want {
			t.Errorf("mediaType(%q) = %q, want %q", tt.declared, got, tt.want)
		}
	}
}
