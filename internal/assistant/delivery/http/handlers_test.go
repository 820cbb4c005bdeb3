package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"agri-assistant/internal/assistant"
	httpDelivery "agri-assistant/internal/assistant/delivery/http"
	"agri-assistant/internal/middleware"
	"agri-assistant/internal/model"
	"agri-assistant/internal/report"
	"agri-assistant/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubUC records inputs and returns canned outputs.
type stubUC struct {
	lastChat   assistant.ChatInput
	lastReport assistant.ReportInput
	cleared    bool
}

func (s *stubUC) Process(ctx context.Context, input assistant.ChatInput) (assistant.ChatOutput, error) {
	s.lastChat = input
	if strings.TrimSpace(input.Text) == "" {
		return assistant.ChatOutput{}, assistant.ErrEmptyQuery
	}
	return assistant.ChatOutput{
		Response:     "canned advice",
		Intent:       "crop query",
		PrimaryTask:  model.TaskCropSelection,
		AgentsCalled: []string{"crop_advisor"},
	}, nil
}

func (s *stubUC) SubmitReport(ctx context.Context, input assistant.ReportInput) (assistant.ReportOutput, error) {
	s.lastReport = input
	return assistant.ReportOutput{
		Report: model.DiseaseReport{Crop: "wheat", Disease: "rust", Location: "udaipur", ReportDate: "2025-08-31"},
		Alert:  "act now",
	}, nil
}

func (s *stubUC) History() []model.ConversationTurn {
	return []model.ConversationTurn{{ID: "t1", UserInput: "hello"}}
}

func (s *stubUC) Profile() model.UserProfile {
	return model.UserProfile{Location: "Punjab", Interests: map[model.PrimaryTask]int{model.TaskCropSelection: 2}}
}

func (s *stubUC) ClearProfile() { s.cleared = true }

func newTestServer(uc *stubUC, store *report.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}

	sessions := session.NewManager(l, func() assistant.UseCase { return uc }, 8, 0)
	h := httpDelivery.New(l, sessions, store)

	r := gin.New()
	httpDelivery.RegisterRoutes(r.Group("/api/v1/assistant"), h, middleware.New(l, 0))
	return r
}

func decodeData(t *testing.T, body []byte) map[string]any {
	t.Helper()
	var resp struct {
		ErrorCode int            `json:"error_code"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp.Data
}

func TestChat(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		uc := &stubUC{}
		r := newTestServer(uc, report.NewStore())

		body := `{"message": "what should I grow?"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		data := decodeData(t, w.Body.Bytes())
		if data["response"] != "canned advice" {
			t.Errorf("unexpected response payload: %v", data)
		}
		if data["session_id"] == "" {
			t.Error("expected a generated session id")
		}
		if uc.lastChat.Image != nil {
			t.Error("json body must not carry an image")
		}
	})

	t.Run("missing message", func(t *testing.T) {
		r := newTestServer(&stubUC{}, report.NewStore())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(`{"message": "  "}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("multipart with image", func(t *testing.T) {
		uc := &stubUC{}
		r := newTestServer(uc, report.NewStore())

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		mw.WriteField("message", "what is wrong with my crop?")
		fw, _ := mw.CreateFormFile("image", "leaf.jpg")
		fw.Write([]byte{0xFF, 0xD8, 0xFF})
		mw.Close()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastChat.Image == nil || len(uc.lastChat.Image.Data) != 3 {
			t.Errorf("image not forwarded to use case: %+v", uc.lastChat.Image)
		}
	})

	t.Run("session id is reused", func(t *testing.T) {
		r := newTestServer(&stubUC{}, report.NewStore())

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/chat", strings.NewReader(`{"message": "hi", "session_id": "farmer-7"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		data := decodeData(t, w.Body.Bytes())
		if data["session_id"] != "farmer-7" {
			t.Errorf("expected echoed session id, got %v", data["session_id"])
		}
	})
}

func TestHistoryAndProfile(t *testing.T) {
	uc := &stubUC{}
	r := newTestServer(uc, report.NewStore())

	t.Run("history requires session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/history", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("history by session", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/history?session_id=farmer-7", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"user_input":"hello"`) {
			t.Errorf("history turn missing: %s", w.Body.String())
		}
	})

	t.Run("profile by header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/profile", nil)
		req.Header.Set("X-Session-ID", "farmer-7")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"location":"Punjab"`) {
			t.Errorf("profile missing: %s", w.Body.String())
		}
	})

	t.Run("clear profile", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/assistant/profile?session_id=farmer-7", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !uc.cleared {
			t.Error("ClearProfile not invoked")
		}
	})
}

func TestReports(t *testing.T) {
	store := report.NewStore()
	r := newTestServer(&stubUC{}, store)

	t.Run("submit", func(t *testing.T) {
		body := `{"crop": "wheat", "disease": "rust", "location": "Udaipur"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/reports", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"alert":"act now"`) {
			t.Errorf("alert missing: %s", w.Body.String())
		}
	})

	t.Run("submit missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/reports", strings.NewReader(`{"crop": "wheat"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list all includes seed data", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/reports", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"disease":"false smut"`) {
			t.Errorf("seed reports missing: %s", w.Body.String())
		}
	})

	t.Run("list filtered by crop", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assistant/reports?crop=wheat", nil)
		r.ServeHTTP(w, req)

		body := w.Body.String()
		if !strings.Contains(body, `"crop":"wheat"`) || strings.Contains(body, `"crop":"rice"`) {
			t.Errorf("filter not applied: %s", body)
		}
	})
}
