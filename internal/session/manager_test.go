package session_test

import (
	"context"
	"testing"
	"time"

	"agri-assistant/internal/assistant"
	"agri-assistant/internal/model"
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

type stubAssistant struct{ assistant.UseCase }

func (s *stubAssistant) Profile() model.UserProfile { return model.UserProfile{} }

func TestManager(t *testing.T) {
	ctx := context.Background()

	t.Run("same id resolves to the same assistant", func(t *testing.T) {
		m := session.NewManager(&mockLogger{}, func() assistant.UseCase { return &stubAssistant{} }, 8, time.Minute)

		first, id := m.Get(ctx, "")
		if id == "" {
			t.Fatal("expected a generated session id")
		}
		second, _ := m.Get(ctx, id)
		if first != second {
			t.Error("same session id must resolve to the same assistant")
		}
		if m.Len() != 1 {
			t.Errorf("expected 1 session, got %d", m.Len())
		}
	})

	t.Run("empty ids start distinct sessions", func(t *testing.T) {
		m := session.NewManager(&mockLogger{}, func() assistant.UseCase { return &stubAssistant{} }, 8, time.Minute)

		a, idA := m.Get(ctx, "")
		b, idB := m.Get(ctx, "")
		if idA == idB {
			t.Error("expected distinct generated ids")
		}
		if a == b {
			t.Error("expected distinct assistants")
		}
	})

	t.Run("capacity evicts oldest session", func(t *testing.T) {
		m := session.NewManager(&mockLogger{}, func() assistant.UseCase { return &stubAssistant{} }, 2, time.Minute)

		old, _ := m.Get(ctx, "a")
		m.Get(ctx, "b")
		m.Get(ctx, "c")

		replacement, _ := m.Get(ctx, "a")
		if old == replacement {
			t.Error("evicted session should restart with a fresh assistant")
		}
	})
}
