package specialist_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"agri-assistant/internal/model"
	"agri-assistant/internal/report"
	"agri-assistant/internal/specialist"
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

// mockGenerator records prompts and returns a canned response.
type mockGenerator struct {
	response    string
	err         error
	lastPrompt  string
	lastMime    string
	visionCalls int
}

func (m *mockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.response, m.err
}

func (m *mockGenerator) GenerateVision(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	m.lastPrompt = prompt
	m.lastMime = mimeType
	m.visionCalls++
	return m.response, m.err
}

type mockWeather struct {
	summary      string
	lastLocation string
}

func (m *mockWeather) Summary(ctx context.Context, location string) string {
	m.lastLocation = location
	if m.summary == "" {
		return "Unknown weather"
	}
	return m.summary
}

func TestCropAdvisor(t *testing.T) {
	t.Run("applies defaults and includes weather", func(t *testing.T) {
		llm := &mockGenerator{response: "grow wheat"}
		wx := &mockWeather{summary: "Sunny, Max Temp: 30.0°C"}
		a := specialist.NewCropAdvisor(llm, wx, &mockLogger{})

		advice, weather, err := a.AdviseCrops(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if advice != "grow wheat" {
			t.Errorf("unexpected advice: %q", advice)
		}
		if weather != "Sunny, Max Temp: 30.0°C" {
			t.Errorf("unexpected weather: %q", weather)
		}
		if wx.lastLocation != specialist.DefaultLocation {
			t.Errorf("expected default location %q, got %q", specialist.DefaultLocation, wx.lastLocation)
		}
		if !strings.Contains(llm.lastPrompt, "Soil Type: mixed") {
			t.Errorf("prompt missing default soil type: %s", llm.lastPrompt)
		}
		if !strings.Contains(llm.lastPrompt, "Sunny, Max Temp") {
			t.Errorf("prompt missing weather context: %s", llm.lastPrompt)
		}
	})

	t.Run("propagates model error", func(t *testing.T) {
		llm := &mockGenerator{err: errors.New("quota exceeded")}
		a := specialist.NewCropAdvisor(llm, &mockWeather{}, &mockLogger{})

		if _, err := a.Advise(context.Background(), specialist.Params{SoilType: "red", Location: "Udaipur"}); err == nil {
			t.Error("expected error from model failure")
		}
	})
}

func TestMarketBroker(t *testing.T) {
	llm := &mockGenerator{response: "sell at the local mandi"}
	a := specialist.NewMarketBroker(llm, &mockLogger{})

	t.Run("defaults when parameters absent", func(t *testing.T) {
		out, err := a.Advise(context.Background(), specialist.Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "sell at the local mandi" {
			t.Errorf("unexpected advice: %q", out)
		}
		for _, want := range []string{"Crop: wheat", "Location: India", "Quantity: Not specified"} {
			if !strings.Contains(llm.lastPrompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, llm.lastPrompt)
			}
		}
	})

	t.Run("uses extracted parameters", func(t *testing.T) {
		_, err := a.Advise(context.Background(), specialist.Params{Crop: "rice", Location: "Punjab", Quantity: "50 quintals"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Crop: rice", "Location: Punjab", "Quantity: 50 quintals"} {
			if !strings.Contains(llm.lastPrompt, want) {
				t.Errorf("prompt missing %q:\n%s", want, llm.lastPrompt)
			}
		}
	})
}

func TestDiseaseDetector(t *testing.T) {
	t.Run("no image returns instructional message", func(t *testing.T) {
		llm := &mockGenerator{response: "should not be called"}
		a := specialist.NewDiseaseDetector(llm, &mockLogger{})

		out, err := a.Advise(context.Background(), specialist.Params{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != specialist.NoImageMessage {
			t.Errorf("expected instructional message, got %q", out)
		}
		if llm.visionCalls != 0 {
			t.Errorf("vision model should not be called without an image")
		}
	})

	t.Run("image routes to vision model", func(t *testing.T) {
		llm := &mockGenerator{response: "leaf rust, mild"}
		a := specialist.NewDiseaseDetector(llm, &mockLogger{})

		img := &model.Image{MIMEType: "image/png", Data: []byte{1, 2, 3}}
		out, err := a.Advise(context.Background(), specialist.Params{Image: img})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "leaf rust, mild" {
			t.Errorf("unexpected diagnosis: %q", out)
		}
		if llm.lastMime != "image/png" {
			t.Errorf("unexpected mime type: %q", llm.lastMime)
		}
	})

	t.Run("missing mime type defaults to jpeg", func(t *testing.T) {
		llm := &mockGenerator{response: "healthy"}
		a := specialist.NewDiseaseDetector(llm, &mockLogger{})

		_, err := a.DetectDisease(context.Background(), &model.Image{Data: []byte{1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if llm.lastMime != "image/jpeg" {
			t.Errorf("expected image/jpeg default, got %q", llm.lastMime)
		}
	})
}

func TestAlertSystem(t *testing.T) {
	t.Run("matching report produces alert prompt", func(t *testing.T) {
		llm := &mockGenerator{response: "inspect your field"}
		store := report.NewStore()
		a := specialist.NewAlertSystem(llm, store, &mockLogger{})

		out, err := a.CheckAlert(context.Background(), "wheat", "delhi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "inspect your field" {
			t.Errorf("unexpected alert: %q", out)
		}
		if !strings.Contains(llm.lastPrompt, "rust on wheat") {
			t.Errorf("alert prompt missing seed report context:\n%s", llm.lastPrompt)
		}
	})

	t.Run("no match produces all-clear prompt", func(t *testing.T) {
		llm := &mockGenerator{response: "all clear"}
		a := specialist.NewAlertSystem(llm, report.NewStore(), &mockLogger{})

		if _, err := a.CheckAlert(context.Background(), "maize", "delhi"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(llm.lastPrompt, "No recent crop disease alerts") {
			t.Errorf("expected all-clear prompt, got:\n%s", llm.lastPrompt)
		}
	})

	t.Run("submit report appends and generates alert", func(t *testing.T) {
		llm := &mockGenerator{response: "rust alert: act now"}
		store := report.NewStore()
		a := specialist.NewAlertSystem(llm, store, &mockLogger{})

		r, msg, err := a.SubmitReport(context.Background(), "Wheat", "Rust", "Udaipur")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg == "" {
			t.Error("expected non-empty alert text")
		}
		if store.Submitted() != 1 {
			t.Errorf("expected exactly one appended report, got %d", store.Submitted())
		}
		if r.ReportDate != time.Now().Format(report.DateFormat) {
			t.Errorf("expected report date to be today, got %s", r.ReportDate)
		}
		if !strings.Contains(llm.lastPrompt, "rust on wheat") {
			t.Errorf("alert prompt missing submitted report:\n%s", llm.lastPrompt)
		}
	})
}

func TestRegistry(t *testing.T) {
	reg := specialist.NewRegistry(&mockLogger{}, &mockGenerator{}, &mockWeather{}, report.NewStore())

	if err := reg.Validate(); err != nil {
		t.Fatalf("expected complete registry, got %v", err)
	}

	for _, name := range specialist.AllNames {
		if _, ok := reg.Get(name); !ok {
			t.Errorf("specialist %q missing from registry", name)
		}
	}

	if _, ok := reg.Get("weather_wizard"); ok {
		t.Error("unknown name should not resolve")
	}

	if reg.AlertSystem() == nil || reg.CropAdvisor() == nil {
		t.Error("direct accessors should return instances")
	}
}
