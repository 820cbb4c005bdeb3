package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected request contents: %+v", req.Contents)
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  world  "}]}}]}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	got, err := client.GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "world" {
		t.Errorf("expected trimmed text %q, got %q", "world", got)
	}
}

func TestGenerateTextAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	if _, err := client.GenerateText(context.Background(), "hello"); err == nil {
		t.Error("expected error on 500 response")
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	if _, err := client.GenerateText(context.Background(), "hello"); err == nil {
		t.Error("expected ErrEmptyResponse for empty candidates")
	}
}

func TestGenerateVision(t *testing.T) {
	imageData := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}

		parts := req.Contents[0].Parts
		if len(parts) != 2 {
			t.Fatalf("expected 2 parts (text + image), got %d", len(parts))
		}
		if parts[1].InlineData == nil {
			t.Fatal("expected inline_data part")
		}
		if parts[1].InlineData.MIMEType != "image/jpeg" {
			t.Errorf("unexpected mime type: %s", parts[1].InlineData.MIMEType)
		}
		if parts[1].InlineData.Data != base64.StdEncoding.EncodeToString(imageData) {
			t.Errorf("image data not base64-encoded correctly")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"leaf rust detected"}]}}]}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	got, err := client.GenerateVision(context.Background(), "analyze this leaf", "image/jpeg", imageData)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "leaf rust detected" {
		t.Errorf("unexpected response: %q", got)
	}
}

func TestSetModel(t *testing.T) {
	client := NewClient("test-key")
	if client.Model() != defaultModel {
		t.Errorf("expected default model %q, got %q", defaultModel, client.Model())
	}

	client.SetModel("gemini-2.0-flash")
	if client.Model() != "gemini-2.0-flash" {
		t.Errorf("SetModel did not apply")
	}

	client.SetModel("")
	if client.Model() != "gemini-2.0-flash" {
		t.Errorf("SetModel with empty string should keep previous model")
	}
}
