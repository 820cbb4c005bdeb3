package report

import (
	"testing"
	"time"
)

func TestCombinedIncludesSeedData(t *testing.T) {
	s := NewStore()

	combined := s.Combined()
	if len(combined) != 2 {
		t.Fatalf("expected 2 seed reports, got %d", len(combined))
	}
	if combined[0].Crop != "wheat" || combined[0].Disease != "rust" || combined[0].Location != "udaipur" {
		t.Errorf("unexpected first seed report: %+v", combined[0])
	}
	if combined[1].Crop != "rice" || combined[1].Disease != "false smut" {
		t.Errorf("unexpected second seed report: %+v", combined[1])
	}
}

func TestAppend(t *testing.T) {
	s := NewStore()
	s.now = func() time.Time { return time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC) }

	r := s.Append("Wheat", "Rust", "Udaipur")

	if r.Crop != "wheat" || r.Disease != "rust" || r.Location != "udaipur" {
		t.Errorf("expected lower-cased fields, got %+v", r)
	}
	if r.ReportDate != "2025-08-15" {
		t.Errorf("expected report date 2025-08-15, got %s", r.ReportDate)
	}
	if s.Submitted() != 1 {
		t.Errorf("expected 1 submission, got %d", s.Submitted())
	}
	if got := len(s.Combined()); got != 3 {
		t.Errorf("expected 3 combined reports, got %d", got)
	}
}

func TestAppendKeepsDuplicates(t *testing.T) {
	s := NewStore()
	s.Append("wheat", "rust", "udaipur")
	s.Append("wheat", "rust", "udaipur")

	if s.Submitted() != 2 {
		t.Errorf("expected 2 submissions (no dedup), got %d", s.Submitted())
	}
}

func TestMatching(t *testing.T) {
	s := NewStore()
	s.Append("tomato", "blight", "pune")

	t.Run("by crop", func(t *testing.T) {
		got := s.Matching("Wheat", "")
		if len(got) != 1 || got[0].Disease != "rust" {
			t.Errorf("expected one wheat rust report, got %+v", got)
		}
	})

	t.Run("by location", func(t *testing.T) {
		got := s.Matching("", "Jaipur")
		if len(got) != 1 || got[0].Crop != "rice" {
			t.Errorf("expected one jaipur report, got %+v", got)
		}
	})

	t.Run("crop or location", func(t *testing.T) {
		got := s.Matching("tomato", "udaipur")
		if len(got) != 2 {
			t.Errorf("expected 2 matches, got %d: %+v", len(got), got)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if got := s.Matching("maize", "delhi"); len(got) != 0 {
			t.Errorf("expected no matches, got %+v", got)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		if got := s.Matching("", ""); len(got) != 0 {
			t.Errorf("expected no matches for empty filters, got %+v", got)
		}
	})
}
