package report

import (
	"strings"
	"sync"
	"time"

	"agri-assistant/internal/model"
)

// DateFormat is the report date layout.
const DateFormat = "2006-01-02"

// seedReports is the fixed historical dataset every store starts with.
var seedReports = []model.DiseaseReport{
	{Crop: "wheat", Disease: "rust", Location: "udaipur", ReportDate: "2025-07-31"},
	{Crop: "rice", Disease: "false smut", Location: "jaipur", ReportDate: "2025-07-30"},
}

// Store is the process-wide, append-only collection of disease reports.
// User submissions are combined with the seed dataset at read time.
// No deduplication, no expiry.
type Store struct {
	mu      sync.RWMutex
	reports []model.DiseaseReport

	now func() time.Time
}

// NewStore creates a report store pre-loaded with the seed dataset.
// One store is shared by all sessions for the process lifetime.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Append records a user-submitted report with today's date and returns
// the stored record. Fields are lower-cased on write.
func (s *Store) Append(crop, disease, location string) model.DiseaseReport {
	r := model.DiseaseReport{
		Crop:       strings.ToLower(strings.TrimSpace(crop)),
		Disease:    strings.ToLower(strings.TrimSpace(disease)),
		Location:   strings.ToLower(strings.TrimSpace(location)),
		ReportDate: s.now().Format(DateFormat),
	}

	s.mu.Lock()
	s.reports = append(s.reports, r)
	s.mu.Unlock()

	return r
}

// Combined returns the seed dataset followed by all user submissions,
// oldest first.
func (s *Store) Combined() []model.DiseaseReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.DiseaseReport, 0, len(seedReports)+len(s.reports))
	out = append(out, seedReports...)
	out = append(out, s.reports...)
	return out
}

// Matching returns combined reports whose crop or location matches the
// given values (case-insensitive). Either argument may be empty.
func (s *Store) Matching(crop, location string) []model.DiseaseReport {
	crop = strings.ToLower(strings.TrimSpace(crop))
	location = strings.ToLower(strings.TrimSpace(location))

	var out []model.DiseaseReport
	for _, r := range s.Combined() {
		if (crop != "" && r.Crop == crop) || (location != "" && r.Location == location) {
			out = append(out, r)
		}
	}
	return out
}

// Submitted reports the number of user submissions (seed data excluded).
func (s *Store) Submitted() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
