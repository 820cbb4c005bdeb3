package specialist

import (
	"context"
	"fmt"
	"strings"

	"agri-assistant/internal/model"
	"agri-assistant/internal/report"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
)

// AlertSystemAgent checks the shared report store for disease activity
// relevant to a farmer's crop or area and writes an alert (or all-clear)
// message. It also takes new report submissions.
type AlertSystemAgent struct {
	llm   gemini.Generator
	store *report.Store
	l     log.Logger
}

var _ Specialist = (*AlertSystemAgent)(nil)

// NewAlertSystem creates the alert specialist around the process-wide
// report store.
func NewAlertSystem(llm gemini.Generator, store *report.Store, l log.Logger) *AlertSystemAgent {
	return &AlertSystemAgent{llm: llm, store: store, l: l}
}

func (a *AlertSystemAgent) Name() string { return AlertSystem }

// Advise implements Specialist.
func (a *AlertSystemAgent) Advise(ctx context.Context, p Params) (string, error) {
	return a.CheckAlert(ctx, p.Crop, p.Location)
}

// CheckAlert looks for reports matching the crop or location and asks
// the model for an alert message (when matches exist) or a reassuring
// all-clear.
func (a *AlertSystemAgent) CheckAlert(ctx context.Context, crop, location string) (string, error) {
	if crop == "" {
		crop = DefaultCrop
	}
	if location == "" {
		location = DefaultLocation
	}

	matches := a.store.Matching(crop, location)

	var prompt string
	if len(matches) > 0 {
		a.l.Infof(ctx, "%s: %d matching reports for crop=%s location=%s", LogPrefixAlertSystem, len(matches), crop, location)
		prompt = fmt.Sprintf(PromptAlertActive, renderReports(matches))
	} else {
		prompt = PromptAlertClear
	}

	msg, err := a.llm.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("alert generation failed: %w", err)
	}
	return msg, nil
}

// SubmitReport appends a farmer's disease sighting to the shared store,
// then immediately generates an alert message for that submission.
func (a *AlertSystemAgent) SubmitReport(ctx context.Context, crop, disease, location string) (model.DiseaseReport, string, error) {
	r := a.store.Append(crop, disease, location)
	a.l.Infof(ctx, "%s: report submitted crop=%s disease=%s location=%s", LogPrefixAlertSystem, r.Crop, r.Disease, r.Location)

	prompt := fmt.Sprintf(PromptAlertActive, renderReports([]model.DiseaseReport{r}))
	msg, err := a.llm.GenerateText(ctx, prompt)
	if err != nil {
		return r, "", fmt.Errorf("alert generation failed: %w", err)
	}
	return r, msg, nil
}

func renderReports(reports []model.DiseaseReport) string {
	var b strings.Builder
	for _, r := range reports {
		fmt.Fprintf(&b, "  - %s: %s on %s (reported %s)\n", r.Location, r.Disease, r.Crop, r.ReportDate)
	}
	return b.String()
}
