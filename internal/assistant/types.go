package assistant

import "agri-assistant/internal/model"

// ChatInput is one user query: free text plus an optional image.
type ChatInput struct {
	Text  string
	Image *model.Image
}

// ChatOutput is the reply plus the routing metadata the presentation
// layer may display.
type ChatOutput struct {
	Response     string
	Intent       string
	PrimaryTask  model.PrimaryTask
	AgentsCalled []string
}

// AgentResult is one specialist's raw output (or error string) for a
// query, kept in dispatch order.
type AgentResult struct {
	Name   string
	Output string
}

// ReportInput is a farmer's disease sighting submission.
type ReportInput struct {
	Crop     string
	Disease  string
	Location string
}

// ReportOutput is the stored report and the alert generated for it.
type ReportOutput struct {
	Report model.DiseaseReport
	Alert  string
}
