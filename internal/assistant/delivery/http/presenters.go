package http

import (
	"strings"

	"agri-assistant/internal/assistant"
	"agri-assistant/internal/model"
	"agri-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`

	// Populated only from multipart bodies.
	Image *model.Image `json:"-"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	return nil
}

func (r chatReq) toInput() assistant.ChatInput {
	return assistant.ChatInput{
		Text:  r.Message,
		Image: r.Image,
	}
}

// ---

type reportReq struct {
	Crop      string `json:"crop"     binding:"required"`
	Disease   string `json:"disease"  binding:"required"`
	Location  string `json:"location" binding:"required"`
	SessionID string `json:"session_id"`
}

func (r reportReq) validate() error { return nil }

func (r reportReq) toInput() assistant.ReportInput {
	return assistant.ReportInput{
		Crop:     r.Crop,
		Disease:  r.Disease,
		Location: r.Location,
	}
}

// --- Response DTOs ---

type chatResp struct {
	SessionID    string   `json:"session_id"`
	Response     string   `json:"response"`
	Intent       string   `json:"intent"`
	PrimaryTask  string   `json:"primary_task"`
	AgentsCalled []string `json:"agents_called"`
}

func (h *handler) newChatResp(sessionID string, out assistant.ChatOutput) chatResp {
	agents := out.AgentsCalled
	if agents == nil {
		agents = []string{}
	}
	return chatResp{
		SessionID:    sessionID,
		Response:     out.Response,
		Intent:       out.Intent,
		PrimaryTask:  string(out.PrimaryTask),
		AgentsCalled: agents,
	}
}

type turnResp struct {
	ID           string            `json:"id"`
	Timestamp    response.DateTime `json:"timestamp"`
	UserInput    string            `json:"user_input"`
	Intent       string            `json:"intent"`
	PrimaryTask  string            `json:"primary_task"`
	AgentsCalled []string          `json:"agents_called"`
	Response     string            `json:"response"`
	HadImage     bool              `json:"had_image"`
}

type historyResp struct {
	SessionID string     `json:"session_id"`
	Turns     []turnResp `json:"turns"`
}

func (h *handler) newHistoryResp(sessionID string, turns []model.ConversationTurn) historyResp {
	out := make([]turnResp, len(turns))
	for i, t := range turns {
		out[i] = turnResp{
			ID:           t.ID,
			Timestamp:    response.DateTime(t.Timestamp),
			UserInput:    t.UserInput,
			Intent:       t.Intent,
			PrimaryTask:  string(t.PrimaryTask),
			AgentsCalled: t.AgentsCalled,
			Response:     t.Response,
			HadImage:     t.HadImage,
		}
	}
	return historyResp{SessionID: sessionID, Turns: out}
}

type profileResp struct {
	SessionID   string         `json:"session_id"`
	Location    string         `json:"location,omitempty"`
	CurrentCrop string         `json:"current_crop,omitempty"`
	SoilType    string         `json:"soil_type,omitempty"`
	Interests   map[string]int `json:"interests"`
}

func (h *handler) newProfileResp(sessionID string, p model.UserProfile) profileResp {
	interests := make(map[string]int, len(p.Interests))
	for task, count := range p.Interests {
		interests[string(task)] = count
	}
	return profileResp{
		SessionID:   sessionID,
		Location:    p.Location,
		CurrentCrop: p.CurrentCrop,
		SoilType:    p.SoilType,
		Interests:   interests,
	}
}

type reportResp struct {
	Crop       string `json:"crop"`
	Disease    string `json:"disease"`
	Location   string `json:"location"`
	ReportDate string `json:"report_date"`
}

func newReportResp(r model.DiseaseReport) reportResp {
	return reportResp{
		Crop:       r.Crop,
		Disease:    r.Disease,
		Location:   r.Location,
		ReportDate: r.ReportDate,
	}
}

type submitReportResp struct {
	Report reportResp `json:"report"`
	Alert  string     `json:"alert"`
}

func (h *handler) newSubmitReportResp(out assistant.ReportOutput) submitReportResp {
	return submitReportResp{
		Report: newReportResp(out.Report),
		Alert:  out.Alert,
	}
}

type listReportsResp struct {
	Reports []reportResp `json:"reports"`
	Total   int          `json:"total"`
}

func (h *handler) newListReportsResp(reports []model.DiseaseReport) listReportsResp {
	out := make([]reportResp, len(reports))
	for i, r := range reports {
		out[i] = newReportResp(r)
	}
	return listReportsResp{Reports: out, Total: len(out)}
}
