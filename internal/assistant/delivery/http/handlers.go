package http

import (
	"github.com/gin-gonic/gin"

	"agri-assistant/pkg/response"
)

// Chat godoc
// @Summary     Ask the assistant
// @Description Processes a farming query, optionally with a crop image (multipart field "image").
// @Tags        Assistant
// @Accept      json
// @Accept      mpfd
// @Produce     json
// @Param       body body chatReq true "Query"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	uc, id := h.sessions.Get(ctx, req.SessionID)

	output, err := uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChatResp(id, output))
}

// History godoc
// @Summary     Conversation history
// @Description Returns the session's conversation turns, oldest first.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Unknown session"
// @Router      /api/v1/assistant/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id := sessionID(c)
	if id == "" {
		response.NotFound(c, "session not found")
		return
	}

	uc, _ := h.sessions.Get(ctx, id)
	response.OK(c, h.newHistoryResp(id, uc.History()))
}

// Profile godoc
// @Summary     User profile
// @Description Returns the profile accumulated from the session's queries.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} profileResp
// @Failure     404 {object} response.Resp "Unknown session"
// @Router      /api/v1/assistant/profile [GET]
func (h *handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	id := sessionID(c)
	if id == "" {
		response.NotFound(c, "session not found")
		return
	}

	uc, _ := h.sessions.Get(ctx, id)
	response.OK(c, h.newProfileResp(id, uc.Profile()))
}

// ClearProfile godoc
// @Summary     Clear user profile
// @Description Resets the session's accumulated profile. History is kept.
// @Tags        Assistant
// @Produce     json
// @Param       session_id query string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown session"
// @Router      /api/v1/assistant/profile [DELETE]
func (h *handler) ClearProfile(c *gin.Context) {
	ctx := c.Request.Context()

	id := sessionID(c)
	if id == "" {
		response.NotFound(c, "session not found")
		return
	}

	uc, _ := h.sessions.Get(ctx, id)
	uc.ClearProfile()
	response.OK(c, nil)
}

// SubmitReport godoc
// @Summary     Report a disease sighting
// @Description Records a crop disease report and returns the generated area alert.
// @Tags        Reports
// @Accept      json
// @Produce     json
// @Param       body body reportReq true "Report"
// @Success     200 {object} submitReportResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/assistant/reports [POST]
func (h *handler) SubmitReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReportReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	uc, _ := h.sessions.Get(ctx, req.SessionID)

	output, err := uc.SubmitReport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SubmitReport: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSubmitReportResp(output))
}

// ListReports godoc
// @Summary     List disease reports
// @Description Returns all known disease reports, optionally filtered by crop or location.
// @Tags        Reports
// @Produce     json
// @Param       crop     query string false "Filter by crop"
// @Param       location query string false "Filter by location"
// @Success     200 {object} listReportsResp
// @Router      /api/v1/assistant/reports [GET]
func (h *handler) ListReports(c *gin.Context) {
	crop := c.Query("crop")
	location := c.Query("location")

	if crop != "" || location != "" {
		response.OK(c, h.newListReportsResp(h.reports.Matching(crop, location)))
		return
	}
	response.OK(c, h.newListReportsResp(h.reports.Combined()))
}
