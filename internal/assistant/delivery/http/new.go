package http

import (
	"github.com/gin-gonic/gin"

	"agri-assistant/internal/report"
	"agri-assistant/internal/session"
	"agri-assistant/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	History(c *gin.Context)
	Profile(c *gin.Context)
	ClearProfile(c *gin.Context)
	SubmitReport(c *gin.Context)
	ListReports(c *gin.Context)
}

type handler struct {
	l        log.Logger
	sessions *session.Manager
	reports  *report.Store
}

// New creates a new HTTP handler for the assistant domain.
func New(l log.Logger, sessions *session.Manager, reports *report.Store) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
		reports:  reports,
	}
}

var _ Handler = (*handler)(nil)
