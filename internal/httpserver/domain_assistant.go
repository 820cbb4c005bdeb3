package httpserver

import (
	"context"

	assistantHTTP "agri-assistant/internal/assistant/delivery/http"
)

// setupAssistantDomain registers the assistant API and, when configured,
// the Telegram webhook. Handlers are built in main and injected; this
// layer only owns the route table.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context) error {
	api := srv.gin.Group("/api/v1")

	// Chat, history, profile, reports: /api/v1/assistant/...
	assistantHTTP.RegisterRoutes(api.Group("/assistant"), srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant domain registered")

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
