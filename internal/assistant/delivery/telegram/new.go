package telegram

import (
	"github.com/gin-gonic/gin"

	"agri-assistant/internal/session"
	pkgLog "agri-assistant/pkg/log"
	pkgTelegram "agri-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	sessions *session.Manager
	bot      *pkgTelegram.Bot
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, sessions *session.Manager, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:        l,
		sessions: sessions,
		bot:      bot,
	}
}
