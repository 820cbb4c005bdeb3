package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"agri-assistant/internal/assistant"
	"agri-assistant/internal/model"
	pkgResponse "agri-assistant/pkg/response"
	pkgTelegram "agri-assistant/pkg/telegram"
)

const (
	welcomeMessage = "👋 Welcome to *Agri Assistant*!\n\nAsk me anything about your farm and I will:\n• 🌱 Suggest crops for your soil and weather\n• 🔬 Diagnose diseases from leaf photos\n• 🤝 Find the best places to sell your harvest\n• ⚠️ Warn you about disease outbreaks nearby\n\n_Example: \"Which crops suit black soil near Nagpur?\" or send a photo of a sick leaf._"

	helpMessage = "*How to use:*\n\n• Send a question in plain language, e.g. `Where can I sell 50 quintals of wheat in Punjab?`\n• Send a *photo* of a crop leaf to get a disease diagnosis\n• Ask `Any disease alerts for rice near Jaipur?` to check warnings"

	processingMessage = "⏳ Analyzing your question..."
	failureMessage    = "Something went wrong while handling your request. Please try again."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects an answer within seconds, while
// the pipeline (two router calls, specialists, synthesis) can take far
// longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, failureMessage)
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}

	// ---- Built-in commands ----
	switch text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, welcomeMessage, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpMessage, "Markdown")
	}

	input := assistant.ChatInput{Text: text}

	// A photo without a caption is still a valid query: treat it as an
	// implicit diagnosis request.
	if len(msg.Photo) > 0 {
		data, err := h.bot.DownloadPhoto(msg.Photo)
		if err != nil {
			h.l.Warnf(ctx, "telegram handler: photo download failed: %v", err)
		} else {
			input.Image = &model.Image{MIMEType: "image/jpeg", Data: data}
			if input.Text == "" {
				input.Text = "Please analyze this crop image for diseases"
			}
		}
	}

	if input.Text == "" {
		return nil
	}

	if err := h.bot.SendMessage(msg.Chat.ID, processingMessage); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send ack message: %v", err)
	}

	// One session per chat, so profile and history follow the farmer.
	uc, _ := h.sessions.Get(ctx, fmt.Sprintf("telegram_%d", msg.Chat.ID))

	output, err := uc.Process(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Process failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, fmt.Sprintf("Could not handle your request: %v", err))
	}

	return h.bot.SendMessageWithMode(msg.Chat.ID, output.Response, "Markdown")
}
