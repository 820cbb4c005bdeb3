package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"agri-assistant/config"
	_ "agri-assistant/docs" // Swagger docs
	"agri-assistant/internal/assistant"
	assistantHTTP "agri-assistant/internal/assistant/delivery/http"
	tgDelivery "agri-assistant/internal/assistant/delivery/telegram"
	"agri-assistant/internal/assistant/usecase"
	"agri-assistant/internal/httpserver"
	"agri-assistant/internal/middleware"
	"agri-assistant/internal/report"
	"agri-assistant/internal/router"
	"agri-assistant/internal/session"
	"agri-assistant/internal/specialist"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
	"agri-assistant/pkg/telegram"
	"agri-assistant/pkg/weather"
)

// @title       Agri Assistant API
// @description AI farming assistant: crop advice, disease detection, market info and outbreak alerts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Agri Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Shared collaborators
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	weatherClient := weather.NewClient(cfg.Weather.APIKey)
	if cfg.Weather.APIKey == "" {
		logger.Warn(ctx, "Weather API key missing, crop advice will use the unknown-weather fallback")
	}

	// One report store for the whole process: every session reads and
	// feeds the same outbreak picture.
	reportStore := report.NewStore()

	registry := specialist.NewRegistry(logger, geminiClient, weatherClient, reportStore)
	if err := registry.Validate(); err != nil {
		logger.Error(ctx, "Specialist registry incomplete: ", err)
		return
	}

	intentRouter := router.New(geminiClient, logger)

	sessions := session.NewManager(logger, func() assistant.UseCase {
		return usecase.New(logger, geminiClient, intentRouter, registry)
	}, cfg.Chat.MaxSessions, cfg.Chat.SessionTTL)

	// 4. Deliveries
	assistantHandler := assistantHTTP.New(logger, sessions, reportStore)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, sessions, telegramBot)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.Chat.RateLimitPerMin),
		AssistantHandler: assistantHandler,
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
