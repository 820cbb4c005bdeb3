package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"agri-assistant/config"
	"agri-assistant/internal/assistant"
	"agri-assistant/internal/assistant/usecase"
	"agri-assistant/internal/model"
	"agri-assistant/internal/report"
	"agri-assistant/internal/router"
	"agri-assistant/internal/specialist"
	"agri-assistant/pkg/gemini"
	"agri-assistant/pkg/log"
	"agri-assistant/pkg/weather"
)

const banner = `🌾 Agri Assistant (terminal mode)
Ask a farming question, or:
  /image <path>                  attach a crop photo to your next question
  /report <crop>,<disease>,<loc> submit a disease sighting
  /profile                       show what I have learned about you
  /history                       show this session's conversation
  exit                           quit`

// main runs a single-session terminal loop against the same pipeline
// the HTTP server exposes.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the terminal readable
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)

	weatherClient := weather.NewClient(cfg.Weather.APIKey)
	reportStore := report.NewStore()
	registry := specialist.NewRegistry(logger, geminiClient, weatherClient, reportStore)
	intentRouter := router.New(geminiClient, logger)

	uc := usecase.New(logger, geminiClient, intentRouter, registry)

	fmt.Println(banner)

	var pendingImage *model.Image
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	for {
		if pendingImage != nil {
			fmt.Print("\n[image attached] > ")
		} else {
			fmt.Print("\n> ")
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue

		case line == "exit" || line == "quit":
			fmt.Println("Goodbye! 👋")
			return

		case strings.HasPrefix(line, "/image "):
			img, err := loadImage(strings.TrimSpace(strings.TrimPrefix(line, "/image ")))
			if err != nil {
				fmt.Println("Could not load image:", err)
				continue
			}
			pendingImage = img
			fmt.Println("Image attached. Ask your question.")

		case strings.HasPrefix(line, "/report "):
			submitReport(ctx, uc, strings.TrimPrefix(line, "/report "))

		case line == "/profile":
			printProfile(uc.Profile())

		case line == "/history":
			printHistory(uc.History())

		default:
			out, err := uc.Process(ctx, assistant.ChatInput{Text: line, Image: pendingImage})
			pendingImage = nil
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Printf("\n%s\n", out.Response)
			fmt.Printf("\n(agents: %s)\n", strings.Join(out.AgentsCalled, ", "))
		}
	}
}

func loadImage(path string) (*model.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	mimeType := "image/jpeg"
	if strings.EqualFold(filepath.Ext(path), ".png") {
		mimeType = "image/png"
	}
	return &model.Image{MIMEType: mimeType, Data: data}, nil
}

func submitReport(ctx context.Context, uc assistant.UseCase, args string) {
	parts := strings.SplitN(args, ",", 3)
	if len(parts) != 3 {
		fmt.Println("Usage: /report <crop>,<disease>,<location>")
		return
	}

	out, err := uc.SubmitReport(ctx, assistant.ReportInput{
		Crop:     strings.TrimSpace(parts[0]),
		Disease:  strings.TrimSpace(parts[1]),
		Location: strings.TrimSpace(parts[2]),
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Recorded: %s / %s at %s (%s)\n", out.Report.Crop, out.Report.Disease, out.Report.Location, out.Report.ReportDate)
	fmt.Printf("\n%s\n", out.Alert)
}

func printProfile(p model.UserProfile) {
	fmt.Println("Your profile:")
	if p.Location != "" {
		fmt.Println("  Location: ", p.Location)
	}
	if p.CurrentCrop != "" {
		fmt.Println("  Crop:     ", p.CurrentCrop)
	}
	if p.SoilType != "" {
		fmt.Println("  Soil:     ", p.SoilType)
	}
	if len(p.Interests) == 0 {
		fmt.Println("  (nothing learned yet)")
		return
	}
	fmt.Println("  Interests:")
	for task, count := range p.Interests {
		fmt.Printf("    %s: %d\n", task, count)
	}
}

func printHistory(turns []model.ConversationTurn) {
	if len(turns) == 0 {
		fmt.Println("No conversation yet.")
		return
	}
	for i, t := range turns {
		fmt.Printf("%d. [%s] you: %s\n", i+1, t.Timestamp.Format("15:04"), t.UserInput)
		fmt.Printf("   assistant (%s): %.120s\n", strings.Join(t.AgentsCalled, ","), t.Response)
	}
}
