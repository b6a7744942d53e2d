package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smarteventadder/config"
	_ "smarteventadder/docs" // Swagger docs
	eventHTTP "smarteventadder/internal/event/delivery/http"
	eventUC "smarteventadder/internal/event/usecase"
	"smarteventadder/internal/httpserver"
	"smarteventadder/internal/middleware"
	"smarteventadder/pkg/gauth"
	"smarteventadder/pkg/gcalendar"
	"smarteventadder/pkg/gemini"
	"smarteventadder/pkg/gmail"
	"smarteventadder/pkg/log"
)

// @title       SmartEventAdder API
// @description Email to Google Calendar event extraction powered by Vertex AI Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	_ = godotenv.Load()

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

	logger.Info(ctx, "Starting SmartEventAdder API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Vertex AI project %s, location %s, model %s",
		cfg.Vertex.ProjectID, cfg.Vertex.Location, cfg.Vertex.Model)

	// 3. Google OAuth client, shared by Vertex AI, Calendar and Gmail
	authCfg := gauth.Config{
		CredentialsPath: cfg.Google.CredentialsPath,
		TokenPath:       cfg.Google.TokenPath,
	}
	httpClient, err := gauth.HTTPClient(ctx, authCfg)
	if err != nil {
		logger.Errorf(ctx, "Google authentication failed: %v", err)
		logger.Error(ctx, "→ Run `smarteventadder-cli auth` to authorize first")
		return
	}

	llm := gemini.NewClient(cfg.Vertex.ProjectID, cfg.Vertex.Location, httpClient)
	if cfg.Vertex.Model != "" {
		llm.SetModel(cfg.Vertex.Model)
	}

	calendarClient, err := gcalendar.NewClient(ctx, httpClient)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar init failed: %v", err)
		return
	}

	gmailClient, err := gmail.NewClient(ctx, httpClient)
	if err != nil {
		logger.Errorf(ctx, "Gmail init failed: %v", err)
		return
	}

	// 4. Event domain
	uc := eventUC.New(logger, llm, calendarClient, gmailClient, cfg.Calendar.CalendarID)
	handler := eventHTTP.New(logger, uc)
	mw := middleware.New(logger, cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   mw,
		EventHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
