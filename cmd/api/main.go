package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"note-task-planner/config"
	_ "note-task-planner/docs" // Swagger docs
	extractionProvider "note-task-planner/internal/extraction/provider"
	extractionUC "note-task-planner/internal/extraction/usecase"
	"note-task-planner/internal/httpserver"
	"note-task-planner/internal/middleware"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository/gormstore"
	taskUC "note-task-planner/internal/task/usecase"
	"note-task-planner/pkg/database"
	"note-task-planner/pkg/datemath"
	"note-task-planner/pkg/gcalendar"
	"note-task-planner/pkg/llmprovider"
	"note-task-planner/pkg/log"
)

// @title       Note Task Planner API
// @description Turns photos of notes and voice memos into scheduled tasks.
// @version     1
// @host        localhost:8080
// @BasePath    /api/v1
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Note Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	defaultTZ, err := datemath.LoadLocation(cfg.Planner.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid planner timezone %q: %v", cfg.Planner.Timezone, err)
	}

	// 3. Storage
	db, err := database.Open(database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer database.Close(db)

	if err := gormstore.Migrate(db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate database: %v", err)
	}
	logger.Infof(ctx, "Database ready (driver=%s)", cfg.Database.Driver)

	// 4. Extraction domain
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	maxTotal, err := cfg.LLM.TotalTimeout()
	if err != nil {
		logger.Fatalf(ctx, "Invalid LLM config: %v", err)
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, logger)

	textProvider := extractionProvider.New(logger, llm, cfg.Extraction.MaxOutputTokens)
	extractionUseCase := extractionUC.New(logger, textProvider, cfg.Extraction.Timeout)

	// 5. Task domain, with the optional Google Calendar mirror
	var calendar task.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `planner gcal-auth` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar mirror enabled")
		}
	}

	taskRepo := gormstore.New(db, logger)
	taskUseCase := taskUC.New(logger, taskRepo, calendar, taskUC.Config{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		CacheSize:  cfg.StatsCache.Size,
		CacheTTL:   cfg.StatsCache.TTL,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		CORSOrigins:       cfg.CORS.AllowedOrigins,
		Middleware:        middleware.New(logger, defaultTZ, cfg.Extraction.RateLimitPerMin),
		ReadyCheck:        database.Pinger(db),
		TaskUseCase:       taskUseCase,
		ExtractionUseCase: extractionUseCase,
		MaxUploadBytes:    cfg.Extraction.MaxUploadBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
