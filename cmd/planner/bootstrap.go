package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"note-task-planner/config"
	"note-task-planner/internal/extraction"
	extractionProvider "note-task-planner/internal/extraction/provider"
	extractionUC "note-task-planner/internal/extraction/usecase"
	"note-task-planner/internal/model"
	"note-task-planner/internal/task"
	"note-task-planner/internal/task/repository/gormstore"
	taskUC "note-task-planner/internal/task/usecase"
	"note-task-planner/pkg/database"
	"note-task-planner/pkg/datemath"
	"note-task-planner/pkg/gcalendar"
	"note-task-planner/pkg/llmprovider"
	"note-task-planner/pkg/log"
)

// deps is what the store-backed commands share.
type deps struct {
	cfg   *config.Config
	l     log.Logger
	db    *gorm.DB
	scope model.Scope
	tasks task.UseCase
}

func (d *deps) Close() {
	database.Close(d.db)
}

// loadDeps reads the config, opens and migrates the store and builds the task
// usecase for the --user/--tz scope.
func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if flagVerbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: cfg.Logger.Mode, Encoding: log.EncodingConsole})

	tz := flagTZ
	if tz == "" {
		tz = cfg.Planner.Timezone
	}
	loc, err := datemath.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(database.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := gormstore.Migrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var calendar task.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			calendar = client
		}
	}

	return &deps{
		cfg:   cfg,
		l:     l,
		db:    db,
		scope: model.Scope{UserID: flagUser, Timezone: loc},
		tasks: taskUC.New(l, gormstore.New(db, l), calendar, taskUC.Config{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			CacheSize:  cfg.StatsCache.Size,
			CacheTTL:   cfg.StatsCache.TTL,
		}),
	}, nil
}

// extractor builds the extraction usecase from the llm section of the config.
func (d *deps) extractor(ctx context.Context) (extraction.UseCase, error) {
	if err := d.cfg.Validate(); err != nil {
		return nil, err
	}
	providers, err := llmprovider.InitializeProviders(ctx, &d.cfg.LLM, d.l)
	if err != nil {
		return nil, err
	}
	maxTotal, err := d.cfg.LLM.TotalTimeout()
	if err != nil {
		return nil, err
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: d.cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, d.l)
	provider := extractionProvider.New(d.l, llm, d.cfg.Extraction.MaxOutputTokens)
	return extractionUC.New(d.l, provider, d.cfg.Extraction.Timeout), nil
}
