package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"note-task-planner/internal/extraction"
	"note-task-planner/internal/middleware"
	"note-task-planner/internal/task"
	"note-task-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	corsOrigins []string
	mw          middleware.Middleware
	ready       func(ctx context.Context) error

	// Domains
	taskUC         task.UseCase
	extractionUC   extraction.UseCase
	maxUploadBytes int64
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	CORSOrigins []string
	Middleware  middleware.Middleware

	// ReadyCheck backs /ready. Nil means always ready.
	ReadyCheck func(ctx context.Context) error

	TaskUseCase       task.UseCase
	ExtractionUseCase extraction.UseCase
	MaxUploadBytes    int64
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		corsOrigins:    cfg.CORSOrigins,
		mw:             cfg.Middleware,
		ready:          cfg.ReadyCheck,
		taskUC:         cfg.TaskUseCase,
		extractionUC:   cfg.ExtractionUseCase,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.extractionUC == nil {
		return errors.New("extraction usecase is required")
	}
	return nil
}
