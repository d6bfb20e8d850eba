package main

import (
	"log/slog"

	"gridcast/internal/config"
	"gridcast/internal/transport"
	"gridcast/internal/weather"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	weatherService weather.Service
	cfg            *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// One pooled transport for the whole process; every upstream client
	// shares it.
	t := transport.New(transport.Config{
		Timeout:         cfg.HTTP.Timeout,
		MaxRetries:      cfg.HTTP.MaxRetries,
		InitialInterval: cfg.HTTP.InitialInterval,
		MaxInterval:     cfg.HTTP.MaxInterval,
		UserAgent:       cfg.HTTP.UserAgent,
	}, logger)

	app := &App{
		router:         router,
		logger:         logger,
		weatherService: weather.NewService(t, cfg, logger),
		cfg:            cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
