package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"modeldeck/backend/internal/api"
	"modeldeck/backend/internal/config"
	"modeldeck/backend/internal/database"
	"modeldeck/backend/internal/llm"
	"modeldeck/backend/internal/progress"
	"modeldeck/backend/internal/repository"
	"modeldeck/backend/internal/runtime"
	"modeldeck/backend/internal/service"
)

// Settle times for the service toggle: how long to wait after stopping or
// starting `ollama serve` before re-probing its status.
const (
	toggleStopSettle  = 500 * time.Millisecond
	toggleStartSettle = time.Second
)

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return 1
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()
	slog.Info("Successfully connected to SQLite database.")

	store := progress.NewMemoryStore(cfg.ProgressTTL)
	defer store.Close()

	historyRepo := repository.NewSQLiteHistory(db)
	ollamaProvider := llm.NewOllamaProvider(cfg.OllamaURL)
	launcher := runtime.NewExecLauncher()

	pullService := service.NewPullService(store, ollamaProvider, launcher, historyRepo, cfg.PullGracePeriod)
	generateService := service.NewGenerateService(ollamaProvider)
	modelService := service.NewModelService(ollamaProvider, launcher, toggleStopSettle, toggleStartSettle)

	if status := modelService.Status(context.Background()); status.Running {
		slog.Info("Ollama is reachable.", "models", len(status.Models))
	} else {
		slog.Warn("Ollama is not reachable yet. It will be launched on the first pull.", "url", cfg.OllamaURL)
	}

	pullHandler := api.NewPullHandler(pullService, cfg.HistoryLimit)
	generateHandler := api.NewGenerateHandler(generateService)
	statusHandler := api.NewStatusHandler(modelService)
	router := api.NewRouter(pullHandler, generateHandler, statusHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("Starting server", "port", cfg.AppPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
