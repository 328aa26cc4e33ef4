package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"voice-timesheet/config"
	_ "voice-timesheet/docs" // Swagger docs
	"voice-timesheet/internal/httpserver"
	"voice-timesheet/internal/middleware"
	"voice-timesheet/internal/timesheet/repository"
	"voice-timesheet/internal/timesheet/repository/cache"
	"voice-timesheet/internal/timesheet/repository/file"
	"voice-timesheet/internal/timesheet/repository/sheets"
	"voice-timesheet/internal/timesheet/repository/sqlite"
	"voice-timesheet/internal/timesheet/usecase"
	"voice-timesheet/pkg/gsheets"
	"voice-timesheet/pkg/log"
	"voice-timesheet/pkg/transcription"
)

// @title       Voice Timesheet API
// @description Turns a spoken workday summary into billing-code timesheet entries normalized to an 8 hour day.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Voice Timesheet...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog source: %s, timesheet sink: %s", cfg.Catalog.Source, cfg.Timesheet.Sink)

	// 3. Google Sheets client, only when a sheet is read or written
	var sheetsClient *gsheets.Client
	if cfg.Catalog.Source == config.CatalogSourceSheets || cfg.Timesheet.Sink == config.TimesheetSinkSheets {
		sheetsClient, err = gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if err != nil {
			logger.Errorf(ctx, "Google Sheets not available: %v", err)
			logger.Error(ctx, "→ Use a service account key or run `go run scripts/gsheets-auth/main.go` to generate token.json")
			return
		}
		logger.Info(ctx, "✅ Google Sheets initialized")
	}

	// 4. Repositories
	var catalogRepo repository.CatalogRepository
	switch cfg.Catalog.Source {
	case config.CatalogSourceFile:
		catalogRepo = file.NewCatalogRepository(logger, cfg.Catalog.FilePath)
	default:
		catalogRepo = sheets.NewCatalogRepository(logger, sheetsClient, cfg.GoogleSheets.ReferenceSheetID, cfg.GoogleSheets.ReferenceRange)
	}
	if cfg.Catalog.CacheTTL > 0 {
		catalogRepo = cache.NewCatalogRepository(logger, catalogRepo, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTL)
	}

	var timesheetRepo repository.TimesheetRepository
	switch cfg.Timesheet.Sink {
	case config.TimesheetSinkSQLite:
		db, dbErr := sqlite.Open(logger, cfg.Timesheet.SQLitePath)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open SQLite timesheet: %v", dbErr)
			return
		}
		defer db.Close()
		timesheetRepo = db
	default:
		timesheetRepo = sheets.NewTimesheetRepository(logger, sheetsClient, cfg.GoogleSheets.TimesheetSheetID, cfg.GoogleSheets.TimesheetRange)
	}

	// 5. Transcription (optional: without it only the transcript endpoints work)
	var transcriber transcription.ITranscriber
	if cfg.Transcription.APIKey != "" {
		client, tErr := transcription.New(cfg.Transcription.APIKey)
		if tErr != nil {
			logger.Errorf(ctx, "Failed to initialize transcription: %v", tErr)
			return
		}
		transcriber = client.
			WithBaseURL(cfg.Transcription.BaseURL).
			WithModel(cfg.Transcription.Model).
			WithTimeout(cfg.Transcription.Timeout)
		logger.Infof(ctx, "✅ Transcription initialized (model=%s)", cfg.Transcription.Model)
	} else {
		logger.Warn(ctx, "Transcription skipped: TRANSCRIPTION_API_KEY is missing, /upload will answer 501")
	}

	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		logger.Errorf(ctx, "Failed to create upload dir %s: %v", cfg.Upload.Dir, err)
		return
	}

	// 6. UseCase
	timesheetUC := usecase.New(logger, catalogRepo, timesheetRepo, transcriber)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.Upload.RateLimitPerMin),
		Readiness:        catalogReadiness(catalogRepo),
		TimesheetUseCase: timesheetUC,
		UploadDir:        cfg.Upload.Dir,
		MaxUploadBytes:   cfg.Upload.MaxBytes,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
