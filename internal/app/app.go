package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"api-usage/internal/aggregators"
	"api-usage/internal/extractors"
	internalhttp "api-usage/internal/http"
	"api-usage/internal/models"
	"api-usage/internal/reports"
	"api-usage/internal/shared/configs"
	"api-usage/internal/shared/filestorages"
	"api-usage/internal/shared/loggers"
	"api-usage/internal/shared/metrics"
	"api-usage/internal/shared/svcerrors"
	"api-usage/internal/shared/ulid"
	"api-usage/internal/sources"
	"api-usage/internal/usages"

	"github.com/dustin/go-humanize"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	usageService usages.UsageService
	parseMode    models.ParseMode
	renderer     reports.Renderer
}

// New creates and initializes a new App instance. Logs are written to logOutput so that
// stdout stays reserved for the report.
func New(config *configs.Config, logOutput io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format, logOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "api-usage").
		Logger()

	parseMode, err := models.NewParseModeFromString(config.Parsing.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize parse mode: %w", err)
	}

	renderer, err := reports.NewRenderer(config.Report.Format, config.Report.Precision)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}

	// Initialize log resource storage
	fileStorage, err := filestorages.NewFileStorage(config.Input.RootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize usageService
	lineSource := sources.NewFileLineSource(fileStorage)
	usageService := usages.NewUsageService(
		lineSource,
		extractors.NewAPINameExtractor(),
		aggregators.NewFrequencyAggregator(),
		aggregators.NewReportRanker(),
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(usageService, parseMode, config.Report.Precision, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:       config,
		appLogger:    appLogger,
		server:       server,
		usageService: usageService,
		parseMode:    parseMode,
		renderer:     renderer,
	}, nil
}

// RunReport analyzes the configured log resource once and renders the report to w.
func (app *App) RunReport(ctx context.Context, w io.Writer) error {
	logger := app.appLogger.With().
		Str(loggers.FieldComponent, "report").
		Str(loggers.FieldRunID, ulid.NewULID()).
		Str(loggers.FieldLogFile, app.config.Input.LogFile).
		Str(loggers.FieldParseMode, string(app.parseMode)).
		Logger()
	ctx = logger.WithContext(ctx)

	defer app.dumpMetrics(&logger)

	start := time.Now()
	report, err := app.usageService.ReportFromResource(ctx, app.config.Input.LogFile, app.parseMode)
	if err != nil {
		logRunError(&logger, err)
		return err
	}

	if err := app.renderer.Render(w, report); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info().
		Str("counted", humanize.Comma(report.TotalCount)).
		Str("skipped", humanize.Comma(report.SkippedCount)).
		Int("distinct_apis", len(report.Entries)).
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Msg("report completed")
	return nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting api-usage service on port %d (log_level=%s, parse_mode=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.parseMode)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	app.dumpMetrics(&app.appLogger)
	return nil
}

// dumpMetrics writes the default registry to the configured textfile, if any.
func (app *App) dumpMetrics(logger *loggers.Logger) {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteToTextfile(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to write metrics textfile")
	}
}

func logRunError(logger *loggers.Logger, err error) {
	svcErr, ok := svcerrors.AsServiceError(err)
	if !ok {
		logger.Error().Err(err).Msg("report failed")
		return
	}
	if svcErr.IsInternalError() {
		logger.Error().Err(svcErr.Cause).Str(loggers.FieldErrorCode, svcErr.Code).Msg("report failed")
		return
	}
	logger.Error().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Msg(svcErr.Message)
}
