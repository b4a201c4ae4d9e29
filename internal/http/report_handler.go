package http

import (
	"bytes"
	"net/http"

	"api-usage/internal/models"
	"api-usage/internal/reports"
	"api-usage/internal/usages"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type reportHandler struct {
	usageService usages.UsageService
	defaultMode  models.ParseMode
	precision    int
}

func NewReportHandler(usageService usages.UsageService, defaultMode models.ParseMode, precision int) AppHttpHandler {
	return &reportHandler{
		usageService: usageService,
		defaultMode:  defaultMode,
		precision:    precision,
	}
}

// Handle processes POST /reports requests. The body is raw log text; ?mode= overrides the
// configured parse mode and ?format=table returns the plain-text table instead of JSON.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	mode := h.defaultMode
	if raw := modeParam(r); raw != "" {
		parsed, err := models.NewParseModeFromString(raw)
		if err != nil {
			return errInvalidQueryParam(queryMode, raw, err)
		}
		mode = parsed
	}

	format := formatParam(r)
	if format == "" {
		format = reports.FormatJSON
	}
	renderer, err := reports.NewRenderer(format, h.precision)
	if err != nil {
		return errInvalidQueryParam(queryFormat, format, err)
	}

	report, err := h.usageService.ReportFromReader(r.Context(), r.Body, mode)
	if err != nil {
		return err
	}

	// render before writing the status so a failure can still become an error response
	var body bytes.Buffer
	if err := renderer.Render(&body, report); err != nil {
		return err
	}

	if format == reports.FormatTable {
		w.Header().Set(headerContentType, "text/plain; charset=utf-8")
	} else {
		w.Header().Set(headerContentType, "application/json")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body.Bytes())
	return nil
}
