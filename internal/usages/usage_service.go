package usages

import (
	"bytes"
	"context"
	"errors"
	"io"

	"api-usage/internal/aggregators"
	"api-usage/internal/extractors"
	"api-usage/internal/models"
	"api-usage/internal/shared/loggers"
	"api-usage/internal/shared/metrics"
	"api-usage/internal/sources"
)

const (
	maxLogBodyBytes = 8 * 1024 * 1024
)

//go:generate mockgen -source=usage_service.go -destination=./mocks/usage_service_mock.go -package=mocks
type UsageService interface {
	// BuildReport extracts an API name from every line, counts them and ranks the result.
	// In strict mode the first malformed line aborts the run; in lenient mode it is skipped
	// and counted in Report.SkippedCount.
	BuildReport(ctx context.Context, lines []string, mode models.ParseMode) (*models.Report, error)
	// ReportFromResource reads the named log resource and builds its report.
	ReportFromResource(ctx context.Context, key string, mode models.ParseMode) (*models.Report, error)
	// ReportFromReader reads raw log text of at most 8 MiB and builds its report.
	ReportFromReader(ctx context.Context, r io.Reader, mode models.ParseMode) (*models.Report, error)
}

type usageService struct {
	lineSource sources.LineSource
	extractor  extractors.APINameExtractor
	aggregator aggregators.FrequencyAggregator
	ranker     aggregators.ReportRanker
}

func NewUsageService(lineSource sources.LineSource, extractor extractors.APINameExtractor, aggregator aggregators.FrequencyAggregator, ranker aggregators.ReportRanker) UsageService {
	return &usageService{
		lineSource: lineSource,
		extractor:  extractor,
		aggregator: aggregator,
		ranker:     ranker,
	}
}

func (s *usageService) ReportFromResource(ctx context.Context, key string, mode models.ParseMode) (*models.Report, error) {
	if err := validateParseMode(mode); err != nil {
		return nil, err
	}

	lines, err := s.lineSource.ReadLines(ctx, key)
	if err != nil {
		return nil, err
	}

	return s.BuildReport(ctx, lines, mode)
}

func (s *usageService) ReportFromReader(ctx context.Context, r io.Reader, mode models.ParseMode) (*models.Report, error) {
	if err := validateParseMode(mode); err != nil {
		return nil, err
	}

	if r == nil {
		return s.BuildReport(ctx, []string{}, mode)
	}

	buf, err := s.readWithLimit(r, maxLogBodyBytes)
	if err != nil {
		return nil, err
	}

	lines, err := sources.ReadLines(buf)
	if err != nil {
		return nil, errInternalReadFailed(err)
	}

	return s.BuildReport(ctx, lines, mode)
}

func (s *usageService) BuildReport(ctx context.Context, lines []string, mode models.ParseMode) (*models.Report, error) {
	if err := validateParseMode(mode); err != nil {
		return nil, err
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started building report from %d lines, mode: %s", len(lines), mode)

	apiNames := make([]string, 0, len(lines))
	var skipped int64
	for i, line := range lines {
		apiName, err := s.extractor.Extract(line)
		if err == nil {
			apiNames = append(apiNames, apiName)
			metricLinesProcessedTotal.WithLabelValues(metrics.ValueNoError).Inc()
			continue
		}

		lineNumber := i + 1
		var parseErr *extractors.ParseError
		if !errors.As(err, &parseErr) {
			svcErr := errInternalExtractFailed(lineNumber, err)
			metricReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}

		metricLinesProcessedTotal.WithLabelValues(codeParseFailed).Inc()
		if !mode.SkipsMalformed() {
			svcErr := errParseFailed(lineNumber, parseErr)
			metricReportBuiltTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}

		skipped++
		logger.Debug().
			Int(loggers.FieldLineNumber, lineNumber).
			Str(loggers.FieldParseMode, string(mode)).
			Err(err).
			Msg("skipped malformed line")
	}

	table := s.aggregator.Aggregate(apiNames)
	report := s.ranker.Rank(table)
	report.SkippedCount = skipped

	logger.Debug().Msgf("built report: %d extracted, %d skipped, %d distinct", report.TotalCount, skipped, len(report.Entries))
	metricReportBuiltTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return report, nil
}

// readWithLimit reads up to max+1 bytes from r and checks if it exceeds max.
func (s *usageService) readWithLimit(r io.Reader, max int64) (io.Reader, error) {
	limitedReader := io.LimitReader(r, max+1)
	buf, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, errInternalReadFailed(err)
	}

	if int64(len(buf)) > max {
		return nil, errLogBodyTooLarge()
	}

	return bytes.NewReader(buf), nil
}

func validateParseMode(mode models.ParseMode) error {
	switch mode {
	case models.ParseModeStrict, models.ParseModeLenient:
		return nil
	default:
		return errInvalidParseMode(mode)
	}
}
