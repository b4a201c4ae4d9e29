package usages

import (
	"api-usage/internal/shared/metrics"
)

var (
	metricLinesProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubExtraction,
			Name:      "lines_processed_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "built_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
