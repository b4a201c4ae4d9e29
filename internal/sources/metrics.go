package sources

import (
	"api-usage/internal/shared/metrics"
)

var (
	metricSourceReadTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "read_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSourceBytesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubSource,
			Name:      "bytes_read_total",
		},
	)
)
