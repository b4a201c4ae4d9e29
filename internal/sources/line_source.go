package sources

import (
	"context"
	"errors"
	"io"

	"api-usage/internal/shared/filestorages"
	"api-usage/internal/shared/loggers"
	"api-usage/internal/shared/metrics"
	"api-usage/internal/shared/svcerrors"

	"github.com/bitfield/script"
	"github.com/dustin/go-humanize"
)

// LineSource yields every line of a named log resource, in file order, without
// line terminators. The whole resource is read before returning.
//
//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	ReadLines(ctx context.Context, key string) ([]string, error)
}

type fileLineSource struct {
	fileStorage filestorages.FileStorage
}

func NewFileLineSource(fileStorage filestorages.FileStorage) LineSource {
	return &fileLineSource{fileStorage: fileStorage}
}

func (s *fileLineSource) ReadLines(ctx context.Context, key string) ([]string, error) {
	logger := loggers.Ctx(ctx)

	info, err := s.fileStorage.Stat(ctx, key)
	if err != nil {
		return nil, s.recordFailure(mapStorageError(key, err))
	}

	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, s.recordFailure(mapStorageError(key, err))
	}
	defer readCloser.Close()

	lines, err := ReadLines(readCloser)
	if err != nil {
		return nil, s.recordFailure(errInternalReadFailed(key, err))
	}

	logger.Debug().
		Str(loggers.FieldLogFile, key).
		Str("size", humanize.IBytes(uint64(info.Size))).
		Int("lines", len(lines)).
		Msg("log resource read")

	metricSourceReadTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricSourceBytesReadTotal.Add(float64(info.Size))
	return lines, nil
}

func (s *fileLineSource) recordFailure(err error) error {
	code := codeInternalReadFailed
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		code = svcErr.Code
	}
	metricSourceReadTotal.WithLabelValues(code).Inc()
	return err
}

// ReadLines splits r into lines. An empty reader yields an empty, non-nil slice.
func ReadLines(r io.Reader) ([]string, error) {
	lines, err := script.NewPipe().WithReader(r).Slice()
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []string{}
	}
	return lines, nil
}

func mapStorageError(key string, err error) error {
	switch {
	case errors.Is(err, filestorages.ErrFileNotFound):
		return errResourceNotFound(key, err)
	case errors.Is(err, filestorages.ErrInvalidKey):
		return errInvalidResourceKey(key, err)
	default:
		return errInternalReadFailed(key, err)
	}
}
