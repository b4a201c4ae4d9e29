package sources

import (
	"fmt"

	"api-usage/internal/shared/svcerrors"
)

// LineSource errors
const (
	codeResourceNotFound   = "SRC_1000"
	codeInvalidResourceKey = "SRC_1001"

	codeInternalReadFailed = "SRC_9000"
)

// errResourceNotFound returns an error when the named log resource does not exist.
func errResourceNotFound(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeResourceNotFound, fmt.Sprintf("log resource not found: %s", key), cause)
}

// errInvalidResourceKey returns an error when the key escapes the root directory or names a directory.
func errInvalidResourceKey(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidResourceKey, fmt.Sprintf("invalid log resource: %s", key), cause)
}

func errInternalReadFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("readLogResourceFailed %s: %w", key, cause))
}
