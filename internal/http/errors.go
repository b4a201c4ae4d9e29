package http

import (
	"fmt"

	"api-usage/internal/shared/svcerrors"
)

// ReportHandler errors
const (
	codeInvalidQueryParam = "HTTP_1000"
)

func errInvalidQueryParam(name, value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %s: %q", name, value), cause)
}
