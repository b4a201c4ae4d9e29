package usages

import (
	"errors"
	"fmt"

	"api-usage/internal/extractors"
	"api-usage/internal/models"
	"api-usage/internal/shared/svcerrors"
)

// UsageService errors
const (
	codeParseFailed      = "USG_1000"
	codeLogBodyTooLarge  = "USG_1001"
	codeInvalidParseMode = "USG_1002"

	codeInternalReadFailed    = "USG_9000"
	codeInternalExtractFailed = "USG_9001"
)

// errParseFailed returns an error for a line that does not match the request-line grammar.
// The message names the 1-based line number and the failure kind.
func errParseFailed(lineNumber int, cause *extractors.ParseError) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeParseFailed, fmt.Sprintf("line %d: %s", lineNumber, cause.Kind), cause)
}

func errLogBodyTooLarge() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLogBodyTooLarge, "log body too large: must be <= 8MB", nil)
}

func errInvalidParseMode(mode models.ParseMode) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidParseMode, fmt.Sprintf("invalid parse mode: %q, must be strict or lenient", mode), nil)
}

func errInternalReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReadFailed, fmt.Errorf("readLogBodyFailed: %w", cause))
}

// errInternalExtractFailed covers extractor failures that are not parse errors.
func errInternalExtractFailed(lineNumber int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalExtractFailed, errors.Join(fmt.Errorf("extractFailed at line %d", lineNumber), cause))
}

// IsParseFailure reports whether err aborted a strict run on a malformed line.
func IsParseFailure(err error) bool {
	svcErr, ok := svcerrors.AsServiceError(err)
	return ok && svcErr.Code == codeParseFailed
}
