package app

import (
	"api-usage/internal/shared/svcerrors"
	"api-usage/internal/usages"
)

// Process exit codes of the report command.
const (
	ExitOK         = 0
	ExitFailure    = 1 // configuration or internal failure
	ExitNotFound   = 2 // log resource not found
	ExitParseError = 3 // malformed line in strict mode
)

// ExitCode maps a RunReport error onto the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if usages.IsParseFailure(err) {
		return ExitParseError
	}
	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.IsNotFound() {
		return ExitNotFound
	}
	return ExitFailure
}
