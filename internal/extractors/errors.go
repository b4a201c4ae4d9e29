package extractors

import (
	"errors"
	"fmt"
)

// Parse failure kinds. Match them with errors.Is on the error returned by Extract.
var (
	ErrNoQuotedSection       = errors.New("no quoted section")
	ErrMalformedRequestField = errors.New("malformed request field")
	ErrEmptyPath             = errors.New("empty path")
)

const maxQuotedLineLen = 120

// ParseError reports a line that does not match the request-line grammar.
type ParseError struct {
	Kind error  // one of ErrNoQuotedSection, ErrMalformedRequestField, ErrEmptyPath
	Line string // the offending line
}

func newParseError(kind error, line string) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}

func (e *ParseError) Error() string {
	line := e.Line
	if len(line) > maxQuotedLineLen {
		line = line[:maxQuotedLineLen] + "..."
	}
	return fmt.Sprintf("%s: %q", e.Kind, line)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}
