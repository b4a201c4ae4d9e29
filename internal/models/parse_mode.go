package models

import (
	"fmt"
	"strings"
)

// ParseMode selects what happens when a log line does not match the request-line grammar.
type ParseMode string

const (
	// ParseModeStrict aborts the whole run on the first malformed line.
	ParseModeStrict ParseMode = "strict"
	// ParseModeLenient skips malformed lines and counts them in Report.SkippedCount.
	ParseModeLenient ParseMode = "lenient"
)

func NewParseModeFromString(s string) (ParseMode, error) {
	switch mode := ParseMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ParseModeStrict, ParseModeLenient:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ParseMode: %q", s)
	}
}

// SkipsMalformed reports whether malformed lines are tolerated.
func (m ParseMode) SkipsMalformed() bool {
	switch m {
	case ParseModeStrict:
		return false
	case ParseModeLenient:
		return true
	default:
		panic(fmt.Sprintf("invalid ParseMode: %q", m))
	}
}
