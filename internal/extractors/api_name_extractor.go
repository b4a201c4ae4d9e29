package extractors

import (
	"strings"
)

// APINameExtractor derives the API name from one access-log line.
//
// The grammar is deliberately narrow: the first double-quoted section is the request line
// ("METHOD /path PROTOCOL"), its second-to-last space-separated token is the request target,
// and the API name is the last path segment of that target without query string or extension.
//
//	127.0.0.1 - - [10/Oct/2023] "GET /users/42.json?full=1 HTTP/1.1" 200  ->  "42"
//
// Lines of any other shape fail with a *ParseError instead of being guessed at. A target that
// reduces to an empty name, such as "/.htaccess", yields "" and is counted like any other name.
//
//go:generate mockgen -source=api_name_extractor.go -destination=./mocks/api_name_extractor_mock.go -package=mocks
type APINameExtractor interface {
	Extract(line string) (string, error)
}

type apiNameExtractor struct{}

func NewAPINameExtractor() APINameExtractor {
	return &apiNameExtractor{}
}

func (e *apiNameExtractor) Extract(line string) (string, error) {
	requestLine, ok := quotedSection(line)
	if !ok {
		return "", newParseError(ErrNoQuotedSection, line)
	}

	tokens := splitTrimTrailing(requestLine, " ")
	if len(tokens) < 2 {
		return "", newParseError(ErrMalformedRequestField, line)
	}
	target := tokens[len(tokens)-2]

	// drop the query string
	targetParts := splitTrimTrailing(target, "?")
	if len(targetParts) == 0 {
		return "", newParseError(ErrEmptyPath, line)
	}

	segments := splitTrimTrailing(targetParts[0], "/")
	if len(segments) == 0 {
		return "", newParseError(ErrEmptyPath, line)
	}

	// drop the extension
	nameParts := splitTrimTrailing(segments[len(segments)-1], ".")
	if len(nameParts) == 0 {
		return "", newParseError(ErrEmptyPath, line)
	}

	return nameParts[0], nil
}

// quotedSection returns the text strictly between the first and second '"' of line.
func quotedSection(line string) (string, bool) {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return "", false
	}
	end := strings.IndexByte(line[start+1:], '"')
	if end < 0 {
		return "", false
	}
	return line[start+1 : start+1+end], true
}

// splitTrimTrailing splits s around sep and drops trailing empty parts, so "/users/" yields
// ["", "users"] and "/" yields nothing. A string without sep is returned as its only part,
// even when empty.
func splitTrimTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	if len(parts) == 1 {
		return parts
	}
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	return parts[:end]
}
