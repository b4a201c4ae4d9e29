package extractors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPINameExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := NewAPINameExtractor()

	tests := []struct {
		name     string
		line     string
		expected string
	}{
		{
			name:     "last segment with extension stripped",
			line:     `127.0.0.1 - - [10/Oct/2023] "GET /users/42.json HTTP/1.1" 200`,
			expected: "42",
		},
		{
			name:     "single segment",
			line:     `10.0.0.1 - - [10/Oct/2023:13:55:36 -0700] "POST /login HTTP/1.1" 200 512`,
			expected: "login",
		},
		{
			name:     "query string discarded",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /api/v1/orders?id=5&expand=items HTTP/1.1" 200`,
			expected: "orders",
		},
		{
			name:     "query string containing slashes and dots",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /search?q=a/b.c HTTP/1.1" 200`,
			expected: "search",
		},
		{
			name:     "trailing slash uses previous segment",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /users/ HTTP/1.1" 200`,
			expected: "users",
		},
		{
			name:     "only first extension part kept",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /static/app.min.js HTTP/1.1" 200`,
			expected: "app",
		},
		{
			name:     "case preserved",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /Api/Logout HTTP/1.1" 200`,
			expected: "Logout",
		},
		{
			name:     "relative target without slash",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET status HTTP/1.0" 200`,
			expected: "status",
		},
		{
			name:     "only the first quoted section is read",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /cart HTTP/1.1" 200 2326 "http://example.com/start.html" "Mozilla/4.08"`,
			expected: "cart",
		},
		{
			name:     "two tokens read the first as target",
			line:     `10.0.0.1 - - [10/Oct/2023] "/health HTTP/1.1" 200`,
			expected: "health",
		},
		{
			name:     "second-to-last token is the target even with extra tokens",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /users/7 HTTP/1.1 extra" 200`,
			expected: "1",
		},
		{
			name:     "trailing spaces inside quotes are dropped before picking the target",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /orders " 200`,
			expected: "GET",
		},
		{
			name:     "extension without name yields empty name",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET /.htaccess HTTP/1.1" 403`,
			expected: "",
		},
		{
			name:     "only a query string yields empty name",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET ?x=1 HTTP/1.1" 200`,
			expected: "",
		},
		{
			name:     "double space yields empty target and empty name",
			line:     `10.0.0.1 - - [10/Oct/2023] "GET  HTTP/1.1" 400`,
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			apiName, err := extractor.Extract(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, apiName)
		})
	}
}

func TestAPINameExtractor_Extract_ParseErrors(t *testing.T) {
	t.Parallel()

	extractor := NewAPINameExtractor()

	tests := []struct {
		name         string
		line         string
		expectedKind error
	}{
		{name: "no quotes", line: `127.0.0.1 - - [10/Oct/2023] GET /login HTTP/1.1 200`, expectedKind: ErrNoQuotedSection},
		{name: "single quote", line: `127.0.0.1 - - [10/Oct/2023] "GET /login HTTP/1.1 200`, expectedKind: ErrNoQuotedSection},
		{name: "empty line", line: ``, expectedKind: ErrNoQuotedSection},
		{name: "empty quoted section", line: `127.0.0.1 "" 200`, expectedKind: ErrMalformedRequestField},
		{name: "single token", line: `127.0.0.1 "GET" 200`, expectedKind: ErrMalformedRequestField},
		{name: "only spaces", line: `127.0.0.1 "   " 200`, expectedKind: ErrMalformedRequestField},
		{name: "root path", line: `127.0.0.1 "GET / HTTP/1.1" 200`, expectedKind: ErrEmptyPath},
		{name: "only slashes", line: `127.0.0.1 "GET /// HTTP/1.1" 200`, expectedKind: ErrEmptyPath},
		{name: "bare question mark", line: `127.0.0.1 "GET ? HTTP/1.1" 200`, expectedKind: ErrEmptyPath},
		{name: "only dots", line: `127.0.0.1 "GET /... HTTP/1.1" 200`, expectedKind: ErrEmptyPath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			apiName, err := extractor.Extract(tt.line)
			require.Error(t, err)
			assert.Empty(t, apiName)
			assert.ErrorIs(t, err, tt.expectedKind)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected *ParseError")
			assert.Equal(t, tt.line, parseErr.Line)
		})
	}
}

func TestAPINameExtractor_Extract_IsDeterministic(t *testing.T) {
	t.Parallel()

	extractor := NewAPINameExtractor()
	line := `127.0.0.1 - - [10/Oct/2023] "GET /users/42.json HTTP/1.1" 200`

	first, err := extractor.Extract(line)
	require.NoError(t, err)
	second, err := extractor.Extract(line)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseError_Error(t *testing.T) {
	t.Parallel()

	err := newParseError(ErrNoQuotedSection, "plain line")
	assert.Equal(t, `no quoted section: "plain line"`, err.Error())

	longLine := strings.Repeat("x", 200)
	msg := newParseError(ErrEmptyPath, longLine).Error()
	assert.True(t, strings.HasSuffix(msg, `..."`))
	assert.Less(t, len(msg), 150)
}

func TestSplitTrimTrailing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		sep      string
		expected []string
	}{
		{input: "/users/42.json", sep: "/", expected: []string{"", "users", "42.json"}},
		{input: "/users/", sep: "/", expected: []string{"", "users"}},
		{input: "/", sep: "/", expected: []string{}},
		{input: "", sep: "/", expected: []string{""}},
		{input: "login", sep: ".", expected: []string{"login"}},
		{input: "GET /a ", sep: " ", expected: []string{"GET", "/a"}},
	}

	for _, tt := range tests {
		tt := tt
		assert.Equal(t, tt.expected, splitTrimTrailing(tt.input, tt.sep), "input %q sep %q", tt.input, tt.sep)
	}
}
