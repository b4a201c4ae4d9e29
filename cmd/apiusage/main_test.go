package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"api-usage/internal/app"
	"api-usage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `10.0.0.1 - - [10/Oct/2023:13:55:36 -0700] "GET /users/42.json HTTP/1.1" 200 512
10.0.0.2 - - [10/Oct/2023:13:55:37 -0700] "GET /users/42.json HTTP/1.1" 200 512
10.0.0.3 - - [10/Oct/2023:13:55:38 -0700] "POST /orders HTTP/1.1" 201 64
`

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "access.log")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_ReportIsDefaultCommand(t *testing.T) {
	logPath := writeLog(t, sampleLog)

	for _, args := range [][]string{
		{logPath},
		{commandReport, logPath},
	} {
		var stdout, stderr bytes.Buffer
		code := run(args, &stdout, &stderr)

		require.Equal(t, app.ExitOK, code, stderr.String())
		assert.Contains(t, stdout.String(), "Percentage")
		assert.Contains(t, stdout.String(), "42         2           66.67")
		assert.Contains(t, stdout.String(), "orders         1           33.33")
	}
}

func TestRun_ReportDotPrefixedLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "..access.log")
	require.NoError(t, os.WriteFile(logPath, []byte(sampleLog), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{logPath}, &stdout, &stderr)

	require.Equal(t, app.ExitOK, code, stderr.String())
	assert.Contains(t, stdout.String(), "42         2           66.67")
}

func TestRun_ReportFlags(t *testing.T) {
	logPath := writeLog(t, sampleLog+"garbage line\n")

	var stdout, stderr bytes.Buffer
	code := run([]string{"--mode", "lenient", "--format", "json", "--log-level", "warn", logPath}, &stdout, &stderr)

	require.Equal(t, app.ExitOK, code, stderr.String())
	var report models.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, int64(3), report.TotalCount)
	assert.Equal(t, int64(1), report.SkippedCount)
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name         string
		args         func(t *testing.T) []string
		expectedCode int
	}{
		{
			name:         "missing log file",
			args:         func(t *testing.T) []string { return []string{filepath.Join(t.TempDir(), "missing.log")} },
			expectedCode: app.ExitNotFound,
		},
		{
			name:         "parse error in strict mode",
			args:         func(t *testing.T) []string { return []string{writeLog(t, "garbage line\n")} },
			expectedCode: app.ExitParseError,
		},
		{
			name:         "invalid mode flag",
			args:         func(t *testing.T) []string { return []string{"--mode", "forgiving", writeLog(t, sampleLog)} },
			expectedCode: app.ExitFailure,
		},
		{
			name:         "unknown flag",
			args:         func(t *testing.T) []string { return []string{"--nope"} },
			expectedCode: app.ExitFailure,
		},
		{
			name:         "too many arguments",
			args:         func(t *testing.T) []string { return []string{"a.log", "b.log"} },
			expectedCode: app.ExitFailure,
		},
		{
			name:         "missing config file",
			args:         func(t *testing.T) []string { return []string{"--config", filepath.Join(t.TempDir(), "none.yml")} },
			expectedCode: app.ExitFailure,
		},
		{
			name:         "help",
			args:         func(t *testing.T) []string { return []string{"--help"} },
			expectedCode: app.ExitOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args(t), &stdout, &stderr)

			assert.Equal(t, tt.expectedCode, code, stderr.String())
			if tt.expectedCode != app.ExitOK {
				assert.Empty(t, stdout.String())
			}
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	logPath := writeLog(t, sampleLog)
	configPath := filepath.Join(t.TempDir(), "configs.yml")
	config := strings.Join([]string{
		"input:",
		"  root_dir: " + filepath.Dir(logPath),
		"  log_file: " + filepath.Base(logPath),
		"report:",
		"  format: json",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(configPath, []byte(config), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", configPath}, &stdout, &stderr)

	require.Equal(t, app.ExitOK, code, stderr.String())
	var report models.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, int64(3), report.TotalCount)
}

func TestRun_ServeRejectsArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{commandServe, "extra"}, &stdout, &stderr)

	assert.Equal(t, app.ExitFailure, code)
	assert.Contains(t, stderr.String(), "serve takes no arguments")
}
