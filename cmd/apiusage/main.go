package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"api-usage/internal/app"
	"api-usage/internal/shared/configs"

	"github.com/spf13/pflag"
)

const (
	commandReport = "report"
	commandServe  = "serve"

	defaultConfigPath = "./configs/configs.yml"
	shutdownTimeout   = 10 * time.Second
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code. The report command is used
// when the first argument is not a known command name.
func run(args []string, stdout, stderr io.Writer) int {
	command := commandReport
	if len(args) > 0 && (args[0] == commandReport || args[0] == commandServe) {
		command, args = args[0], args[1:]
	}

	flags := newFlagSet(command, stderr)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return app.ExitOK
		}
		return app.ExitFailure
	}

	configPath, _ := flags.GetString("config")
	if !flags.Changed("config") {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			configPath = defaultConfigPath
		}
	}
	cfg, err := configs.LoadConfig(configPath, flags)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return app.ExitFailure
	}

	switch command {
	case commandServe:
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "serve takes no arguments, got %q\n", flags.Args())
			return app.ExitFailure
		}
	default:
		if flags.NArg() > 1 {
			fmt.Fprintf(stderr, "report takes at most one log file path, got %q\n", flags.Args())
			return app.ExitFailure
		}
		if flags.NArg() == 1 {
			logFilePath := flags.Arg(0)
			cfg.Input.RootDir = filepath.Dir(logFilePath)
			cfg.Input.LogFile = filepath.Base(logFilePath)
		}
	}

	application, err := app.New(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize app: %v\n", err)
		return app.ExitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if command == commandServe {
		return serve(ctx, application, stderr)
	}
	return app.ExitCode(application.RunReport(ctx, stdout))
}

func newFlagSet(command string, stderr io.Writer) *pflag.FlagSet {
	flags := pflag.NewFlagSet("apiusage "+command, pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.String("config", "", "path to a YAML config file")
	flags.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	flags.String("log-format", "json", "log format written to stderr (json, console)")
	flags.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")

	switch command {
	case commandServe:
		flags.Int("port", 8080, "HTTP listen port")
		flags.String("mode", "strict", "default parse mode for requests without ?mode= (strict, lenient)")
		flags.Int("precision", 2, "percentage decimals for ?format=table")
		flags.Usage = func() {
			fmt.Fprintf(stderr, "Usage: apiusage serve [flags]\n\nFlags:\n%s", flags.FlagUsages())
		}
	default:
		flags.String("root-dir", "./resources", "directory the log file is resolved in")
		flags.String("mode", "strict", "malformed line policy (strict, lenient)")
		flags.String("format", "table", "report format (table, json)")
		flags.Int("precision", 2, "percentage decimals in the table")
		flags.Usage = func() {
			fmt.Fprintf(stderr, "Usage: apiusage [report] [flags] [logFilePath]\n\nFlags:\n%s", flags.FlagUsages())
		}
	}
	return flags
}

func serve(ctx context.Context, application *app.App, stderr io.Writer) int {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- application.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(stderr, "Server failed: %v\n", err)
			return app.ExitFailure
		}
		return app.ExitOK
	case <-ctx.Done():
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(stderr, "Server forced to shutdown: %v\n", err)
		return app.ExitFailure
	}
	return app.ExitOK
}
