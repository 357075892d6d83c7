package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"habhook/internal/api"
	"habhook/internal/app"
	"habhook/internal/config"
	"habhook/internal/logging"
)

var version = "dev"

func main() {
	fs := flag.NewFlagSet("habhook", flag.ExitOnError)
	baseURL := fs.String("base-url", "", "override the API base URL")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	showVersion := fs.Bool("version", false, "print version and exit")
	_ = fs.Parse(os.Args[1:])

	if *showVersion {
		fmt.Println("habhook " + version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "habhook: reading config:", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	log := openLogger(cfg)
	client := api.New(cfg.BaseURL(), cfg.ClientID(), log.With(logging.F("component", "api")))

	if err := app.Run(client, log); err != nil {
		fmt.Fprintln(os.Stderr, "habhook:", err)
		os.Exit(1)
	}
}

// openLogger writes logs to a file under the data dir; the TUI owns the
// terminal. Logging is best-effort: any trouble opening the file silently
// degrades to a no-op logger.
func openLogger(cfg config.Config) logging.Logger {
	path := cfg.Logging.File
	if path == "" {
		defaultPath, err := config.LogPath()
		if err != nil {
			return logging.Nop()
		}
		path = defaultPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return logging.Nop()
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return logging.Nop()
	}
	return logging.New(io.Writer(out), logging.ParseLevel(cfg.LogLevel()))
}
