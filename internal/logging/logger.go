// Package logging builds the *slog.Logger handed to every component at
// construction time.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"banking-backoffice/internal/config"
)

// New returns a logger writing to stdout using the configured level and format.
func New(cfg config.Log) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg)
}

// NewWithWriter is New with a caller-supplied destination.
func NewWithWriter(w io.Writer, cfg config.Log) *slog.Logger {
	formatter := charmlog.TextFormatter
	switch strings.ToLower(cfg.Format) {
	case "json":
		formatter = charmlog.JSONFormatter
	case "logfmt":
		formatter = charmlog.LogfmtFormatter
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
		Level:           parseLevel(cfg.Level),
		Prefix:          "[banking]",
		Formatter:       formatter,
	})
	return slog.New(handler)
}

// Discard is a logger that drops everything; handy in tests.
func Discard() *slog.Logger {
	return NewWithWriter(io.Discard, config.Log{Level: "error"})
}

func parseLevel(s string) charmlog.Level {
	lvl, err := charmlog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return charmlog.InfoLevel
	}
	return lvl
}
