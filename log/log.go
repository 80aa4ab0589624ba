package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	charmlog "charm.land/log/v2"
	"golang.org/x/term"
)

// Handler is the [slog.Handler] returned by this package.
type Handler = slog.Handler

// Level is a log severity name.
type Level string

const (
	// LevelError logs errors only.
	LevelError Level = "error"
	// LevelWarn logs warnings and errors.
	LevelWarn Level = "warn"
	// LevelInfo logs informational messages and above.
	LevelInfo Level = "info"
	// LevelDebug logs everything, including per-input extraction counts.
	LevelDebug Level = "debug"
)

// Format represents the log output format.
type Format string

const (
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
	// FormatText outputs human-readable, styled logs.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

var (
	allLevels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	allFormats = []Format{FormatJSON, FormatLogfmt, FormatText}
)

// NewHandlerFromStrings creates a [Handler] from level and format strings.
func NewHandlerFromStrings(w io.Writer, logLevel, logFormat string) (Handler, error) {
	lvl, err := ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(logFormat)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, lvl, format), nil
}

// NewHandler creates a [Handler] with the specified level and format.
// An unknown format falls back to [FormatLogfmt].
func NewHandler(w io.Writer, lvl Level, format Format) Handler {
	slogLvl := lvl.slogLevel()

	switch format {
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			AddSource: true,
			Level:     slogLvl,
		})

	case FormatText:
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level: charmlog.Level(slogLvl),
		})
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     slogLvl,
	})
}

// ParseLevel parses a log level string and returns the corresponding [Level].
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}

	return "", ErrUnknownLogLevel
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	logFmt := Format(strings.ToLower(format))
	if slices.Contains(allFormats, logFmt) {
		return logFmt, nil
	}

	return "", ErrUnknownLogFormat
}

// DetectFormat returns [FormatText] when fd refers to a terminal and
// [FormatLogfmt] otherwise.
func DetectFormat(fd uintptr) Format {
	if term.IsTerminal(int(fd)) { //nolint:gosec // File descriptors fit in int.
		return FormatText
	}

	return FormatLogfmt
}

// GetAllLevelStrings returns the names of all levels, most severe first.
func GetAllLevelStrings() []string {
	out := make([]string, 0, len(allLevels))
	for _, l := range allLevels {
		out = append(out, string(l))
	}

	return out
}

// GetAllFormatStrings returns the names of all formats.
func GetAllFormatStrings() []string {
	out := make([]string, 0, len(allFormats))
	for _, f := range allFormats {
		out = append(out, string(f))
	}

	return out
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
