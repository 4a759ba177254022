package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
)

var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w, using the given level
// and format strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	formatter, err := GetFormatter(logFormat)
	if err != nil {
		return nil, err
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug", "trace":
		return charmlog.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}

func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
}
