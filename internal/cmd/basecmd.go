package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jvr-guru/actuatord/internal/flags"
	"github.com/jvr-guru/actuatord/internal/perms"
)

// LoggerName is the name of the root logger.
const LoggerName = "actuatord"

// BaseCmd carries state shared by every command.
type BaseCmd struct {
	logger hclog.Logger

	// LogOutput receives logs when no log path is configured.
	// When nil, logs are discarded.
	LogOutput io.Writer
}

// SetLogger updates the command's logger.
func (c *BaseCmd) SetLogger(logger hclog.Logger) {
	c.logger = logger
}

// Logger returns the logger for the command, creating it from the log flags on first use.
func (c *BaseCmd) Logger() hclog.Logger {
	if c.logger != nil {
		return c.logger
	}

	fallback := c.LogOutput
	if fallback == nil {
		fallback = io.Discard
	}

	logger, err := NewLogger(flags.LogPath, flags.LogLevel, fallback)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v, using fallback log output\n", err)
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   LoggerName,
			Level:  LogLevel(flags.LogLevel),
			Output: fallback,
		})
	}

	c.logger = logger

	return c.logger
}

// NewLogger creates the root logger.
// Logs are appended to logPath when it is set, otherwise they are written to fallback.
func NewLogger(logPath string, level string, fallback io.Writer) (hclog.Logger, error) {
	output := fallback

	logPath = strings.TrimSpace(logPath)
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), perms.RegularDir); err != nil {
			return nil, fmt.Errorf("failed to create log directory (%s): %w", filepath.Dir(logPath), err)
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, perms.RegularFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file (%s): %w", logPath, err)
		}
		output = f
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   LoggerName,
		Level:  LogLevel(level),
		Output: output,
	}), nil
}

// LogLevel converts a level name to an hclog.Level, falling back to info for unknown names.
func LogLevel(level string) hclog.Level {
	switch lvl := strings.ToLower(strings.TrimSpace(level)); lvl {
	case "trace", "debug", "info", "warn", "error", "off":
		return hclog.LevelFromString(lvl)
	default:
		return hclog.Info
	}
}
