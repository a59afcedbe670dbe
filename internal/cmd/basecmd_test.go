package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  hclog.Level
	}{
		{"trace", hclog.Trace},
		{"DEBUG", hclog.Debug},
		{" warn ", hclog.Warn},
		{"error", hclog.Error},
		{"off", hclog.Off},
		{"", hclog.Info},
		{"verbose", hclog.Info},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, LogLevel(tc.input))
		})
	}
}

func TestNewLogger_Fallback(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger, err := NewLogger("", "info", buf)
	require.NoError(t, err)

	logger.Info("listening", "address", ":8080")
	require.Contains(t, buf.String(), "actuatord: listening: address=:8080")
}

func TestNewLogger_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "actuatord.log")
	logger, err := NewLogger(path, "debug", nil)
	require.NoError(t, err)

	logger.Debug("ready")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[DEBUG] actuatord: ready")
}

func TestBaseCmd_Logger(t *testing.T) {
	t.Parallel()

	logger := hclog.NewNullLogger()
	c := &BaseCmd{}
	c.SetLogger(logger)
	require.Same(t, logger, c.Logger())
}
