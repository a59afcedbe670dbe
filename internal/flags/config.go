package flags

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

const (
	// Env vars
	EnvVarConfigFile = "ACTUATORD_CONFIG_FILE"
	EnvVarLogPath    = "ACTUATORD_LOG_PATH"
	EnvVarLogLevel   = "ACTUATORD_LOG_LEVEL"

	// Defaults
	DefaultConfigFile = ".actuatord.toml"
	DefaultLogPath    = ""
	DefaultLogLevel   = "info"

	// Flag names
	FlagNameConfigFile = "config-file"
	FlagNameLogPath    = "log-path"
	FlagNameLogLevel   = "log-level"
)

var (
	ConfigFile string
	LogPath    string
	LogLevel   string
)

// InitFlags registers the global flags on fs.
// Values already set take precedence, then environment variables, then defaults.
func InitFlags(fs *pflag.FlagSet) {
	ConfigFile = fromEnv(ConfigFile, EnvVarConfigFile, DefaultConfigFile)
	fs.StringVar(&ConfigFile, FlagNameConfigFile, ConfigFile, "path to config file")

	LogPath = fromEnv(LogPath, EnvVarLogPath, DefaultLogPath)
	fs.StringVar(&LogPath, FlagNameLogPath, LogPath, "path to log file (stderr for serve, discarded otherwise when empty)")

	LogLevel = strings.ToLower(fromEnv(LogLevel, EnvVarLogLevel, DefaultLogLevel))
	fs.StringVar(&LogLevel, FlagNameLogLevel, LogLevel, "log level: trace, debug, info, warn, error, off")
}

func fromEnv(current string, envVar string, fallback string) string {
	if current != "" {
		return current
	}
	if env := strings.TrimSpace(os.Getenv(envVar)); env != "" {
		return env
	}
	return fallback
}
