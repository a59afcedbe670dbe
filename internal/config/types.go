package config

import (
	"fmt"
	"time"
)

var _ Provider = (*DefaultLoader)(nil)

const (
	// ShowDetailsAlways includes health details in HTTP responses.
	ShowDetailsAlways = "always"

	// ShowDetailsNever strips health details from HTTP responses.
	ShowDetailsNever = "never"

	// DefaultEndpointID is the custom endpoint registered when no endpoints are configured.
	DefaultEndpointID = "customguru"
)

type Loader interface {
	Load(path string) (*Config, error)
}

type Initializer interface {
	Init(path string) error
}

type Provider interface {
	Initializer
	Loader
}

type DefaultLoader struct{}

// Config represents the .actuatord.toml file structure.
// Every section is optional; nil sections and fields fall back to the defaults of the component they configure.
type Config struct {
	Management     *ManagementSection         `toml:"management,omitempty"`
	Health         *HealthSection             `toml:"health,omitempty"`
	Info           *InfoSection               `toml:"info,omitempty"`
	Endpoints      map[string]EndpointSection `toml:"endpoints,omitempty"`
	configFilePath string                     `toml:"-"`
}

// ManagementSection configures the management HTTP server.
type ManagementSection struct {
	Addr            *string      `toml:"addr,omitempty"`
	BasePath        *string      `toml:"base_path,omitempty"`
	ShutdownTimeout *Duration    `toml:"shutdown_timeout,omitempty"`
	CORS            *CORSSection `toml:"cors,omitempty"`
}

// CORSSection configures Cross-Origin Resource Sharing for the management server.
type CORSSection struct {
	Enable        *bool     `toml:"enabled,omitempty"`
	Origins       []string  `toml:"allow_origins,omitempty"`
	Methods       []string  `toml:"allow_methods,omitempty"`
	Headers       []string  `toml:"allow_headers,omitempty"`
	ExposeHeaders []string  `toml:"expose_headers,omitempty"`
	Credentials   *bool     `toml:"allow_credentials,omitempty"`
	MaxAge        *Duration `toml:"max_age,omitempty"`
}

// HealthSection configures how health is evaluated and reported.
type HealthSection struct {
	// ShowDetails is either 'always' or 'never'.
	ShowDetails *string `toml:"show_details,omitempty"`

	// DownStatusCode is the HTTP status returned when health is DOWN.
	DownStatusCode *int `toml:"down_status_code,omitempty"`

	// Seed makes the random health indicator deterministic. Zero means unseeded.
	Seed *uint64 `toml:"seed,omitempty"`
}

// InfoSection configures additional info contributors.
type InfoSection struct {
	IncludeBuild *bool            `toml:"include_build,omitempty"`
	Details      map[string]string `toml:"details,omitempty"`
}

// EndpointSection configures a single custom management endpoint, keyed by its ID.
type EndpointSection struct {
	Enabled *bool          `toml:"enabled,omitempty"`
	Payload map[string]any `toml:"payload,omitempty"`
}

// Duration wraps time.Duration so it can be read from and written to TOML as a string such as "5s".
type Duration time.Duration

// Path returns the file the configuration was loaded from, or an empty string when defaults were used.
func (c *Config) Path() string {
	return c.configFilePath
}

// ShowDetails reports whether health details should be included in HTTP responses.
func (c *Config) ShowDetails() bool {
	if c.Health == nil || c.Health.ShowDetails == nil {
		return true
	}

	return *c.Health.ShowDetails == ShowDetailsAlways
}

// Seed returns the configured random seed, zero when unset.
func (c *Config) Seed() uint64 {
	if c.Health == nil || c.Health.Seed == nil {
		return 0
	}

	return *c.Health.Seed
}

// EndpointSections returns the configured custom endpoints.
// When none are configured the default endpoint is returned, enabled with an empty payload.
func (c *Config) EndpointSections() map[string]EndpointSection {
	if len(c.Endpoints) == 0 {
		enabled := true
		return map[string]EndpointSection{
			DefaultEndpointID: {Enabled: &enabled},
		}
	}

	return c.Endpoints
}

// IsEnabled returns whether the endpoint is enabled, true when unset.
func (e EndpointSection) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// MarshalText implements encoding.TextMarshaler for Duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration '%s': %w", string(text), err)
	}
	*d = Duration(duration)
	return nil
}

// String returns the duration in Go duration notation.
func (d Duration) String() string {
	return time.Duration(d).String()
}
