package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jvr-guru/actuatord/internal/endpoint"
	"github.com/jvr-guru/actuatord/internal/perms"
)

const skeleton = `[management]
addr = "0.0.0.0:8080"
base_path = "/actuator"
shutdown_timeout = "5s"

[health]
show_details = "always"
down_status_code = 503

[info]
include_build = false

[endpoints.customguru]
enabled = true
`

// Init creates the base skeleton configuration file for actuatord.
func (d *DefaultLoader) Init(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(skeleton), perms.RegularFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Load reads and validates the configuration file at path.
// A missing file is not an error: an empty configuration is returned so every component uses its defaults.
func (d *DefaultLoader) Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: path cannot be empty", ErrConfigLoadFailed)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("%w: failed to stat config file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode config from file (%s): %w", ErrConfigLoadFailed, path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%w: failed to validate config (%s): %w", ErrConfigLoadFailed, path, err)
	}

	cfg.configFilePath = path

	return &cfg, nil
}

// validate orchestrates validation of each configuration section.
func (c *Config) validate() error {
	var errs []error

	if c.Management != nil {
		if err := c.Management.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("management configuration error: %w", err))
		}
	}

	if c.Health != nil {
		if err := c.Health.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("health configuration error: %w", err))
		}
	}

	if c.Info != nil {
		if err := c.Info.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("info configuration error: %w", err))
		}
	}

	if err := c.validateEndpoints(); err != nil {
		errs = append(errs, fmt.Errorf("endpoints configuration error: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) validateEndpoints() error {
	ids := make([]string, 0, len(c.Endpoints))
	for id := range c.Endpoints {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var errs []error
	for _, id := range ids {
		if err := endpoint.ValidateID(id); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Validate checks the management section for invalid values.
func (m *ManagementSection) Validate() error {
	var errs []error

	if m.Addr != nil {
		if err := validateAddr(*m.Addr); err != nil {
			errs = append(errs, err)
		}
	}

	if m.BasePath != nil {
		p := strings.Trim(strings.TrimSpace(*m.BasePath), "/")
		if p == "" {
			errs = append(errs, NewErrInvalidValue("management.base_path", *m.BasePath))
		}
	}

	if m.ShutdownTimeout != nil && *m.ShutdownTimeout <= 0 {
		errs = append(errs, NewErrInvalidValue("management.shutdown_timeout", m.ShutdownTimeout.String()))
	}

	if m.CORS != nil {
		if m.CORS.MaxAge != nil && *m.CORS.MaxAge < 0 {
			errs = append(errs, NewErrInvalidValue("management.cors.max_age", m.CORS.MaxAge.String()))
		}

		for _, origin := range m.CORS.Origins {
			if strings.TrimSpace(origin) == "" {
				errs = append(errs, NewErrInvalidValue("management.cors.allow_origins", origin))
			}
		}
	}

	return errors.Join(errs...)
}

// Validate checks the health section for invalid values.
func (h *HealthSection) Validate() error {
	var errs []error

	if h.ShowDetails != nil {
		switch *h.ShowDetails {
		case ShowDetailsAlways, ShowDetailsNever:
		default:
			errs = append(errs, NewErrInvalidValue("health.show_details", *h.ShowDetails))
		}
	}

	if h.DownStatusCode != nil && (*h.DownStatusCode < 200 || *h.DownStatusCode > 599) {
		errs = append(errs, NewErrInvalidValue("health.down_status_code", strconv.Itoa(*h.DownStatusCode)))
	}

	return errors.Join(errs...)
}

// Validate checks the info section for invalid values.
func (i *InfoSection) Validate() error {
	for k := range i.Details {
		if strings.TrimSpace(k) == "" {
			return NewErrInvalidValue("info.details", k)
		}
	}

	return nil
}

func validateAddr(addr string) error {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%w: 'management.addr' (value: '%s'): %w", ErrInvalidValue, addr, err)
	}

	if host != "" && strings.ContainsAny(host, " \t") {
		return NewErrInvalidValue("management.addr", addr)
	}

	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return NewErrInvalidValue("management.addr", addr)
	}

	return nil
}
