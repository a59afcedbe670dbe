package cmd

import (
	"maps"
	"slices"
	"time"

	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/daemon"
	"github.com/jvr-guru/actuatord/internal/endpoint"
)

// configuredAddr returns the address from the config file, or the default when unset.
func configuredAddr(cfg *config.Config) string {
	if cfg.Management != nil && cfg.Management.Addr != nil {
		return *cfg.Management.Addr
	}
	return daemon.DefaultAddr()
}

// apiOptionsFromConfig converts the management and health sections into API server options.
// Only values present in the file produce options, so API defaults apply to everything else.
func apiOptionsFromConfig(cfg *config.Config) []daemon.APIOption {
	var opts []daemon.APIOption

	if m := cfg.Management; m != nil {
		if m.BasePath != nil {
			opts = append(opts, daemon.WithBasePath(*m.BasePath))
		}
		if m.ShutdownTimeout != nil {
			opts = append(opts, daemon.WithShutdownTimeout(time.Duration(*m.ShutdownTimeout)))
		}
		if c := m.CORS; c != nil {
			if c.Enable != nil {
				opts = append(opts, daemon.WithCORSEnabled(*c.Enable))
			}
			if c.Origins != nil {
				opts = append(opts, daemon.WithCORSAllowOrigins(c.Origins))
			}
			if c.Methods != nil {
				opts = append(opts, daemon.WithCORSAllowMethods(c.Methods))
			}
			if c.Headers != nil {
				opts = append(opts, daemon.WithCORSAllowHeaders(c.Headers))
			}
			if c.ExposeHeaders != nil {
				opts = append(opts, daemon.WithCORSExposeHeaders(c.ExposeHeaders))
			}
			if c.Credentials != nil {
				opts = append(opts, daemon.WithCORSAllowCredentials(*c.Credentials))
			}
			if c.MaxAge != nil {
				opts = append(opts, daemon.WithCORSMaxAge(time.Duration(*c.MaxAge)))
			}
		}
	}

	if h := cfg.Health; h != nil {
		if h.ShowDetails != nil {
			opts = append(opts, daemon.WithShowDetails(cfg.ShowDetails()))
		}
		if h.DownStatusCode != nil {
			opts = append(opts, daemon.WithDownStatusCode(*h.DownStatusCode))
		}
	}

	return opts
}

// daemonOptionsFromConfig converts the health, info and endpoints sections into daemon options.
func daemonOptionsFromConfig(cfg *config.Config) []daemon.Option {
	opts := []daemon.Option{
		daemon.WithSeed(cfg.Seed()),
	}

	if i := cfg.Info; i != nil {
		if len(i.Details) > 0 {
			opts = append(opts, daemon.WithInfoDetails(i.Details))
		}
		if i.IncludeBuild != nil {
			opts = append(opts, daemon.WithBuildInfo(*i.IncludeBuild))
		}
	}

	sections := cfg.EndpointSections()
	endpoints := make([]endpoint.Endpoint, 0, len(sections))
	for _, id := range slices.Sorted(maps.Keys(sections)) {
		s := sections[id]
		endpoints = append(endpoints, endpoint.NewStatic(id, s.IsEnabled(), s.Payload))
	}
	opts = append(opts, daemon.WithEndpoints(endpoints...))

	return opts
}
