package cmd

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jvr-guru/actuatord/internal/config"
	"github.com/jvr-guru/actuatord/internal/daemon"
)

func ptr[T any](v T) *T {
	return &v
}

func TestConfiguredAddr(t *testing.T) {
	t.Parallel()

	require.Equal(t, daemon.DefaultAddr(), configuredAddr(&config.Config{}))
	require.Equal(t, daemon.DefaultAddr(), configuredAddr(&config.Config{Management: &config.ManagementSection{}}))
	require.Equal(t, "127.0.0.1:9000", configuredAddr(&config.Config{
		Management: &config.ManagementSection{Addr: ptr("127.0.0.1:9000")},
	}))
}

func TestAPIOptionsFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty config keeps defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := daemon.NewAPIOptions(apiOptionsFromConfig(&config.Config{})...)
		require.NoError(t, err)

		defaults, err := daemon.NewAPIOptions()
		require.NoError(t, err)
		require.Equal(t, defaults, opts)
	})

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Management: &config.ManagementSection{
				BasePath:        ptr("manage"),
				ShutdownTimeout: ptr(config.Duration(2 * time.Second)),
				CORS: &config.CORSSection{
					Enable:        ptr(true),
					Origins:       []string{"https://example.com"},
					Methods:       []string{http.MethodGet},
					Headers:       []string{"Accept"},
					ExposeHeaders: []string{"X-Request-Id"},
					Credentials:   ptr(true),
					MaxAge:        ptr(config.Duration(time.Minute)),
				},
			},
			Health: &config.HealthSection{
				ShowDetails:    ptr(config.ShowDetailsNever),
				DownStatusCode: ptr(http.StatusInternalServerError),
			},
		}

		opts, err := daemon.NewAPIOptions(apiOptionsFromConfig(cfg)...)
		require.NoError(t, err)

		require.Equal(t, "/manage", opts.BasePath)
		require.Equal(t, 2*time.Second, opts.ShutdownTimeout)
		require.False(t, opts.ShowDetails)
		require.Equal(t, http.StatusInternalServerError, opts.DownStatusCode)
		require.Equal(t, daemon.CORSConfig{
			Enabled:          true,
			AllowCredentials: true,
			AllowedHeaders:   []string{"Accept"},
			AllowMethods:     []string{http.MethodGet},
			AllowOrigins:     []string{"https://example.com"},
			ExposedHeaders:   []string{"X-Request-Id"},
			MaxAge:           time.Minute,
		}, opts.CORS)
	})
}

func TestDaemonOptionsFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		opts, err := daemon.NewOptions(daemonOptionsFromConfig(&config.Config{})...)
		require.NoError(t, err)

		require.Zero(t, opts.Seed)
		require.False(t, opts.IncludeBuildInfo)
		require.Empty(t, opts.InfoDetails)
		require.Len(t, opts.Endpoints, 1)
		require.Equal(t, config.DefaultEndpointID, opts.Endpoints[0].ID())
		require.True(t, opts.Endpoints[0].Enabled())
	})

	t.Run("configured", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Health: &config.HealthSection{Seed: ptr(uint64(9))},
			Info: &config.InfoSection{
				IncludeBuild: ptr(true),
				Details:      map[string]string{"team": "platform"},
			},
			Endpoints: map[string]config.EndpointSection{
				"status":     {Payload: map[string]any{"ok": true}},
				"customguru": {Enabled: ptr(false)},
			},
		}

		opts, err := daemon.NewOptions(daemonOptionsFromConfig(cfg)...)
		require.NoError(t, err)

		require.Equal(t, uint64(9), opts.Seed)
		require.True(t, opts.IncludeBuildInfo)
		require.Equal(t, map[string]string{"team": "platform"}, opts.InfoDetails)

		require.Len(t, opts.Endpoints, 2)
		require.Equal(t, "customguru", opts.Endpoints[0].ID())
		require.False(t, opts.Endpoints[0].Enabled())
		require.Equal(t, "status", opts.Endpoints[1].ID())
		require.True(t, opts.Endpoints[1].Enabled())

		payload, err := opts.Endpoints[1].Invoke(t.Context())
		require.NoError(t, err)
		require.Equal(t, map[string]any{"ok": true}, payload)
	})
}
