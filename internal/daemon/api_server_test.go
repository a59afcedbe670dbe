package daemon

import (
	"context"
	stdErrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/endpoint"
	"github.com/jvr-guru/actuatord/internal/errors"
	"github.com/jvr-guru/actuatord/internal/metrics"
)

type fixedHealth struct {
	health domain.Health
}

func (f *fixedHealth) Health(_ context.Context) domain.Health {
	return f.health
}

type fixedInfo domain.Info

func (f fixedInfo) Info() domain.Info {
	return domain.Info(f)
}

func testAPIDependencies(t *testing.T, h domain.Health) APIDependencies {
	t.Helper()

	registry, err := endpoint.NewRegistry(
		endpoint.NewStatic("customguru", true, map[string]any{"guru": "jvr"}),
		endpoint.NewStatic("hidden", false, nil),
	)
	require.NoError(t, err)

	recorder, err := metrics.NewRecorder()
	require.NoError(t, err)

	deps, err := NewAPIDependencies(
		hclog.NewNullLogger(),
		"127.0.0.1:0",
		&fixedHealth{health: h},
		fixedInfo{"JVR": "just a example of InfoContributoer"},
		registry,
		recorder,
	)
	require.NoError(t, err)

	return deps
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestNewAPIServer_AppliesDefaults(t *testing.T) {
	t.Parallel()

	deps := testAPIDependencies(t, domain.Up())

	server, err := NewAPIServer(deps)
	require.NoError(t, err)
	require.Equal(t, DefaultAPIShutdownTimeout(), server.shutdownTimeout)
	require.Equal(t, "/actuator", server.basePath)
	require.Equal(t, http.StatusServiceUnavailable, server.downStatusCode)
	require.False(t, server.cors.Enabled)

	server2, err := NewAPIServer(deps, nil, WithShutdownTimeout(10*time.Second), WithCORSEnabled(true), nil)
	require.NoError(t, err)
	require.Equal(t, 10*time.Second, server2.shutdownTimeout)
	require.True(t, server2.cors.Enabled)
}

func TestNewAPIServer_Errors(t *testing.T) {
	t.Parallel()

	deps := testAPIDependencies(t, domain.Up())

	_, err := NewAPIServer(deps, WithShutdownTimeout(-time.Second))
	require.ErrorContains(t, err, "invalid API options: shutdown timeout must be positive")

	deps.Metrics = nil
	_, err = NewAPIServer(deps)
	require.EqualError(t, err, "invalid dependencies for API server: metrics collector cannot be nil")
}

func TestAPIDependencies_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(d *APIDependencies)
		wantErr string
	}{
		{
			name:    "bad address",
			mutate:  func(d *APIDependencies) { d.Addr = "nope" },
			wantErr: "invalid API address 'nope'",
		},
		{
			name:    "nil health",
			mutate:  func(d *APIDependencies) { d.Health = nil },
			wantErr: "health reporter cannot be nil",
		},
		{
			name:    "typed nil health",
			mutate:  func(d *APIDependencies) { d.Health = (*fixedHealth)(nil) },
			wantErr: "health reporter cannot be nil",
		},
		{
			name:    "nil info",
			mutate:  func(d *APIDependencies) { d.Info = nil },
			wantErr: "info provider cannot be nil",
		},
		{
			name:    "nil endpoints",
			mutate:  func(d *APIDependencies) { d.Endpoints = nil },
			wantErr: "endpoint accessor cannot be nil",
		},
		{
			name:    "nil logger",
			mutate:  func(d *APIDependencies) { d.Logger = nil },
			wantErr: "logger cannot be nil",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deps := testAPIDependencies(t, domain.Up())
			tc.mutate(&deps)
			require.ErrorContains(t, deps.Validate(), tc.wantErr)
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{
			name:           "bad request",
			err:            errors.ErrBadRequest,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "endpoint not found",
			err:            fmt.Errorf("%w: nope", errors.ErrEndpointNotFound),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "endpoint disabled",
			err:            fmt.Errorf("%w: hidden", errors.ErrEndpointDisabled),
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "endpoint invoke failed",
			err:            fmt.Errorf("%w: guru: %w", errors.ErrEndpointInvokeFailed, stdErrors.New("unavailable")),
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "unknown error",
			err:            stdErrors.New("unexpected"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			statusErr := mapError(hclog.NewNullLogger(), tc.err)
			require.Equal(t, tc.expectedStatus, statusErr.GetStatus())
		})
	}
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	handler := errorHandler(hclog.NewNullLogger())

	require.Equal(t, http.StatusTeapot, handler(nil, http.StatusTeapot, "teapot").GetStatus())
	require.Equal(
		t,
		http.StatusNotFound,
		handler(nil, http.StatusInternalServerError, "boom", errors.ErrEndpointNotFound).GetStatus(),
	)
	require.Equal(
		t,
		http.StatusBadGateway,
		handler(nil, http.StatusInternalServerError, "boom", stdErrors.New("x"), errors.ErrEndpointInvokeFailed).GetStatus(),
	)
}

// Handler replaces huma.NewErrorWithContext, so handler tests do not run in parallel.
func TestAPIServer_Handler(t *testing.T) {
	down := domain.Down(map[string]string{"ERR-001": "Random Failure"})

	tests := []struct {
		name           string
		health         domain.Health
		opts           []APIOption
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "health up",
			health:         domain.Up(),
			path:           "/actuator/health",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"UP"}`,
		},
		{
			name:           "health down",
			health:         down,
			path:           "/actuator/health",
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"DOWN","details":{"ERR-001":"Random Failure"}}`,
		},
		{
			name:           "health down without details",
			health:         down,
			opts:           []APIOption{WithShowDetails(false), WithDownStatusCode(http.StatusOK)},
			path:           "/actuator/health",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"DOWN"}`,
		},
		{
			name:           "trailing slash",
			health:         domain.Up(),
			path:           "/actuator/health/",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"UP"}`,
		},
		{
			name:           "info",
			health:         domain.Up(),
			path:           "/actuator/info",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"JVR":"just a example of InfoContributoer"}`,
		},
		{
			name:           "custom endpoint",
			health:         domain.Up(),
			path:           "/actuator/customguru",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"guru":"jvr"}`,
		},
		{
			name:           "custom base path",
			health:         domain.Up(),
			opts:           []APIOption{WithBasePath("/manage")},
			path:           "/manage/customguru",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"guru":"jvr"}`,
		},
		{
			name:           "links",
			health:         domain.Up(),
			path:           "/actuator",
			expectedStatus: http.StatusOK,
			expectedBody: `{"_links":{
				"customguru":{"href":"/actuator/customguru"},
				"health":{"href":"/actuator/health"},
				"info":{"href":"/actuator/info"},
				"prometheus":{"href":"/actuator/prometheus"},
				"self":{"href":"/actuator"}}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server, err := NewAPIServer(testAPIDependencies(t, tc.health), tc.opts...)
			require.NoError(t, err)

			handler, err := server.Handler()
			require.NoError(t, err)

			rec := get(t, handler, tc.path)
			require.Equal(t, tc.expectedStatus, rec.Code)
			require.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestAPIServer_Handler_DisabledEndpoint(t *testing.T) {
	server, err := NewAPIServer(testAPIDependencies(t, domain.Up()))
	require.NoError(t, err)

	handler, err := server.Handler()
	require.NoError(t, err)

	rec := get(t, handler, "/actuator/hidden")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "this endpoint is disabled")

	rec = get(t, handler, "/actuator/unknown")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPIServer_Handler_Prometheus(t *testing.T) {
	server, err := NewAPIServer(testAPIDependencies(t, domain.Up()))
	require.NoError(t, err)

	handler, err := server.Handler()
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, get(t, handler, "/actuator/health").Code)
	require.Equal(t, http.StatusOK, get(t, handler, "/actuator/customguru").Code)

	rec := get(t, handler, "/actuator/prometheus")
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `actuatord_health_checks_total{status="UP"} 1`)
	require.Contains(t, string(body), `actuatord_endpoint_invocations_total{endpoint="customguru",outcome="success"} 1`)
	require.Contains(t, string(body), "actuatord_info_requests_total 0")
}

func TestAPIServer_Handler_CORS(t *testing.T) {
	server, err := NewAPIServer(
		testAPIDependencies(t, domain.Up()),
		WithCORSEnabled(true),
		WithCORSAllowOrigins([]string{" https://example.com ", "*"}),
		WithCORSAllowCredentials(true),
	)
	require.NoError(t, err)

	handler, err := server.Handler()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/actuator/health", nil)
	req.Header.Set("Origin", "https://other.example")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestAPIServer_Start_Shutdown(t *testing.T) {
	server, err := NewAPIServer(testAPIDependencies(t, domain.Up()), WithShutdownTimeout(time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Start(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestAPIServer_Start_BindFailure(t *testing.T) {
	deps := testAPIDependencies(t, domain.Up())
	deps.Addr = "127.0.0.1:99999"

	server, err := NewAPIServer(deps)
	require.NoError(t, err)

	err = server.Start(context.Background())
	require.Error(t, err)
}
