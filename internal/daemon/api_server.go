package daemon

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"

	"github.com/jvr-guru/actuatord/internal/api"
	"github.com/jvr-guru/actuatord/internal/cmd"
	"github.com/jvr-guru/actuatord/internal/contracts"
	"github.com/jvr-guru/actuatord/internal/errors"
)

// PrometheusPath is the path, relative to the base path, where metrics are served.
const PrometheusPath = "/prometheus"

// APIServer manages the management HTTP API.
// NewAPIServer should be used to create instances of APIServer.
type APIServer struct {
	// Logger for API server operations.
	logger hclog.Logger

	// Health answers health queries.
	health contracts.HealthReporter

	// Info builds info documents.
	info contracts.InfoProvider

	// Endpoints holds the custom management endpoints.
	endpoints contracts.EndpointAccessor

	// Metrics records management activity.
	metrics MetricsCollector

	// Addr specifies the network address to bind.
	addr string

	// BasePath groups every management route.
	basePath string

	// CORS configuration for cross-origin requests.
	cors CORSConfig

	// DownStatusCode is returned when health is DOWN.
	downStatusCode int

	// ShowDetails controls whether health details are returned.
	showDetails bool

	// ShutdownTimeout specifies how long to wait for graceful shutdown.
	shutdownTimeout time.Duration
}

// NewAPIServer creates a new API server with the provided dependencies and options.
// Applies default options first, then user-provided options to ensure all fields have valid values.
func NewAPIServer(deps APIDependencies, opt ...APIOption) (*APIServer, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies for API server: %w", err)
	}

	apiOpts, err := NewAPIOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid API options: %w", err)
	}

	return &APIServer{
		logger:          deps.Logger.Named("api"),
		health:          deps.Health,
		info:            deps.Info,
		endpoints:       deps.Endpoints,
		metrics:         deps.Metrics,
		addr:            deps.Addr,
		basePath:        apiOpts.BasePath,
		cors:            apiOpts.CORS,
		downStatusCode:  apiOpts.DownStatusCode,
		showDetails:     apiOpts.ShowDetails,
		shutdownTimeout: apiOpts.ShutdownTimeout,
	}, nil
}

// Handler builds the HTTP handler serving the management routes.
func (a *APIServer) Handler() (http.Handler, error) {
	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)

	if a.cors.Enabled {
		a.applyCORS(mux)
	}

	router := humachi.New(mux, api.NewConfig("actuatord", cmd.Version(), a.showDetails))

	// Configure the error handling wrapping.
	huma.NewErrorWithContext = errorHandler(a.logger)

	basePath, err := api.RegisterRoutes(
		router,
		api.RouteDependencies{
			Health:    a.health,
			Info:      a.info,
			Endpoints: a.endpoints,
			Metrics:   a.metrics,
		},
		api.RouteOptions{
			BasePath:          a.basePath,
			DownStatusCode:    a.downStatusCode,
			PrometheusEnabled: true,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register management routes: %w", err)
	}

	// Exposition format is plain text so it is served directly by the router.
	mux.Method(http.MethodGet, basePath+PrometheusPath, a.metrics.Handler())

	return mux, nil
}

// Start starts the API server and blocks until the context is canceled or an error occurs.
func (a *APIServer) Start(ctx context.Context) error {
	handler, err := a.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              a.addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting API server", "address", a.addr, "prefix", a.basePath)
		if err := srv.ListenAndServe(); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Handle graceful shutdown.
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()
		a.logger.Info("Shutting down API server...")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("API server shutdown incomplete", "error", err)
		}
		a.logger.Info("Shutdown complete")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// applyCORS applies CORS middleware to the router based on the configured options.
func (a *APIServer) applyCORS(mux *chi.Mux) {
	a.logger.Info("Enabling CORS", "origins", a.cors.AllowOrigins)

	corsOptions := cors.Options{
		AllowedOrigins:   make([]string, 0, len(a.cors.AllowOrigins)),
		AllowedMethods:   a.cors.AllowMethods,
		AllowedHeaders:   a.cors.AllowedHeaders,
		ExposedHeaders:   a.cors.ExposedHeaders,
		AllowCredentials: a.cors.AllowCredentials,
		MaxAge:           int(a.cors.MaxAge.Seconds()),
	}

	// Credentials cannot be combined with a wildcard origin.
	for _, origin := range a.cors.AllowOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "*" {
			corsOptions.AllowedOrigins = []string{"*"}
			corsOptions.AllowCredentials = false
			break
		}
		corsOptions.AllowedOrigins = append(corsOptions.AllowedOrigins, origin)
	}

	mux.Use(cors.Handler(corsOptions))
}

// mapError maps application domain errors to appropriate HTTP status codes.
//
// This function is the central place where domain errors from internal/errors are converted to HTTP responses.
// Every error defined in internal/errors should have an explicit case here, otherwise it falls through to 500.
//
// Mapping guidelines:
//   - 400: Client errors (bad input, invalid requests)
//   - 404: Resource not found errors
//   - 502: External collaborator failures
//   - 500: Unexpected internal errors (default case)
func mapError(logger hclog.Logger, err error) huma.StatusError {
	switch {
	case stdErrors.Is(err, errors.ErrBadRequest):
		return huma.Error400BadRequest(err.Error())
	case stdErrors.Is(err, errors.ErrEndpointNotFound):
		return huma.Error404NotFound(err.Error())
	case stdErrors.Is(err, errors.ErrEndpointDisabled):
		return huma.Error404NotFound(err.Error())
	case stdErrors.Is(err, errors.ErrEndpointInvokeFailed):
		logger.Error("Endpoint invocation failed", "error", err)
		return huma.Error502BadGateway("Custom endpoint failed", err)
	default:
		logger.Error("Unexpected error serving management request", "error", err)
		return huma.Error500InternalServerError("Internal server error", err)
	}
}

// errorHandler wraps error handling for the application when converting to API friendly errors.
// It allows the logger to be supplied to functions that resolve huma.StatusError.
func errorHandler(logger hclog.Logger) func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
	return func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		switch len(errs) {
		case 0:
			return huma.NewError(status, msg)
		case 1:
			return mapError(logger, errs[0])
		default:
			return mapError(logger, stdErrors.Join(errs...))
		}
	}
}
