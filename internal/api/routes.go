package api

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jvr-guru/actuatord/internal/contracts"
)

// DefaultBasePath is the path under which management routes are grouped.
const DefaultBasePath = "/actuator"

// RouteDependencies contains the collaborators served by the management routes.
type RouteDependencies struct {
	// Health answers health queries.
	Health contracts.HealthReporter

	// Info builds info documents.
	Info contracts.InfoProvider

	// Endpoints holds the custom endpoints.
	Endpoints contracts.EndpointAccessor

	// Metrics records management activity.
	Metrics contracts.MetricsRecorder
}

// RouteOptions configures how the management routes are exposed.
type RouteOptions struct {
	// BasePath groups every management route, e.g. "/actuator".
	BasePath string

	// DownStatusCode is the HTTP status used when health reports DOWN.
	DownStatusCode int

	// PrometheusEnabled advertises the Prometheus scrape route in the discovery document.
	// The route itself is served outside of Huma since it does not produce JSON.
	PrometheusEnabled bool
}

// Validate ensures all required dependencies are provided.
func (d RouteDependencies) Validate() error {
	if isNil(d.Health) {
		return fmt.Errorf("health reporter cannot be nil")
	}
	if isNil(d.Info) {
		return fmt.Errorf("info provider cannot be nil")
	}
	if isNil(d.Endpoints) {
		return fmt.Errorf("endpoint accessor cannot be nil")
	}
	if isNil(d.Metrics) {
		return fmt.Errorf("metrics recorder cannot be nil")
	}
	return nil
}

// RegisterRoutes registers all management routes on the provided Huma router.
// This is the single source of truth for the management route structure.
// Returns the normalized base path under which the routes are created.
func RegisterRoutes(router huma.API, deps RouteDependencies, opts RouteOptions) (string, error) {
	if isNil(router) {
		return "", fmt.Errorf("router cannot be nil")
	}
	if err := deps.Validate(); err != nil {
		return "", err
	}

	basePath, err := NormalizeBasePath(opts.BasePath)
	if err != nil {
		return "", err
	}

	downStatusCode := opts.DownStatusCode
	if downStatusCode == 0 {
		downStatusCode = http.StatusServiceUnavailable
	}

	RegisterLinksRoute(router, deps.Endpoints, basePath, opts.PrometheusEnabled)

	// Group all routes under the base path.
	group := huma.NewGroup(router, basePath)
	RegisterHealthRoutes(group, deps.Health, deps.Metrics, downStatusCode, "/health")
	RegisterInfoRoutes(group, deps.Info, deps.Metrics, "/info")
	RegisterEndpointRoutes(group, deps.Endpoints, deps.Metrics)

	return basePath, nil
}

// NormalizeBasePath validates a management base path and returns it with a single leading slash and no trailing slash.
func NormalizeBasePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" {
		return DefaultBasePath, nil
	}

	// Safe way to ensure a rooted, cleaned path.
	joined, err := url.JoinPath("/", p)
	if err != nil {
		return "", fmt.Errorf("invalid base path '%s': %w", p, err)
	}

	joined = strings.TrimSuffix(joined, "/")
	if joined == "" {
		return "", fmt.Errorf("invalid base path '%s': must not be the root path", p)
	}

	return joined, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
