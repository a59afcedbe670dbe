package daemon

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/hashicorp/go-hclog"

	"github.com/jvr-guru/actuatord/internal/contracts"
)

// MetricsCollector records management activity and serves it for scraping.
type MetricsCollector interface {
	contracts.MetricsRecorder

	// Handler serves the collected metrics in the Prometheus exposition format.
	Handler() http.Handler
}

// APIDependencies contains the required external dependencies for the API server.
// NewAPIDependencies should be used to create instances of APIDependencies.
type APIDependencies struct {
	// Addr specifies the network address to bind (e.g., "0.0.0.0:8080").
	Addr string

	// Health answers health queries.
	Health contracts.HealthReporter

	// Info builds info documents.
	Info contracts.InfoProvider

	// Endpoints holds the custom management endpoints.
	Endpoints contracts.EndpointAccessor

	// Metrics records management activity.
	Metrics MetricsCollector

	// Logger for API server operations.
	Logger hclog.Logger
}

// NewAPIDependencies creates and validates APIDependencies.
func NewAPIDependencies(
	logger hclog.Logger,
	addr string,
	health contracts.HealthReporter,
	info contracts.InfoProvider,
	endpoints contracts.EndpointAccessor,
	metrics MetricsCollector,
) (APIDependencies, error) {
	deps := APIDependencies{
		Addr:      addr,
		Health:    health,
		Info:      info,
		Endpoints: endpoints,
		Metrics:   metrics,
		Logger:    logger,
	}

	if err := deps.Validate(); err != nil {
		return APIDependencies{}, err
	}

	return deps, nil
}

// Validate ensures all required dependencies are provided and valid.
func (d APIDependencies) Validate() error {
	if err := validateAddr(d.Addr); err != nil {
		return fmt.Errorf("invalid API address '%s': %w", d.Addr, err)
	}
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
		return fmt.Errorf("metrics collector cannot be nil")
	}
	if isNil(d.Logger) {
		return fmt.Errorf("logger cannot be nil")
	}
	return nil
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
