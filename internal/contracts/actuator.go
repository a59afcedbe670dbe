package contracts

import (
	"context"

	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/endpoint"
)

// HealthReporter answers health queries.
type HealthReporter interface {
	// Health evaluates all registered indicators and returns the aggregate result.
	Health(ctx context.Context) domain.Health
}

// InfoProvider builds info documents.
type InfoProvider interface {
	// Info builds a fresh info document from all registered contributors.
	Info() domain.Info
}

// EndpointAccessor provides access to the registered custom endpoints.
type EndpointAccessor interface {
	// Get returns the endpoint registered under id.
	// It returns a boolean to indicate whether the endpoint was found.
	Get(id string) (endpoint.Endpoint, bool)

	// List returns all registered endpoints sorted by ID.
	List() []endpoint.Endpoint
}

// MetricsRecorder records management activity.
type MetricsRecorder interface {
	// ObserveHealth counts a health query which reported status.
	ObserveHealth(status domain.HealthStatus)

	// ObserveInfo counts a built info document.
	ObserveInfo()

	// ObserveEndpoint counts an invocation of a custom endpoint.
	ObserveEndpoint(id string, err error)
}
