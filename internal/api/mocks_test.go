package api

import (
	"context"
	"slices"
	"sync"

	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/endpoint"
)

// mockHealthReporter implements contracts.HealthReporter for testing.
type mockHealthReporter struct {
	health domain.Health
}

func (m *mockHealthReporter) Health(_ context.Context) domain.Health {
	return m.health
}

// mockInfoProvider implements contracts.InfoProvider for testing.
type mockInfoProvider struct {
	info domain.Info
}

func (m *mockInfoProvider) Info() domain.Info {
	return m.info
}

// mockEndpointAccessor implements contracts.EndpointAccessor for testing.
type mockEndpointAccessor struct {
	endpoints []endpoint.Endpoint
}

func (m *mockEndpointAccessor) Get(id string) (endpoint.Endpoint, bool) {
	i := slices.IndexFunc(m.endpoints, func(e endpoint.Endpoint) bool { return e.ID() == id })
	if i < 0 {
		return nil, false
	}
	return m.endpoints[i], true
}

func (m *mockEndpointAccessor) List() []endpoint.Endpoint {
	return m.endpoints
}

// mockEndpoint implements endpoint.Endpoint for testing.
type mockEndpoint struct {
	id      string
	enabled bool
	payload any
	err     error
}

func (m *mockEndpoint) ID() string { return m.id }

func (m *mockEndpoint) Enabled() bool { return m.enabled }

func (m *mockEndpoint) Invoke(_ context.Context) (any, error) {
	return m.payload, m.err
}

// mockRecorder implements contracts.MetricsRecorder for testing.
type mockRecorder struct {
	mu        sync.Mutex
	health    []domain.HealthStatus
	info      int
	endpoints []string
	errs      []error
}

func (m *mockRecorder) ObserveHealth(status domain.HealthStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.health = append(m.health, status)
}

func (m *mockRecorder) ObserveInfo() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.info++
}

func (m *mockRecorder) ObserveEndpoint(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.endpoints = append(m.endpoints, id)
	m.errs = append(m.errs, err)
}
