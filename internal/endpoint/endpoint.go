// Package endpoint defines custom management endpoints and the registry that exposes them.
package endpoint

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sync"
)

var (
	// ErrInvalidID indicates an endpoint ID that cannot be used as a path segment.
	ErrInvalidID = errors.New("invalid endpoint id")

	// ErrDuplicateID indicates an endpoint ID that is already registered.
	ErrDuplicateID = errors.New("duplicate endpoint id")

	// ErrReservedID indicates an endpoint ID that collides with a built-in management route.
	ErrReservedID = errors.New("reserved endpoint id")
)

// validID matches lowercase alphanumeric IDs starting with a letter.
var validID = regexp.MustCompile(`^[a-z][a-z0-9]*$`)

// reservedIDs are served by built-in routes.
var reservedIDs = []string{"health", "info", "prometheus"}

// Endpoint is a custom management endpoint.
// The shape of the payload returned by Invoke is owned by the implementation and is opaque to callers.
type Endpoint interface {
	// ID is the path segment under which the endpoint is exposed.
	ID() string

	// Enabled reports whether the endpoint should answer requests.
	Enabled() bool

	// Invoke produces the endpoint's payload.
	Invoke(ctx context.Context) (any, error)
}

// Static is an Endpoint which returns a fixed payload.
type Static struct {
	id      string
	enabled bool
	payload map[string]any
}

// NewStatic creates a Static endpoint. A nil payload is served as an empty object.
func NewStatic(id string, enabled bool, payload map[string]any) *Static {
	if payload == nil {
		payload = map[string]any{}
	}

	return &Static{
		id:      id,
		enabled: enabled,
		payload: maps.Clone(payload),
	}
}

// ID implements Endpoint.
func (s *Static) ID() string {
	return s.id
}

// Enabled implements Endpoint.
func (s *Static) Enabled() bool {
	return s.enabled
}

// Invoke implements Endpoint.
func (s *Static) Invoke(_ context.Context) (any, error) {
	return maps.Clone(s.payload), nil
}

// ValidateID checks that id can be used to expose an endpoint.
func ValidateID(id string) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("%w: '%s' must be lowercase alphanumeric and start with a letter", ErrInvalidID, id)
	}
	if slices.Contains(reservedIDs, id) {
		return fmt.Errorf("%w: '%s'", ErrReservedID, id)
	}
	return nil
}

// Registry holds the custom endpoints exposed by the management server.
// NewRegistry should be used to create instances of Registry.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]Endpoint
}

// NewRegistry creates a Registry containing the given endpoints.
func NewRegistry(endpoints ...Endpoint) (*Registry, error) {
	r := &Registry{endpoints: make(map[string]Endpoint, len(endpoints))}
	for _, e := range endpoints {
		if err := r.Add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers an endpoint.
func (r *Registry) Add(e Endpoint) error {
	if e == nil {
		return fmt.Errorf("endpoint cannot be nil")
	}

	id := e.ID()
	if err := ValidateID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.endpoints[id]; ok {
		return fmt.Errorf("%w: '%s'", ErrDuplicateID, id)
	}
	r.endpoints[id] = e

	return nil
}

// Get returns the endpoint registered under id.
func (r *Registry) Get(id string) (Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.endpoints[id]
	return e, ok
}

// List returns all registered endpoints sorted by ID.
func (r *Registry) List() []Endpoint {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(r.endpoints))
	out := make([]Endpoint, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.endpoints[id])
	}
	return out
}
