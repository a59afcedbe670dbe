package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jvr-guru/actuatord/internal/contracts"
	"github.com/jvr-guru/actuatord/internal/errors"
)

// EndpointResponse wraps the opaque payload of a custom endpoint.
type EndpointResponse struct {
	Body any
}

// RegisterEndpointRoutes exposes every registered custom endpoint at its own path.
// Disabled endpoints are still routed so that they answer with a not-found error rather than falling through.
func RegisterEndpointRoutes(routerAPI huma.API, endpoints contracts.EndpointAccessor, recorder contracts.MetricsRecorder) {
	for _, e := range endpoints.List() {
		id := e.ID()
		huma.Register(
			routerAPI,
			huma.Operation{
				OperationID: "invoke-" + id,
				Method:      http.MethodGet,
				Path:        "/" + id,
				Summary:     fmt.Sprintf("Invoke the '%s' endpoint", id),
				Tags:        []string{"Endpoints"},
			},
			func(ctx context.Context, _ *struct{}) (*EndpointResponse, error) {
				return handleEndpoint(ctx, endpoints, recorder, id)
			},
		)
	}
}

// handleEndpoint is the handler for invoking a custom endpoint.
func handleEndpoint(
	ctx context.Context,
	endpoints contracts.EndpointAccessor,
	recorder contracts.MetricsRecorder,
	id string,
) (*EndpointResponse, error) {
	e, ok := endpoints.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrEndpointNotFound, id)
	}
	if !e.Enabled() {
		return nil, fmt.Errorf("%w: %s", errors.ErrEndpointDisabled, id)
	}

	payload, err := e.Invoke(ctx)
	recorder.ObserveEndpoint(id, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrEndpointInvokeFailed, id, err)
	}

	return &EndpointResponse{Body: payload}, nil
}
