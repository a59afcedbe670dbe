package api

import (
	"context"
	"fmt"
	"maps"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jvr-guru/actuatord/internal/contracts"
	"github.com/jvr-guru/actuatord/internal/domain"
)

var _ Convertible[Health] = DomainHealth{}

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

// DomainHealth is a wrapper that allows receivers to be declared in the API package that deal with domain types.
type DomainHealth domain.Health

// HealthStatus represents the reported liveness of the application.
type HealthStatus string

// Health is the API representation of a health query result.
type Health struct {
	Status  HealthStatus      `doc:"Aggregate health status"            enum:"UP,DOWN" json:"status" yaml:"status"`
	Details map[string]string `doc:"Diagnostic codes mapped to messages" json:"details,omitempty" yaml:"details,omitempty"`
}

// HealthResponse is the response for GET /health.
// Status carries the HTTP status code so that a DOWN result can be reported with a non-2xx code.
type HealthResponse struct {
	Status int
	Body   Health
}

// ToAPIType can be used to convert a wrapped domain type to an API-safe type.
func (d DomainHealth) ToAPIType() (Health, error) {
	status, err := parseHealthStatus(d.Status)
	if err != nil {
		return Health{}, err
	}

	var details map[string]string
	if status == HealthStatusDown && len(d.Details) > 0 {
		details = maps.Clone(d.Details)
	}

	return Health{
		Status:  status,
		Details: details,
	}, nil
}

// RegisterHealthRoutes sets up the health endpoint route.
func RegisterHealthRoutes(
	routerAPI huma.API,
	reporter contracts.HealthReporter,
	recorder contracts.MetricsRecorder,
	downStatusCode int,
	apiPath string,
) {
	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "getHealth",
			Method:      http.MethodGet,
			Path:        apiPath,
			Summary:     "Get the application health",
			Tags:        []string{"Health"},
		},
		func(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
			return handleHealth(ctx, reporter, recorder, downStatusCode)
		},
	)
}

// handleHealth is the handler for evaluating the application health.
func handleHealth(
	ctx context.Context,
	reporter contracts.HealthReporter,
	recorder contracts.MetricsRecorder,
	downStatusCode int,
) (*HealthResponse, error) {
	health := reporter.Health(ctx)
	recorder.ObserveHealth(health.Status)

	data, err := DomainHealth(health).ToAPIType()
	if err != nil {
		return nil, err
	}

	code := http.StatusOK
	if data.Status == HealthStatusDown {
		code = downStatusCode
	}

	return &HealthResponse{Status: code, Body: data}, nil
}

func parseHealthStatus(status domain.HealthStatus) (HealthStatus, error) {
	switch status {
	case domain.HealthStatusUp:
		return HealthStatusUp, nil
	case domain.HealthStatusDown:
		return HealthStatusDown, nil
	default:
		return "", fmt.Errorf("unknown health status: %s", status)
	}
}
