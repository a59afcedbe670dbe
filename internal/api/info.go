package api

import (
	"context"
	"maps"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jvr-guru/actuatord/internal/contracts"
)

// InfoResponse is the response for GET /info.
type InfoResponse struct {
	Body map[string]string `doc:"Details merged from all info contributors"`
}

// RegisterInfoRoutes sets up the info endpoint route.
func RegisterInfoRoutes(routerAPI huma.API, provider contracts.InfoProvider, recorder contracts.MetricsRecorder, apiPath string) {
	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "getInfo",
			Method:      http.MethodGet,
			Path:        apiPath,
			Summary:     "Get application info",
			Tags:        []string{"Info"},
		},
		func(_ context.Context, _ *struct{}) (*InfoResponse, error) {
			return handleInfo(provider, recorder)
		},
	)
}

// handleInfo is the handler for building the info document.
func handleInfo(provider contracts.InfoProvider, recorder contracts.MetricsRecorder) (*InfoResponse, error) {
	doc := provider.Info()
	recorder.ObserveInfo()

	body := make(map[string]string, len(doc))
	maps.Copy(body, doc)

	return &InfoResponse{Body: body}, nil
}
