package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jvr-guru/actuatord/internal/contracts"
)

// Link is a reference to a management endpoint.
type Link struct {
	Href string `doc:"Path of the endpoint" json:"href"`
}

// LinksResponse is the response for GET on the management base path.
type LinksResponse struct {
	Body struct {
		Links map[string]Link `doc:"Available management endpoints" json:"_links"`
	}
}

// RegisterLinksRoute sets up the discovery route at basePath.
func RegisterLinksRoute(
	routerAPI huma.API,
	endpoints contracts.EndpointAccessor,
	basePath string,
	withPrometheus bool,
) {
	huma.Register(
		routerAPI,
		huma.Operation{
			OperationID: "listLinks",
			Method:      http.MethodGet,
			Path:        basePath,
			Summary:     "List the available management endpoints",
			Tags:        []string{"Discovery"},
		},
		func(_ context.Context, _ *struct{}) (*LinksResponse, error) {
			return handleLinks(endpoints, basePath, withPrometheus), nil
		},
	)
}

// handleLinks builds the discovery document. Disabled endpoints are omitted.
func handleLinks(endpoints contracts.EndpointAccessor, basePath string, withPrometheus bool) *LinksResponse {
	links := map[string]Link{
		"self":   {Href: basePath},
		"health": {Href: basePath + "/health"},
		"info":   {Href: basePath + "/info"},
	}
	if withPrometheus {
		links["prometheus"] = Link{Href: basePath + "/prometheus"}
	}
	for _, e := range endpoints.List() {
		if !e.Enabled() {
			continue
		}
		links[e.ID()] = Link{Href: basePath + "/" + e.ID()}
	}

	resp := &LinksResponse{}
	resp.Body.Links = links

	return resp
}
