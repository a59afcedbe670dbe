//go:build docsgen_api

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/go-hclog"

	"github.com/jvr-guru/actuatord/internal/api"
	"github.com/jvr-guru/actuatord/internal/cmd"
	"github.com/jvr-guru/actuatord/internal/daemon"
	"github.com/jvr-guru/actuatord/internal/endpoint"
	"github.com/jvr-guru/actuatord/internal/metrics"
	"github.com/jvr-guru/actuatord/internal/perms"
)

// main generates the OpenAPI specification for the management API.
// It assumes it is run from the repository root.
func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "actuatord.docsgen.api",
		Level:  hclog.Info,
		Output: os.Stderr,
	})

	// Output path for the OpenAPI spec, relative to the repository root.
	outputPath := "./docs/api/openapi.yaml"

	if err := generate(logger, outputPath); err != nil {
		logger.Error("failed to generate OpenAPI spec", "error", err)
		os.Exit(1)
	}
}

func generate(logger hclog.Logger, outputPath string) error {
	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)
	router := humachi.New(mux, api.NewConfig("actuatord", cmd.Version(), true))

	// The spec only needs route definitions, but the default collaborators are cheap to build.
	reporter, err := daemon.NewHealthReporter(1)
	if err != nil {
		return err
	}
	provider, err := daemon.NewInfoProvider(nil, true)
	if err != nil {
		return err
	}
	registry, err := endpoint.NewRegistry(daemon.DefaultEndpoints()...)
	if err != nil {
		return err
	}
	recorder, err := metrics.NewRecorder()
	if err != nil {
		return err
	}

	basePath, err := api.RegisterRoutes(
		router,
		api.RouteDependencies{Health: reporter, Info: provider, Endpoints: registry, Metrics: recorder},
		api.RouteOptions{BasePath: daemon.DefaultBasePath(), PrometheusEnabled: true},
	)
	if err != nil {
		return fmt.Errorf("failed to register management routes: %w", err)
	}
	logger.Info("Routes registered", "prefix", basePath)

	yamlBytes, err := router.OpenAPI().YAML()
	if err != nil {
		return fmt.Errorf("failed to render OpenAPI YAML: %w", err)
	}

	docsDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(docsDir, perms.RegularDir); err != nil {
		return fmt.Errorf("failed to create docs directory (%s): %w", docsDir, err)
	}

	if err := os.WriteFile(outputPath, yamlBytes, perms.RegularFile); err != nil {
		return fmt.Errorf("failed to write OpenAPI spec (%s): %w", outputPath, err)
	}

	logger.Info("OpenAPI spec generated", "path", outputPath, "size", fmt.Sprintf("%d bytes", len(yamlBytes)))

	return nil
}
