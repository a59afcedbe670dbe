package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// NewConfig returns the Huma configuration shared by the management server and its tests.
//
// The default schema link hooks are removed so that response bodies are exactly the documented
// management payloads, without an injected "$schema" property.
func NewConfig(title string, version string, showDetails bool) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	config.Transformers = append(config.Transformers, Transformers(showDetails)...)

	return config
}
