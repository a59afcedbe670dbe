package daemon

import (
	"fmt"
	"maps"

	"github.com/jvr-guru/actuatord/internal/endpoint"
)

// Options contains optional configuration for the daemon.
// NewOptions should be used to create instances of Options.
type Options struct {
	// APIOptions contains functional options for the API server.
	APIOptions []APIOption

	// Seed makes the random health indicator deterministic. Zero means unseeded.
	Seed uint64

	// InfoDetails are static details added to every info document.
	InfoDetails map[string]string

	// IncludeBuildInfo adds build details to every info document.
	IncludeBuildInfo bool

	// Endpoints are the custom management endpoints to register.
	Endpoints []endpoint.Endpoint
}

// Option defines a functional option for configuring Options.
// Options are applied in order, with later options overriding earlier ones.
type Option func(*Options) error

// NewOptions creates Options with optional configurations applied.
// Starts with default values, then applies options in order with later options overriding earlier ones.
func NewOptions(opts ...Option) (Options, error) {
	options := defaultOptions()

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&options); err != nil {
			return Options{}, err
		}
	}

	return options, nil
}

// WithAPIOptions configures API server options.
// Replaces all previous API configuration.
func WithAPIOptions(apiOpts ...APIOption) Option {
	return func(o *Options) error {
		o.APIOptions = apiOpts
		return nil
	}
}

// WithSeed configures a deterministic random health indicator.
func WithSeed(seed uint64) Option {
	return func(o *Options) error {
		o.Seed = seed
		return nil
	}
}

// WithInfoDetails configures static details added to every info document.
func WithInfoDetails(details map[string]string) Option {
	return func(o *Options) error {
		for k := range details {
			if k == "" {
				return fmt.Errorf("info detail key cannot be empty")
			}
		}
		o.InfoDetails = maps.Clone(details)
		return nil
	}
}

// WithBuildInfo configures whether build details are added to every info document.
func WithBuildInfo(include bool) Option {
	return func(o *Options) error {
		o.IncludeBuildInfo = include
		return nil
	}
}

// WithEndpoints replaces the custom management endpoints.
func WithEndpoints(endpoints ...endpoint.Endpoint) Option {
	return func(o *Options) error {
		for i, e := range endpoints {
			if isNil(e) {
				return fmt.Errorf("endpoint %d cannot be nil", i)
			}
		}
		o.Endpoints = endpoints
		return nil
	}
}

// DefaultEndpoints returns the custom endpoints registered when none are configured.
func DefaultEndpoints() []endpoint.Endpoint {
	return []endpoint.Endpoint{
		endpoint.NewStatic("customguru", true, nil),
	}
}

// defaultOptions returns Options with default values.
func defaultOptions() Options {
	return Options{
		Endpoints: DefaultEndpoints(),
	}
}
