package daemon

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jvr-guru/actuatord/internal/cmd"
	"github.com/jvr-guru/actuatord/internal/contracts"
	"github.com/jvr-guru/actuatord/internal/domain"
	"github.com/jvr-guru/actuatord/internal/endpoint"
	"github.com/jvr-guru/actuatord/internal/health"
	"github.com/jvr-guru/actuatord/internal/info"
	"github.com/jvr-guru/actuatord/internal/metrics"
)

// Daemon wires the health indicators, info contributors and custom endpoints to the management API server.
// NewDaemon should be used to create instances of Daemon.
type Daemon struct {
	apiServer *APIServer
	logger    hclog.Logger
}

// NewDaemon creates a new Daemon instance with the provided dependencies and options.
func NewDaemon(deps Dependencies, opt ...Option) (*Daemon, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	reporter, err := NewHealthReporter(opts.Seed)
	if err != nil {
		return nil, err
	}

	provider, err := NewInfoProvider(opts.InfoDetails, opts.IncludeBuildInfo)
	if err != nil {
		return nil, err
	}

	registry, err := endpoint.NewRegistry(opts.Endpoints...)
	if err != nil {
		return nil, fmt.Errorf("failed to register endpoints: %w", err)
	}

	recorder, err := metrics.NewRecorder()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics recorder: %w", err)
	}

	apiDeps, err := NewAPIDependencies(
		deps.Logger,
		deps.APIAddr,
		&loggedHealth{logger: deps.Logger.Named("health"), reporter: reporter},
		provider,
		registry,
		recorder,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create API server dependencies: %w", err)
	}

	apiServer, err := NewAPIServer(apiDeps, opts.APIOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create daemon API server: %w", err)
	}

	return &Daemon{
		apiServer: apiServer,
		logger:    deps.Logger.Named("daemon"),
	}, nil
}

// StartAndManage serves the management API until ctx is canceled.
func (d *Daemon) StartAndManage(ctx context.Context) error {
	d.logger.Info("Starting daemon", "version", cmd.Version())
	defer d.logger.Info("Daemon stopped")

	return d.apiServer.Start(ctx)
}

// NewHealthReporter builds the health reporter served at /health.
// A zero seed uses an unseeded random source.
func NewHealthReporter(seed uint64) (*health.Composite, error) {
	var src health.BoolSource
	if seed == 0 {
		src = health.NewRandSource()
	} else {
		src = health.NewSeededSource(seed)
	}

	random, err := health.NewRandomIndicator(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create random health indicator: %w", err)
	}

	composite, err := health.NewComposite(random)
	if err != nil {
		return nil, fmt.Errorf("failed to create health reporter: %w", err)
	}

	return composite, nil
}

// NewInfoProvider builds the info provider served at /info.
// Static details are applied before the fixed JVR detail, so the JVR detail cannot be overridden.
func NewInfoProvider(details map[string]string, includeBuild bool) (*info.Aggregator, error) {
	var contributors []info.Contributor

	if includeBuild {
		contributors = append(contributors, info.NewBuildContributor(cmd.Version()))
	}
	if len(details) > 0 {
		contributors = append(contributors, info.NewStaticContributor(details))
	}
	contributors = append(contributors, info.JVRContributor{})

	aggregator, err := info.NewAggregator(contributors...)
	if err != nil {
		return nil, fmt.Errorf("failed to create info provider: %w", err)
	}

	return aggregator, nil
}

// loggedHealth logs DOWN results from the wrapped reporter.
type loggedHealth struct {
	logger   hclog.Logger
	reporter contracts.HealthReporter
}

func (l *loggedHealth) Health(ctx context.Context) domain.Health {
	h := l.reporter.Health(ctx)
	if !h.IsUp() {
		l.logger.Debug("Health reported DOWN", "details", h.Details)
	}
	return h
}
