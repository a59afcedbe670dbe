// Package metrics records management endpoint activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jvr-guru/actuatord/internal/domain"
)

const namespace = "actuatord"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder owns the Prometheus collectors for the management server.
// NewRecorder should be used to create instances of Recorder.
type Recorder struct {
	registry            *prometheus.Registry
	healthChecks        *prometheus.CounterVec
	infoRequests        prometheus.Counter
	endpointInvocations *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry, including the Go runtime and process collectors.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		healthChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "health_checks_total",
			Help:      "Number of health queries answered, by reported status.",
		}, []string{"status"}),
		infoRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "info_requests_total",
			Help:      "Number of info documents built.",
		}),
		endpointInvocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "endpoint_invocations_total",
			Help:      "Number of custom endpoint invocations, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.healthChecks,
		r.infoRequests,
		r.endpointInvocations,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metrics collector: %w", err)
		}
	}

	return r, nil
}

// ObserveHealth counts a health query which reported status.
func (r *Recorder) ObserveHealth(status domain.HealthStatus) {
	r.healthChecks.WithLabelValues(string(status)).Inc()
}

// ObserveInfo counts a built info document.
func (r *Recorder) ObserveInfo() {
	r.infoRequests.Inc()
}

// ObserveEndpoint counts an invocation of the custom endpoint id.
func (r *Recorder) ObserveEndpoint(id string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.endpointInvocations.WithLabelValues(id, outcome).Inc()
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
