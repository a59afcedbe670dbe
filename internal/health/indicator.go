package health

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jvr-guru/actuatord/internal/domain"
)

var _ Indicator = (*Composite)(nil)

// Indicator reports the health of a single subsystem.
type Indicator interface {
	// Name identifies the indicator, primarily for logging.
	Name() string

	// Health evaluates the indicator. It never fails; a failing subsystem is reported as domain.HealthStatusDown.
	Health(ctx context.Context) domain.Health
}

// Composite aggregates the results of several indicators into a single domain.Health.
// The aggregate is DOWN when any indicator is DOWN, and its details are the union of all indicator details.
// NewComposite should be used to create instances of Composite.
type Composite struct {
	indicators []Indicator
}

// NewComposite creates a Composite over the given indicators.
// Indicators are evaluated concurrently, but details are merged in registration order so that
// later indicators win on duplicate codes.
func NewComposite(indicators ...Indicator) (*Composite, error) {
	if len(indicators) == 0 {
		return nil, fmt.Errorf("at least one health indicator is required")
	}

	seen := make(map[string]struct{}, len(indicators))
	for _, ind := range indicators {
		if ind == nil {
			return nil, fmt.Errorf("health indicator cannot be nil")
		}
		name := strings.TrimSpace(ind.Name())
		if name == "" {
			return nil, fmt.Errorf("health indicator name cannot be empty")
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("duplicate health indicator: %s", name)
		}
		seen[name] = struct{}{}
	}

	return &Composite{indicators: slices.Clone(indicators)}, nil
}

// Name implements Indicator.
func (c *Composite) Name() string {
	return "composite"
}

// Names returns the names of the aggregated indicators in registration order.
func (c *Composite) Names() []string {
	names := make([]string, 0, len(c.indicators))
	for _, ind := range c.indicators {
		names = append(names, ind.Name())
	}
	return names
}

// Health implements Indicator.
func (c *Composite) Health(ctx context.Context) domain.Health {
	if len(c.indicators) == 1 {
		return c.indicators[0].Health(ctx)
	}

	results := make([]domain.Health, len(c.indicators))

	var g errgroup.Group
	for i, ind := range c.indicators {
		g.Go(func() error {
			results[i] = ind.Health(ctx)
			return nil
		})
	}
	_ = g.Wait() // Indicators cannot fail.

	return aggregate(results)
}

func aggregate(results []domain.Health) domain.Health {
	status := domain.HealthStatusUp
	var details map[string]string

	for _, r := range results {
		if !r.IsUp() {
			status = domain.HealthStatusDown
		}
		if len(r.Details) == 0 {
			continue
		}
		if details == nil {
			details = make(map[string]string, len(r.Details))
		}
		maps.Copy(details, r.Details)
	}

	return domain.Health{Status: status, Details: details}
}
