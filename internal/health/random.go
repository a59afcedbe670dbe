package health

import (
	"context"
	"fmt"

	"github.com/jvr-guru/actuatord/internal/domain"
)

const (
	// RandomFailureCode is the diagnostic code reported when RandomIndicator reports DOWN.
	RandomFailureCode = "ERR-001"

	// RandomFailureMessage is the detail message reported alongside RandomFailureCode.
	RandomFailureMessage = "Random Failure"
)

var _ Indicator = (*RandomIndicator)(nil)

// RandomIndicator reports DOWN whenever its source yields true, and UP otherwise.
// The result is not tied to any real subsystem condition.
type RandomIndicator struct {
	source BoolSource
}

// NewRandomIndicator creates a RandomIndicator drawing one boolean per call from src.
func NewRandomIndicator(src BoolSource) (*RandomIndicator, error) {
	if src == nil {
		return nil, fmt.Errorf("bool source cannot be nil")
	}

	return &RandomIndicator{source: src}, nil
}

// Name implements Indicator.
func (r *RandomIndicator) Name() string {
	return "random"
}

// Health implements Indicator.
func (r *RandomIndicator) Health(_ context.Context) domain.Health {
	if r.source.Bool() {
		return domain.Down(map[string]string{RandomFailureCode: RandomFailureMessage})
	}

	return domain.Up()
}
