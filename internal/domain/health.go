package domain

import (
	"maps"
)

const (
	HealthStatusUp   HealthStatus = "UP"
	HealthStatusDown HealthStatus = "DOWN"
)

// HealthStatus represents the liveness state reported by a health indicator.
type HealthStatus string

// Health is the result of a single health query.
// Details maps diagnostic codes to human-readable messages and is empty when the status is HealthStatusUp.
type Health struct {
	Status  HealthStatus
	Details map[string]string
}

// Up returns a Health with HealthStatusUp and no details.
func Up() Health {
	return Health{Status: HealthStatusUp}
}

// Down returns a Health with HealthStatusDown and the given details.
func Down(details map[string]string) Health {
	return Health{
		Status:  HealthStatusDown,
		Details: maps.Clone(details),
	}
}

// IsUp reports whether the status is HealthStatusUp.
func (h Health) IsUp() bool {
	return h.Status == HealthStatusUp
}
