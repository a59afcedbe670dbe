package info

import (
	"maps"

	"github.com/jvr-guru/actuatord/internal/domain"
)

// Builder accumulates the details contributed to an info document.
// A Builder is used for a single request and is not safe for concurrent use.
type Builder struct {
	details map[string]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{details: make(map[string]string)}
}

// WithDetail records a single key/value pair, replacing any existing value for the key.
func (b *Builder) WithDetail(key string, value string) *Builder {
	b.details[key] = value
	return b
}

// WithDetails records every pair in details, replacing existing values for duplicate keys.
func (b *Builder) WithDetails(details map[string]string) *Builder {
	maps.Copy(b.details, details)
	return b
}

// Build returns a copy of the accumulated details.
func (b *Builder) Build() domain.Info {
	return maps.Clone(b.details)
}
