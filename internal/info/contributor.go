package info

import (
	"fmt"
	"maps"
	"runtime"
	"slices"

	"github.com/jvr-guru/actuatord/internal/domain"
)

const (
	// JVRKey is the key appended by JVRContributor.
	JVRKey = "JVR"

	// JVRValue is the value appended by JVRContributor.
	JVRValue = "just a example of InfoContributoer"
)

var (
	_ Contributor = JVRContributor{}
	_ Contributor = (*StaticContributor)(nil)
	_ Contributor = (*BuildContributor)(nil)
)

// Contributor adds details to an info document.
type Contributor interface {
	Contribute(b *Builder)
}

// ContributorFunc adapts a function to a Contributor.
type ContributorFunc func(b *Builder)

// Contribute implements Contributor.
func (f ContributorFunc) Contribute(b *Builder) {
	f(b)
}

// JVRContributor appends a single fixed detail.
type JVRContributor struct{}

// Contribute implements Contributor.
func (JVRContributor) Contribute(b *Builder) {
	b.WithDetail(JVRKey, JVRValue)
}

// StaticContributor appends a fixed set of details, usually taken from configuration.
type StaticContributor struct {
	details map[string]string
}

// NewStaticContributor creates a StaticContributor which appends a copy of details.
func NewStaticContributor(details map[string]string) *StaticContributor {
	return &StaticContributor{details: maps.Clone(details)}
}

// Contribute implements Contributor.
func (s *StaticContributor) Contribute(b *Builder) {
	b.WithDetails(s.details)
}

// BuildContributor appends details describing the running binary.
type BuildContributor struct {
	version string
}

// NewBuildContributor creates a BuildContributor reporting the given version.
func NewBuildContributor(version string) *BuildContributor {
	return &BuildContributor{version: version}
}

// Contribute implements Contributor.
func (c *BuildContributor) Contribute(b *Builder) {
	b.WithDetail("build.version", c.version)
	b.WithDetail("build.goVersion", runtime.Version())
}

// Aggregator builds info documents from an ordered list of contributors.
// Later contributors overwrite keys written by earlier ones.
type Aggregator struct {
	contributors []Contributor
}

// NewAggregator creates an Aggregator over the given contributors.
func NewAggregator(contributors ...Contributor) (*Aggregator, error) {
	for i, c := range contributors {
		if c == nil {
			return nil, fmt.Errorf("info contributor %d cannot be nil", i)
		}
	}

	return &Aggregator{contributors: slices.Clone(contributors)}, nil
}

// Info builds a fresh info document by running every contributor against a new Builder.
func (a *Aggregator) Info() domain.Info {
	b := NewBuilder()
	for _, c := range a.contributors {
		c.Contribute(b)
	}
	return b.Build()
}
