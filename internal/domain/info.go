package domain

// Info is the merged metadata document produced by all registered info contributors.
type Info map[string]string
