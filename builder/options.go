// SPDX-License-Identifier: MIT
package builder

import "math/rand"

// builderConfig is the resolved, immutable input of every Constructor.
type builderConfig struct {
	// idFn maps a vertex index to its ID.
	idFn IDFn
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is set.
	rng *rand.Rand
	// weightFn draws one edge weight.
	weightFn WeightFn
}

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over decimal IDs, unit weights and no RNG.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex-ID function. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand shares r with every stochastic constructor. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge-weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}
