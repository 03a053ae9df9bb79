package flow

// Search selects how each augmenting path is found.
type Search int

const (
	// SearchDFS explores residual arcs depth-first in adjacency order
	// (Ford–Fulkerson). Which routes are found first depends on that order.
	SearchDFS Search = iota

	// SearchBFS finds the fewest-arc augmenting path each round
	// (Edmonds–Karp), so shorter routes are preferred.
	SearchBFS
)

// Options configures DisjointPaths.
//   - Search: augmenting-path strategy (SearchDFS by default).
type Options struct {
	Search Search
}

// Option configures Options.
type Option func(*Options)

// WithSearch selects the augmenting-path strategy.
func WithSearch(s Search) Option {
	return func(o *Options) {
		o.Search = s
	}
}

// DefaultOptions returns the depth-first configuration.
func DefaultOptions() Options {
	return Options{Search: SearchDFS}
}
