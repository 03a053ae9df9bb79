// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/netres/core"
)

// Method names used as error context.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodVulnerable   = "Vulnerable"
	MethodDisable      = "Disable"
)

// Size minimums.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

func tooFew(method string, n, minimum int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minimum, ErrTooFewVertices)
}

// Path builds P_n: 0—1—…—(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return tooFew(MethodPath, n, MinPathNodes)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: a path closed by (n-1)—0. Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return tooFew(MethodCycle, n, MinCycleNodes)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds CenterVertexID joined to n-1 leaves idFn(0..n-2). Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return tooFew(MethodStar, n, MinStarNodes)
		}
		if err := g.AddNode(CenterVertexID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", MethodStar, CenterVertexID, err)
		}
		if err := addVertices(g, cfg, MethodStar, n-1); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, MethodStar, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds a rim C_{n-1} plus spokes from CenterVertexID. Requires n ≥ 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return tooFew(MethodWheel, n, MinWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", MethodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n with edges emitted in (i, j>i) order. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return tooFew(MethodComplete, n, MinCompleteNodes)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GridID names the grid cell at row r, column c.
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}

// Grid builds a rows×cols 4-neighborhood lattice with IDs GridID(r, c) in
// row-major order; each cell links right, then down. The ID scheme option
// is ignored. Requires rows, cols ≥ 1.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: %dx%d below %d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddNode(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode: %w", MethodGrid, err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: every pair (i, j>i) is
// linked with probability p. p of 0 or 1 needs no RNG; anything in between
// requires WithSeed or WithRand.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return tooFew(MethodRandomSparse, n, 1)
		}
		if err := checkProbability(MethodRandomSparse, p, cfg); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if !draw(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// checkProbability validates p and the RNG it needs.
func checkProbability(method string, p float64, cfg builderConfig) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", method, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// draw reports a Bernoulli(p) outcome, consuming no randomness at 0 or 1.
func draw(cfg builderConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
