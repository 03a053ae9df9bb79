// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/netres/core"
)

// Vulnerable marks each logical edge of g vulnerable with probability p,
// visiting edges in core.Graph.Edges order. Rules for p match RandomSparse.
func Vulnerable(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := checkProbability(MethodVulnerable, p, cfg); err != nil {
			return err
		}
		for _, e := range g.Edges() {
			if draw(cfg, p) {
				g.MarkVulnerable(e.From, e.To)
			}
		}

		return nil
	}
}

// Disable switches the named vertices off. Every ID must already exist.
func Disable(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if !g.HasNode(id) {
				return fmt.Errorf("%s: %q: %w", MethodDisable, id, ErrUnknownVertex)
			}
			g.Disable(id)
		}

		return nil
	}
}
