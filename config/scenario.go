package config

import (
	"fmt"

	"github.com/katalvlaran/netres/core"
)

// Scenario describes a network and its initial failure state.
//
//	scenario:
//	  nodes: [A, B, C]
//	  edges:
//	    - {from: A, to: B, weight: 4}
//	  vulnerable:
//	    - {from: A, to: B}
//	  disabled: [C]
//	  seeds: [B]
type Scenario struct {
	// Nodes lists isolated or ordering-relevant nodes; edge endpoints are
	// created automatically.
	Nodes []string `yaml:"nodes" validate:"dive,required"`
	Edges []Edge   `yaml:"edges" validate:"dive"`
	// Vulnerable edges start flagged.
	Vulnerable []Link `yaml:"vulnerable" validate:"dive"`
	// Disabled nodes start failed.
	Disabled []string `yaml:"disabled" validate:"dive,required"`
	// Seeds are the initial failures of a cascade run.
	Seeds []string `yaml:"seeds" validate:"dive,required"`
}

// Edge is one weighted link.
type Edge struct {
	From   string  `yaml:"from" validate:"required"`
	To     string  `yaml:"to" validate:"required,nefield=From"`
	Weight float64 `yaml:"weight" validate:"gt=0"`
}

// Link names an edge without a weight.
type Link struct {
	From string `yaml:"from" validate:"required"`
	To   string `yaml:"to" validate:"required"`
}

// Build creates the graph: nodes first (in listed order), then edges, then
// the vulnerable and disabled flags. Flags that name unknown nodes fail with
// ErrUnknownNode.
func (s Scenario) Build() (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range s.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("config: node %q: %w", id, err)
		}
	}
	for i, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("config: edge #%d %s-%s: %w", i, e.From, e.To, err)
		}
	}
	for _, l := range s.Vulnerable {
		if !g.HasEdge(l.From, l.To) {
			return nil, fmt.Errorf("%w: vulnerable edge %s-%s", ErrUnknownNode, l.From, l.To)
		}
		g.MarkVulnerable(l.From, l.To)
	}
	for _, id := range s.Disabled {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: disabled %q", ErrUnknownNode, id)
		}
		g.Disable(id)
	}
	for _, id := range s.Seeds {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: seed %q", ErrUnknownNode, id)
		}
	}

	return g, nil
}
