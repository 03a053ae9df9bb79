package coloring

import (
	"fmt"
	"maps"
	"slices"
)

// Heuristic names reported by Best.
const (
	HeuristicWelshPowell  = "welsh-powell"
	HeuristicReverseOrder = "reverse-order"
)

// Coloring maps node ID to color index (0, 1, 2, ...).
type Coloring map[string]int

// Colors returns the chromatic count of c: highest index + 1, or 0 when empty.
func (c Coloring) Colors() int {
	if len(c) == 0 {
		return 0
	}

	return slices.Max(slices.Collect(maps.Values(c))) + 1
}

// Distinct returns how many different indices c uses.
func (c Coloring) Distinct() int {
	seen := make(map[int]struct{}, len(c))
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// Violation is an active edge whose endpoints share Color.
type Violation struct {
	From, To string
	Color    int
}

// Efficiency summarizes a coloring against degree bounds.
type Efficiency struct {
	// ChromaticNumber is the highest color index + 1.
	ChromaticNumber int
	// ColorsUsed counts distinct indices.
	ColorsUsed int
	// AverageDegree and MaxDegree are taken over active degrees of all nodes.
	AverageDegree float64
	MaxDegree     int
	// TheoreticalMinimum is MaxDegree clamped to at least 1.
	TheoreticalMinimum int
	// Efficiency is TheoreticalMinimum / ChromaticNumber × 100.
	Efficiency float64
}

// Result is one heuristic's outcome.
type Result struct {
	Heuristic string
	Coloring  Coloring
	Colors    int
}

// namedBands lists the first five channels.
var namedBands = []string{
	"Band A (2.4 GHz)",
	"Band B (5 GHz)",
	"Band C (6 GHz)",
	"Band D (28 GHz)",
	"Band E (39 GHz)",
}

// FrequencyBand names the channel of color. Colors past the named bands
// continue the letter sequence at color×100 MHz. Negative colors are
// "unassigned".
func FrequencyBand(color int) string {
	switch {
	case color < 0:
		return "unassigned"
	case color < len(namedBands):
		return namedBands[color]
	default:
		return fmt.Sprintf("Band %c (%d MHz)", rune('A'+color), color*100)
	}
}
