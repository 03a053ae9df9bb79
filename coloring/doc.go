// Package coloring assigns channels to network nodes so that no two nodes
// joined by an active edge share one.
//
// WelshPowell visits nodes by descending active degree and gives each the
// smallest color its already-colored active neighbors leave free. The count
// it returns is an upper bound on the chromatic number, not the number
// itself. ReverseOrder colors greedily in reverse insertion order, and Best
// keeps whichever heuristic needs fewer colors.
//
// Only active edges constrain a coloring: a disabled node or a vulnerable
// edge imposes nothing, and every stored node still receives a color.
//
// Validate and AnalyzeEfficiency inspect any Coloring; MaximumIndependentSet
// returns nodes that may all share one channel; FrequencyBand names a color
// for display.
//
// Complexity: O(V log V + E) per heuristic.
package coloring
