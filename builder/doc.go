// SPDX-License-Identifier: MIT
// Package builder assembles test and benchmark networks from composable,
// deterministic constructors.
//
// A Constructor mutates a *core.Graph using a resolved builderConfig.
// BuildGraph creates a graph, resolves options and runs constructors in
// order, so several topologies and fault overlays can be stacked:
//
//	g, err := builder.BuildGraph(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
//		builder.Grid(4, 4),
//		builder.Vulnerable(0.2),
//	)
//
// Components:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Fault overlays: Vulnerable marks a random share of edges vulnerable,
//     Disable switches named nodes off.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",...), SymbolIDFn
//     ("A".."Z"), ExcelColumnIDFn ("A".."Z","AA",...), SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn,
//     ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order produce identical graphs.
//   - Constructors return sentinel errors wrapped with the method name and
//     never panic; option constructors panic on invalid arguments.
//   - Weights are always positive, as core requires.
package builder
