// Package builder provides deterministic, functional-options constructors
// for core.Graph fixtures: the spaces used to exercise and benchmark the
// search engine.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator. Creates a
//     core.Graph, resolves builderConfig and applies constructors in order.
//   - Configuration: BuilderOption (WithSeed, WithRand, WithIDScheme,
//     WithSymbNumb).
//   - Topologies: Path, Cycle, Star, Complete, BinaryTree, RandomSparse.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     graphs, edge IDs and adjacency order.
//   - Fast-fail on meaningless option arguments via panics in option
//     constructors; constructors themselves return sentinel errors wrapped
//     with the constructor name and never panic.
package builder
