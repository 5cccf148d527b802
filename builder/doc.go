// Package builder produces deterministic synthetic valve networks for tests,
// benchmarks and the `valvenet gen` command.
//
// The package offers the following key components:
//
//   - BuildValves:        one orchestrator; runs constructors in order over a
//     shared sketch and materializes []valve.Valve.
//   - Constructors:       Path, Cycle, Star, Grid, Complete, RandomSparse.
//   - Configuration:      BuilderOption (WithSeed, WithRand, WithIDScheme,
//     WithFlowFn) resolved into an immutable builderConfig.
//   - Vertex-ID schemes:  PuzzleIDFn ("AA","AB",…), DecimalIDFn, PrefixIDFn.
//   - Flow distributions: ConstantFlowFn, UniformFlowFn.
//
// Guarantees:
//
//   - Vertex index 0 is the start valve and always has flow rate 0; with the
//     default ID scheme it is named "AA", matching network.DefaultStart.
//   - Tunnels are symmetric, loop-free and deduplicated, so the output
//     round-trips through valve.Parse.
//   - Same options, seed and constructor order ⇒ identical output.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
