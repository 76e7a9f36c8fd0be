// Package gridpath provides grid-based A* shortest-path search with
// deterministic tie-breaking, directional cost shaping, and geometric
// path post-processing.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// Beyond textbook A*, the engine can penalize direction changes
// (avoid-staircase), reward sustained travel direction (momentum), and
// resolve equal-cost frontier ties against a directional preference
// table, re-running the search up to three times to pick the best
// resolution. The path toolkit (Backtrace, Interpolate, ExpandPath,
// CompressPath, SmoothenPath) is usable independently of the engine.
package gridpath
