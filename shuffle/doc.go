// Package shuffle centralizes deterministic random generation for every
// partitioning and folding operation in folds.
//
// Goals:
//   - Determinism: same seed ⇒ identical permutations across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere in the library.
//   - Safety: no panics, no logging; a single sentinel error (Perm on
//     negative length).
//
// Seed policy:
//
//	seed == 0 means DefaultSeed, so even "unseeded" runs reproduce. Tests
//	that once flaked on global randomness become table-stakes assertions.
//
// Concurrency:
//
//	math/rand.Rand is not goroutine-safe. Do not share a *rand.Rand across
//	goroutines; use Derive to mint decorrelated per-worker seeds instead.
package shuffle
