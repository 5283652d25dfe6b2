// Package craps drives a remote, stateful craps-simulation engine over HTTP.
//
// # Reading Guide
//
// Start with these three files to understand the orchestration core:
//   - session.go: one session end-to-end (start → place bets → roll → end) and its
//     abort/error-aggregation policy
//   - mapping.go: translation of a declarative BetSpec into a validated engine Action
//   - batch.go: sequential seed sweeps and aggregate statistics
//
// # Architecture
//
// The package separates the orchestrators from their static collaborators:
//   - catalog.go / registry.go: immutable bet catalog and verb registry, loaded once
//     and passed by reference (compiled-in defaults, fixture tables in tests)
//   - table.go: unit conversion and table legalization behind the Table interface
//   - client.go / probe.go: the JSON-over-HTTP engine client and the ordered
//     response-envelope extraction rules
//   - journal.go / summary.go: the per-roll journal and the derived run/batch summaries
//
// Strategy documents are loaded from YAML by the craps/strategy sub-package.
//
// # Error Model
//
// Fatal failures unwind as *StageError values tagged with the stage at which they
// occurred (config, preflight, start, apply_action, roll) plus any upstream HTTP
// status and body. Engine-reported errors inside 2xx responses are accumulated into
// the run's error log and escalate to an abort only under strict mode. Per-bet
// mapping failures are skipped, never fatal; an unknown catalog key is the
// distinguished *UnknownBetError.
package craps
