// Package harness runs sort scenarios as executable contract tests.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: selection_basic
//	description: "Selection sort swaps only when the minimum moves"
//	algorithm: selection
//	input: [5, 1, 4, 2, 8]
//	expect:
//	  sorted: [1, 2, 4, 5, 8]
//	  compares: 10
//	  swaps: 2
//	assertions:
//	  - type: trace_contains
//	    event: {type: SWAP, i: 1, j: 3}
//	  - type: trace_order
//	    events:
//	      - {type: SWAP, i: 0, j: 1}
//	      - {type: SWAP, i: 1, j: 3}
//	  - type: trace_count
//	    kind: SET
//	    count: 0
//
// Files are decoded strictly (unknown keys are errors) and then checked
// against an embedded CUE schema, so shape errors are reported before any
// sort runs.
//
// # Assertion Types
//
//   - trace_contains: the event appears somewhere in the trace
//   - trace_order: the events appear in this order, not necessarily adjacent
//   - trace_count: exactly count events of kind
//
// # Deterministic Execution
//
// Each scenario runs in a fresh in-memory run log with a fixed run id, and
// with replay verification enabled. The harness also reloads the recorded
// run and requires the stored steps to match the returned ones.
//
// Golden traces are canonical JSON of {algorithm, scenario_name, steps},
// stored as testdata/golden/<name>.golden.
package harness
