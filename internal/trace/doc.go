// Package trace defines the step events emitted by instrumented sorts.
//
// An Event is a sealed sum type with one concrete value type per tag:
// Compare, Swap, Set and Done. A struct never carries the fields of another
// tag, so a real zero index is never confused with an absent one.
//
// This package imports nothing internal. Every other internal package builds
// on it:
//   - observe appends Events through the Collector
//   - engine verifies runs with Replay and Validate
//   - store persists Events one row per step
//   - server and cli encode Events in their wire form
//
// Key constraints:
//   - Events are immutable values
//   - Sequence order is meaningful; replaying SWAP and SET in order on a copy
//     of the initial array reproduces the sorted array
//   - A finished sequence ends in exactly one DONE
package trace
