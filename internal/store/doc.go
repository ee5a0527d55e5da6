// Package store provides the SQLite-backed run log.
//
// Every completed run is appended as one row in runs plus one row per event
// in steps. Rows are never updated; writing a run id that already exists is
// a no-op, so a run can be re-recorded safely.
//
// # Ordering
//
//   - runs are ordered by seq, a logical counter assigned by the engine
//   - steps are ordered by step, the event position within its run
//   - ties (never expected) fall back to id COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Arrays are stored as canonical JSON text (see trace.MarshalCanonical) so
// that the stored bytes are stable across writers.
package store
