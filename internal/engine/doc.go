// Package engine executes sort runs: it resolves an algorithm from the
// registry, sorts a private copy of the caller's array while a collector
// records every reported operation, and returns the finalized trace.
//
// Run Flow:
//  1. Context check (a cancelled caller never starts a sort)
//  2. Size cap (ErrInputTooLarge)
//  3. Algorithm lookup (ErrUnknownAlgorithm)
//  4. Copy input, attach collector and optional tap observer
//  5. Sort, finalize, optionally verify by replay
//  6. Stamp id and seq, optionally append to the run log
//
// Every validation error is returned before the sort touches any data, so a
// failed run never yields partial steps.
//
// Runs are stamped with a monotonic seq from Clock. When a store is attached,
// the clock resumes from the log's highest seq so ordering survives restarts.
package engine
