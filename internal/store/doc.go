// Package store provides the record store: the sole owner of the terminus
// Document and the only gateway to durable storage.
//
// The store keeps the whole Document in memory and writes it back, as one
// blob under one key, after every mutation.
//
// # Guarantees
//
// Atomic save-after-mutate:
//   - Every Add, Delete and Set builds the next Document on a copy
//   - The copy becomes current only after the backend write succeeds
//   - A failed write leaves the in-memory Document untouched (rollback)
//
// Identity:
//   - Record IDs are assigned by the store, never by the caller
//   - IDs are millisecond timestamps bumped to stay strictly increasing,
//     so records created in the same millisecond still get distinct IDs
//   - CreatedAt is stamped once and never changes
//
// Ownership:
//   - Getters return copies; callers cannot mutate stored state
//
// # Unreadable data
//
// If the saved blob cannot be decoded, the store copies it to
// "<key>.corrupt" and starts from an empty Document. WithStrictLoad turns
// this into a CORRUPT_STATE error instead.
package store
