// Package store provides SQLite-backed durable storage for the shelf inventory.
//
// The store owns a single table:
//
//	bluRays (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, binder INTEGER)
//
// and exposes four operations on it: Open (create-schema), Insert, SelectAll
// and DeleteByID. Every call goes to the database file; nothing is cached.
//
// # Errors
//
// Failures are reported with one of three sentinel kinds, wrapped with the
// failing operation for context:
//
//   - ErrStorageUnavailable: the file could not be opened or the schema
//     could not be applied. No further operation on the session is safe.
//   - ErrWrite: an insert or delete statement failed.
//   - ErrRead: a select statement failed.
//
// Use errors.Is to classify.
//
// # Database Configuration
//
//   - WAL mode: readers never block the single writer
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - one open connection: all access is serialised through it
//
// Each statement runs in its own implicit transaction, so a failed insert
// never leaves a partial row behind.
package store
