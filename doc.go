// Package progstore implements a small persistent store for named BASIC
// programs on top of an arbitrary flat key-value backend. Programs are
// addressed case-insensitively by a name carrying the .BAS extension, and
// each stored entry records its content together with a schema version and
// a last-modification time.
//
// Components:
//   - Backend: flat string-keyed store with get/set/delete and indexed key
//     enumeration (e.g. an in-memory map, a directory of files, Redis, SQLite).
//   - entry.Codec: (de)serializes the versioned Entry record (JSON by default).
//   - Clock: injected time source used to stamp writes.
//
// Keys:
//
//	endbasic-program:<NAME>.BAS  - one key per program, name upper-cased
//
// Older versions of the store wrote case-sensitive names. New scans the
// backend once at construction and renames any legacy-cased key to its
// canonical upper-cased form before serving requests; a store that cannot
// complete that migration refuses to construct.
package progstore
