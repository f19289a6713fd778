// Package journal records found words to append-only sinks.
//
// Every detected word produces exactly one Entry. Sinks never rewrite
// earlier entries; the file sink appends timestamped lines through the
// standard logger and the SQLite sink inserts one row per entry.
package journal
