// Package store persists phrases as a single JSON array stored under one
// key of a key-value blob. Every write loads the whole list, modifies it
// and writes it back; the last writer wins.
//
// Blob backends are swappable: an in-memory map for tests, one JSON file
// per key in a directory, or a key-value table in an SQLite database.
package store
