// Package sqlite implements the store interfaces on an embedded SQLite
// database (modernc.org/sqlite, no cgo). Schema changes are goose migrations
// compiled into the binary.
package sqlite
