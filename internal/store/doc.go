// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage from the services, so the
// translation history can live in SQLite in production and in a fake in
// tests.
package store
