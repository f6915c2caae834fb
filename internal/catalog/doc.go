// Package catalog holds the read-only lookup tables of the API: supported
// languages, the per-language course catalog, and the canned lessons,
// practice sets and chat replies served when generation fails.
//
// Everything in this package is static data; callers may share the returned
// values but must not modify them.
package catalog
