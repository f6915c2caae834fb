// Package domain contains the entities shared across the polyglot API:
// course catalog entries, practice exercises, chat messages and translation
// history. Types here carry their own validation and stay free of transport
// and storage concerns.
package domain
