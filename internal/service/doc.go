// Package service contains the application use cases of the polyglot API.
// Each service turns a validated request into a prompt, runs it through a
// generation.Completer, and shapes the model's JSON into a response,
// substituting canned content from the catalog whenever the model's output
// is unusable.
//
// Services depend on interfaces (generation.Completer, store.HistoryStore)
// and never on a concrete provider or database.
package service
