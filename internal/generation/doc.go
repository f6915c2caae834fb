// Package generation provides interfaces and helpers for interacting with
// external LLM services. It abstracts the details of a specific vendor API
// (OpenAI-compatible endpoints, Gemini, Anthropic) behind the Completer and
// Transcriber interfaces, and offers decorators for retry, throttling and
// logging plus helpers that turn model text into back-filled JSON objects.
package generation
