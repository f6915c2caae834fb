// Package gemini provides an implementation of generation.Completer that uses
// Google's Gemini API through the google.golang.org/genai client.
//
// This package is an infrastructure adapter: it translates the application's
// provider-neutral completion requests into GenerateContent calls and maps
// the API's failures onto the generation error taxonomy.
//
// Mapping details:
//
//   - The system prompt becomes the SystemInstruction; assistant turns are
//     sent with the "model" role.
//   - A JSON hint sets ResponseMIMEType to application/json.
//   - HTTP 429 becomes *generation.RateLimitError, other API failures wrap
//     generation.ErrUpstream.
//   - Responses without candidates, or blocked by safety filters, wrap
//     generation.ErrInvalidResponse and are never retried.
package gemini
