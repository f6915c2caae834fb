package generation

import (
	"context"
	"io"
)

// Completer is the boundary between the application core and a hosted
// chat-completion API.
type Completer interface {
	// Complete sends the request and returns the first completion choice.
	// Implementations translate vendor errors into the errors in errors.go.
	Complete(ctx context.Context, req Request) (*Completion, error)

	// Model returns the model identifier requests are sent to.
	Model() string
}

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (string, error)
}

// Role is the sender of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to the model.
type Message struct {
	Role    Role
	Content string
}

// Request describes a single completion call.
type Request struct {
	// System is the system prompt.
	System string

	Messages []Message

	// MaxTokens bounds the length of the completion.
	MaxTokens int

	Temperature float64

	// JSON asks the provider to constrain output to a JSON object where the
	// vendor supports it. The content is still validated by the caller.
	JSON bool
}

// Completion is the text of the first choice plus bookkeeping.
type Completion struct {
	Content string
	Model   string
	Usage   Usage
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// TranscriptionRequest carries an audio upload to a Transcriber.
type TranscriptionRequest struct {
	Audio io.Reader
	// Filename is passed through to the API, which infers the audio format
	// from its extension.
	Filename string
	// Language is an ISO-639-1 hint; empty lets the model detect it.
	Language string
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}
