package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/polyglot-api/internal/generation"
	openai "github.com/sashabaranov/go-openai"
)

// Transcribe uploads the audio and returns the recognised text, trimmed.
func (c *Client) Transcribe(ctx context.Context, req generation.TranscriptionRequest) (string, error) {
	if req.Audio == nil {
		return "", fmt.Errorf("%w: no audio supplied", generation.ErrInvalidResponse)
	}

	filename := req.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.model,
		Reader:   req.Audio,
		FilePath: filename,
		Language: req.Language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", mapError(err)
	}
	return strings.TrimSpace(resp.Text), nil
}
