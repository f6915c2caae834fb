// Package openai implements generation.Completer and generation.Transcriber
// on top of any OpenAI-compatible HTTP API. The default configuration points
// at Groq, which serves Llama chat models and Whisper transcription behind
// the same protocol.
package openai
