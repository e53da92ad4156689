package prompt

import (
	"bytes"
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// transcriptionLanguage hints the recognizer toward Kazakh.
const transcriptionLanguage = "kk"

const errFmtTranscription = "transcribe prompt audio: %w"

// Transcriber produces a transcript for a reference clip when the caller did
// not supply one. It is optional machinery: a synthesis request with an
// explicit transcript never touches it, and callers are expected to treat a
// transcription failure as a degraded prompt, not a fatal error.
type Transcriber struct {
	client *openai.Client
}

// NewTranscriber creates a Whisper-backed transcriber. An empty baseURL uses
// the default OpenAI endpoint, which lets a local Whisper-compatible server
// stand in during development.
func NewTranscriber(apiKey, baseURL string) *Transcriber {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Transcriber{client: openai.NewClientWithConfig(config)}
}

// Transcribe recognizes the speech in a WAV byte stream.
func (t *Transcriber) Transcribe(ctx context.Context, wavData []byte) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(wavData),
		FilePath: "prompt.wav",
		Language: transcriptionLanguage,
	})
	if err != nil {
		return "", fmt.Errorf(errFmtTranscription, err)
	}

	return resp.Text, nil
}
