package core

import "context"

// SpeechModel is the external synthesis capability. The process holds exactly
// one shared instance; callers must not invoke it concurrently (the
// orchestrator serializes access).
type SpeechModel interface {
	// Synthesize renders one segment of text, optionally conditioned on a
	// voice prompt, and returns the resulting clip.
	Synthesize(ctx context.Context, text string, prompt *VoicePrompt) (AudioClip, error)
	// Healthy reports whether the model backend is reachable.
	Healthy(ctx context.Context) error
}

// ObjectStore is a key-value blob store for request inputs and generated
// audio artifacts.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}
