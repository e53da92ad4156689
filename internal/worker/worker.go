// Package worker provides a NATS worker that processes synthesis requests
// arriving as workflow events, mirroring the HTTP path for pipeline callers.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/prompt"
	"github.com/qazvoice/kaztts-service/internal/ttsutils"
)

const handleMessageTimeout = 10 * time.Minute

var (
	// ErrNoTextSource indicates the event carried neither inline text nor a
	// text object key.
	ErrNoTextSource = errors.New("event must carry text or text_key")
	// ErrAmbiguousTextSource indicates the event carried both text sources.
	ErrAmbiguousTextSource = errors.New("event must not carry both text and text_key")
	// ErrPromptFormatMissing indicates a prompt audio key without a usable
	// format hint.
	ErrPromptFormatMissing = errors.New("prompt_audio_key has no decodable audio extension")
)

// SynthesisRequestedEvent asks the worker to synthesize one text. Text is
// either inline or referenced by an object store key, never both. Optional
// prompt fields enable voice cloning.
type SynthesisRequestedEvent struct {
	Header events.EventHeader `json:"header"`

	Text    string `json:"text,omitempty"`
	TextKey string `json:"text_key,omitempty"`

	Script string `json:"script"`
	Mode   string `json:"mode"`

	PromptAudioKey   string `json:"prompt_audio_key,omitempty"`
	PromptTranscript string `json:"prompt_transcript,omitempty"`
}

// AudioCreatedEvent is the reply published after a successful synthesis.
type AudioCreatedEvent struct {
	Header events.EventHeader `json:"header"`

	AudioKey        string  `json:"audio_key"`
	DurationSeconds float64 `json:"duration_seconds"`
	SegmentCount    int     `json:"segment_count"`
	OriginalText    string  `json:"original_text"`
	ConvertedText   string  `json:"converted_text"`
}

// Synthesizer is the orchestrator surface the worker needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, req core.SynthesisRequest) (core.SynthesisResult, error)
}

// NatsWorker listens for synthesis request events on a NATS subject and
// processes them through the shared orchestrator.
type NatsWorker struct {
	natsConnection *nats.Conn
	subject        string
	store          core.ObjectStore
	synthesizer    Synthesizer
	prompts        *prompt.Processor
	log            *logger.Logger
}

// NewNatsWorker creates a new instance of a NATS worker.
func NewNatsWorker(
	natsConnection *nats.Conn,
	subject string,
	store core.ObjectStore,
	synthesizer Synthesizer,
	prompts *prompt.Processor,
	log *logger.Logger,
) *NatsWorker {
	return &NatsWorker{
		natsConnection: natsConnection,
		subject:        subject,
		store:          store,
		synthesizer:    synthesizer,
		prompts:        prompts,
		log:            log,
	}
}

// Run starts the worker and begins listening for messages. It blocks until
// the context is cancelled, then drains the subscription.
func (w *NatsWorker) Run(ctx context.Context) error {
	sub, err := w.natsConnection.Subscribe(w.subject, w.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subject %s: %w", w.subject, err)
	}

	<-ctx.Done()

	drainErr := sub.Drain()
	if drainErr != nil {
		return fmt.Errorf("failed to drain subscription: %w", drainErr)
	}

	return nil
}

func (w *NatsWorker) handleMessage(msg *nats.Msg) {
	ctx, cancel := context.WithTimeout(context.Background(), handleMessageTimeout)
	defer cancel()

	event, err := w.parseAndValidateEvent(msg)
	if err != nil {
		w.log.Error("Failed to parse and validate event: %v", err)

		return
	}

	reply, err := w.processSynthesisJob(ctx, event)
	if err != nil {
		w.log.Error("Failed to process synthesis job for workflow %s: %v",
			event.Header.WorkflowID, err)

		return
	}

	err = w.publishReplyEvent(msg, reply)
	if err != nil {
		w.log.Error("Failed to publish reply event for workflow %s: %v",
			event.Header.WorkflowID, err)
	}
}

// processSynthesisJob resolves the text and prompt, runs the orchestrator and
// uploads the stitched artifact.
func (w *NatsWorker) processSynthesisJob(
	ctx context.Context,
	event *SynthesisRequestedEvent,
) (*AudioCreatedEvent, error) {
	text, err := w.resolveText(ctx, event)
	if err != nil {
		return nil, err
	}

	voicePrompt, err := w.resolvePrompt(ctx, event)
	if err != nil {
		return nil, err
	}

	result, err := w.synthesizer.Synthesize(ctx, core.SynthesisRequest{
		Text:   text,
		Script: core.ParseScriptKind(event.Script),
		Mode:   core.ParseInferenceMode(event.Mode),
		Prompt: voicePrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis failed: %w", err)
	}

	wavData, err := audio.EncodeWAV(result.Clip)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audio artifact: %w", err)
	}

	audioKey := uuid.NewString() + ".wav"

	err = w.store.Upload(ctx, audioKey, wavData)
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio data for key '%s': %w", audioKey, err)
	}

	w.log.Info("Synthesized %s of audio for workflow %s (%s)",
		ttsutils.FormatDuration(result.Clip.Duration().Seconds()),
		event.Header.WorkflowID,
		ttsutils.FormatFileSize(int64(len(wavData))))

	return &AudioCreatedEvent{
		Header:          event.Header,
		AudioKey:        audioKey,
		DurationSeconds: result.Clip.Duration().Seconds(),
		SegmentCount:    result.SegmentCount,
		OriginalText:    result.OriginalText,
		ConvertedText:   result.ConvertedText,
	}, nil
}

func (w *NatsWorker) resolveText(
	ctx context.Context,
	event *SynthesisRequestedEvent,
) (string, error) {
	if event.TextKey == "" {
		return event.Text, nil
	}

	data, err := w.store.Download(ctx, event.TextKey)
	if err != nil {
		return "", fmt.Errorf(
			"failed to download text data for key '%s': %w", event.TextKey, err)
	}

	return string(data), nil
}

func (w *NatsWorker) resolvePrompt(
	ctx context.Context,
	event *SynthesisRequestedEvent,
) (*core.VoicePrompt, error) {
	if event.PromptAudioKey == "" {
		return nil, nil
	}

	format, ok := ttsutils.PromptFormat(event.PromptAudioKey)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrPromptFormatMissing, event.PromptAudioKey)
	}

	data, err := w.store.Download(ctx, event.PromptAudioKey)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to download prompt audio for key '%s': %w", event.PromptAudioKey, err)
	}

	voicePrompt, err := w.prompts.Build(data, format, event.PromptTranscript)
	if err != nil {
		return nil, fmt.Errorf("failed to build voice prompt: %w", err)
	}

	return voicePrompt, nil
}

// publishReplyEvent marshals and responds with the AudioCreatedEvent.
func (w *NatsWorker) publishReplyEvent(msg *nats.Msg, replyEvent *AudioCreatedEvent) error {
	replyData, err := json.Marshal(replyEvent)
	if err != nil {
		return fmt.Errorf("failed to marshal reply event: %w", err)
	}

	err = msg.Respond(replyData)
	if err != nil {
		return fmt.Errorf("failed to publish reply event: %w", err)
	}

	return nil
}

func (w *NatsWorker) parseAndValidateEvent(msg *nats.Msg) (*SynthesisRequestedEvent, error) {
	var event SynthesisRequestedEvent

	err := json.Unmarshal(msg.Data, &event)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Text == "" && event.TextKey == "" {
		return nil, ErrNoTextSource
	}

	if event.Text != "" && event.TextKey != "" {
		return nil, ErrAmbiguousTextSource
	}

	return &event, nil
}
