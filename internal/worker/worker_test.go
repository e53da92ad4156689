// Package worker_test tests the NATS worker for the synthesis service.
package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/book-expert/events"
	"github.com/book-expert/logger"
	"github.com/google/uuid"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/prompt"
	"github.com/qazvoice/kaztts-service/internal/worker"
)

var errMockDownload = errors.New("mock download error")

// mockObjectStore is a mock implementation of the ObjectStore interface.
type mockObjectStore struct {
	blobs              map[string][]byte
	downloadShouldFail bool
	uploadedKey        string
	uploadedData       []byte
}

func (m *mockObjectStore) Download(_ context.Context, key string) ([]byte, error) {
	if m.downloadShouldFail {
		return nil, errMockDownload
	}

	data, ok := m.blobs[key]
	if !ok {
		return nil, errMockDownload
	}

	return data, nil
}

func (m *mockObjectStore) Upload(_ context.Context, key string, data []byte) error {
	m.uploadedKey = key
	m.uploadedData = data

	return nil
}

// mockSynthesizer records the request and returns a fixed result.
type mockSynthesizer struct {
	request core.SynthesisRequest
	fail    bool
}

func (m *mockSynthesizer) Synthesize(
	_ context.Context,
	req core.SynthesisRequest,
) (core.SynthesisResult, error) {
	m.request = req

	if m.fail {
		return core.SynthesisResult{}, core.ErrModelInference
	}

	return core.SynthesisResult{
		Clip:          core.AudioClip{Samples: make([]float64, 16000), SampleRate: 16000},
		OriginalText:  req.Text,
		ConvertedText: req.Text,
		SegmentCount:  1,
	}, nil
}

func createTestNatsClient(t *testing.T) *nats.Conn {
	t.Helper()

	opts := test.DefaultTestOptions
	opts.Port = -1 // Use a random port
	opts.JetStream = true
	server := test.RunServer(&opts)

	natsConnection, err := nats.Connect(server.ClientURL())
	if err != nil {
		t.Fatalf("Failed to connect to test NATS server: %v", err)
	}

	t.Cleanup(func() {
		server.Shutdown()
		natsConnection.Close()
	})

	return natsConnection
}

func setupWorker(t *testing.T, store *mockObjectStore, synth *mockSynthesizer) *nats.Conn {
	t.Helper()

	natsConnection := createTestNatsClient(t)

	testLogger, err := logger.New(t.TempDir(), "worker-test.log")
	require.NoError(t, err)
	t.Cleanup(func() { testLogger.Close() })

	w := worker.NewNatsWorker(
		natsConnection,
		"kaztts.synthesis.request",
		store,
		synth,
		prompt.NewProcessor(16000, time.Second, 30*time.Second),
		testLogger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		_ = w.Run(ctx)
	}()

	// give the subscription a moment to register
	time.Sleep(50 * time.Millisecond)

	return natsConnection
}

func newHeader() events.EventHeader {
	return events.EventHeader{
		Timestamp:  time.Now(),
		WorkflowID: uuid.NewString(),
		EventID:    uuid.NewString(),
		UserID:     "",
		TenantID:   "",
	}
}

func TestWorkerProcessesInlineTextEvent(t *testing.T) {
	t.Parallel()

	store := &mockObjectStore{blobs: map[string][]byte{}}
	synth := &mockSynthesizer{}
	natsConnection := setupWorker(t, store, synth)

	event := worker.SynthesisRequestedEvent{
		Header: newHeader(),
		Text:   "Сәлеметсіз бе!",
		Script: "cyrillic",
		Mode:   "direct",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg, err := natsConnection.Request("kaztts.synthesis.request", data, 5*time.Second)
	require.NoError(t, err)

	var reply worker.AudioCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Data, &reply))

	assert.Equal(t, event.Header.WorkflowID, reply.Header.WorkflowID)
	assert.NotEmpty(t, reply.AudioKey)
	assert.Equal(t, 1, reply.SegmentCount)
	assert.InDelta(t, 1.0, reply.DurationSeconds, 0.01)

	// the artifact under the reply key is a decodable WAV
	assert.Equal(t, store.uploadedKey, reply.AudioKey)

	decoded, err := audio.DecodeWAV(store.uploadedData)
	require.NoError(t, err)
	assert.Equal(t, 16000, decoded.SampleRate)

	assert.Equal(t, core.ModeDirect, synth.request.Mode)
	assert.Equal(t, core.ScriptCyrillic, synth.request.Script)
}

func TestWorkerResolvesTextAndPromptFromStore(t *testing.T) {
	t.Parallel()

	promptWAV, err := audio.EncodeWAV(core.AudioClip{
		Samples:    make([]float64, 16000*5),
		SampleRate: 16000,
	})
	require.NoError(t, err)

	store := &mockObjectStore{blobs: map[string][]byte{
		"request-text.txt": []byte("Бірінші сөйлем."),
		"voice-ref.wav":    promptWAV,
	}}
	synth := &mockSynthesizer{}
	natsConnection := setupWorker(t, store, synth)

	event := worker.SynthesisRequestedEvent{
		Header:           newHeader(),
		TextKey:          "request-text.txt",
		Script:           "arabic",
		Mode:             "segmented",
		PromptAudioKey:   "voice-ref.wav",
		PromptTranscript: "сәлем",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	_, err = natsConnection.Request("kaztts.synthesis.request", data, 5*time.Second)
	require.NoError(t, err)

	assert.Equal(t, "Бірінші сөйлем.", synth.request.Text)
	assert.Equal(t, core.ScriptToteZhazu, synth.request.Script)
	require.NotNil(t, synth.request.Prompt)
	assert.Equal(t, "сәлем", synth.request.Prompt.Transcript)
	assert.InDelta(t, 5.0, synth.request.Prompt.Duration().Seconds(), 0.05)
}

func TestWorkerIgnoresEventWithoutText(t *testing.T) {
	t.Parallel()

	store := &mockObjectStore{blobs: map[string][]byte{}}
	synth := &mockSynthesizer{}
	natsConnection := setupWorker(t, store, synth)

	event := worker.SynthesisRequestedEvent{
		Header: newHeader(),
		Script: "cyrillic",
		Mode:   "direct",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	// no reply is published for an invalid event
	_, err = natsConnection.Request("kaztts.synthesis.request", data, 300*time.Millisecond)
	require.Error(t, err)
	assert.Empty(t, store.uploadedKey)
}

func TestWorkerPublishesNoReplyOnSynthesisFailure(t *testing.T) {
	t.Parallel()

	store := &mockObjectStore{blobs: map[string][]byte{}}
	synth := &mockSynthesizer{fail: true}
	natsConnection := setupWorker(t, store, synth)

	event := worker.SynthesisRequestedEvent{
		Header: newHeader(),
		Text:   "Сәлем!",
		Script: "cyrillic",
		Mode:   "direct",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	_, err = natsConnection.Request("kaztts.synthesis.request", data, 300*time.Millisecond)
	require.Error(t, err)
	assert.Empty(t, store.uploadedKey)
}
