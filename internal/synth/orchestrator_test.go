package synth_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/book-expert/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/script"
	"github.com/qazvoice/kaztts-service/internal/synth"
)

// mockModel implements core.SpeechModel and records every call, including a
// concurrency gauge that proves the model is never entered concurrently.
type mockModel struct {
	mu      sync.Mutex
	calls   []string
	prompts []*core.VoicePrompt

	active    int32
	maxActive int32

	failAt int // 1-based call index to fail at, 0 = never
	delay  time.Duration

	sampleRate     int
	samplesPerCall int
}

func newMockModel() *mockModel {
	return &mockModel{
		mu:             sync.Mutex{},
		calls:          nil,
		prompts:        nil,
		active:         0,
		maxActive:      0,
		failAt:         0,
		delay:          0,
		sampleRate:     16000,
		samplesPerCall: 1600,
	}
}

func (m *mockModel) Synthesize(
	ctx context.Context,
	text string,
	prompt *core.VoicePrompt,
) (core.AudioClip, error) {
	current := atomic.AddInt32(&m.active, 1)
	defer atomic.AddInt32(&m.active, -1)

	for {
		observed := atomic.LoadInt32(&m.maxActive)
		if current <= observed || atomic.CompareAndSwapInt32(&m.maxActive, observed, current) {
			break
		}
	}

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return core.AudioClip{}, ctx.Err()
		}
	}

	m.mu.Lock()
	m.calls = append(m.calls, text)
	m.prompts = append(m.prompts, prompt)
	callNumber := len(m.calls)
	m.mu.Unlock()

	if m.failAt != 0 && callNumber == m.failAt {
		return core.AudioClip{}, core.ErrModelInference
	}

	samples := make([]float64, m.samplesPerCall)
	for i := range samples {
		samples[i] = 0.25
	}

	return core.AudioClip{Samples: samples, SampleRate: m.sampleRate}, nil
}

func (m *mockModel) Healthy(_ context.Context) error {
	return nil
}

func (m *mockModel) recordedCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.calls...)
}

func newTestOrchestrator(t *testing.T, model core.SpeechModel, opts synth.Options) *synth.Orchestrator {
	t.Helper()

	log, err := logger.New(t.TempDir(), "orchestrator-test.log")
	require.NoError(t, err)
	t.Cleanup(func() { log.Close() })

	return synth.NewOrchestrator(
		model,
		script.NewTables(),
		audio.NewStitcher(0, 0),
		log,
		opts,
	)
}

func TestSynthesizeDirectModeSingleCall(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{})

	result, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "Сәлеметсіз бе!",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeDirect,
		Prompt: nil,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Сәлеметсіз бе!"}, model.recordedCalls())
	assert.Equal(t, "Сәлеметсіз бе!", result.OriginalText)
	assert.Equal(t, result.OriginalText, result.ConvertedText)
	assert.Equal(t, 1, result.SegmentCount)
	assert.NotEmpty(t, result.Clip.Samples)
}

func TestSynthesizeSegmentedModeOrderedCalls(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{})

	result, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "Бірінші сөйлем. Екінші сөйлем. Үшінші сөйлем.",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeSegmented,
		Prompt: nil,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Бірінші сөйлем.",
		"Екінші сөйлем.",
		"Үшінші сөйлем.",
	}, model.recordedCalls())
	assert.Equal(t, 3, result.SegmentCount)

	// zero-crossfade stitcher: output length is the plain sum
	assert.Len(t, result.Clip.Samples, 3*model.samplesPerCall)
}

func TestSynthesizeConvertsScriptBeforeModel(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{})

	result, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "сәлем",
		Script: core.ScriptToteZhazu,
		Mode:   core.ModeDirect,
		Prompt: nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "сәлем", result.OriginalText)
	assert.Equal(t, "سالەم", result.ConvertedText)
	assert.Equal(t, []string{"سالەم"}, model.recordedCalls())
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{})

	_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "   \n ",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeSegmented,
		Prompt: nil,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEmptyText)
	assert.Empty(t, model.recordedCalls())
}

func TestSynthesizeRejectsOversizedDirectText(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{DirectModeCeiling: 10})

	_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "бұл мәтін тым ұзын болып кетті",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeDirect,
		Prompt: nil,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrTextTooLong)
	assert.Empty(t, model.recordedCalls())
}

func TestSynthesizeAbortsOnModelFailure(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	model.failAt = 2

	o := newTestOrchestrator(t, model, synth.Options{})

	_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "Бірінші сөйлем. Екінші сөйлем. Үшінші сөйлем.",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeSegmented,
		Prompt: nil,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrModelInference)

	// the third segment is never attempted
	assert.Len(t, model.recordedCalls(), 2)
}

func TestSynthesizeTimesOut(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	model.delay = 200 * time.Millisecond

	o := newTestOrchestrator(t, model, synth.Options{RequestTimeout: 30 * time.Millisecond})

	_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "Сәлем!",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeDirect,
		Prompt: nil,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrRequestTimeout)
}

func TestSynthesizeReusesPromptAcrossSegments(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	o := newTestOrchestrator(t, model, synth.Options{})

	prompt := &core.VoicePrompt{
		Samples:    make([]float64, 16000*5),
		SampleRate: 16000,
		Transcript: "сәлем",
	}

	_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
		Text:   "Бірінші сөйлем. Екінші сөйлем.",
		Script: core.ScriptCyrillic,
		Mode:   core.ModeSegmented,
		Prompt: prompt,
	})
	require.NoError(t, err)

	require.Len(t, model.prompts, 2)
	for _, got := range model.prompts {
		assert.Same(t, prompt, got)
	}
}

func TestSynthesizeNeverEntersModelConcurrently(t *testing.T) {
	t.Parallel()

	model := newMockModel()
	model.delay = 2 * time.Millisecond

	o := newTestOrchestrator(t, model, synth.Options{})

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := o.Synthesize(context.Background(), core.SynthesisRequest{
				Text:   "Бірінші сөйлем. Екінші сөйлем. Үшінші сөйлем.",
				Script: core.ScriptCyrillic,
				Mode:   core.ModeSegmented,
				Prompt: nil,
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&model.maxActive))
	assert.Len(t, model.recordedCalls(), 8*3)
}
