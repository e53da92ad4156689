package prompt

import (
	"fmt"
	"time"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
)

// Defaults for prompt validation. Below the minimum the model cannot lock
// onto the speaker's timbre; above the maximum the extra audio only slows
// inference down without improving the clone.
const (
	DefaultTargetSampleRate = 16000
	DefaultMinDuration      = 3 * time.Second
	DefaultMaxDuration      = 30 * time.Second
)

const (
	errFmtTooShort = "%w: got %.1fs, need at least %.1fs"
	errFmtTooLong  = "%w: got %.1fs, limit is %.1fs"
)

// Processor normalizes reference audio into model-ready voice prompts.
type Processor struct {
	targetRate  int
	minDuration time.Duration
	maxDuration time.Duration
}

// NewProcessor creates a prompt processor. Non-positive arguments fall back
// to the package defaults.
func NewProcessor(targetRate int, minDuration, maxDuration time.Duration) *Processor {
	if targetRate <= 0 {
		targetRate = DefaultTargetSampleRate
	}

	if minDuration <= 0 {
		minDuration = DefaultMinDuration
	}

	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}

	return &Processor{
		targetRate:  targetRate,
		minDuration: minDuration,
		maxDuration: maxDuration,
	}
}

// Build decodes reference audio, downmixes it to mono, resamples it to the
// model rate and validates its duration. The transcript is carried through
// verbatim; transcription, when wanted, is the caller's concern.
func (p *Processor) Build(data []byte, format, transcript string) (*core.VoicePrompt, error) {
	clip, err := decodeReference(data, format)
	if err != nil {
		return nil, err
	}

	clip.Samples = audio.Resample(clip.Samples, clip.SampleRate, p.targetRate)
	clip.SampleRate = p.targetRate

	duration := clip.Duration()
	if duration < p.minDuration {
		return nil, fmt.Errorf(errFmtTooShort,
			core.ErrPromptTooShort, duration.Seconds(), p.minDuration.Seconds())
	}

	if duration > p.maxDuration {
		return nil, fmt.Errorf(errFmtTooLong,
			core.ErrPromptTooLong, duration.Seconds(), p.maxDuration.Seconds())
	}

	return &core.VoicePrompt{
		Samples:    clip.Samples,
		SampleRate: clip.SampleRate,
		Transcript: transcript,
	}, nil
}
