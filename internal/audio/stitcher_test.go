package audio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
)

func constClip(value float64, samples, rate int) core.AudioClip {
	data := make([]float64, samples)
	for i := range data {
		data[i] = value
	}

	return core.AudioClip{Samples: data, SampleRate: rate}
}

func TestStitchEmptyInput(t *testing.T) {
	t.Parallel()

	s := audio.NewStitcher(audio.DefaultCrossfade, audio.DefaultJunctionMargin)

	out, err := s.Stitch(nil)
	require.NoError(t, err)
	assert.Empty(t, out.Samples)
}

func TestStitchRejectsMixedSampleRates(t *testing.T) {
	t.Parallel()

	s := audio.NewStitcher(audio.DefaultCrossfade, audio.DefaultJunctionMargin)

	_, err := s.Stitch([]core.AudioClip{
		constClip(0.5, 100, 16000),
		constClip(0.5, 100, 22050),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrSampleRateMismatch)
}

func TestStitchSingleClipIsUntouched(t *testing.T) {
	t.Parallel()

	s := audio.NewStitcher(audio.DefaultCrossfade, audio.DefaultJunctionMargin)

	clip := constClip(0.5, 300, 16000)

	out, err := s.Stitch([]core.AudioClip{clip})
	require.NoError(t, err)
	assert.Equal(t, clip.Samples, out.Samples)
	assert.Equal(t, 16000, out.SampleRate)
}

func TestStitchCrossfadesAtJoins(t *testing.T) {
	t.Parallel()

	// 20 ms at 1 kHz is a 20-sample overlap
	s := audio.NewStitcher(20*time.Millisecond, 0)

	out, err := s.Stitch([]core.AudioClip{
		constClip(0.5, 200, 1000),
		constClip(0.5, 150, 1000),
	})
	require.NoError(t, err)

	assert.Len(t, out.Samples, 200+150-20)

	// blending two equal signals must not introduce a level dip
	for i, sample := range out.Samples {
		assert.InDelta(t, 0.5, sample, 1e-9, "sample %d", i)
	}
}

func TestStitchTrimsJunctionSilenceToMargin(t *testing.T) {
	t.Parallel()

	s := audio.NewStitcher(0, 80*time.Millisecond)

	lead := constClip(0.5, 100, 1000)
	lead.Samples = append(lead.Samples, make([]float64, 200)...) // 200 ms of silence

	tail := constClip(0.5, 100, 1000)
	tail.Samples = append(make([]float64, 200), tail.Samples...)

	out, err := s.Stitch([]core.AudioClip{lead, tail})
	require.NoError(t, err)

	// each side keeps an 80-sample margin of its silence
	assert.Len(t, out.Samples, (100+80)+(80+100))
}

func TestStitchLeavesInputClipsIntact(t *testing.T) {
	t.Parallel()

	s := audio.NewStitcher(20*time.Millisecond, 0)

	first := constClip(0.5, 100, 1000)
	second := constClip(-0.5, 100, 1000)

	_, err := s.Stitch([]core.AudioClip{first, second})
	require.NoError(t, err)

	for _, sample := range first.Samples {
		assert.InDelta(t, 0.5, sample, 1e-9)
	}
}
