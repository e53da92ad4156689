package audio

import (
	"math"
	"time"

	"github.com/qazvoice/kaztts-service/internal/core"
)

// Defaults for segment joining. The crossfade hides the phase discontinuity
// between independently generated segments; the junction margin is the
// breathing pause left in place when trimming model-generated silence.
const (
	DefaultCrossfade      = 20 * time.Millisecond
	DefaultJunctionMargin = 80 * time.Millisecond
)

// silenceThreshold is the absolute amplitude below which a sample counts as
// silence when trimming segment edges.
const silenceThreshold = 1e-3

// Stitcher joins per-segment clips into one continuous clip. Segment order is
// the caller's responsibility; the stitcher only concatenates.
type Stitcher struct {
	crossfade      time.Duration
	junctionMargin time.Duration
}

// NewStitcher creates a stitcher with the given crossfade length and junction
// silence margin. Negative values are treated as zero.
func NewStitcher(crossfade, junctionMargin time.Duration) *Stitcher {
	if crossfade < 0 {
		crossfade = 0
	}

	if junctionMargin < 0 {
		junctionMargin = 0
	}

	return &Stitcher{crossfade: crossfade, junctionMargin: junctionMargin}
}

// Stitch concatenates clips in order. Every clip must share one sample rate;
// a mismatch reports core.ErrSampleRateMismatch. Silence at inner junctions
// is trimmed down to the margin, and adjacent clips are joined with a short
// linear crossfade. An empty input yields a zero clip.
func (s *Stitcher) Stitch(clips []core.AudioClip) (core.AudioClip, error) {
	if len(clips) == 0 {
		return core.AudioClip{Samples: nil, SampleRate: 0}, nil
	}

	rate := clips[0].SampleRate
	for _, clip := range clips[1:] {
		if clip.SampleRate != rate {
			return core.AudioClip{}, core.ErrSampleRateMismatch
		}
	}

	margin := durationSamples(s.junctionMargin, rate)
	overlap := durationSamples(s.crossfade, rate)

	first := clips[0].Samples
	if len(clips) > 1 {
		first = trimTrailingSilence(first, margin)
	}

	// work on a copy so input clips survive the in-place crossfade
	out := append(make([]float64, 0, totalSamples(clips)), first...)

	for i, clip := range clips[1:] {
		next := trimLeadingSilence(clip.Samples, margin)

		if i < len(clips)-2 {
			next = trimTrailingSilence(next, margin)
		}

		out = appendCrossfaded(out, next, overlap)
	}

	return core.AudioClip{Samples: out, SampleRate: rate}, nil
}

func durationSamples(d time.Duration, rate int) int {
	return int(d.Seconds() * float64(rate))
}

func totalSamples(clips []core.AudioClip) int {
	total := 0
	for _, clip := range clips {
		total += len(clip.Samples)
	}

	return total
}

// trimTrailingSilence removes trailing sub-threshold samples, keeping at most
// `keep` of them as the junction pause.
func trimTrailingSilence(samples []float64, keep int) []float64 {
	end := len(samples)
	for end > 0 && math.Abs(samples[end-1]) < silenceThreshold {
		end--
	}

	end += keep
	if end > len(samples) {
		end = len(samples)
	}

	return samples[:end]
}

func trimLeadingSilence(samples []float64, keep int) []float64 {
	start := 0
	for start < len(samples) && math.Abs(samples[start]) < silenceThreshold {
		start++
	}

	start -= keep
	if start < 0 {
		start = 0
	}

	return samples[start:]
}

// appendCrossfaded appends next to dst, linearly blending the last `overlap`
// samples of dst with the first `overlap` samples of next.
func appendCrossfaded(dst, next []float64, overlap int) []float64 {
	if overlap > len(dst) {
		overlap = len(dst)
	}

	if overlap > len(next) {
		overlap = len(next)
	}

	base := len(dst) - overlap

	for i := 0; i < overlap; i++ {
		t := float64(i+1) / float64(overlap+1)
		dst[base+i] = dst[base+i]*(1-t) + next[i]*t
	}

	return append(dst, next[overlap:]...)
}
