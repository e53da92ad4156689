package audio

// Downmix collapses interleaved multi-channel samples to mono by averaging
// each frame. Mono input is returned unchanged.
func Downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}

	frames := len(samples) / channels
	mono := make([]float64, frames)

	for i := 0; i < frames; i++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += samples[i*channels+ch]
		}

		mono[i] = sum / float64(channels)
	}

	return mono
}

// Resample converts samples from srcRate to dstRate by linear interpolation.
// Linear quality is sufficient for a voice prompt; the model only conditions
// on timbre, not on high-frequency detail.
func Resample(samples []float64, srcRate, dstRate int) []float64 {
	if srcRate == dstRate || srcRate <= 0 || dstRate <= 0 || len(samples) == 0 {
		return samples
	}

	ratio := float64(srcRate) / float64(dstRate)
	outLen := int(float64(len(samples)) / ratio)

	if outLen == 0 {
		outLen = 1
	}

	out := make([]float64, outLen)

	for i := range out {
		pos := float64(i) * ratio

		left := int(pos)
		if left >= len(samples)-1 {
			out[i] = samples[len(samples)-1]

			continue
		}

		frac := pos - float64(left)
		out[i] = samples[left]*(1-frac) + samples[left+1]*frac
	}

	return out
}
