// Package prompt turns caller-supplied reference audio into the normalized
// voice prompt the speech model conditions on: one mono clip at the model
// sample rate, within the validated duration window, plus its transcript.
package prompt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/mewkiz/flac"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
)

// Supported reference audio container formats.
const (
	FormatWAV  = "wav"
	FormatMP3  = "mp3"
	FormatFLAC = "flac"
)

const (
	mp3BytesPerFrame = 4 // go-mp3 always emits 16-bit stereo
	pcm16Scale       = 32768.0
)

const (
	errFmtMP3Decoder = "create mp3 decoder: %w"
	errFmtMP3Read    = "read mp3 pcm: %w"
	errFmtFLACParse  = "parse flac stream: %w"
	errFmtFLACFrame  = "read flac frame: %w"
)

// decodeReference parses the raw bytes of a reference clip into a mono clip
// at its native sample rate.
func decodeReference(data []byte, format string) (core.AudioClip, error) {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case FormatWAV:
		return audio.DecodeWAV(data)
	case FormatMP3:
		return decodeMP3(data)
	case FormatFLAC:
		return decodeFLAC(data)
	default:
		return core.AudioClip{}, fmt.Errorf("%w: %q", core.ErrUnsupportedAudioFormat, format)
	}
}

// decodeMP3 decodes an MP3 stream. go-mp3 always yields interleaved 16-bit
// little-endian stereo PCM regardless of the source channel count.
func decodeMP3(data []byte) (core.AudioClip, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtMP3Decoder, err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtMP3Read, err)
	}

	frames := len(pcm) / mp3BytesPerFrame
	samples := make([]float64, frames)

	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(pcm[i*mp3BytesPerFrame:]))
		right := int16(binary.LittleEndian.Uint16(pcm[i*mp3BytesPerFrame+2:]))
		samples[i] = (float64(left) + float64(right)) / 2 / pcm16Scale
	}

	return core.AudioClip{Samples: samples, SampleRate: decoder.SampleRate()}, nil
}

func decodeFLAC(data []byte) (core.AudioClip, error) {
	stream, err := flac.Parse(bytes.NewReader(data))
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtFLACParse, err)
	}

	channels := int(stream.Info.NChannels)
	scale := math.Pow(2, float64(stream.Info.BitsPerSample-1))

	var samples []float64

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return core.AudioClip{}, fmt.Errorf(errFmtFLACFrame, err)
		}

		for i := 0; i < len(frame.Subframes[0].Samples); i++ {
			sum := 0.0
			for ch := 0; ch < channels; ch++ {
				sum += float64(frame.Subframes[ch].Samples[i])
			}

			samples = append(samples, sum/float64(channels)/scale)
		}
	}

	return core.AudioClip{Samples: samples, SampleRate: int(stream.Info.SampleRate)}, nil
}
