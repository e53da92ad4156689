// Package audio provides PCM utilities for the synthesis pipeline: WAV
// encoding and decoding, channel downmixing, sample-rate conversion and
// segment stitching. Audio is carried as mono float64 samples in [-1, 1].
package audio

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/qazvoice/kaztts-service/internal/core"
)

const (
	wavBitDepth    = 16
	wavNumChannels = 1
	pcm16Max       = 32767
)

const (
	errFmtCreateFile = "create wav file: %w"
	errFmtEncode     = "encode wav: %w"
	errFmtDecode     = "%w: not a valid wav stream"
	errFmtReadPCM    = "decode wav pcm: %w"
)

// EncodeWAV renders a clip as a 16-bit mono PCM WAV byte stream.
func EncodeWAV(clip core.AudioClip) ([]byte, error) {
	var buf bufferWriteSeeker

	if err := encodeTo(&buf, clip); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteWAVFile writes a clip to path as a 16-bit mono PCM WAV file.
func WriteWAVFile(path string, clip core.AudioClip) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf(errFmtCreateFile, err)
	}
	defer file.Close()

	return encodeTo(file, clip)
}

func encodeTo(w io.WriteSeeker, clip core.AudioClip) error {
	intData := make([]int, len(clip.Samples))
	for i, sample := range clip.Samples {
		clamped := math.Max(-1.0, math.Min(1.0, sample))
		intData[i] = int(clamped * pcm16Max)
	}

	encoder := wav.NewEncoder(w, clip.SampleRate, wavBitDepth, wavNumChannels, 1)

	buf := &gaudio.IntBuffer{
		Data:           intData,
		Format:         &gaudio.Format{SampleRate: clip.SampleRate, NumChannels: wavNumChannels},
		SourceBitDepth: wavBitDepth,
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf(errFmtEncode, err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf(errFmtEncode, err)
	}

	return nil
}

// DecodeWAV parses a WAV byte stream into a mono clip. Multi-channel input is
// downmixed by channel averaging.
func DecodeWAV(data []byte) (core.AudioClip, error) {
	decoder := wav.NewDecoder(bytes.NewReader(data))
	if !decoder.IsValidFile() {
		return core.AudioClip{}, fmt.Errorf(errFmtDecode, core.ErrUnsupportedAudioFormat)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtReadPCM, err)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth == 0 {
		bitDepth = wavBitDepth
	}

	scale := float64(int64(1) << (bitDepth - 1))

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	return core.AudioClip{
		Samples:    Downmix(samples, buf.Format.NumChannels),
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// bufferWriteSeeker is an in-memory io.WriteSeeker. The wav encoder seeks
// back to patch chunk sizes on Close, which rules out a plain bytes.Buffer.
type bufferWriteSeeker struct {
	buf []byte
	pos int
}

func (b *bufferWriteSeeker) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.buf) {
		if need > cap(b.buf) {
			grown := make([]byte, need, need*2)
			copy(grown, b.buf)
			b.buf = grown
		} else {
			b.buf = b.buf[:need]
		}
	}

	copy(b.buf[b.pos:], p)
	b.pos += len(p)

	return len(p), nil
}

func (b *bufferWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64

	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(b.pos) + offset
	case io.SeekEnd:
		next = int64(len(b.buf)) + offset
	default:
		return 0, fmt.Errorf("seek: invalid whence %d", whence)
	}

	if next < 0 {
		return 0, fmt.Errorf("seek: negative position %d", next)
	}

	b.pos = int(next)

	return next, nil
}

func (b *bufferWriteSeeker) Bytes() []byte {
	return b.buf
}
