// Package core defines the shared data model and interfaces for the Kazakh
// dual-script TTS service.
package core

import "time"

// ScriptKind identifies the writing system of a piece of Kazakh text.
type ScriptKind int

const (
	// ScriptUnknown means no Kazakh alphabet characters were found.
	ScriptUnknown ScriptKind = iota
	// ScriptCyrillic is the Kazakh Cyrillic alphabet.
	ScriptCyrillic
	// ScriptToteZhazu is the Arabic-derived Tote Zhazu script.
	ScriptToteZhazu
)

// String returns the wire name of the script kind.
func (k ScriptKind) String() string {
	switch k {
	case ScriptCyrillic:
		return "cyrillic"
	case ScriptToteZhazu:
		return "arabic"
	default:
		return "unknown"
	}
}

// ParseScriptKind maps a wire name ("cyrillic" or "arabic") to its kind.
// Anything else, including the empty string, is ScriptUnknown.
func ParseScriptKind(name string) ScriptKind {
	switch name {
	case "cyrillic":
		return ScriptCyrillic
	case "arabic", "tote_zhazu":
		return ScriptToteZhazu
	default:
		return ScriptUnknown
	}
}

// InferenceMode selects between single-shot and segmented synthesis.
type InferenceMode string

const (
	// ModeDirect synthesizes the whole text in one model call.
	ModeDirect InferenceMode = "direct"
	// ModeSegmented splits the text into chunks and synthesizes each in order.
	ModeSegmented InferenceMode = "segmented"
)

// ParseInferenceMode maps a wire name to a mode, defaulting to segmented.
func ParseInferenceMode(name string) InferenceMode {
	if name == string(ModeDirect) {
		return ModeDirect
	}

	return ModeSegmented
}

// BoundaryKind records how a text segment was closed.
type BoundaryKind int

const (
	// BoundarySentence means the segment ends at sentence punctuation.
	BoundarySentence BoundaryKind = iota
	// BoundaryForced means the segment was cut at whitespace to respect the
	// length limit.
	BoundaryForced
)

// TextSegment is one ordered chunk of normalized text. The index is the
// concatenation order of the final audio and must be preserved.
type TextSegment struct {
	Text      string
	Separator string // whitespace that followed this segment in the source
	Index     int
	Boundary  BoundaryKind
}

// VoicePrompt is a decoded reference clip used to condition the speech model.
// It is built once per request and shared read-only across all segments.
type VoicePrompt struct {
	Samples    []float64
	SampleRate int
	Transcript string
}

// Duration reports the prompt length.
func (p *VoicePrompt) Duration() time.Duration {
	if p == nil || p.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(p.Samples)) / float64(p.SampleRate) * float64(time.Second))
}

// AudioClip is a mono sample buffer plus its sample rate.
type AudioClip struct {
	Samples    []float64
	SampleRate int
}

// Duration reports the clip length.
func (c AudioClip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}

// SynthesisRequest is the unit of work flowing through the pipeline. It is
// immutable after creation and owned exclusively by the orchestrator
// processing it.
type SynthesisRequest struct {
	Text   string
	Script ScriptKind // desired output/synthesis script
	Mode   InferenceMode
	Prompt *VoicePrompt // nil unless voice cloning was requested
}

// SynthesisResult is the sole output artifact of a request, plus the
// transliteration metadata the caller displays.
type SynthesisResult struct {
	Clip          AudioClip
	OriginalText  string
	ConvertedText string
	SegmentCount  int
}
