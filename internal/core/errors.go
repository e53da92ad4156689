package core

import "errors"

// Input errors: reported to the caller immediately, no model call is made.
var (
	// ErrEmptyText indicates the request text was empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrTextTooLong indicates direct-mode text exceeded the length ceiling.
	ErrTextTooLong = errors.New("text exceeds direct mode length ceiling")
	// ErrUnsupportedAudioFormat indicates the reference clip container is not
	// one of wav, mp3 or flac.
	ErrUnsupportedAudioFormat = errors.New("unsupported reference audio format")
	// ErrPromptTooShort indicates the reference clip is below the minimum
	// duration for reliable voice cloning.
	ErrPromptTooShort = errors.New("reference audio is too short")
	// ErrPromptTooLong indicates the reference clip exceeds the validated
	// duration range.
	ErrPromptTooLong = errors.New("reference audio is too long")
)

// Pipeline errors.
var (
	// ErrModelInference indicates the speech model failed on a segment. The
	// request is aborted; no partial audio is stitched.
	ErrModelInference = errors.New("speech model inference failed")
	// ErrRequestTimeout indicates the request exceeded its total deadline.
	ErrRequestTimeout = errors.New("synthesis request timed out")
	// ErrSampleRateMismatch is an internal invariant violation: segment clips
	// arrived at the stitcher with differing sample rates.
	ErrSampleRateMismatch = errors.New("segment sample rates do not match")
)

// IsInputError reports whether err belongs to the input-validation family,
// which maps to a 4xx response and never reaches the model.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyText) ||
		errors.Is(err, ErrTextTooLong) ||
		errors.Is(err, ErrUnsupportedAudioFormat) ||
		errors.Is(err, ErrPromptTooShort) ||
		errors.Is(err, ErrPromptTooLong)
}
