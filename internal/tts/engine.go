// Package tts implements the HTTP client for the standalone speech model
// server. The server owns the GPU and the model weights; this package owns
// the wire contract and nothing else.
package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
)

// API endpoints.
const (
	apiGenerate = "/v1/generate/speech"
	apiHealth   = "/health"
)

// HTTP header names and values.
const (
	headerNameContentType = "Content-Type"
	headerNameAccept      = "Accept"
	mimeJSON              = "application/json"
	mimeWAV               = "audio/wav"
)

// Sampling defaults applied when the configuration leaves them unset.
const (
	DefaultTemperature = 0.8
	DefaultTopK        = 50
	DefaultTopP        = 0.95
	DefaultTimeout     = 120 * time.Second
)

// Error messages.
const (
	errFmtMarshalRequest   = "marshal generation request: %w"
	errFmtCreateRequest    = "create generation request: %w"
	errFmtSendRequest      = "%w: send request to %s: %v"
	errFmtServiceError     = "%w: %s: %s (code: %s)"
	errFmtServiceNonOK     = "%w: %s: %s"
	errFmtUnexpectedType   = "%w: unexpected content type %q"
	errFmtReadAudio        = "%w: read audio reply: %v"
	errFmtEmptyAudio       = "%w: received empty audio reply"
	errFmtDecodeAudio      = "%w: decode audio reply: %v"
	errFmtHealthRequest    = "create health request: %w"
	errFmtHealthUnreached  = "speech model server unreachable at %s: %w"
	errFmtHealthNonOK      = "speech model server unhealthy: %s"
)

const pcm16SampleSizeInBytes = 2

// generateRequest is the JSON payload of a generation call. The prompt audio
// travels as base64-encoded 16-bit little-endian PCM at the stated rate.
type generateRequest struct {
	Text             string  `json:"text"`
	PromptText       string  `json:"prompt_text,omitempty"`
	PromptAudio      string  `json:"prompt_audio,omitempty"`
	PromptSampleRate int     `json:"prompt_sample_rate,omitempty"`
	Temperature      float64 `json:"temperature"`
	TopK             int     `json:"top_k"`
	TopP             float64 `json:"top_p"`
}

// errorResponse is the structured error body the model server returns on
// failed requests.
type errorResponse struct {
	Detail    string `json:"detail"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Sampling bundles the generation hyperparameters forwarded on every call.
type Sampling struct {
	Temperature float64
	TopK        int
	TopP        float64
}

// Engine is the HTTP-backed core.SpeechModel. It carries no per-request
// state; serializing calls is the orchestrator's job, not the engine's.
type Engine struct {
	httpClient *http.Client
	baseURL    string
	sampling   Sampling
}

// NewEngine creates an engine for the model server at baseURL. The timeout
// bounds every generation call; zero falls back to DefaultTimeout. Zero
// sampling fields fall back to the package defaults.
func NewEngine(baseURL string, timeout time.Duration, sampling Sampling) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if sampling.Temperature == 0 {
		sampling.Temperature = DefaultTemperature
	}

	if sampling.TopK == 0 {
		sampling.TopK = DefaultTopK
	}

	if sampling.TopP == 0 {
		sampling.TopP = DefaultTopP
	}

	return &Engine{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		sampling:   sampling,
	}
}

// Synthesize renders one text segment, optionally conditioned on a voice
// prompt, and returns the decoded clip. Any transport, protocol or decode
// failure is reported as core.ErrModelInference.
func (e *Engine) Synthesize(
	ctx context.Context,
	text string,
	prompt *core.VoicePrompt,
) (core.AudioClip, error) {
	if text == "" {
		return core.AudioClip{}, core.ErrEmptyText
	}

	req := generateRequest{
		Text:             text,
		PromptText:       "",
		PromptAudio:      "",
		PromptSampleRate: 0,
		Temperature:      e.sampling.Temperature,
		TopK:             e.sampling.TopK,
		TopP:             e.sampling.TopP,
	}

	if prompt != nil {
		req.PromptText = prompt.Transcript
		req.PromptAudio = encodePromptAudio(prompt.Samples)
		req.PromptSampleRate = prompt.SampleRate
	}

	body, err := json.Marshal(req)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtMarshalRequest, err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		e.baseURL+apiGenerate,
		bytes.NewReader(body),
	)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtCreateRequest, err)
	}

	httpReq.Header.Set(headerNameContentType, mimeJSON)
	httpReq.Header.Set(headerNameAccept, mimeWAV)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(
			errFmtSendRequest, core.ErrModelInference, e.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return core.AudioClip{}, e.parseErrorResponse(resp)
	}

	if contentType := resp.Header.Get(headerNameContentType); contentType != mimeWAV {
		return core.AudioClip{}, fmt.Errorf(
			errFmtUnexpectedType, core.ErrModelInference, contentType)
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtReadAudio, core.ErrModelInference, err)
	}

	if len(audioData) == 0 {
		return core.AudioClip{}, fmt.Errorf(errFmtEmptyAudio, core.ErrModelInference)
	}

	return e.decodeReply(audioData)
}

// Healthy checks the model server's health endpoint.
func (e *Engine) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		e.baseURL+apiHealth,
		http.NoBody,
	)
	if err != nil {
		return fmt.Errorf(errFmtHealthRequest, err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(errFmtHealthUnreached, e.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(errFmtHealthNonOK, resp.Status)
	}

	return nil
}

func (e *Engine) decodeReply(data []byte) (core.AudioClip, error) {
	clip, err := audio.DecodeWAV(data)
	if err != nil {
		return core.AudioClip{}, fmt.Errorf(errFmtDecodeAudio, core.ErrModelInference, err)
	}

	return clip, nil
}

// parseErrorResponse decodes a structured JSON error body, falling back to
// the raw body so diagnostics survive a non-JSON reply.
func (e *Engine) parseErrorResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return fmt.Errorf(errFmtServiceError,
			core.ErrModelInference, resp.Status, body.Detail, body.ErrorCode)
	}

	return fmt.Errorf(errFmtServiceNonOK, core.ErrModelInference, resp.Status, string(raw))
}

// encodePromptAudio packs float64 samples as base64 16-bit LE PCM.
func encodePromptAudio(samples []float64) string {
	pcm := make([]byte, len(samples)*pcm16SampleSizeInBytes)

	for i, sample := range samples {
		clamped := math.Max(-1.0, math.Min(1.0, sample))
		binary.LittleEndian.PutUint16(
			pcm[i*pcm16SampleSizeInBytes:],
			uint16(int16(clamped*math.MaxInt16)),
		)
	}

	return base64.StdEncoding.EncodeToString(pcm)
}
