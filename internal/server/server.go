// Package server exposes the synthesis pipeline over HTTP: a multipart
// synthesis endpoint, a health probe, and static serving of the web UI and
// generated audio artifacts.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/book-expert/logger"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/prompt"
	"github.com/qazvoice/kaztts-service/internal/ttsutils"
)

const (
	outputsRoute = "/outputs"

	readHeaderTimeout    = 10 * time.Second
	shutdownTimeout      = 10 * time.Second
	healthCheckTimeout   = 5 * time.Second
	transcribeTimeout    = 60 * time.Second
	maxMultipartMemBytes = 32 << 20

	artifactTimeLayout = "20060102-150405"
	artifactSuffixLen  = 8
)

// ErrTextRequired indicates the synthesis form carried no text.
var ErrTextRequired = errors.New("text form field is required")

const (
	logFmtRequest          = "%s %s -> %d (%s)"
	logFmtArtifactWritten  = "wrote artifact %s (%d segments, %s)"
	logFmtTranscribeFailed = "prompt transcription failed, continuing without transcript: %v"
)

// Synthesizer is the orchestrator surface the HTTP layer needs.
type Synthesizer interface {
	Synthesize(ctx context.Context, req core.SynthesisRequest) (core.SynthesisResult, error)
}

// Options carries the server's filesystem roots.
type Options struct {
	// OutputDir receives generated WAV artifacts; it is also served under
	// the /outputs route.
	OutputDir string
	// StaticDir is the web UI root. Empty disables static serving.
	StaticDir string
}

// Server routes HTTP requests into the synthesis pipeline.
type Server struct {
	engine      *gin.Engine
	synthesizer Synthesizer
	model       core.SpeechModel
	prompts     *prompt.Processor
	transcriber *prompt.Transcriber
	outputDir   string
	log         *logger.Logger
}

// New builds the HTTP server. The transcriber is optional; pass nil to skip
// automatic transcription of reference clips uploaded without a transcript.
func New(
	synthesizer Synthesizer,
	model core.SpeechModel,
	prompts *prompt.Processor,
	transcriber *prompt.Transcriber,
	opts Options,
	log *logger.Logger,
) (*Server, error) {
	err := ttsutils.EnsureDir(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare output directory: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.MaxMultipartMemory = maxMultipartMemBytes
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))

	if opts.StaticDir != "" {
		engine.Use(static.Serve("/", static.LocalFile(opts.StaticDir, true)))
	}

	engine.Use(static.Serve(outputsRoute, static.LocalFile(opts.OutputDir, false)))

	srv := &Server{
		engine:      engine,
		synthesizer: synthesizer,
		model:       model,
		prompts:     prompts,
		transcriber: transcriber,
		outputDir:   opts.OutputDir,
		log:         log,
	}

	api := engine.Group("/api")
	api.POST("/tts", srv.handleSynthesize)
	api.GET("/health", srv.handleHealth)

	return srv, nil
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)

	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := httpServer.Shutdown(shutdownCtx)
		if err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		return nil
	}
}

// requestLogger logs one line per completed request.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(logFmtRequest,
			c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}

// handleHealth probes the speech model backend.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	err := s.model.Healthy(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"detail": err.Error(),
		})

		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleSynthesize accepts a multipart form with the fields text, script,
// mode, prompt_text and an optional prompt_speech file, runs the pipeline and
// writes the stitched artifact under the outputs directory.
func (s *Server) handleSynthesize(c *gin.Context) {
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		s.respondError(c, fmt.Errorf("%w: %w", core.ErrEmptyText, ErrTextRequired))

		return
	}

	voicePrompt, err := s.formPrompt(c)
	if err != nil {
		s.respondError(c, err)

		return
	}

	result, err := s.synthesizer.Synthesize(c.Request.Context(), core.SynthesisRequest{
		Text:   text,
		Script: core.ParseScriptKind(c.PostForm("script")),
		Mode:   core.ParseInferenceMode(c.PostForm("mode")),
		Prompt: voicePrompt,
	})
	if err != nil {
		s.respondError(c, err)

		return
	}

	filename := artifactFilename()

	err = audio.WriteWAVFile(filepath.Join(s.outputDir, filename), result.Clip)
	if err != nil {
		s.respondError(c, fmt.Errorf("failed to write audio artifact: %w", err))

		return
	}

	s.log.Info(logFmtArtifactWritten, filename, result.SegmentCount,
		ttsutils.FormatDuration(result.Clip.Duration().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"filename":         filename,
		"audio_url":        outputsRoute + "/" + filename,
		"original_text":    result.OriginalText,
		"converted_text":   result.ConvertedText,
		"segment_count":    result.SegmentCount,
		"duration_seconds": result.Clip.Duration().Seconds(),
	})
}

// formPrompt builds a voice prompt from the uploaded reference clip, if any.
// A missing transcript is filled in by the transcriber when one is wired;
// transcription failure degrades to an untranscribed prompt.
func (s *Server) formPrompt(c *gin.Context) (*core.VoicePrompt, error) {
	fileHeader, err := c.FormFile("prompt_speech")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read prompt_speech upload: %w", err)
	}

	format, ok := ttsutils.PromptFormat(fileHeader.Filename)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'",
			core.ErrUnsupportedAudioFormat, filepath.Ext(fileHeader.Filename))
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		return nil, err
	}

	transcript := strings.TrimSpace(c.PostForm("prompt_text"))

	voicePrompt, err := s.prompts.Build(data, format, transcript)
	if err != nil {
		return nil, err
	}

	if transcript == "" && s.transcriber != nil {
		s.fillTranscript(c.Request.Context(), voicePrompt)
	}

	return voicePrompt, nil
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open prompt_speech upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt_speech upload: %w", err)
	}

	return data, nil
}

// fillTranscript runs speech recognition on the already-normalized prompt.
func (s *Server) fillTranscript(ctx context.Context, voicePrompt *core.VoicePrompt) {
	wavData, err := audio.EncodeWAV(core.AudioClip{
		Samples:    voicePrompt.Samples,
		SampleRate: voicePrompt.SampleRate,
	})
	if err != nil {
		s.log.Warn(logFmtTranscribeFailed, err)

		return
	}

	transcribeCtx, cancel := context.WithTimeout(ctx, transcribeTimeout)
	defer cancel()

	transcript, err := s.transcriber.Transcribe(transcribeCtx, wavData)
	if err != nil {
		s.log.Warn(logFmtTranscribeFailed, err)

		return
	}

	voicePrompt.Transcript = transcript
}

// respondError maps pipeline errors to HTTP status codes.
func (s *Server) respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{
		"success": false,
		"detail":  err.Error(),
	})
}

func statusForError(err error) int {
	switch {
	case core.IsInputError(err):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrRequestTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, core.ErrModelInference):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// artifactFilename yields a sortable, collision-free name for one artifact.
func artifactFilename() string {
	return time.Now().UTC().Format(artifactTimeLayout) +
		"-" + uuid.NewString()[:artifactSuffixLen] + ".wav"
}
