// Package synth drives a synthesis request through the pipeline: normalize,
// detect and convert script, segment, synthesize each segment against the
// shared speech model, and stitch the clips into one artifact.
package synth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/book-expert/logger"
	"github.com/google/uuid"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/script"
	"github.com/qazvoice/kaztts-service/internal/segment"
)

// Request lifecycle stages, logged as the request advances.
const (
	stageNormalizing  = "normalizing"
	stageSegmenting   = "segmenting"
	stageSynthesizing = "synthesizing"
	stageStitching    = "stitching"
	stageFailed       = "failed"
)

// DefaultDirectModeCeiling bounds direct-mode text length in runes. Direct
// mode sends the whole text to the model in one call, so the ceiling keeps a
// single call within the model's comfortable input window.
const DefaultDirectModeCeiling = 200

const (
	logFmtStage          = "request %s: %s"
	logFmtStageSegment   = "request %s: %s segment %d/%d"
	logFmtRequestDone    = "request %s: done, %d segments, %.2fs audio"
	logFmtRequestFailed  = "request %s: failed at %s: %v"
	errFmtSegmentFailed  = "segment %d of %d: %w"
	errFmtRequestTimeout = "%w after %s"
)

// Options carries the orchestrator's tunables. Zero values select defaults.
type Options struct {
	// DirectModeCeiling is the maximum direct-mode text length in runes.
	DirectModeCeiling int
	// SegmentMaxRunes is the per-segment ceiling for segmented mode.
	SegmentMaxRunes int
	// RequestTimeout bounds one whole request; zero means no deadline
	// beyond what the caller's context carries.
	RequestTimeout time.Duration
}

// Orchestrator owns the single shared speech model. Model access is a
// mutually exclusive critical section held for the whole request: segment
// i+1's call starts only after segment i returns, and no two requests
// interleave model calls. Everything outside that section runs concurrently
// across requests.
type Orchestrator struct {
	model      core.SpeechModel
	converter  *script.Converter
	normalizer *segment.Normalizer
	segmenter  *segment.Segmenter
	stitcher   *audio.Stitcher
	log        *logger.Logger
	opts       Options

	modelMu sync.Mutex
}

// NewOrchestrator wires the pipeline around one speech model instance.
func NewOrchestrator(
	model core.SpeechModel,
	tables *script.Tables,
	stitcher *audio.Stitcher,
	log *logger.Logger,
	opts Options,
) *Orchestrator {
	if opts.DirectModeCeiling <= 0 {
		opts.DirectModeCeiling = DefaultDirectModeCeiling
	}

	return &Orchestrator{
		model:      model,
		converter:  script.NewConverter(tables),
		normalizer: segment.NewNormalizer(),
		segmenter:  segment.NewSegmenter(opts.SegmentMaxRunes),
		stitcher:   stitcher,
		log:        log,
		opts:       opts,
		modelMu:    sync.Mutex{},
	}
}

// Synthesize runs one request end to end. Input errors surface before any
// model call; a model failure aborts the remaining segments and no partial
// audio is ever returned.
func (o *Orchestrator) Synthesize(
	ctx context.Context,
	req core.SynthesisRequest,
) (core.SynthesisResult, error) {
	if o.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, o.opts.RequestTimeout)
		defer cancel()
	}

	requestID := uuid.NewString()

	result, err := o.run(ctx, requestID, req)
	if err != nil {
		o.log.Error(logFmtRequestFailed, requestID, failedStage(err), err)

		return core.SynthesisResult{}, err
	}

	o.log.Info(logFmtRequestDone,
		requestID, result.SegmentCount, result.Clip.Duration().Seconds())

	return result, nil
}

func (o *Orchestrator) run(
	ctx context.Context,
	requestID string,
	req core.SynthesisRequest,
) (core.SynthesisResult, error) {
	o.log.Info(logFmtStage, requestID, stageNormalizing)

	original := o.normalizer.Normalize(req.Text)
	if original == "" {
		return core.SynthesisResult{}, core.ErrEmptyText
	}

	converted := o.convertScript(original, req.Script)

	o.log.Info(logFmtStage, requestID, stageSegmenting)

	segments, err := o.segments(converted, req.Mode)
	if err != nil {
		return core.SynthesisResult{}, err
	}

	clips, err := o.synthesizeSegments(ctx, requestID, segments, req.Prompt)
	if err != nil {
		return core.SynthesisResult{}, err
	}

	o.log.Info(logFmtStage, requestID, stageStitching)

	clip, err := o.stitcher.Stitch(clips)
	if err != nil {
		return core.SynthesisResult{}, err
	}

	return core.SynthesisResult{
		Clip:          clip,
		OriginalText:  original,
		ConvertedText: converted,
		SegmentCount:  len(segments),
	}, nil
}

// convertScript transliterates into the requested script when the detected
// input script differs. Unknown input (no Kazakh alphabet characters) passes
// through unchanged.
func (o *Orchestrator) convertScript(text string, target core.ScriptKind) string {
	if target == core.ScriptUnknown {
		return text
	}

	detected := script.Detect(text)
	if detected == core.ScriptUnknown || detected == target {
		return text
	}

	converted, _ := o.converter.Convert(text, target)

	return converted
}

func (o *Orchestrator) segments(
	text string,
	mode core.InferenceMode,
) ([]core.TextSegment, error) {
	if mode == core.ModeDirect {
		if len([]rune(text)) > o.opts.DirectModeCeiling {
			return nil, fmt.Errorf("%w: direct mode allows %d runes",
				core.ErrTextTooLong, o.opts.DirectModeCeiling)
		}

		return []core.TextSegment{{
			Text:      text,
			Separator: "",
			Index:     0,
			Boundary:  core.BoundarySentence,
		}}, nil
	}

	segments := o.segmenter.Split(text)
	if len(segments) == 0 {
		return nil, core.ErrEmptyText
	}

	return segments, nil
}

// synthesizeSegments is the model critical section. The lock spans every
// segment of the request so no other request interleaves its calls.
func (o *Orchestrator) synthesizeSegments(
	ctx context.Context,
	requestID string,
	segments []core.TextSegment,
	prompt *core.VoicePrompt,
) ([]core.AudioClip, error) {
	o.modelMu.Lock()
	defer o.modelMu.Unlock()

	clips := make([]core.AudioClip, 0, len(segments))

	for i, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, o.mapContextError(err)
		}

		o.log.Info(logFmtStageSegment, requestID, stageSynthesizing, i+1, len(segments))

		clip, err := o.model.Synthesize(ctx, seg.Text, prompt)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, o.mapContextError(ctxErr)
			}

			return nil, fmt.Errorf(errFmtSegmentFailed, i+1, len(segments), err)
		}

		clips = append(clips, clip)
	}

	return clips, nil
}

func (o *Orchestrator) mapContextError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		if o.opts.RequestTimeout > 0 {
			return fmt.Errorf(errFmtRequestTimeout,
				core.ErrRequestTimeout, o.opts.RequestTimeout)
		}

		return core.ErrRequestTimeout
	}

	return err
}

// failedStage names the pipeline stage an error belongs to, for logging.
func failedStage(err error) string {
	switch {
	case core.IsInputError(err):
		return stageNormalizing
	case errors.Is(err, core.ErrModelInference), errors.Is(err, core.ErrRequestTimeout):
		return stageSynthesizing
	case errors.Is(err, core.ErrSampleRateMismatch):
		return stageStitching
	default:
		return stageFailed
	}
}
