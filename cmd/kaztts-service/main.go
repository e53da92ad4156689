// main package for kaztts-service
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/book-expert/logger"
	"github.com/nats-io/nats.go"
	"golang.org/x/sync/errgroup"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/config"
	"github.com/qazvoice/kaztts-service/internal/objectstore"
	"github.com/qazvoice/kaztts-service/internal/prompt"
	"github.com/qazvoice/kaztts-service/internal/script"
	"github.com/qazvoice/kaztts-service/internal/server"
	"github.com/qazvoice/kaztts-service/internal/synth"
	"github.com/qazvoice/kaztts-service/internal/tts"
	"github.com/qazvoice/kaztts-service/internal/worker"
)

const (
	serviceLogName     = "kaztts-service.log"
	defaultAudioBucket = "kaztts-audio"
)

func setupLogger(logPath string) (*logger.Logger, error) {
	log, err := logger.New(logPath, serviceLogName)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return log, nil
}

func run() error {
	bootstrapLog, err := setupLogger(os.TempDir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to create bootstrap logger: %v\n", err)

		return err
	}

	cfg, err := config.Load(bootstrapLog)
	if err != nil {
		bootstrapLog.Error("Failed to load configuration: %v", err)

		return fmt.Errorf("failed to load configuration: %w", err)
	}

	finalLog, err := setupLogger(cfg.Paths.BaseLogsDir)
	if err != nil {
		bootstrapLog.Error("Failed to create final logger: %v", err)

		return fmt.Errorf("failed to create final logger: %w", err)
	}

	defer func() {
		closeErr := finalLog.Close()
		if closeErr != nil {
			fmt.Fprintf(os.Stderr, "error closing final logger: %v\n", closeErr)
		}
	}()

	return runService(cfg, finalLog)
}

// runService wires the pipeline and serves until interrupted.
func runService(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := buildEngine(cfg)
	orchestrator := buildOrchestrator(cfg, engine, log)
	prompts := buildPromptProcessor(cfg)
	transcriber := buildTranscriber(cfg)

	httpServer, err := server.New(orchestrator, engine, prompts, transcriber, server.Options{
		OutputDir: cfg.Paths.OutputDir,
		StaticDir: cfg.Server.StaticDir,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to build http server: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Serving HTTP on %s", addr)

	group.Go(func() error {
		return httpServer.Run(groupCtx, addr)
	})

	if cfg.NATS.Enabled() {
		natsWorker, workerErr := buildWorker(cfg, orchestrator, prompts, log)
		if workerErr != nil {
			return workerErr
		}

		log.Info("Listening for synthesis events on subject: %s",
			cfg.NATS.SynthesisRequestSubject)

		group.Go(func() error {
			return natsWorker.Run(groupCtx)
		})
	}

	err = group.Wait()
	if err != nil {
		return fmt.Errorf("service failed: %w", err)
	}

	return nil
}

func buildEngine(cfg *config.Config) *tts.Engine {
	return tts.NewEngine(
		cfg.TTSEngine.URL,
		time.Duration(cfg.TTSEngine.TimeoutSeconds)*time.Second,
		tts.Sampling{
			Temperature: cfg.TTSEngine.Temperature,
			TopK:        cfg.TTSEngine.TopK,
			TopP:        cfg.TTSEngine.TopP,
		},
	)
}

func buildOrchestrator(
	cfg *config.Config,
	engine *tts.Engine,
	log *logger.Logger,
) *synth.Orchestrator {
	stitcher := audio.NewStitcher(
		time.Duration(cfg.Synthesis.CrossfadeMillis)*time.Millisecond,
		time.Duration(cfg.Synthesis.JunctionMarginMillis)*time.Millisecond,
	)

	return synth.NewOrchestrator(engine, script.NewTables(), stitcher, log, synth.Options{
		DirectModeCeiling: cfg.Synthesis.DirectModeCeilingRunes,
		SegmentMaxRunes:   cfg.Segmenter.MaxSegmentRunes,
		RequestTimeout:    time.Duration(cfg.Synthesis.RequestTimeoutSeconds) * time.Second,
	})
}

func buildPromptProcessor(cfg *config.Config) *prompt.Processor {
	return prompt.NewProcessor(
		cfg.Prompt.SampleRate,
		time.Duration(cfg.Prompt.MinDurationSeconds)*time.Second,
		time.Duration(cfg.Prompt.MaxDurationSeconds)*time.Second,
	)
}

// buildTranscriber returns nil when no Whisper credentials are configured;
// prompts then keep whatever transcript the caller supplied.
func buildTranscriber(cfg *config.Config) *prompt.Transcriber {
	if cfg.Prompt.WhisperAPIKey == "" {
		return nil
	}

	return prompt.NewTranscriber(cfg.Prompt.WhisperAPIKey, cfg.Prompt.WhisperBaseURL)
}

func buildWorker(
	cfg *config.Config,
	orchestrator *synth.Orchestrator,
	prompts *prompt.Processor,
	log *logger.Logger,
) (*worker.NatsWorker, error) {
	natsConnection, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.NATS.URL, err)
	}

	jetstreamContext, err := natsConnection.JetStream()
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	bucket := cfg.NATS.AudioObjectStoreBucket
	if bucket == "" {
		bucket = defaultAudioBucket
	}

	store, err := objectstore.New(jetstreamContext, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to create object store: %w", err)
	}

	return worker.NewNatsWorker(
		natsConnection,
		cfg.NATS.SynthesisRequestSubject,
		store,
		orchestrator,
		prompts,
		log,
	), nil
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Service exited with error: %v\n", err)
		os.Exit(1)
	}
}
