// Package config provides the configuration structure for kaztts-service.
package config

import (
	"errors"
	"fmt"

	"github.com/book-expert/configurator"
	"github.com/book-expert/logger"
)

// Validation errors.
var (
	ErrEngineURLRequired = errors.New("tts_engine.url is required")
	ErrBadSegmentCeiling = errors.New("segmenter.max_segment_runes must be positive")
	ErrBadPromptWindow   = errors.New("prompt duration window is inverted")
	ErrBadServerPort     = errors.New("server.port must be between 1 and 65535")
	ErrOutputDirRequired = errors.New("paths.output_dir is required")
)

const maxTCPPort = 65535

// NATSConfig holds the configuration for the optional NATS worker intake.
type NATSConfig struct {
	URL                     string `toml:"url"`
	SynthesisStreamName     string `toml:"synthesis_stream_name"`
	SynthesisConsumerName   string `toml:"synthesis_consumer_name"`
	SynthesisRequestSubject string `toml:"synthesis_request_subject"`
	AudioCreatedSubject     string `toml:"audio_created_subject"`
	AudioObjectStoreBucket  string `toml:"audio_object_store_bucket"`
}

// Enabled reports whether the worker path is configured at all.
func (n *NATSConfig) Enabled() bool {
	return n.URL != ""
}

// TTSEngineConfig holds the connection and sampling settings for the speech
// model server.
type TTSEngineConfig struct {
	URL            string  `toml:"url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	Temperature    float64 `toml:"temperature"`
	TopK           int     `toml:"top_k"`
	TopP           float64 `toml:"top_p"`
}

// SynthesisConfig holds the orchestrator tunables.
type SynthesisConfig struct {
	DirectModeCeilingRunes int `toml:"direct_mode_ceiling_runes"`
	RequestTimeoutSeconds  int `toml:"request_timeout_seconds"`
	CrossfadeMillis        int `toml:"crossfade_ms"`
	JunctionMarginMillis   int `toml:"junction_margin_ms"`
}

// SegmenterConfig holds the text segmentation settings.
type SegmenterConfig struct {
	MaxSegmentRunes int `toml:"max_segment_runes"`
}

// PromptConfig holds the voice prompt validation settings.
type PromptConfig struct {
	SampleRate         int    `toml:"sample_rate"`
	MinDurationSeconds int    `toml:"min_duration_seconds"`
	MaxDurationSeconds int    `toml:"max_duration_seconds"`
	WhisperAPIKey      string `toml:"whisper_api_key"`
	WhisperBaseURL     string `toml:"whisper_base_url"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	StaticDir string `toml:"static_dir"`
}

// PathsConfig holds the file system paths the service writes to.
type PathsConfig struct {
	BaseLogsDir string `toml:"base_logs_dir"`
	OutputDir   string `toml:"output_dir"`
}

// Config is the root configuration structure.
type Config struct {
	NATS      NATSConfig      `toml:"nats"`
	TTSEngine TTSEngineConfig `toml:"tts_engine"`
	Synthesis SynthesisConfig `toml:"synthesis"`
	Segmenter SegmenterConfig `toml:"segmenter"`
	Prompt    PromptConfig    `toml:"prompt"`
	Server    ServerConfig    `toml:"server"`
	Paths     PathsConfig     `toml:"paths"`
}

// Load loads and validates the configuration for kaztts-service.
func Load(log *logger.Logger) (*Config, error) {
	var cfg Config

	err := configurator.Load(&cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration from configurator: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the loaded configuration for values the service cannot run
// with. Zero values that have package-level defaults are allowed.
func (c *Config) Validate() error {
	if c.TTSEngine.URL == "" {
		return ErrEngineURLRequired
	}

	if c.Segmenter.MaxSegmentRunes < 0 {
		return ErrBadSegmentCeiling
	}

	if c.Prompt.MinDurationSeconds > 0 && c.Prompt.MaxDurationSeconds > 0 &&
		c.Prompt.MinDurationSeconds > c.Prompt.MaxDurationSeconds {
		return ErrBadPromptWindow
	}

	if c.Server.Port <= 0 || c.Server.Port > maxTCPPort {
		return ErrBadServerPort
	}

	if c.Paths.OutputDir == "" {
		return ErrOutputDirRequired
	}

	return nil
}
