// Package config_test tests the configuration loading for kaztts-service.
package config_test

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/config"
)

const sampleTOML = `
[nats]
url = "nats://127.0.0.1:4222"
synthesis_stream_name = "KAZTTS_JOBS"
synthesis_consumer_name = "kaztts-workers"
synthesis_request_subject = "kaztts.synthesis.request"
audio_created_subject = "kaztts.audio.created"
audio_object_store_bucket = "KAZTTS_AUDIO"

[tts_engine]
url = "http://127.0.0.1:8000"
timeout_seconds = 120
temperature = 0.8
top_k = 50
top_p = 0.95

[synthesis]
direct_mode_ceiling_runes = 200
request_timeout_seconds = 300
crossfade_ms = 20
junction_margin_ms = 80

[segmenter]
max_segment_runes = 80

[prompt]
sample_rate = 16000
min_duration_seconds = 3
max_duration_seconds = 30

[server]
host = "0.0.0.0"
port = 8080
static_dir = "web"

[paths]
base_logs_dir = "/var/log/kaztts-service"
output_dir = "/var/lib/kaztts-service/outputs"
`

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	var cfg config.Config

	err := toml.Unmarshal([]byte(sampleTOML), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "nats://127.0.0.1:4222", cfg.NATS.URL)
	assert.True(t, cfg.NATS.Enabled())
	assert.Equal(t, "KAZTTS_JOBS", cfg.NATS.SynthesisStreamName)
	assert.Equal(t, "kaztts-workers", cfg.NATS.SynthesisConsumerName)
	assert.Equal(t, "kaztts.synthesis.request", cfg.NATS.SynthesisRequestSubject)
	assert.Equal(t, "kaztts.audio.created", cfg.NATS.AudioCreatedSubject)
	assert.Equal(t, "KAZTTS_AUDIO", cfg.NATS.AudioObjectStoreBucket)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.TTSEngine.URL)
	assert.Equal(t, 120, cfg.TTSEngine.TimeoutSeconds)
	assert.InEpsilon(t, 0.8, cfg.TTSEngine.Temperature, 0.001)
	assert.Equal(t, 50, cfg.TTSEngine.TopK)
	assert.InEpsilon(t, 0.95, cfg.TTSEngine.TopP, 0.001)

	assert.Equal(t, 200, cfg.Synthesis.DirectModeCeilingRunes)
	assert.Equal(t, 300, cfg.Synthesis.RequestTimeoutSeconds)
	assert.Equal(t, 20, cfg.Synthesis.CrossfadeMillis)
	assert.Equal(t, 80, cfg.Synthesis.JunctionMarginMillis)

	assert.Equal(t, 80, cfg.Segmenter.MaxSegmentRunes)
	assert.Equal(t, 16000, cfg.Prompt.SampleRate)
	assert.Equal(t, 3, cfg.Prompt.MinDurationSeconds)
	assert.Equal(t, 30, cfg.Prompt.MaxDurationSeconds)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/var/lib/kaztts-service/outputs", cfg.Paths.OutputDir)

	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	t.Parallel()

	base := func(t *testing.T) config.Config {
		t.Helper()

		var cfg config.Config
		require.NoError(t, toml.Unmarshal([]byte(sampleTOML), &cfg))

		return cfg
	}

	t.Run("missing engine url", func(t *testing.T) {
		t.Parallel()

		cfg := base(t)
		cfg.TTSEngine.URL = ""
		assert.ErrorIs(t, cfg.Validate(), config.ErrEngineURLRequired)
	})

	t.Run("inverted prompt window", func(t *testing.T) {
		t.Parallel()

		cfg := base(t)
		cfg.Prompt.MinDurationSeconds = 40
		assert.ErrorIs(t, cfg.Validate(), config.ErrBadPromptWindow)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Parallel()

		cfg := base(t)
		cfg.Server.Port = 0
		assert.ErrorIs(t, cfg.Validate(), config.ErrBadServerPort)
	})

	t.Run("missing output dir", func(t *testing.T) {
		t.Parallel()

		cfg := base(t)
		cfg.Paths.OutputDir = ""
		assert.ErrorIs(t, cfg.Validate(), config.ErrOutputDirRequired)
	})
}
