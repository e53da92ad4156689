// Package objectstore_test tests the NATS object store implementation.
package objectstore_test

import (
	"context"
	"testing"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats-server/v2/test"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	"github.com/qazvoice/kaztts-service/internal/audio"
	"github.com/qazvoice/kaztts-service/internal/core"
	"github.com/qazvoice/kaztts-service/internal/objectstore"
)

// StartTestServer starts an in-memory NATS server for testing purposes.
func StartTestServer(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	opts := test.DefaultTestOptions
	opts.Port = -1 // Use a random port
	opts.JetStream = true
	natsServer := test.RunServer(&opts)

	natsConnection, err := nats.Connect(natsServer.ClientURL())
	if err != nil {
		t.Fatalf("Failed to connect to test NATS server: %v", err)
	}

	return natsServer, natsConnection
}

func TestNatsObjectStore_UploadDownloadArtifact(t *testing.T) {
	t.Parallel()

	natsServer, natsConnection := StartTestServer(t)
	defer natsServer.Shutdown()
	defer natsConnection.Close()

	jetstreamContext, err := natsConnection.JetStream()
	require.NoError(t, err)

	store, err := objectstore.New(jetstreamContext, "kaztts-test-audio")
	require.NoError(t, err)

	// store a real WAV artifact and read it back intact
	wavData, err := audio.EncodeWAV(core.AudioClip{
		Samples:    make([]float64, 1600),
		SampleRate: 16000,
	})
	require.NoError(t, err)

	ctx := context.Background()
	key := "request-0001.wav"

	require.NoError(t, store.Upload(ctx, key, wavData))

	downloaded, err := store.Download(ctx, key)
	require.NoError(t, err)
	require.Equal(t, wavData, downloaded)

	// a missing key reports an error rather than empty data
	_, err = store.Download(ctx, "no-such-key.wav")
	require.Error(t, err)
}
