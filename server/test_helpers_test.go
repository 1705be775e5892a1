package server_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"testing"

	afero "github.com/spf13/afero"
	require "github.com/stretchr/testify/require"
	zap "go.uber.org/zap"
	zaptest "go.uber.org/zap/zaptest"

	server "github.com/inference-gateway/super8/server"
	config "github.com/inference-gateway/super8/server/config"
	mocks "github.com/inference-gateway/super8/server/mocks"
	testutils "github.com/inference-gateway/super8/server/testutils"
)

const (
	testBasePath    = "/data"
	testInboundDir  = "/data/uploads"
	testOutboundDir = "/data/output"
)

// transformed is what the fake transformation writes for a given input
func transformed(data []byte) []byte {
	return append([]byte("SUPER8:"), data...)
}

// harness wires a media service and sweeper over an in-memory filesystem
type harness struct {
	cfg     *config.Config
	logger  *zap.Logger
	fs      afero.Fs
	storage *server.FilesystemArtifactStorage
	runner  *mocks.FakeJobRunner
	events  *mocks.FakeEventPublisher
	otel    *mocks.FakeOpenTelemetry
	jobs    testutils.Counter
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		cfg:    testutils.NewTestConfig(t, testBasePath),
		logger: zaptest.NewLogger(t),
		fs:     afero.NewMemMapFs(),
		runner: &mocks.FakeJobRunner{},
		events: &mocks.FakeEventPublisher{},
		otel:   &mocks.FakeOpenTelemetry{},
		jobs:   testutils.NewCounter(),
	}

	storage, err := server.NewFilesystemArtifactStorage(h.fs, &h.cfg.StorageConfig, h.logger)
	require.NoError(t, err)
	h.storage = storage

	h.runner.RunStub = func(ctx context.Context, inbound, outbound string) error {
		h.jobs.Increment()
		data, err := afero.ReadFile(h.fs, inbound)
		if err != nil {
			return err
		}
		return afero.WriteFile(h.fs, outbound, transformed(data), 0644)
	}

	return h
}

func (h *harness) mediaService(ids server.IdentifierGenerator) *server.MediaServiceImpl {
	return server.NewMediaService(h.cfg, h.logger, h.storage, h.runner, ids, h.events, h.otel)
}

func (h *harness) sweeper(lease server.SweepLease) *server.SweeperImpl {
	return server.NewSweeper(h.cfg, h.logger, h.storage, lease, h.events, h.otel)
}

func (h *harness) server(t *testing.T, builder func(b server.ServerBuilder) server.ServerBuilder) http.Handler {
	t.Helper()

	b := server.NewServerBuilder(h.cfg, h.logger).
		WithStorage(h.storage).
		WithJobRunner(h.runner).
		WithEventPublisher(h.events)
	if builder != nil {
		b = builder(b)
	}

	srv, err := b.Build(context.Background())
	require.NoError(t, err)
	return srv.Handler()
}

func (h *harness) countInbound(t *testing.T) int {
	return testutils.CountFiles(t, h.fs, testInboundDir)
}

func (h *harness) countOutbound(t *testing.T) int {
	return testutils.CountFiles(t, h.fs, testOutboundDir)
}

func (h *harness) outboundPath(id string) string {
	return filepath.Join(testOutboundDir, id+".mov")
}

func (h *harness) inboundPath(id string) string {
	return filepath.Join(testInboundDir, id+".mp4")
}

// fixedIDs returns a generator that always issues id
func fixedIDs(id string) *mocks.FakeIdentifierGenerator {
	ids := &mocks.FakeIdentifierGenerator{}
	ids.NewIDReturns(id)
	return ids
}

// multipartUpload builds a POST /api/process request carrying data under field
func multipartUpload(t *testing.T, field string, data []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, "clip.mp4")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	} else {
		require.NoError(t, writer.WriteField("title", "no file here"))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/process", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// mp4Header is the smallest ftyp box recognised as video/mp4
var mp4Header = []byte{
	0x00, 0x00, 0x00, 0x18, 'f', 't', 'y', 'p', 'm', 'p', '4', '2',
	0x00, 0x00, 0x00, 0x00, 'm', 'p', '4', '2', 'i', 's', 'o', 'm',
}
