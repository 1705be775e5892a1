package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"

	server "github.com/inference-gateway/super8/server"
	mocks "github.com/inference-gateway/super8/server/mocks"
	testutils "github.com/inference-gateway/super8/server/testutils"
	types "github.com/inference-gateway/super8/types"
)

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	return serve(handler, httptest.NewRequest(http.MethodGet, path, nil))
}

func decodeProcess(t *testing.T, w *httptest.ResponseRecorder) types.ProcessResponse {
	t.Helper()
	var resp types.ProcessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func decodeCleanup(t *testing.T, w *httptest.ResponseRecorder) types.CleanupResponse {
	t.Helper()
	var resp types.CleanupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestMediaServer_Index(t *testing.T) {
	h := newHarness(t)
	w := get(h.server(t, nil), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "POST /api/process")
	assert.Contains(t, w.Body.String(), "GET /api/video/:id")
}

func TestMediaServer_Health(t *testing.T) {
	h := newHarness(t)
	w := get(h.server(t, nil), "/health")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, types.HealthStatusHealthy, body["status"])
}

func TestMediaServer_UploadThenRetrieve(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)
	payload := bytes.Repeat([]byte{0xAB}, 10<<20)

	w := serve(handler, multipartUpload(t, "video", payload))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decodeProcess(t, w)
	assert.True(t, resp.Success)
	require.True(t, server.ValidID(resp.VideoID))
	assert.Equal(t, 0, h.countInbound(t))

	w = get(handler, "/api/video/"+resp.VideoID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "video/quicktime", w.Header().Get("Content-Type"))
	assert.Equal(t, "bytes", w.Header().Get("Accept-Ranges"))
	assert.True(t, bytes.Equal(transformed(payload), w.Body.Bytes()), "served bytes must match the job output")
}

func TestMediaServer_HealthReflectsZones(t *testing.T) {
	tests := []struct {
		status string
		code   int
	}{
		{types.HealthStatusHealthy, http.StatusOK},
		{types.HealthStatusDegraded, http.StatusOK},
		{types.HealthStatusUnhealthy, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			h := newHarness(t)
			media := &mocks.FakeMediaService{}
			media.HealthReturns(tt.status)

			srv := server.NewMediaServer(h.cfg, h.logger, media, &mocks.FakeSweeper{}, nil, nil)
			w := get(srv.Handler(), "/health")

			assert.Equal(t, tt.code, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body["status"])
		})
	}
}

func TestMediaServer_HealthUnhealthyWithoutOutboundZone(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)
	require.NoError(t, h.fs.RemoveAll(testOutboundDir))

	w := get(handler, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMediaServer_ByteRange(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)

	w := serve(handler, multipartUpload(t, "video", []byte("0123456789")))
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeProcess(t, w).VideoID

	req := httptest.NewRequest(http.MethodGet, "/api/video/"+id, nil)
	req.Header.Set("Range", "bytes=7-10")
	w = serve(handler, req)

	assert.Equal(t, http.StatusPartialContent, w.Code)
	assert.Equal(t, "0123", w.Body.String())
	assert.Equal(t, "bytes 7-10/17", w.Header().Get("Content-Range"))
}

func TestMediaServer_NotFoundWhileProcessing(t *testing.T) {
	h := newHarness(t)
	const id = "0190a5f2-7c1e-7a3b-9d2e-5f6a7b8c9d0e"

	started := make(chan struct{})
	proceed := make(chan struct{})
	copyInput := h.runner.RunStub
	h.runner.RunStub = func(ctx context.Context, inbound, outbound string) error {
		close(started)
		<-proceed
		return copyInput(ctx, inbound, outbound)
	}

	handler := h.server(t, func(b server.ServerBuilder) server.ServerBuilder {
		return b.WithIdentifierGenerator(fixedIDs(id))
	})

	req := multipartUpload(t, "video", []byte("in flight"))
	result := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		result <- serve(handler, req)
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("job never started")
	}

	w := get(handler, "/api/video/"+id)
	assert.Equal(t, http.StatusNotFound, w.Code, "an artifact is not servable until its job completes")
	assert.Equal(t, "Video not found", w.Body.String())

	close(proceed)
	upload := <-result
	require.Equal(t, http.StatusOK, upload.Code)
	assert.Equal(t, id, decodeProcess(t, upload).VideoID)

	w = get(handler, "/api/video/"+id)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMediaServer_ProcessRejectsBadUploads(t *testing.T) {
	tests := []struct {
		name           string
		maxSize        int64
		request        func(t *testing.T) *http.Request
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "no file part",
			request:        func(t *testing.T) *http.Request { return multipartUpload(t, "", nil) },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No video file provided",
		},
		{
			name:           "wrong field name",
			request:        func(t *testing.T) *http.Request { return multipartUpload(t, "file", []byte("clip")) },
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No video file provided",
		},
		{
			name: "not multipart",
			request: func(t *testing.T) *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/api/process", strings.NewReader(`{"video":"x"}`))
				req.Header.Set("Content-Type", "application/json")
				return req
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "No video file provided",
		},
		{
			name:           "file above ceiling",
			maxSize:        1024,
			request:        func(t *testing.T) *http.Request { return multipartUpload(t, "video", make([]byte, 4096)) },
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedError:  "File too large",
		},
		{
			name:           "body beyond multipart allowance",
			maxSize:        1024,
			request:        func(t *testing.T) *http.Request { return multipartUpload(t, "video", make([]byte, 3<<20)) },
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedError:  "File too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.maxSize > 0 {
				h.cfg.UploadConfig.MaxSize = tt.maxSize
			}

			w := serve(h.server(t, nil), tt.request(t))
			assert.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeProcess(t, w)
			assert.False(t, resp.Success)
			assert.Contains(t, resp.Error, tt.expectedError)
			assert.Empty(t, resp.VideoID)

			assert.Equal(t, 0, h.runner.RunCallCount())
			assert.Equal(t, 0, h.countInbound(t))
			assert.Equal(t, 0, h.countOutbound(t))
		})
	}
}

func TestMediaServer_ProcessJobFailure(t *testing.T) {
	h := newHarness(t)
	h.runner.RunStub = nil
	h.runner.RunReturns(server.NewJobError(1, "invalid data found when processing input", false, nil))

	w := serve(h.server(t, nil), multipartUpload(t, "video", []byte("corrupt")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeProcess(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "invalid data found")
	assert.Equal(t, 0, h.countInbound(t))
	assert.Equal(t, 0, h.countOutbound(t))
}

func TestMediaServer_VideoNotFound(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)

	for _, id := range []string{"0190a5f2-7c1e-7a3b-9d2e-5f6a7b8c9d0e", "not-a-uuid"} {
		w := get(handler, "/api/video/"+id)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, "Video not found", w.Body.String())
	}
}

func TestMediaServer_VideoStorageFault(t *testing.T) {
	h := newHarness(t)
	storage := &mocks.FakeArtifactStorage{}
	storage.ExistsReturns(false, assert.AnError)

	handler := h.server(t, func(b server.ServerBuilder) server.ServerBuilder {
		return b.WithStorage(storage)
	})

	w := get(handler, "/api/video/0190a5f2-7c1e-7a3b-9d2e-5f6a7b8c9d0e")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to read video", w.Body.String())
}

func TestMediaServer_Cleanup(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)

	testutils.WriteAgedFile(t, h.fs, h.outboundPath(staleID), []byte("old"), 2*time.Hour)
	testutils.WriteAgedFile(t, h.fs, h.outboundPath(freshID), []byte("new"), time.Minute)

	w := get(handler, "/api/cleanup")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCleanup(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Removed)
	assert.False(t, resp.Skipped)

	assert.Equal(t, http.StatusNotFound, get(handler, "/api/video/"+staleID).Code)
	assert.Equal(t, http.StatusOK, get(handler, "/api/video/"+freshID).Code)

	w = get(handler, "/api/cleanup")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decodeCleanup(t, w).Removed)
}

func TestMediaServer_CleanupSkipped(t *testing.T) {
	h := newHarness(t)
	lease := &mocks.FakeSweepLease{}
	lease.TryAcquireReturns(nil, false, nil)

	handler := h.server(t, func(b server.ServerBuilder) server.ServerBuilder {
		return b.WithSweepLease(lease)
	})

	w := get(handler, "/api/cleanup")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeCleanup(t, w)
	assert.True(t, resp.Success)
	assert.True(t, resp.Skipped)
	assert.Equal(t, 0, resp.Removed)
}

func TestMediaServer_CleanupFailure(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, nil)
	require.NoError(t, h.fs.RemoveAll(testOutboundDir))

	w := get(handler, "/api/cleanup")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	resp := decodeCleanup(t, w)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "cleanup failed")
}

// denyAll rejects every request it guards
type denyAll struct{}

func (denyAll) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, types.ErrorResponse{Error: "Invalid token"})
	}
}

func TestMediaServer_AuthenticatorGuardsAPI(t *testing.T) {
	h := newHarness(t)
	handler := h.server(t, func(b server.ServerBuilder) server.ServerBuilder {
		return b.WithAuthenticator(denyAll{})
	})

	assert.Equal(t, http.StatusUnauthorized, serve(handler, multipartUpload(t, "video", []byte("clip"))).Code)
	assert.Equal(t, http.StatusUnauthorized, get(handler, "/api/cleanup").Code)
	assert.Equal(t, http.StatusUnauthorized, get(handler, "/api/video/"+staleID).Code)
	assert.Equal(t, 0, h.runner.RunCallCount())

	assert.Equal(t, http.StatusOK, get(handler, "/health").Code)
	assert.Equal(t, http.StatusOK, get(handler, "/").Code)
}

func TestMediaServer_StartStop(t *testing.T) {
	h := newHarness(t)
	h.cfg.ServerConfig.Port = "0"

	sweeper := &mocks.FakeSweeper{}
	srv := server.NewMediaServer(h.cfg, h.logger, h.mediaService(nil), sweeper, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(ctx) }()

	assert.Eventually(t, func() bool { return sweeper.StartCallCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 1, sweeper.StopCallCount())

	require.NoError(t, srv.Stop(context.Background()))
	assert.Equal(t, 1, sweeper.StopCallCount(), "Stop runs once")
}

func TestMediaServer_StartListenerFailureTearsDown(t *testing.T) {
	occupied, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer occupied.Close()

	h := newHarness(t)
	_, port, err := net.SplitHostPort(occupied.Addr().String())
	require.NoError(t, err)
	h.cfg.ServerConfig.Port = port

	sweeper := &mocks.FakeSweeper{}
	srv := server.NewMediaServer(h.cfg, h.logger, h.mediaService(nil), sweeper, h.otel, nil)

	err = srv.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "media server failed")

	assert.Equal(t, 1, sweeper.StopCallCount())
	assert.Equal(t, 1, h.otel.ShutDownCallCount(), "telemetry is flushed when the listener fails")

	require.NoError(t, srv.Stop(context.Background()))
	assert.Equal(t, 1, h.otel.ShutDownCallCount(), "Stop runs once")
}

func TestMediaServer_ProcessOutlivesWriteTimeout(t *testing.T) {
	h := newHarness(t)
	h.cfg.ServerConfig.WriteTimeout = 300 * time.Millisecond
	h.cfg.JobConfig.Timeout = 5 * time.Second

	transform := h.runner.RunStub
	h.runner.RunStub = func(ctx context.Context, inbound, outbound string) error {
		time.Sleep(600 * time.Millisecond)
		return transform(ctx, inbound, outbound)
	}

	ts := httptest.NewUnstartedServer(h.server(t, func(b server.ServerBuilder) server.ServerBuilder {
		return b.WithIdentifierGenerator(fixedIDs(staleID))
	}))
	ts.Config.WriteTimeout = h.cfg.ServerConfig.WriteTimeout
	ts.Start()
	defer ts.Close()

	upload := multipartUpload(t, "video", []byte("clip"))
	resp, err := http.Post(ts.URL+"/api/process", upload.Header.Get("Content-Type"), upload.Body)
	require.NoError(t, err, "the connection must survive a job longer than the write timeout")
	defer resp.Body.Close()

	var body types.ProcessResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, staleID, body.VideoID)
	assert.Equal(t, 1, h.countOutbound(t))
}

func TestMediaServer_HandlersDelegateToMediaService(t *testing.T) {
	h := newHarness(t)

	media := &mocks.FakeMediaService{}
	media.ProcessReturns("", server.NewWriteError(server.ZoneInbound, "x", assert.AnError))
	media.OpenReturns(nil, nil, server.NewNotFoundError(server.ZoneOutbound, "x"))

	srv := server.NewMediaServer(h.cfg, h.logger, media, &mocks.FakeSweeper{}, nil, nil)
	handler := srv.Handler()

	w := serve(handler, multipartUpload(t, "video", []byte("clip")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeProcess(t, w).Error, "failed to write inbound artifact")

	require.Equal(t, 1, media.ProcessCallCount())
	_, upload := media.ProcessArgsForCall(0)
	assert.Equal(t, "clip.mp4", upload.Filename)
	assert.Equal(t, int64(4), upload.Size)

	w = get(handler, "/api/video/"+staleID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	_, id := media.OpenArgsForCall(0)
	assert.Equal(t, staleID, id)
	assert.Equal(t, 0, media.ContentTypeCallCount(), "no content type for a missing artifact")
}
