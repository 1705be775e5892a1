package types

// ArtifactState represents where an upload is in its lifecycle
type ArtifactState string

// ArtifactState enum values, in lifecycle order
const (
	// ArtifactStateReceived means the upload is validated and persisted in the inbound zone
	ArtifactStateReceived ArtifactState = "received"

	// ArtifactStateProcessing means the transformation is running
	ArtifactStateProcessing ArtifactState = "processing"

	// ArtifactStateReady means the outbound artifact can be retrieved
	ArtifactStateReady ArtifactState = "ready"

	// ArtifactStateFailed means the transformation failed and the inbound file was discarded
	ArtifactStateFailed ArtifactState = "failed"

	// ArtifactStateExpired means the sweeper evicted the artifact
	ArtifactStateExpired ArtifactState = "expired"
)

// String returns the string representation of the ArtifactState
func (s ArtifactState) String() string {
	return string(s)
}

// Health status values reported by GET /health
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"
)

// CloudEvent type constants for artifact lifecycle notifications
const (
	EventArtifactReady   = "super8.artifact.ready"
	EventArtifactFailed  = "super8.artifact.failed"
	EventArtifactExpired = "super8.artifact.expired"
)

// ProcessResponse is returned by POST /api/process
type ProcessResponse struct {
	Success bool   `json:"success"`
	VideoID string `json:"videoId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// CleanupResponse is returned by GET /api/cleanup
type CleanupResponse struct {
	Success bool   `json:"success"`
	Removed int    `json:"removed"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the generic failure body
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
