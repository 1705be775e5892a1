package server

import (
	"context"
	"io"
	"time"

	"github.com/spf13/afero"
)

// Zone names one of the two storage areas
type Zone string

const (
	// ZoneInbound holds raw uploads waiting for, or undergoing, transformation
	ZoneInbound Zone = "inbound"
	// ZoneOutbound holds transformed artifacts inside their serving window
	ZoneOutbound Zone = "outbound"
)

// Zones lists every zone in sweep order
var Zones = []Zone{ZoneOutbound, ZoneInbound}

// ArtifactStorage defines the storage area shared by the request path and the sweeper.
// The filesystem is the only record of an artifact: every query goes to it.
//
//go:generate go tool counterfeiter -o mocks/fake_artifact_storage.go . ArtifactStorage
type ArtifactStorage interface {
	// PathFor returns the canonical path of an artifact. It is pure and deterministic.
	PathFor(zone Zone, artifactID string) string

	// Write stores the full contents of data before making the artifact visible
	Write(ctx context.Context, zone Zone, artifactID string, data io.Reader) (int64, error)

	// Exists checks the filesystem for an artifact
	Exists(ctx context.Context, zone Zone, artifactID string) (bool, error)

	// Open opens an artifact for reading
	Open(ctx context.Context, zone Zone, artifactID string) (afero.File, error)

	// Remove deletes an artifact; absence is not an error
	Remove(ctx context.Context, zone Zone, artifactID string) error

	// ListWithAge enumerates the artifacts currently in a zone
	ListWithAge(ctx context.Context, zone Zone) ([]ArtifactEntry, error)

	// CheckZone verifies that the zone directory exists and accepts writes
	CheckZone(ctx context.Context, zone Zone) error

	// RemoveStaleTemp deletes abandoned partial writes older than maxAge
	RemoveStaleTemp(ctx context.Context, zone Zone, maxAge time.Duration) (int, error)
}

// ArtifactEntry describes one artifact found in a zone
type ArtifactEntry struct {
	ID      string        `json:"id"`
	Size    int64         `json:"size"`
	ModTime time.Time     `json:"mod_time"`
	Age     time.Duration `json:"age"`
}
