package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/inference-gateway/super8/server/config"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	tempPrefix = "."
	tempSuffix = ".part"
)

// FilesystemArtifactStorage implements ArtifactStorage on top of an afero filesystem
type FilesystemArtifactStorage struct {
	fs     afero.Fs
	logger *zap.Logger
	dirs   map[Zone]string
	exts   map[Zone]string
	now    func() time.Time
}

var _ ArtifactStorage = (*FilesystemArtifactStorage)(nil)

// NewFilesystemArtifactStorage creates the zone directories if needed and returns the storage
func NewFilesystemArtifactStorage(fs afero.Fs, cfg *config.StorageConfig, logger *zap.Logger) (*FilesystemArtifactStorage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("storage configuration is required")
	}

	storage := &FilesystemArtifactStorage{
		fs:     fs,
		logger: logger,
		dirs: map[Zone]string{
			ZoneInbound:  cfg.InboundPath(),
			ZoneOutbound: cfg.OutboundPath(),
		},
		exts: map[Zone]string{
			ZoneInbound:  cfg.InboundExt,
			ZoneOutbound: cfg.OutboundExt,
		},
		now: time.Now,
	}

	if err := storage.EnsureZones(); err != nil {
		return nil, err
	}

	return storage, nil
}

// EnsureZones creates both zone directories; calling it again is harmless
func (s *FilesystemArtifactStorage) EnsureZones() error {
	for _, zone := range Zones {
		if err := s.fs.MkdirAll(s.dirs[zone], 0755); err != nil {
			return fmt.Errorf("failed to create %s directory: %w", zone, err)
		}
	}
	return nil
}

// PathFor returns the canonical path of an artifact
func (s *FilesystemArtifactStorage) PathFor(zone Zone, artifactID string) string {
	return filepath.Join(s.dirs[zone], sanitizePath(artifactID)+s.exts[zone])
}

// Write copies data into a temp file inside the zone, syncs it and renames it into place
func (s *FilesystemArtifactStorage) Write(ctx context.Context, zone Zone, artifactID string, data io.Reader) (int64, error) {
	if err := s.check(zone, artifactID); err != nil {
		return 0, NewWriteError(zone, artifactID, err)
	}

	tmp, err := afero.TempFile(s.fs, s.dirs[zone], tempPrefix+sanitizePath(artifactID)+"-*"+tempSuffix)
	if err != nil {
		return 0, NewWriteError(zone, artifactID, fmt.Errorf("failed to create temp file: %w", err))
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = s.fs.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmp, data)
	if err != nil {
		_ = tmp.Close()
		return 0, NewWriteError(zone, artifactID, fmt.Errorf("failed to write artifact data: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return 0, NewWriteError(zone, artifactID, fmt.Errorf("failed to sync artifact data: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return 0, NewWriteError(zone, artifactID, fmt.Errorf("failed to close temp file: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return 0, NewWriteError(zone, artifactID, err)
	}

	if err := s.fs.Rename(tmpPath, s.PathFor(zone, artifactID)); err != nil {
		return 0, NewWriteError(zone, artifactID, fmt.Errorf("failed to move artifact into place: %w", err))
	}

	success = true
	return written, nil
}

// Exists checks if an artifact exists in the zone
func (s *FilesystemArtifactStorage) Exists(ctx context.Context, zone Zone, artifactID string) (bool, error) {
	if err := s.check(zone, artifactID); err != nil {
		return false, err
	}

	info, err := s.fs.Stat(s.PathFor(zone, artifactID))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check artifact existence: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Open opens an artifact for reading
func (s *FilesystemArtifactStorage) Open(ctx context.Context, zone Zone, artifactID string) (afero.File, error) {
	if err := s.check(zone, artifactID); err != nil {
		return nil, err
	}

	file, err := s.fs.Open(s.PathFor(zone, artifactID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFoundError(zone, artifactID)
		}
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}

	return file, nil
}

// Remove deletes an artifact from the zone
func (s *FilesystemArtifactStorage) Remove(ctx context.Context, zone Zone, artifactID string) error {
	if err := s.check(zone, artifactID); err != nil {
		return err
	}

	err := s.fs.Remove(s.PathFor(zone, artifactID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete artifact: %w", err)
	}
	return nil
}

// ListWithAge enumerates the zone's artifacts, ageing them against the current time
func (s *FilesystemArtifactStorage) ListWithAge(ctx context.Context, zone Zone) ([]ArtifactEntry, error) {
	dir, ok := s.dirs[zone]
	if !ok {
		return nil, fmt.Errorf("unknown zone: %s", zone)
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s zone: %w", zone, err)
	}

	now := s.now()
	ext := s.exts[zone]
	entries := make([]ArtifactEntry, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !info.Mode().IsRegular() || strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, ext) {
			continue
		}

		entries = append(entries, ArtifactEntry{
			ID:      strings.TrimSuffix(name, ext),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Age:     ageOf(now, info.ModTime()),
		})
	}

	return entries, nil
}

// CheckZone creates and removes a temp file in the zone. A leftover is
// reclaimed by RemoveStaleTemp like any abandoned write.
func (s *FilesystemArtifactStorage) CheckZone(ctx context.Context, zone Zone) error {
	dir, ok := s.dirs[zone]
	if !ok {
		return fmt.Errorf("unknown zone: %s", zone)
	}

	info, err := s.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s zone: %w", zone, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s zone is not a directory: %s", zone, dir)
	}

	tmp, err := afero.TempFile(s.fs, dir, tempPrefix+"health-*"+tempSuffix)
	if err != nil {
		return fmt.Errorf("%s zone is not writable: %w", zone, err)
	}
	name := tmp.Name()
	if err := tmp.Close(); err != nil {
		s.logger.Debug("failed to close health check file", zap.String("file", name), zap.Error(err))
	}
	if err := s.fs.Remove(name); err != nil {
		return fmt.Errorf("failed to remove health check file in %s zone: %w", zone, err)
	}
	return nil
}

// RemoveStaleTemp deletes partial writes left behind by a crashed upload
func (s *FilesystemArtifactStorage) RemoveStaleTemp(ctx context.Context, zone Zone, maxAge time.Duration) (int, error) {
	dir, ok := s.dirs[zone]
	if !ok {
		return 0, fmt.Errorf("unknown zone: %s", zone)
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list %s zone: %w", zone, err)
	}

	now := s.now()
	removed := 0
	for _, info := range infos {
		name := info.Name()
		if !info.Mode().IsRegular() || !strings.HasPrefix(name, tempPrefix) || !strings.HasSuffix(name, tempSuffix) {
			continue
		}
		if ageOf(now, info.ModTime()) <= maxAge {
			continue
		}
		if err := s.fs.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove stale temp file",
				zap.String("zone", string(zone)),
				zap.String("file", name),
				zap.Error(err))
			continue
		}
		removed++
	}

	return removed, nil
}

func (s *FilesystemArtifactStorage) check(zone Zone, artifactID string) error {
	if _, ok := s.dirs[zone]; !ok {
		return fmt.Errorf("unknown zone: %s", zone)
	}
	if sanitizePath(artifactID) == "" {
		return fmt.Errorf("invalid artifact ID")
	}
	return nil
}

func ageOf(now, modTime time.Time) time.Duration {
	age := now.Sub(modTime)
	if age < 0 {
		return 0
	}
	return age
}

// sanitizePath removes dangerous characters and path traversal attempts
func sanitizePath(path string) string {
	path = strings.ReplaceAll(path, "/", "")
	path = strings.ReplaceAll(path, "\\", "")
	path = strings.ReplaceAll(path, "..", "")
	path = strings.TrimSpace(path)
	return path
}
