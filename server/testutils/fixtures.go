package testutils

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	config "github.com/inference-gateway/super8/server/config"
	afero "github.com/spf13/afero"
	require "github.com/stretchr/testify/require"
)

// NewTestConfig returns the default configuration rooted at basePath with a
// short sweep interval so tests never wait on the real schedule.
func NewTestConfig(t *testing.T, basePath string) *config.Config {
	t.Helper()

	cfg, err := config.NewWithDefaults(context.Background(), &config.Config{
		StorageConfig: config.StorageConfig{BasePath: basePath},
	})
	require.NoError(t, err)

	cfg.RetentionConfig.SweepInterval = 0
	return cfg
}

// WriteAgedFile writes data to path and backdates its modification time by age
func WriteAgedFile(t *testing.T, fs afero.Fs, path string, data []byte, age time.Duration) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, data, 0644))

	modTime := time.Now().Add(-age)
	require.NoError(t, fs.Chtimes(path, modTime, modTime))
}

// CountFiles returns the number of regular files directly inside dir
func CountFiles(t *testing.T, fs afero.Fs, dir string) int {
	t.Helper()

	infos, err := afero.ReadDir(fs, dir)
	require.NoError(t, err)

	count := 0
	for _, info := range infos {
		if info.Mode().IsRegular() {
			count++
		}
	}
	return count
}
