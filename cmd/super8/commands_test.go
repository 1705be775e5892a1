package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	testutils "github.com/inference-gateway/super8/server/testutils"
	afero "github.com/spf13/afero"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestSweepCommand(t *testing.T) {
	t.Setenv("STORAGE_BASE_PATH", "/srv/super8")
	t.Setenv("RETENTION_OUTBOUND_MAX_AGE", "1h")
	t.Setenv("RETENTION_INBOUND_MAX_AGE", "15m")

	fs := afero.NewMemMapFs()
	outbound := "/srv/super8/output"
	inbound := "/srv/super8/uploads"

	testutils.WriteAgedFile(t, fs, filepath.Join(outbound, "0190a5f2-0000-7000-8000-000000000001.mov"), []byte("old"), 2*time.Hour)
	testutils.WriteAgedFile(t, fs, filepath.Join(outbound, "0190a5f2-0000-7000-8000-000000000002.mov"), []byte("fresh"), 10*time.Minute)
	testutils.WriteAgedFile(t, fs, filepath.Join(inbound, "0190a5f2-0000-7000-8000-000000000003.mp4"), []byte("orphan"), 20*time.Minute)

	var out bytes.Buffer
	cmd := NewRootCommand(fs, "test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sweep", "--env-file", ""})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	assert.Equal(t, "removed 1 outbound, 1 inbound, 0 temp\n", out.String())
	assert.Equal(t, 1, testutils.CountFiles(t, fs, outbound))
	assert.Equal(t, 0, testutils.CountFiles(t, fs, inbound))
}

func TestSweepCommand_InvalidConfiguration(t *testing.T) {
	t.Setenv("UPLOAD_MAX_SIZE", "0")

	cmd := NewRootCommand(afero.NewMemMapFs(), "test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"sweep", "--env-file", ""})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload max size must be positive")
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("values are exported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("SUPER8_TEST_ENV_VALUE=loaded\n"), 0600))
		t.Setenv("SUPER8_TEST_ENV_VALUE", "")
		require.NoError(t, os.Unsetenv("SUPER8_TEST_ENV_VALUE"))

		require.NoError(t, loadEnvFile(path))
		assert.Equal(t, "loaded", os.Getenv("SUPER8_TEST_ENV_VALUE"))
	})
}
