package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_DisabledDiscards(t *testing.T) {
	t.Setenv("SHELLBRIDGE_DEBUG", "")
	t.Setenv("SHELLBRIDGE_DEBUG_FILE", "")

	path, err := Initialize(false, "", DefaultMaxLogFiles)

	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotNil(t, Logger)
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("SHELLBRIDGE_DEBUG", "")
	t.Setenv("SHELLBRIDGE_DEBUG_FILE", "")
	file := filepath.Join(t.TempDir(), "nested", "debug.log")

	path, err := Initialize(false, file, DefaultMaxLogFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Initialize(false, "", DefaultMaxLogFiles) })

	assert.Equal(t, file, path)
	Logger.Info("hello from test")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
}

func TestInitialize_EnvDebugFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("SHELLBRIDGE_DEBUG_FILE", file)

	path, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = Initialize(false, "", DefaultMaxLogFiles) })

	assert.Equal(t, file, path)
}

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
		require.NoError(t, os.Chtimes(p, base.Add(time.Duration(i)*time.Minute), base.Add(time.Duration(i)*time.Minute)))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o600))

	require.NoError(t, rotateLogs(dir, 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"3.log", "4.log", "keep.txt"}, names)
}

func TestRotateLogs_UnderLimit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0o600))

	require.NoError(t, rotateLogs(dir, 10))

	_, err := os.Stat(filepath.Join(dir, "a.log"))
	assert.NoError(t, err)
}
