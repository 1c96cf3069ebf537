package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SHELLBRIDGE_HOME", dir)

	assert.Equal(t, dir, Home())
	assert.Equal(t, filepath.Join(dir, "shellbridge.db"), DBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), SettingsPath())
	assert.Equal(t, filepath.Join(dir, "ssh", "id_ed25519"), HostKeyPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, ".ssh", "id_rsa"), ExpandPath("~/.ssh/id_rsa"))
	assert.Equal(t, "/etc/hosts", ExpandPath("/etc/hosts"))
	assert.Equal(t, "", ExpandPath(""))
}
