package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestUser is the USER value seen by the binary
const TestUser = "tester"

// TestEnvironment is an isolated SHELLBRIDGE_HOME
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates a temp home removed with the test
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	home := filepath.Join(tb.TempDir(), ".shellbridge")
	require.NoError(tb, os.MkdirAll(home, 0o755))

	return &TestEnvironment{
		Home:     home,
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns the process environment with SHELLBRIDGE_* replaced
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "SHELLBRIDGE_") || key == "USER" {
			continue
		}
		if _, ok := e.extraEnv[key]; ok {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"SHELLBRIDGE_HOME="+e.Home,
		"USER="+TestUser,
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// SettingsPath returns the settings.json inside the isolated home
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// DBPath returns the profile database inside the isolated home
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.Home, "shellbridge.db")
}

// WriteSettings writes raw settings.json content
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	require.NoError(e.tb, os.WriteFile(e.SettingsPath(), []byte(content), 0o644))
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}
