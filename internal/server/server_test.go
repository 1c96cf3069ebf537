package server

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/shellbridge/internal/ui"
)

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := filepath.Join(t.TempDir(), "authorized_keys")
	content := "# operators\n\nnot a key\n" + string(gossh.MarshalAuthorizedKey(allowed))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	assert.False(t, isKeyAuthorized(newPublicKey(t), filepath.Join(t.TempDir(), "authorized_keys")))
}

func newTestServer(t *testing.T, port int) *Server {
	t.Helper()
	dir := t.TempDir()
	srv, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		HostKeyPath:        filepath.Join(dir, "ssh", "id_ed25519"),
		Host:               "127.0.0.1",
		ModelOptions:       ui.ModelOptions{Connect: true},
		Port:               port,
	}, func() (ui.Bridge, error) { return nil, nil })
	require.NoError(t, err)
	return srv
}

func TestNewServer_RunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, 0)

	assert.Equal(t, "127.0.0.1:0", srv.Address())
	assert.False(t, srv.modelOptions.Connect, "credentials are always asked for")

	// cancel races the start of Serve; repeat to cover both orders
	for i := 0; i < 20; i++ {
		run := newTestServer(t, 0)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- run.Run(ctx) }()
		cancel()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatalf("server did not stop (iteration %d)", i)
		}
	}
}

func TestNewServer_CreatesHostKeyDir(t *testing.T) {
	dir := t.TempDir()
	_, err := NewServer(Options{
		AuthorizedKeysPath: filepath.Join(dir, "authorized_keys"),
		HostKeyPath:        filepath.Join(dir, "ssh", "id_ed25519"),
		Host:               "127.0.0.1",
	}, func() (ui.Bridge, error) { return nil, nil })
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(dir, "ssh"))
}

func TestRun_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := newTestServer(t, busy.Addr().(*net.TCPAddr).Port)

	err = srv.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
