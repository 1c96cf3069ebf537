//go:build linux || darwin

package local

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/ports"
)

func openShell(t *testing.T) (ports.ShellClient, ports.ShellStream) {
	t.Helper()
	transport := NewTransport(Config{Shell: "/bin/sh"})

	client, err := transport.Connect(context.Background(), domain.Target{Host: "localhost"}, domain.Credential{})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	stream, err := client.OpenShell(context.Background(), ports.DefaultPTYRequest())
	require.NoError(t, err)
	t.Cleanup(func() { stream.Close() })

	return client, stream
}

func collectUntil(t *testing.T, stream ports.ShellStream, pattern *regexp.Regexp) string {
	t.Helper()
	var got strings.Builder
	require.Eventually(t, func() bool {
		if stream.DataAvailable() {
			data, _ := stream.ReadAvailable()
			got.Write(data)
		}
		return pattern.MatchString(got.String())
	}, 5*time.Second, 10*time.Millisecond, "output so far: %q", got.String())
	return got.String()
}

func TestLocal_RunsCommands(t *testing.T) {
	_, stream := openShell(t)

	require.NoError(t, stream.WriteLine("echo bridge-$((40+2))"))

	collectUntil(t, stream, regexp.MustCompile(`bridge-42`))
}

func TestLocal_PtyGeometryAndEcho(t *testing.T) {
	_, stream := openShell(t)

	require.NoError(t, stream.WriteLine("stty -a; echo done-$((1+1))"))

	out := collectUntil(t, stream, regexp.MustCompile(`done-2`))
	assert.Regexp(t, `rows 24; columns 80|24 rows; 80 columns`, out)
	assert.Regexp(t, `(^|\s)-echo(\s|$)`, out)
}

func TestLocal_ExitEndsConnection(t *testing.T) {
	client, stream := openShell(t)

	require.NoError(t, stream.WriteLine("exit"))

	require.Eventually(t, func() bool { return !client.IsConnected() }, 5*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, err := stream.ReadAvailable()
		return err == io.EOF
	}, 5*time.Second, 10*time.Millisecond)
}

func TestLocal_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTransport(Config{}).Connect(ctx, domain.Target{}, domain.Credential{})

	assert.ErrorIs(t, err, context.Canceled)
}
