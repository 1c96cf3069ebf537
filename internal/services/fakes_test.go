package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/ports"
)

// fakeStream is an in-memory shell stream. When block is set, ReadAvailable
// waits on it, which simulates a reader that ignores cancellation. The next
// readFailures reads return readErr before any pending data.
type fakeStream struct {
	block        chan struct{}
	closed       atomic.Bool
	eof          bool
	failedReads  int
	mu           sync.Mutex
	pending      []byte
	readErr      error
	readFailures int
	writeErr     error
	writes       []string
}

func (f *fakeStream) failReads(err error, n int) {
	f.mu.Lock()
	f.readErr = err
	f.readFailures = n
	f.mu.Unlock()
}

func (f *fakeStream) failures() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failedReads
}

func (f *fakeStream) push(text string) {
	f.mu.Lock()
	f.pending = append(f.pending, text...)
	f.mu.Unlock()
}

func (f *fakeStream) finish() {
	f.mu.Lock()
	f.eof = true
	f.mu.Unlock()
}

func (f *fakeStream) written() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.writes...)
}

func (f *fakeStream) DataAvailable() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.pending) > 0 || f.eof || f.readFailures > 0
}

func (f *fakeStream) ReadAvailable() ([]byte, error) {
	f.mu.Lock()
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readFailures > 0 {
		f.readFailures--
		f.failedReads++
		return nil, f.readErr
	}
	if len(f.pending) > 0 {
		out := f.pending
		f.pending = nil
		return out, nil
	}
	if f.eof {
		return nil, io.EOF
	}
	return nil, nil
}

func (f *fakeStream) WriteLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, line)
	return nil
}

func (f *fakeStream) Close() error {
	f.closed.Store(true)
	return nil
}

type fakeClient struct {
	closed    atomic.Bool
	connected atomic.Bool
	stream    *fakeStream
}

func (f *fakeClient) OpenShell(ctx context.Context, req ports.PTYRequest) (ports.ShellStream, error) {
	return f.stream, nil
}

func (f *fakeClient) IsConnected() bool {
	return f.connected.Load()
}

func (f *fakeClient) Close() error {
	f.closed.Store(true)
	f.connected.Store(false)
	return nil
}

// fakeTransport hands out fake clients. A non-nil gate holds Connect until it is
// closed or the attempt is cancelled.
type fakeTransport struct {
	banner  string
	clients []*fakeClient
	gate    chan struct{}
	mu      sync.Mutex
	prepare func(*fakeStream)
}

func (f *fakeTransport) Connect(ctx context.Context, target domain.Target, credential domain.Credential) (ports.ShellClient, error) {
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if target.Host == "refused.example.com" {
		return nil, errors.New("connection refused")
	}

	stream := &fakeStream{}
	if f.banner != "" {
		stream.push(f.banner)
	}
	if f.prepare != nil {
		f.prepare(stream)
	}
	client := &fakeClient{stream: stream}
	client.connected.Store(true)

	f.mu.Lock()
	f.clients = append(f.clients, client)
	f.mu.Unlock()
	return client, nil
}

func (f *fakeTransport) all() []*fakeClient {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*fakeClient(nil), f.clients...)
}

func testOptions() SessionOptions {
	opts := DefaultSessionOptions()
	opts.ConnectTimeout = 0
	opts.PollInterval = 5 * time.Millisecond
	opts.ShutdownTimeout = 500 * time.Millisecond
	opts.TeardownTimeout = 200 * time.Millisecond
	return opts
}

func newTestService(t *testing.T, transport ports.ShellTransport, opts SessionOptions) *SessionService {
	t.Helper()
	svc := NewSessionService(transport, opts)
	t.Cleanup(svc.Close)
	return svc
}

// collector accumulates everything drained from a session's output
type collector struct {
	chunks []domain.Chunk
	svc    *SessionService
	t      *testing.T
}

func newCollector(t *testing.T, svc *SessionService) *collector {
	return &collector{svc: svc, t: t}
}

func (c *collector) drain() []domain.Chunk {
	c.chunks = append(c.chunks, c.svc.Output().DrainAll()...)
	return c.chunks
}

func (c *collector) waitFor(cond func([]domain.Chunk) bool, msg string) {
	c.t.Helper()
	require.Eventually(c.t, func() bool { return cond(c.drain()) }, 3*time.Second, 5*time.Millisecond, msg)
}

func (c *collector) waitForText(text string) {
	c.t.Helper()
	c.waitFor(func(chunks []domain.Chunk) bool { return count(chunks, text) > 0 }, "waiting for "+text)
}

func count(chunks []domain.Chunk, text string) int {
	n := 0
	for _, c := range chunks {
		if c.Text == text {
			n++
		}
	}
	return n
}

func password(t *testing.T) domain.Credential {
	t.Helper()
	cred, err := domain.PasswordCredential([]byte("hunter2"))
	require.NoError(t, err)
	return cred
}

var testTarget = domain.Target{Host: "example.com", Port: 22, Username: "ops"}
