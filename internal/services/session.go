package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/output"
	"github.com/renato0307/shellbridge/internal/ports"
)

// SessionOptions tunes a SessionService
type SessionOptions struct {
	ConnectTimeout  time.Duration // dial, auth and shell start; zero means no limit
	OnConnected     func(target domain.Target)
	PTY             ports.PTYRequest
	PollInterval    time.Duration // reader loop tick, must be positive
	ShutdownTimeout time.Duration // Disconnect wait for the reader
	TeardownTimeout time.Duration // Close and implicit teardown wait for the reader
}

// DefaultSessionOptions returns the stock tuning
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		ConnectTimeout:  30 * time.Second,
		PTY:             ports.DefaultPTYRequest(),
		PollInterval:    50 * time.Millisecond,
		ShutdownTimeout: 2 * time.Second,
		TeardownTimeout: 500 * time.Millisecond,
	}
}

// connection is one live shell and the reader bound to it
type connection struct {
	cancel  context.CancelFunc
	client  ports.ShellClient
	done    chan struct{}
	emitMu  sync.Mutex
	revoked bool
	stream  ports.ShellStream
	target  domain.Target
}

// emit enqueues chunk unless the connection was revoked
func (c *connection) emit(out *output.Channel, chunk domain.Chunk) bool {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	if c.revoked {
		return false
	}
	out.Enqueue(chunk)
	return true
}

// revoke stops the reader and guarantees it enqueues nothing more
func (c *connection) revoke() {
	c.emitMu.Lock()
	c.revoked = true
	c.emitMu.Unlock()
	c.cancel()
}

// SessionService owns one interactive shell connection at a time and feeds its
// output into a Channel for the presenter.
//
// Lifecycle transitions are serialized by mu, which is never held across network
// I/O. The live connection is published through an atomic pointer that disconnect
// paths swap to nil, so exactly one of them releases it.
type SessionService struct {
	active        atomic.Pointer[connection]
	activeReaders atomic.Int32
	attempt       uint64
	attemptCancel context.CancelFunc
	closed        bool
	mu            sync.Mutex
	opts          SessionOptions
	output        *output.Channel
	state         atomic.Int32
	target        domain.Target
	transport     ports.ShellTransport
}

// NewSessionService creates a disconnected session using transport
func NewSessionService(transport ports.ShellTransport, opts SessionOptions) *SessionService {
	defaults := DefaultSessionOptions()
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaults.PollInterval
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if opts.TeardownTimeout <= 0 {
		opts.TeardownTimeout = defaults.TeardownTimeout
	}
	if opts.PTY.Term == "" {
		opts.PTY = defaults.PTY
	}

	return &SessionService{
		opts:      opts,
		output:    output.NewChannel(),
		transport: transport,
	}
}

// Output returns the channel the presenter drains
func (s *SessionService) Output() *output.Channel {
	return s.output
}

// State returns the current connection state
func (s *SessionService) State() domain.ConnectionState {
	return domain.ConnectionState(s.state.Load())
}

// Target returns the target of the latest connection attempt
func (s *SessionService) Target() domain.Target {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

// readerCount returns the number of running reader loops, at most one in steady state
func (s *SessionService) readerCount() int {
	return int(s.activeReaders.Load())
}

func (s *SessionService) setState(state domain.ConnectionState) {
	s.state.Store(int32(state))
}

// Connect starts a connection attempt and returns immediately. A live connection
// is torn down first without a status chunk, and an attempt still in flight is
// superseded. The outcome is reported on the output channel. credential is
// destroyed once the attempt ends.
func (s *SessionService) Connect(target domain.Target, credential domain.Credential) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		credential.Destroy()
		return domain.ErrSessionClosed
	}

	s.cancelAttemptLocked()
	gen := s.attempt
	previous := s.active.Swap(nil)
	if previous != nil {
		previous.revoke()
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if s.opts.ConnectTimeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), s.opts.ConnectTimeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	s.attemptCancel = cancel
	s.target = target
	s.setState(domain.StateConnecting)
	s.mu.Unlock()

	logging.Logger.Info("Connecting", "target", target.String(), "attempt", gen)
	go s.establish(ctx, cancel, gen, previous, target, credential)
	return nil
}

// cancelAttemptLocked supersedes the in-flight attempt, if any, and reports whether there was one
func (s *SessionService) cancelAttemptLocked() bool {
	s.attempt++
	if s.attemptCancel == nil {
		return false
	}
	s.attemptCancel()
	s.attemptCancel = nil
	return true
}

// establish runs off the caller's goroutine; every outcome becomes a chunk
func (s *SessionService) establish(
	ctx context.Context,
	cancel context.CancelFunc,
	gen uint64,
	previous *connection,
	target domain.Target,
	credential domain.Credential,
) {
	defer cancel()
	defer credential.Destroy()

	if previous != nil {
		s.release(previous, s.opts.TeardownTimeout)
	}

	client, stream, err := s.open(ctx, target, credential)

	s.mu.Lock()
	if gen != s.attempt || s.closed {
		s.mu.Unlock()
		logging.Logger.Debug("Discarding superseded connection attempt", "attempt", gen, "error", err)
		if err == nil {
			_ = stream.Close()
			_ = client.Close()
		}
		return
	}
	s.attemptCancel = nil

	if err != nil {
		s.setState(domain.StateDisconnected)
		s.output.Enqueue(domain.ConnectionErrorChunk(connectErrorMessage(err, s.opts.ConnectTimeout)))
		s.mu.Unlock()
		logging.Logger.Warn("Connection failed", "target", target.String(), "error", err)
		return
	}

	readerCtx, readerCancel := context.WithCancel(context.Background())
	conn := &connection{
		cancel: readerCancel,
		client: client,
		done:   make(chan struct{}),
		stream: stream,
		target: target,
	}
	s.active.Store(conn)
	s.setState(domain.StateConnected)
	s.output.Enqueue(domain.ConnectedChunk(target.Host))
	s.activeReaders.Add(1)
	s.mu.Unlock()

	logging.Logger.Info("Connected", "target", target.String())
	go s.readLoop(readerCtx, conn)

	if s.opts.OnConnected != nil {
		s.opts.OnConnected(target)
	}
}

// open dials and starts the shell, closing the client if the shell fails
func (s *SessionService) open(
	ctx context.Context,
	target domain.Target,
	credential domain.Credential,
) (ports.ShellClient, ports.ShellStream, error) {
	client, err := s.transport.Connect(ctx, target, credential)
	if err != nil {
		return nil, nil, err
	}

	stream, err := client.OpenShell(ctx, s.opts.PTY)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return client, stream, nil
}

func connectErrorMessage(err error, timeout time.Duration) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("connection timed out after %s", timeout)
	}
	return err.Error()
}

// Send writes line plus the transport's terminator to the shell, then echoes it.
// It does nothing for an empty line or when not connected. A failed write is
// returned and not echoed.
func (s *SessionService) Send(line string) error {
	if line == "" {
		return nil
	}
	conn := s.active.Load()
	if conn == nil || s.State() != domain.StateConnected {
		return nil
	}

	if err := conn.stream.WriteLine(line); err != nil {
		logging.Logger.Warn("Failed to send line", "error", err)
		return fmt.Errorf("send to %s: %w", conn.target.Host, err)
	}
	conn.emit(s.output, domain.EchoChunk(line))
	return nil
}

// Disconnect stops the reader, closes the shell and the connection, and reports
// "[Disconnected]" when there was a live connection or a pending attempt.
// It waits up to ShutdownTimeout for the reader. Safe to call repeatedly.
func (s *SessionService) Disconnect() {
	s.mu.Lock()
	pending := s.cancelAttemptLocked()
	gen := s.attempt
	conn := s.active.Swap(nil)
	if conn == nil && !pending {
		s.mu.Unlock()
		return
	}
	if conn != nil {
		conn.revoke()
	}
	s.setState(domain.StateDisconnecting)
	s.output.Enqueue(domain.DisconnectedChunk())
	s.mu.Unlock()

	if conn != nil {
		s.release(conn, s.opts.ShutdownTimeout)
	}
	s.settle(gen)
}

// Close is teardown for the owner: it disconnects with TeardownTimeout, emits
// nothing and makes later Connect calls fail with ErrSessionClosed.
func (s *SessionService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.cancelAttemptLocked()
	conn := s.active.Swap(nil)
	if conn != nil {
		conn.revoke()
		s.setState(domain.StateDisconnecting)
	}
	s.mu.Unlock()

	if conn != nil {
		s.release(conn, s.opts.TeardownTimeout)
	}
	s.setState(domain.StateDisconnected)
}

// remoteClosed is the reader's request for cleanup. It races explicit disconnects
// for the connection handle; only the winner reports "[Disconnected]".
func (s *SessionService) remoteClosed(conn *connection) {
	s.mu.Lock()
	if !s.active.CompareAndSwap(conn, nil) {
		s.mu.Unlock()
		return
	}
	conn.revoke()
	gen := s.attempt
	s.setState(domain.StateDisconnecting)
	s.output.Enqueue(domain.DisconnectedChunk())
	s.mu.Unlock()

	logging.Logger.Info("Remote side closed the connection", "target", conn.target.String())
	s.release(conn, s.opts.ShutdownTimeout)
	s.settle(gen)
}

// settle moves to Disconnected unless a newer attempt took over meanwhile
func (s *SessionService) settle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.attempt == gen && s.active.Load() == nil {
		s.setState(domain.StateDisconnected)
	}
}

// release waits up to bound for the reader, then closes the stream and the client.
// A reader that misses the bound is abandoned; revoke already silenced it.
func (s *SessionService) release(conn *connection, bound time.Duration) {
	timer := time.NewTimer(bound)
	defer timer.Stop()

	select {
	case <-conn.done:
	case <-timer.C:
		logging.Logger.Warn("Reader did not stop in time, releasing connection anyway",
			"target", conn.target.String(),
			"timeout", bound)
	}

	if err := conn.stream.Close(); err != nil {
		logging.Logger.Debug("Failed to close shell stream", "error", err)
	}
	if err := conn.client.Close(); err != nil {
		logging.Logger.Debug("Failed to close connection", "error", err)
	}
}
