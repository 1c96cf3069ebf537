package ssh

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/shellbridge/internal/adapters/shellio"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ports"
)

// client implements ports.ShellClient
type client struct {
	cancel     context.CancelFunc
	closeErr   error
	closeOnce  sync.Once
	conn       *gossh.Client
	connected  atomic.Bool
	terminator string
}

func newClient(conn *gossh.Client, cfg Config) *client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &client{
		cancel:     cancel,
		conn:       conn,
		terminator: cfg.LineTerminator,
	}
	c.connected.Store(true)

	go func() {
		err := conn.Wait()
		c.connected.Store(false)
		cancel()
		logging.Logger.Debug("SSH connection ended", "error", err)
	}()

	if cfg.KeepaliveInterval > 0 {
		go c.keepalive(ctx, cfg.KeepaliveInterval)
	}

	return c
}

// keepalive detects dead peers that never close the TCP connection
func (c *client) keepalive(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, _, err := c.conn.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				logging.Logger.Warn("SSH keepalive failed", "error", err)
				c.connected.Store(false)
				c.conn.Close()
				return
			}
		}
	}
}

// OpenShell requests a pty with req and starts the login shell
func (c *client) OpenShell(ctx context.Context, req ports.PTYRequest) (ports.ShellStream, error) {
	session, err := c.conn.NewSession()
	if err != nil {
		return nil, fmt.Errorf("create ssh session: %w", err)
	}
	stop := context.AfterFunc(ctx, func() { session.Close() })
	fail := func(err error) (ports.ShellStream, error) {
		stop()
		session.Close()
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		return nil, err
	}

	ok, err := session.SendRequest("pty-req", true, ptyRequestPayload(req))
	if err != nil {
		return fail(fmt.Errorf("request pty: %w", err))
	}
	if !ok {
		return fail(fmt.Errorf("request pty: rejected by server"))
	}

	stdin, err := session.StdinPipe()
	if err != nil {
		return fail(fmt.Errorf("stdin pipe: %w", err))
	}
	stdout, err := session.StdoutPipe()
	if err != nil {
		return fail(fmt.Errorf("stdout pipe: %w", err))
	}
	stderr, err := session.StderrPipe()
	if err != nil {
		return fail(fmt.Errorf("stderr pipe: %w", err))
	}

	if err := session.Shell(); err != nil {
		return fail(fmt.Errorf("start shell: %w", err))
	}
	if !stop() {
		return nil, context.Cause(ctx)
	}

	logging.Logger.Debug("Shell started", "term", req.Term, "cols", req.Cols, "rows", req.Rows)
	return shellio.NewStream(stdin, session.Close, c.terminator, stdout, stderr), nil
}

// IsConnected is false once the connection ended or a keepalive failed
func (c *client) IsConnected() bool {
	return c.connected.Load()
}

// Close closes the connection once
func (c *client) Close() error {
	c.closeOnce.Do(func() {
		c.connected.Store(false)
		c.cancel()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}
