// Package ssh connects to remote hosts with golang.org/x/crypto/ssh and opens
// interactive pty-backed shells.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ports"
)

// Config holds transport settings
type Config struct {
	AgentSocket       string        // empty means SSH_AUTH_SOCK
	ConnectTimeout    time.Duration // dial plus handshake
	Insecure          bool          // skip host key verification
	KeepaliveInterval time.Duration // zero disables keepalives
	KnownHostsPath    string
	LineTerminator    string
}

// DefaultConfig returns the settings used when nothing is configured
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:    15 * time.Second,
		KeepaliveInterval: 30 * time.Second,
		LineTerminator:    "\r",
	}
}

// Transport implements ports.ShellTransport over SSH
type Transport struct {
	cfg Config
}

// NewTransport creates an SSH transport
func NewTransport(cfg Config) *Transport {
	return &Transport{cfg: cfg}
}

// Connect dials target and authenticates with credential. Cancelling ctx aborts
// the dial or the handshake.
func (t *Transport) Connect(ctx context.Context, target domain.Target, credential domain.Credential) (ports.ShellClient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	addr := target.Address()
	logging.Logger.Info("Connecting", "target", target.String(), "credential", credential)

	hostKeyCallback, err := hostKeyCallback(t.cfg)
	if err != nil {
		return nil, err
	}

	auth, err := authMethods(credential, t.cfg.AgentSocket)
	if err != nil {
		return nil, err
	}
	defer auth.close()

	clientConfig := &gossh.ClientConfig{
		Auth:            auth.methods,
		HostKeyCallback: hostKeyCallback,
		Timeout:         t.cfg.ConnectTimeout,
		User:            target.Username,
	}

	dialer := net.Dialer{Timeout: t.cfg.ConnectTimeout}
	netConn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	if t.cfg.ConnectTimeout > 0 {
		_ = netConn.SetDeadline(time.Now().Add(t.cfg.ConnectTimeout))
	}
	stop := context.AfterFunc(ctx, func() { netConn.Close() })

	sshConn, chans, reqs, err := gossh.NewClientConn(netConn, addr, clientConfig)
	if !stop() {
		if err == nil {
			sshConn.Close()
		}
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, context.Cause(ctx))
	}
	if err != nil {
		netConn.Close()
		return nil, fmt.Errorf("ssh handshake with %s: %w", addr, describeAuthError(err))
	}
	_ = netConn.SetDeadline(time.Time{})

	logging.Logger.Info("SSH connected", "target", target.String(), "server_version", string(sshConn.ServerVersion()))
	return newClient(gossh.NewClient(sshConn, chans, reqs), t.cfg), nil
}

// describeAuthError unwraps host key failures so the operator sees the actionable message
func describeAuthError(err error) error {
	var keyErr *knownHostsError
	if errors.As(err, &keyErr) {
		return keyErr
	}
	return err
}
