// Package local runs a shell on this machine under a pseudo-terminal. It satisfies the
// same transport port as the SSH adapter, so the bridge works offline.
package local

import (
	"context"
	"os"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ports"
)

// Config holds local shell settings
type Config struct {
	LineTerminator string
	Shell          string // empty means $SHELL, then /bin/sh
}

// Transport implements ports.ShellTransport for a local shell
type Transport struct {
	cfg Config
}

// NewTransport creates a local transport
func NewTransport(cfg Config) *Transport {
	if cfg.Shell == "" {
		cfg.Shell = os.Getenv("SHELL")
	}
	if cfg.Shell == "" {
		cfg.Shell = "/bin/sh"
	}
	return &Transport{cfg: cfg}
}

// Connect ignores the credential; the local user is already authenticated
func (t *Transport) Connect(ctx context.Context, target domain.Target, credential domain.Credential) (ports.ShellClient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logging.Logger.Info("Starting local shell", "shell", t.cfg.Shell, "target", target.Host)
	return newClient(t.cfg), nil
}
