//go:build !unix

package local

import (
	"context"
	"errors"

	"github.com/renato0307/shellbridge/internal/ports"
)

// ErrUnsupported is returned on platforms without pseudo-terminals
var ErrUnsupported = errors.New("local shell is not supported on this platform")

type client struct{}

func newClient(Config) *client {
	return &client{}
}

func (c *client) OpenShell(context.Context, ports.PTYRequest) (ports.ShellStream, error) {
	return nil, ErrUnsupported
}

func (c *client) IsConnected() bool {
	return false
}

func (c *client) Close() error {
	return nil
}
