package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/shellbridge/internal/paths"
	"github.com/renato0307/shellbridge/internal/server"
	"github.com/renato0307/shellbridge/internal/ui"
)

// ServeCmd exposes the bridge UI over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used to admit clients" type:"path"`
	Host           string `help:"Address to listen on" default:"127.0.0.1"`
	Insecure       bool   `help:"Skip host key verification for outgoing connections"`
	Port           int    `help:"Port to listen on" default:"23234"`
}

// Run starts the SSH server and blocks until interrupted
func (s *ServeCmd) Run(cli *CLI) error {
	authorizedKeys := s.AuthorizedKeys
	if authorizedKeys == "" {
		authorizedKeys = paths.AuthorizedKeysPath()
	}

	tuning := cli.tuning
	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: authorizedKeys,
		HostKeyPath:        paths.HostKeyPath(),
		Host:               s.Host,
		ModelOptions: ui.ModelOptions{
			Defaults:        ui.CredentialDefaults{Username: cli.settings.DefaultUser},
			ErrorClearDelay: tuning.ErrorClearDelay,
			FrameInterval:   tuning.FrameInterval,
			Keys:            cli.settings.Keys,
			ScrollbackBytes: tuning.ScrollbackBytes,
		},
		Port: s.Port,
	}, func() (ui.Bridge, error) {
		transport, err := NewTransport(tuning, TransportOptions{Insecure: s.Insecure})
		if err != nil {
			return nil, err
		}
		return cli.Container.NewSessionService(transport, tuning, ""), nil
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("SSH server listening on %s\n", srv.Address())
	return srv.Run(ctx)
}
