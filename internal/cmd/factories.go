package cmd

import (
	"context"
	"time"

	adapterlocal "github.com/renato0307/shellbridge/internal/adapters/local"
	adapterssh "github.com/renato0307/shellbridge/internal/adapters/ssh"
	adapterstorage "github.com/renato0307/shellbridge/internal/adapters/storage"
	"github.com/renato0307/shellbridge/internal/config"
	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/paths"
	"github.com/renato0307/shellbridge/internal/ports"
	"github.com/renato0307/shellbridge/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	HostService *services.HostService

	// Internal - for cleanup only
	hostRepo *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer() (*Container, error) {
	hostRepo, err := adapterstorage.NewSQLiteRepository(paths.DBPath())
	if err != nil {
		return nil, err
	}

	return &Container{
		HostService: services.NewHostService(hostRepo),
		hostRepo:    hostRepo,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.hostRepo != nil {
		return c.hostRepo.Close()
	}
	return nil
}

// TransportOptions selects and tunes the transport of a bridge
type TransportOptions struct {
	Insecure bool
	Local    bool
}

// NewTransport builds the SSH transport, or the local pty transport when opts.Local is set
func NewTransport(tuning config.Tuning, opts TransportOptions) (ports.ShellTransport, error) {
	terminator, err := tuning.Terminator()
	if err != nil {
		return nil, err
	}

	if opts.Local {
		return adapterlocal.NewTransport(adapterlocal.Config{
			LineTerminator: terminator,
			Shell:          tuning.LocalShell,
		}), nil
	}

	cfg := adapterssh.DefaultConfig()
	cfg.ConnectTimeout = tuning.ConnectTimeout
	cfg.Insecure = opts.Insecure
	cfg.KeepaliveInterval = tuning.KeepaliveInterval
	cfg.LineTerminator = terminator
	cfg.KnownHostsPath = tuning.KnownHostsPath
	return adapterssh.NewTransport(cfg), nil
}

// NewSessionService builds a bridge session over transport. profile, when set, is
// marked as used after every successful connection.
func (c *Container) NewSessionService(transport ports.ShellTransport, tuning config.Tuning, profile string) *services.SessionService {
	opts := services.DefaultSessionOptions()
	opts.ConnectTimeout = tuning.ConnectTimeout
	opts.PollInterval = tuning.PollInterval
	opts.ShutdownTimeout = tuning.ShutdownTimeout
	opts.TeardownTimeout = tuning.TeardownTimeout
	if profile != "" {
		opts.OnConnected = func(domain.Target) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			c.HostService.MarkUsed(ctx, profile)
		}
	}
	return services.NewSessionService(transport, opts)
}
