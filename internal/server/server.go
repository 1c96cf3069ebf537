package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ui"
)

// BridgeFactory builds the session behind one incoming SSH connection
type BridgeFactory func() (ui.Bridge, error)

// Options configures the front door
type Options struct {
	AuthorizedKeysPath string
	HostKeyPath        string
	Host               string
	ModelOptions       ui.ModelOptions
	Port               int
}

// Server exposes the bridge UI over SSH, one independent bridge per session
type Server struct {
	address      string
	modelOptions ui.ModelOptions
	newBridge    BridgeFactory
	wishServer   *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(opts Options, newBridge BridgeFactory) (*Server, error) {
	if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address:      net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port)),
		modelOptions: opts.ModelOptions,
		newBridge:    newBridge,
	}
	// The bridge always asks for credentials over SSH
	s.modelOptions.Connect = false

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(publicKeyHandler(opts.AuthorizedKeysPath)),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns host:port the server listens on
func (s *Server) Address() string {
	return s.address
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	logging.Logger.Info("Starting SSH server", "address", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}

	// Stop accepting first so Serve has returned before Shutdown waits on listeners
	logging.Logger.Info("Shutting down SSH server")
	_ = ln.Close()
	<-errCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
