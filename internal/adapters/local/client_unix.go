//go:build unix

package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/renato0307/shellbridge/internal/adapters/shellio"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ports"
)

type client struct {
	cfg       Config
	closeOnce sync.Once
	cmd       *exec.Cmd
	connected atomic.Bool
	mu        sync.Mutex
}

func newClient(cfg Config) *client {
	c := &client{cfg: cfg}
	c.connected.Store(true)
	return c
}

// OpenShell starts the shell on a fresh pty sized and configured from req
func (c *client) OpenShell(ctx context.Context, req ports.PTYRequest) (ports.ShellStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("open pty: %w", err)
	}
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{
		Cols: uint16(req.Cols),
		Rows: uint16(req.Rows),
		X:    uint16(req.WidthPx),
		Y:    uint16(req.HeightPx),
	}); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("set pty size: %w", err)
	}

	if err := applyModes(tty, req.Modes); err != nil {
		ptmx.Close()
		return nil, err
	}

	cmd := exec.Command(c.cfg.Shell)
	cmd.Env = append(os.Environ(), "TERM="+req.Term)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = tty, tty, tty
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true, Setctty: true}
	if err := cmd.Start(); err != nil {
		ptmx.Close()
		return nil, fmt.Errorf("start %s: %w", c.cfg.Shell, err)
	}

	c.mu.Lock()
	c.cmd = cmd
	c.mu.Unlock()

	go func() {
		err := cmd.Wait()
		c.connected.Store(false)
		logging.Logger.Info("Local shell exited", "error", err)
	}()

	return shellio.NewStream(ptmx, ptmx.Close, c.cfg.LineTerminator, ptyReader{ptmx}), nil
}

func applyModes(tty *os.File, modes ports.TerminalModes) error {
	echo, ok := modes[ports.ModeEcho]
	if !ok {
		return nil
	}

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	if echo == 0 {
		termios.Lflag &^= unix.ECHO
	} else {
		termios.Lflag |= unix.ECHO
	}
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	return nil
}

// ptyReader reports the EIO a Linux pty master returns after the shell exits as io.EOF
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if errors.Is(err, syscall.EIO) {
		err = io.EOF
	}
	return n, err
}

// IsConnected is false once the shell process has exited
func (c *client) IsConnected() bool {
	return c.connected.Load()
}

// Close kills the shell if it is still running
func (c *client) Close() error {
	c.closeOnce.Do(func() {
		c.connected.Store(false)
		c.mu.Lock()
		cmd := c.cmd
		c.mu.Unlock()
		if cmd != nil && cmd.Process != nil {
			_ = cmd.Process.Kill()
		}
	})
	return nil
}
