package ports

import (
	"context"

	"github.com/renato0307/shellbridge/internal/domain"
)

// TerminalMode is an RFC 4254 terminal mode opcode
type TerminalMode uint8

// ModeEcho is the ECHO opcode; 0 disables echo in the remote line discipline
const ModeEcho TerminalMode = 53

// TerminalModes maps opcodes to values for a pty request
type TerminalModes map[TerminalMode]uint32

// PTYRequest is the pseudo-terminal geometry and modes requested with a shell
type PTYRequest struct {
	Cols     int
	HeightPx int
	Modes    TerminalModes
	Rows     int
	Term     string
	WidthPx  int
}

// DefaultPTYRequest is an 80x24 xterm with echo disabled; the application does its own echo
func DefaultPTYRequest() PTYRequest {
	return PTYRequest{
		Cols:     80,
		HeightPx: 600,
		Modes:    TerminalModes{ModeEcho: 0},
		Rows:     24,
		Term:     "xterm",
		WidthPx:  800,
	}
}

// ShellTransport establishes authenticated connections
type ShellTransport interface {
	// Connect dials and authenticates. It honours ctx cancellation during the dial
	// and handshake.
	Connect(ctx context.Context, target domain.Target, credential domain.Credential) (ShellClient, error)
}

// ShellClient is a live authenticated connection
type ShellClient interface {
	// OpenShell requests a pty and starts an interactive shell
	OpenShell(ctx context.Context, req PTYRequest) (ShellStream, error)

	// IsConnected reports whether the underlying connection is still up
	IsConnected() bool

	// Close disconnects and releases the connection. Safe to call more than once.
	Close() error
}

// ShellStream is the interactive byte stream of a shell. Reads never block.
type ShellStream interface {
	// DataAvailable reports whether ReadAvailable has something to report:
	// buffered bytes or the end of the stream
	DataAvailable() bool

	// ReadAvailable returns whatever is buffered, possibly nothing. It returns
	// io.EOF once the remote side is done and the buffer is empty.
	ReadAvailable() ([]byte, error)

	// WriteLine writes line followed by the configured terminator
	WriteLine(line string) error

	// Close closes the shell channel. Safe to call more than once.
	Close() error
}
