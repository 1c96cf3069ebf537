package domain

import (
	"net"
	"strconv"
)

// ConnectionState is the lifecycle state of a bridge session
type ConnectionState int32

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateDisconnecting
)

// DefaultSSHPort is used when a target or profile leaves the port unset
const DefaultSSHPort = 22

// String returns the human-readable name of the state
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// Target identifies the remote end of a session
type Target struct {
	Host     string
	Port     int
	Username string
}

// Address returns host:port, defaulting the port to 22
func (t Target) Address() string {
	port := t.Port
	if port == 0 {
		port = DefaultSSHPort
	}
	return net.JoinHostPort(t.Host, strconv.Itoa(port))
}

// String returns user@host:port for logs and the status bar
func (t Target) String() string {
	if t.Username == "" {
		return t.Address()
	}
	return t.Username + "@" + t.Address()
}
