package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment override, e.g. SHELLBRIDGE_POLL_INTERVAL
const EnvPrefix = "SHELLBRIDGE"

// Tuning holds the runtime knobs of the bridge. Values are resolved from defaults,
// then settings.json, then the environment; command line flags are applied last by the caller.
type Tuning struct {
	ConnectTimeout    time.Duration `envconfig:"CONNECT_TIMEOUT"`
	ErrorClearDelay   time.Duration `envconfig:"ERROR_CLEAR_DELAY"`
	FrameInterval     time.Duration `envconfig:"FRAME_INTERVAL"`
	KeepaliveInterval time.Duration `envconfig:"KEEPALIVE_INTERVAL"`
	KnownHostsPath    string        `envconfig:"KNOWN_HOSTS"`
	LineTerminator    string        `envconfig:"LINE_TERMINATOR"`
	LocalShell        string        `envconfig:"LOCAL_SHELL"`
	PollInterval      time.Duration `envconfig:"POLL_INTERVAL"`
	ScrollbackBytes   int           `envconfig:"SCROLLBACK_BYTES"`
	ShutdownTimeout   time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
	TeardownTimeout   time.Duration `envconfig:"TEARDOWN_TIMEOUT"`
}

// DefaultTuning returns the built-in values
func DefaultTuning() Tuning {
	return Tuning{
		ConnectTimeout:    30 * time.Second,
		ErrorClearDelay:   5 * time.Second,
		FrameInterval:     33 * time.Millisecond,
		KeepaliveInterval: 30 * time.Second,
		LineTerminator:    "cr",
		PollInterval:      50 * time.Millisecond,
		ScrollbackBytes:   1 << 20,
		ShutdownTimeout:   2 * time.Second,
		TeardownTimeout:   500 * time.Millisecond,
	}
}

// LoadTuning resolves defaults, then settings, then SHELLBRIDGE_* variables
func LoadTuning(settings *Settings) (Tuning, error) {
	tuning := DefaultTuning()
	if settings != nil {
		tuning.applySettings(settings)
	}

	if err := envconfig.Process(EnvPrefix, &tuning); err != nil {
		return Tuning{}, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := tuning.Validate(); err != nil {
		return Tuning{}, err
	}
	return tuning, nil
}

func (t *Tuning) applySettings(s *Settings) {
	if s.ConnectTimeoutSeconds != nil {
		t.ConnectTimeout = time.Duration(*s.ConnectTimeoutSeconds) * time.Second
	}
	if s.ErrorClearDelay != nil {
		t.ErrorClearDelay = time.Duration(*s.ErrorClearDelay) * time.Second
	}
	if s.KeepaliveSeconds != nil {
		t.KeepaliveInterval = time.Duration(*s.KeepaliveSeconds) * time.Second
	}
	if s.KnownHostsPath != "" {
		t.KnownHostsPath = s.KnownHostsPath
	}
	if s.LineTerminator != "" {
		t.LineTerminator = s.LineTerminator
	}
	if s.LocalShell != "" {
		t.LocalShell = s.LocalShell
	}
	if s.ScrollbackBytes != nil {
		t.ScrollbackBytes = *s.ScrollbackBytes
	}
}

// Validate rejects values the bridge cannot run with
func (t Tuning) Validate() error {
	if t.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", t.PollInterval)
	}
	if t.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", t.FrameInterval)
	}
	if t.ShutdownTimeout <= 0 || t.TeardownTimeout <= 0 {
		return fmt.Errorf("shutdown and teardown timeouts must be positive")
	}
	if t.ConnectTimeout < 0 || t.KeepaliveInterval < 0 {
		return fmt.Errorf("connect timeout and keepalive interval cannot be negative")
	}
	if t.ScrollbackBytes < 4096 {
		return fmt.Errorf("scrollback must be at least 4096 bytes, got %d", t.ScrollbackBytes)
	}
	if _, err := t.Terminator(); err != nil {
		return err
	}
	return nil
}

// Terminator maps the line_terminator name to the bytes sent after each line
func (t Tuning) Terminator() (string, error) {
	switch t.LineTerminator {
	case "cr", "":
		return "\r", nil
	case "lf":
		return "\n", nil
	case "crlf":
		return "\r\n", nil
	default:
		return "", fmt.Errorf("line terminator must be cr, lf or crlf, got %q", t.LineTerminator)
	}
}
