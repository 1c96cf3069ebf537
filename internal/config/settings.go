package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/renato0307/shellbridge/internal/paths"
)

// KeyBindingValue supports "a" or ["up", "k"] in JSON
type KeyBindingValue []string

// UnmarshalJSON accepts a single key or a list of keys
func (kv *KeyBindingValue) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*kv = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	if str != "" {
		*kv = []string{str}
	}
	return nil
}

// KeyBindingsConfig maps binding names (e.g. "disconnect", "reconnect") to key sequences
type KeyBindingsConfig map[string]KeyBindingValue

// Validate checks for unknown binding names and keys assigned twice.
// validNames comes from ui.ValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}
		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents ~/.shellbridge/settings.json. Comments and trailing commas are allowed.
type Settings struct {
	ConnectTimeoutSeconds *int              `json:"connect_timeout_seconds,omitempty"`
	Debug                 *bool             `json:"debug,omitempty"`
	DefaultUser           string            `json:"default_user,omitempty"`
	ErrorClearDelay       *int              `json:"error_clear_delay,omitempty"`
	IdentityFile          string            `json:"identity_file,omitempty"`
	KeepaliveSeconds      *int              `json:"keepalive_seconds,omitempty"`
	Keys                  KeyBindingsConfig `json:"keys,omitempty"`
	KnownHostsPath        string            `json:"known_hosts,omitempty"`
	LineTerminator        string            `json:"line_terminator,omitempty"`
	LocalShell            string            `json:"local_shell,omitempty"`
	MaxLogFiles           *int              `json:"max_log_files,omitempty"`
	ScrollbackBytes       *int              `json:"scrollback_bytes,omitempty"`
}

// LoadSettings loads $SHELLBRIDGE_HOME/settings.json.
// A missing file yields empty Settings.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.SettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(jsonc.ToJSON(data), &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.IdentityFile != "" {
		settings.IdentityFile = paths.ExpandPath(settings.IdentityFile)
	}
	if settings.KnownHostsPath != "" {
		settings.KnownHostsPath = paths.ExpandPath(settings.KnownHostsPath)
	}

	return &settings, nil
}

// SaveKeyBindings replaces the "keys" object of $SHELLBRIDGE_HOME/settings.json
func SaveKeyBindings(keys KeyBindingsConfig) error {
	return SaveKeyBindingsTo(paths.SettingsPath(), keys)
}

// SaveKeyBindingsTo rewrites the "keys" object of the settings file at path.
// Other fields are kept as written; comments are not preserved.
func SaveKeyBindingsTo(path string, keys KeyBindingsConfig) error {
	var raw map[string]json.RawMessage
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
			return fmt.Errorf("invalid settings.json: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return fmt.Errorf("failed to read settings file: %w", err)
	}
	if raw == nil {
		raw = make(map[string]json.RawMessage)
	}

	encoded, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to marshal key bindings: %w", err)
	}
	raw["keys"] = encoded

	out, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
