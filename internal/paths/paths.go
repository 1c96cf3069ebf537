package paths

import (
	"os"
	"path/filepath"
)

// Home returns SHELLBRIDGE_HOME or ~/.shellbridge
func Home() string {
	home := os.Getenv("SHELLBRIDGE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".shellbridge"
		}
		return filepath.Join(homeDir, ".shellbridge")
	}
	return ExpandPath(home)
}

// DBPath returns $SHELLBRIDGE_HOME/shellbridge.db
func DBPath() string {
	return filepath.Join(Home(), "shellbridge.db")
}

// SettingsPath returns $SHELLBRIDGE_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(Home(), "settings.json")
}

// HostKeyPath returns the serve mode host key, $SHELLBRIDGE_HOME/ssh/id_ed25519
func HostKeyPath() string {
	return filepath.Join(Home(), "ssh", "id_ed25519")
}

// KnownHostsPath returns ~/.ssh/known_hosts
func KnownHostsPath() string {
	return ExpandPath("~/.ssh/known_hosts")
}

// AuthorizedKeysPath returns ~/.ssh/authorized_keys
func AuthorizedKeysPath() string {
	return ExpandPath("~/.ssh/authorized_keys")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
