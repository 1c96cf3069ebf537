package ssh

import (
	"errors"
	"fmt"
	"net"
	"os"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/paths"
)

// knownHostsError explains a failed host key check
type knownHostsError struct {
	err      error
	host     string
	path     string
	mismatch bool
}

func (e *knownHostsError) Error() string {
	if e.mismatch {
		return fmt.Sprintf("host key for %s does not match %s; the host may have been replaced or the connection intercepted", e.host, e.path)
	}
	return fmt.Sprintf("host %s is not in %s; add it with ssh-keyscan or connect with --insecure", e.host, e.path)
}

func (e *knownHostsError) Unwrap() error {
	return e.err
}

func hostKeyCallback(cfg Config) (gossh.HostKeyCallback, error) {
	if cfg.Insecure {
		logging.Logger.Warn("Host key verification disabled")
		return gossh.InsecureIgnoreHostKey(), nil
	}

	path := cfg.KnownHostsPath
	if path == "" {
		path = paths.KnownHostsPath()
	}
	path = paths.ExpandPath(path)

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("known_hosts file %s: %w (connect with --insecure to skip verification)", path, err)
	}

	callback, err := knownhosts.New(path)
	if err != nil {
		return nil, fmt.Errorf("load known_hosts %s: %w", path, err)
	}

	return func(hostname string, remote net.Addr, key gossh.PublicKey) error {
		err := callback(hostname, remote, key)
		if err == nil {
			return nil
		}
		var keyErr *knownhosts.KeyError
		if errors.As(err, &keyErr) {
			logging.Logger.Warn("Host key rejected",
				"host", hostname,
				"fingerprint", gossh.FingerprintSHA256(key),
				"known", len(keyErr.Want) > 0)
			return &knownHostsError{err: err, host: hostname, path: path, mismatch: len(keyErr.Want) > 0}
		}
		return err
	}, nil
}
