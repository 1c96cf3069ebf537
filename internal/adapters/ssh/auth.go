package ssh

import (
	"errors"
	"fmt"
	"net"
	"os"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/paths"
)

// ErrNoAgent is returned when agent auth is requested without a reachable agent
var ErrNoAgent = errors.New("ssh agent not available (SSH_AUTH_SOCK is not set)")

type authSet struct {
	closers []func() error
	methods []gossh.AuthMethod
}

func (a *authSet) close() {
	for _, c := range a.closers {
		_ = c()
	}
}

// authMethods maps a credential to x/crypto auth methods. The secret is read lazily
// inside the callbacks, so it only leaves the locked buffer during the handshake.
func authMethods(credential domain.Credential, agentSocket string) (*authSet, error) {
	set := &authSet{}

	switch credential.Method {
	case domain.AuthPassword:
		password := func() string {
			if !credential.HasSecret() {
				return ""
			}
			return credential.Secret.String()
		}
		set.methods = append(set.methods,
			gossh.PasswordCallback(func() (string, error) { return password(), nil }),
			gossh.KeyboardInteractive(func(name, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range questions {
					if !echos[i] {
						answers[i] = password()
					}
				}
				return answers, nil
			}),
		)

	case domain.AuthKey:
		signer, err := loadSigner(credential)
		if err != nil {
			return nil, err
		}
		set.methods = append(set.methods, gossh.PublicKeys(signer))

	case domain.AuthAgent:
		if agentSocket == "" {
			agentSocket = os.Getenv("SSH_AUTH_SOCK")
		}
		if agentSocket == "" {
			return nil, ErrNoAgent
		}
		conn, err := net.Dial("unix", agentSocket)
		if err != nil {
			return nil, fmt.Errorf("connect to ssh agent: %w", err)
		}
		set.closers = append(set.closers, conn.Close)
		set.methods = append(set.methods, gossh.PublicKeysCallback(agent.NewClient(conn).Signers))

	default:
		return nil, fmt.Errorf("unsupported auth method %q", credential.Method)
	}

	return set, nil
}

func loadSigner(credential domain.Credential) (gossh.Signer, error) {
	keyPath := paths.ExpandPath(credential.IdentityFile)
	pemBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("read identity file: %w", err)
	}
	defer clear(pemBytes)

	signer, err := gossh.ParsePrivateKey(pemBytes)
	if err == nil {
		return signer, nil
	}

	var missing *gossh.PassphraseMissingError
	if !errors.As(err, &missing) {
		return nil, fmt.Errorf("parse identity file %s: %w", keyPath, err)
	}
	if !credential.HasSecret() {
		return nil, fmt.Errorf("identity file %s is encrypted and no passphrase was given", keyPath)
	}

	signer, err = gossh.ParsePrivateKeyWithPassphrase(pemBytes, credential.Secret.Bytes())
	if err != nil {
		return nil, fmt.Errorf("decrypt identity file %s: %w", keyPath, err)
	}
	return signer, nil
}
