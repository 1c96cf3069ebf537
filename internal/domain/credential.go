package domain

import (
	"log/slog"

	"github.com/renato0307/shellbridge/internal/secret"
)

// AuthMethod selects how a transport authenticates
type AuthMethod string

const (
	AuthAgent    AuthMethod = "agent"
	AuthKey      AuthMethod = "key"
	AuthPassword AuthMethod = "password"
)

const redacted = "[redacted]"

// Credential is the opaque secret for one connection attempt.
// Secret holds the password (AuthPassword) or the key passphrase (AuthKey) and may be nil.
// It never prints or logs its contents.
type Credential struct {
	IdentityFile string
	Method       AuthMethod
	Secret       *secret.Buffer
}

// PasswordCredential builds a password credential, zeroing password
func PasswordCredential(password []byte) (Credential, error) {
	buf, err := secret.NewFromBytes(password)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Method: AuthPassword, Secret: buf}, nil
}

// KeyCredential builds a private key credential. An empty passphrase is allowed.
func KeyCredential(identityFile string, passphrase []byte) (Credential, error) {
	cred := Credential{Method: AuthKey, IdentityFile: identityFile}
	if len(passphrase) == 0 {
		return cred, nil
	}
	buf, err := secret.NewFromBytes(passphrase)
	if err != nil {
		return Credential{}, err
	}
	cred.Secret = buf
	return cred, nil
}

// AgentCredential authenticates through SSH_AUTH_SOCK
func AgentCredential() Credential {
	return Credential{Method: AuthAgent}
}

// HasSecret reports whether a usable secret is attached
func (c Credential) HasSecret() bool {
	return c.Secret != nil && !c.Secret.Closed() && c.Secret.Len() > 0
}

// Destroy zeroes the secret. Safe to call more than once.
func (c Credential) Destroy() {
	if c.Secret != nil {
		_ = c.Secret.Close()
	}
}

func (c Credential) String() string {
	return string(c.Method) + ":" + redacted
}

// LogValue keeps secrets out of structured logs
func (c Credential) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("method", string(c.Method)),
		slog.String("identity_file", c.IdentityFile),
		slog.String("secret", redacted),
	)
}
