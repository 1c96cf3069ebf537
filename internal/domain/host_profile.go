package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// HostProfile is a saved connection target. Credentials are never stored.
type HostProfile struct {
	AuthMethod   AuthMethod
	CreatedAt    time.Time
	Host         string
	IdentityFile string
	LastUsedAt   *time.Time
	Name         string
	Port         int
	Username     string
}

// Target converts the profile into a connection target
func (p HostProfile) Target() Target {
	return Target{Host: p.Host, Port: p.Port, Username: p.Username}
}

// Validate checks the fields required to connect
func (p HostProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHostProfile)
	}
	if p.Name != SanitizeProfileName(p.Name) {
		return fmt.Errorf("%w: name %q contains invalid characters", ErrInvalidHostProfile, p.Name)
	}
	if strings.TrimSpace(p.Host) == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidHostProfile)
	}
	if p.Port < 0 || p.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidHostProfile, p.Port)
	}
	if p.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidHostProfile)
	}
	switch p.AuthMethod {
	case AuthPassword, AuthAgent, "":
	case AuthKey:
		if p.IdentityFile == "" {
			return fmt.Errorf("%w: identity file is required for key auth", ErrInvalidHostProfile)
		}
	default:
		return fmt.Errorf("%w: unknown auth method %q", ErrInvalidHostProfile, p.AuthMethod)
	}
	return nil
}

// SanitizeProfileName converts a display name to a profile key.
// - Alphanumeric, underscores, hyphens, and periods are kept
// - Spaces, parentheses, and slashes become underscores (consecutive ones collapsed)
// - Other special characters are removed
func SanitizeProfileName(displayName string) string {
	var result strings.Builder
	lastWasUnderscore := false

	for _, r := range displayName {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' || r == '.' {
			result.WriteRune(r)
			lastWasUnderscore = false
		} else if r == '_' {
			result.WriteRune('_')
			lastWasUnderscore = true
		} else if unicode.IsSpace(r) || r == '(' || r == ')' || r == '/' {
			if !lastWasUnderscore && result.Len() > 0 {
				result.WriteRune('_')
				lastWasUnderscore = true
			}
		}
	}

	return strings.TrimRight(result.String(), "_")
}
