package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/paths"
)

// CredentialDefaults pre-fills the credential form. Secrets are never pre-filled.
type CredentialDefaults struct {
	AuthMethod   domain.AuthMethod
	Host         string
	IdentityFile string
	Port         int
	Username     string
}

// CredentialFormResult contains the result of the credential form
type CredentialFormResult struct {
	AuthMethod   string
	Cancelled    bool
	Host         string
	IdentityFile string
	Passphrase   string
	Password     string
	Port         string
	Username     string
}

// CredentialForm asks for the target and the credential of the next connection
type CredentialForm struct {
	Completed bool
	form      *huh.Form
	result    CredentialFormResult
}

// NewCredentialForm creates the form pre-filled from defaults
func NewCredentialForm(defaults CredentialDefaults) *CredentialForm {
	cf := &CredentialForm{
		result: CredentialFormResult{
			AuthMethod:   string(defaults.AuthMethod),
			Host:         defaults.Host,
			IdentityFile: defaults.IdentityFile,
			Username:     defaults.Username,
		},
	}
	if cf.result.AuthMethod == "" {
		cf.result.AuthMethod = string(domain.AuthPassword)
	}
	if defaults.Port > 0 {
		cf.result.Port = strconv.Itoa(defaults.Port)
	} else {
		cf.result.Port = "22"
	}

	cf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Host").
				Placeholder("server.example.com").
				Value(&cf.result.Host).
				Validate(validateHost),
			huh.NewInput().
				Title("Port").
				Value(&cf.result.Port).
				Validate(validatePort),
			huh.NewInput().
				Title("Username").
				Value(&cf.result.Username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Authentication").
				Options(
					huh.NewOption("Password", string(domain.AuthPassword)),
					huh.NewOption("Private key", string(domain.AuthKey)),
					huh.NewOption("SSH agent", string(domain.AuthAgent)),
				).
				Value(&cf.result.AuthMethod),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&cf.result.Password).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("password required")
					}
					return nil
				}),
		).WithHideFunc(func() bool {
			return cf.result.AuthMethod != string(domain.AuthPassword)
		}),
		huh.NewGroup(
			huh.NewInput().
				Title("Identity file").
				Placeholder("~/.ssh/id_ed25519").
				Value(&cf.result.IdentityFile).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("identity file required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Passphrase (optional)").
				Description("Leave empty for an unencrypted key.").
				EchoMode(huh.EchoModePassword).
				Value(&cf.result.Passphrase),
		).WithHideFunc(func() bool {
			return cf.result.AuthMethod != string(domain.AuthKey)
		}),
	)

	return cf
}

func validateHost(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("host required")
	}
	if strings.ContainsAny(s, " \t/@") {
		return fmt.Errorf("host must be a hostname or IP address")
	}
	return nil
}

func validatePort(s string) error {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

func (cf *CredentialForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *CredentialForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" {
			cf.result.Cancelled = true
			cf.clearSecrets()
			cf.Completed = true
			return cf, nil
		}
	}

	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
		return cf, nil
	}

	return cf, cmd
}

func (cf *CredentialForm) View() string {
	if cf.form != nil {
		return cf.form.View()
	}
	return ""
}

// Result returns the form result
func (cf *CredentialForm) Result() CredentialFormResult {
	return cf.result
}

// Defaults returns what the form held, without secrets, for pre-filling the next one
func (cf *CredentialForm) Defaults() CredentialDefaults {
	port, _ := strconv.Atoi(strings.TrimSpace(cf.result.Port))
	return CredentialDefaults{
		AuthMethod:   domain.AuthMethod(cf.result.AuthMethod),
		Host:         strings.TrimSpace(cf.result.Host),
		IdentityFile: strings.TrimSpace(cf.result.IdentityFile),
		Port:         port,
		Username:     strings.TrimSpace(cf.result.Username),
	}
}

// Credentials builds the target and credential from the submitted form. The
// secret moves into protected memory and the form copies are dropped.
func (cf *CredentialForm) Credentials() (domain.Target, domain.Credential, error) {
	defer cf.clearSecrets()

	defaults := cf.Defaults()
	target := domain.Target{Host: defaults.Host, Port: defaults.Port, Username: defaults.Username}

	var (
		credential domain.Credential
		err        error
	)
	switch defaults.AuthMethod {
	case domain.AuthPassword:
		credential, err = domain.PasswordCredential([]byte(cf.result.Password))
	case domain.AuthKey:
		credential, err = domain.KeyCredential(paths.ExpandPath(defaults.IdentityFile), []byte(cf.result.Passphrase))
	case domain.AuthAgent:
		credential = domain.AgentCredential()
	default:
		err = fmt.Errorf("unknown authentication method %q", defaults.AuthMethod)
	}
	if err != nil {
		return domain.Target{}, domain.Credential{}, fmt.Errorf("prepare credential: %w", err)
	}

	logging.Logger.Debug("Credential form submitted", "target", target.String(), "method", credential.Method)
	return target, credential, nil
}

func (cf *CredentialForm) clearSecrets() {
	cf.result.Password = ""
	cf.result.Passphrase = ""
}
