package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ui"
)

// RunCmd opens the bridge TUI
type RunCmd struct {
	Target string `arg:"" optional:"" help:"Host to connect to, optionally as user@host"`

	Agent          bool   `help:"Authenticate with the SSH agent and connect immediately"`
	ConnectTimeout string `help:"Limit for dial, authentication and shell start, e.g. 10s (0 = no limit)"`
	Dev            bool   `help:"Enable development mode (shows version info in dialogs)"`
	Identity       string `help:"Private key file; connects immediately when the key has no passphrase" short:"i" type:"path"`
	Insecure       bool   `help:"Skip host key verification against known_hosts"`
	LineTerminator string `help:"Bytes sent after each line" enum:",cr,lf,crlf" default:""`
	Local          bool   `help:"Open a shell on this machine instead of a remote host"`
	Port           int    `help:"SSH port" short:"p"`
	Profile        string `help:"Use a saved host profile" short:"P"`
	User           string `help:"Remote user name" short:"u"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("shellbridge needs an interactive terminal")
	}

	tuning := cli.tuning
	if r.LineTerminator != "" {
		tuning.LineTerminator = r.LineTerminator
	}
	if r.ConnectTimeout != "" {
		timeout, err := time.ParseDuration(r.ConnectTimeout)
		if err != nil || timeout < 0 {
			return fmt.Errorf("invalid --connect-timeout %q", r.ConnectTimeout)
		}
		tuning.ConnectTimeout = timeout
	}

	defaults, err := r.credentialDefaults(cli)
	if err != nil {
		return err
	}

	transport, err := NewTransport(tuning, TransportOptions{Insecure: r.Insecure, Local: r.Local})
	if err != nil {
		return err
	}
	bridge := cli.Container.NewSessionService(transport, tuning, r.Profile)
	defer bridge.Close()

	opts := ui.ModelOptions{
		Defaults:        defaults,
		DevMode:         r.Dev,
		ErrorClearDelay: tuning.ErrorClearDelay,
		FrameInterval:   tuning.FrameInterval,
		Keys:            cli.settings.Keys,
		ScrollbackBytes: tuning.ScrollbackBytes,
	}
	// Connect right away when no secret has to be typed
	switch {
	case r.Local:
		// the local transport ignores the credential
		opts.Connect = true
		opts.Credential = domain.AgentCredential()
	case defaults.Host == "":
	case defaults.AuthMethod == domain.AuthAgent:
		opts.Connect = true
		opts.Credential = domain.AgentCredential()
	case r.Identity != "":
		credential, err := domain.KeyCredential(defaults.IdentityFile, nil)
		if err != nil {
			return err
		}
		opts.Connect = true
		opts.Credential = credential
	}

	logging.Logger.Info("Starting shellbridge TUI",
		"target", defaults.Host,
		"profile", r.Profile,
		"local", r.Local,
		"connect_on_start", opts.Connect)

	p := tea.NewProgram(ui.NewModel(bridge, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}

// credentialDefaults merges profile, settings and flags into the form defaults
func (r *RunCmd) credentialDefaults(cli *CLI) (ui.CredentialDefaults, error) {
	if r.Local {
		return ui.CredentialDefaults{Host: "localhost", Username: os.Getenv("USER")}, nil
	}

	user, host := splitUserHost(r.Target, r.User)
	override := domain.Target{Host: host, Port: r.Port, Username: user}

	defaults := ui.CredentialDefaults{
		AuthMethod:   domain.AuthPassword,
		IdentityFile: cli.settings.IdentityFile,
		Username:     cli.settings.DefaultUser,
	}

	if r.Profile != "" {
		profile, err := cli.Container.HostService.Resolve(context.Background(), r.Profile, override)
		if err != nil {
			return ui.CredentialDefaults{}, err
		}
		defaults = ui.CredentialDefaults{
			AuthMethod:   profile.AuthMethod,
			Host:         profile.Host,
			IdentityFile: profile.IdentityFile,
			Port:         profile.Port,
			Username:     profile.Username,
		}
	} else {
		defaults.Host = override.Host
		defaults.Port = override.Port
		if override.Username != "" {
			defaults.Username = override.Username
		}
	}

	if r.Identity != "" {
		defaults.AuthMethod = domain.AuthKey
		defaults.IdentityFile = r.Identity
	}
	if r.Agent {
		defaults.AuthMethod = domain.AuthAgent
	}
	if defaults.Username == "" {
		defaults.Username = os.Getenv("USER")
	}
	return defaults, nil
}

// splitUserHost splits "user@host"; an explicit user flag wins over the prefix
func splitUserHost(target, user string) (string, string) {
	if at := strings.LastIndex(target, "@"); at >= 0 {
		if user == "" {
			user = target[:at]
		}
		target = target[at+1:]
	}
	return user, target
}
