package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/shellbridge/internal/paths"
)

// SettingsCmd inspects settings
type SettingsCmd struct {
	Keys   SettingsKeysCmd   `cmd:"keys" help:"List or change key bindings"`
	Tuning SettingsTuningCmd `cmd:"tuning" help:"Show effective tuning after settings.json and environment overrides" default:"1"`
}

// SettingsTuningCmd prints the resolved tuning
type SettingsTuningCmd struct{}

// Run executes the tuning command
func (s *SettingsTuningCmd) Run(cli *CLI) error {
	t := cli.tuning
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Setting\tValue")
	fmt.Fprintln(w, "───────\t─────")
	fmt.Fprintf(w, "connect_timeout\t%s\n", t.ConnectTimeout)
	fmt.Fprintf(w, "error_clear_delay\t%s\n", t.ErrorClearDelay)
	fmt.Fprintf(w, "frame_interval\t%s\n", t.FrameInterval)
	fmt.Fprintf(w, "keepalive_interval\t%s\n", t.KeepaliveInterval)
	fmt.Fprintf(w, "known_hosts\t%s\n", orDefault(t.KnownHostsPath, paths.KnownHostsPath()))
	fmt.Fprintf(w, "line_terminator\t%s\n", t.LineTerminator)
	fmt.Fprintf(w, "local_shell\t%s\n", orDefault(t.LocalShell, "$SHELL"))
	fmt.Fprintf(w, "poll_interval\t%s\n", t.PollInterval)
	fmt.Fprintf(w, "scrollback_bytes\t%d\n", t.ScrollbackBytes)
	fmt.Fprintf(w, "shutdown_timeout\t%s\n", t.ShutdownTimeout)
	fmt.Fprintf(w, "teardown_timeout\t%s\n", t.TeardownTimeout)
	return w.Flush()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
