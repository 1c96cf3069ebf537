package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/shellbridge/internal/config"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/paths"
	"github.com/renato0307/shellbridge/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Binding name (e.g., disconnect, reconnect, help)"`
	Value string `arg:"" help:"Key (e.g., ctrl+o) or comma-separated keys (e.g., ctrl+o,f5)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	defaults := ui.GetDefaultKeyBindings()
	names := ui.GetValidKeyNames()

	if s.Format == "json" {
		return s.outputJSON(names, defaults, cli.settings.Keys)
	}
	return s.outputTable(names, defaults, cli.settings.Keys)
}

func (s *SettingsKeysListCmd) outputJSON(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	result := make(map[string]map[string][]string, len(names))
	for _, name := range names {
		entry := map[string][]string{"default": defaults[name]}
		if custom := customKeys[name]; len(custom) > 0 {
			entry["custom"] = custom
		}
		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SettingsKeysListCmd) outputTable(names []string, defaults map[string][]string, customKeys config.KeyBindingsConfig) error {
	fmt.Printf("Key Bindings (settings file: %s)\n\n", paths.SettingsPath())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	fmt.Fprintln(w, "────\t───────\t──────")
	for _, name := range names {
		custom := "-"
		if keys := customKeys[name]; len(keys) > 0 {
			custom = strings.Join(keys, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(defaults[name], ", "), custom)
	}
	return w.Flush()
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if ui.GetKeyDefinition(s.Key) == nil {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	keys := make(config.KeyBindingsConfig, len(cli.settings.Keys)+1)
	for name, bound := range cli.settings.Keys {
		keys[name] = bound
	}
	keys[s.Key] = values

	if err := keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}
	if err := config.SaveKeyBindings(keys); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
