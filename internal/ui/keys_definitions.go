package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are the keys accepted in the "keys" object of settings.json.
var AllKeyDefinitions = []KeyDefinition{
	// Session keys
	{Name: "disconnect", Defaults: []string{"ctrl+d"}, Help: "disconnect from host"},
	{Name: "reconnect", Defaults: []string{"ctrl+r"}, Help: "reconnect (edit credentials)"},
	{Name: "send", Defaults: []string{"enter"}, Help: "send line to remote shell"},

	// Scrollback keys
	{Name: "scroll_bottom", Defaults: []string{"end"}, Help: "jump to latest output"},
	{Name: "scroll_down", Defaults: []string{"pgdown"}, Help: "scroll output down"},
	{Name: "scroll_up", Defaults: []string{"pgup"}, Help: "scroll output up"},

	// Application keys
	{Name: "help", Defaults: []string{"f1"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"ctrl+c"}, Help: "close connection and exit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
