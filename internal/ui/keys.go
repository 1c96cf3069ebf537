package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/shellbridge/internal/config"
)

// KeyMap contains all keyboard shortcuts of the bridge
type KeyMap struct {
	Disconnect   key.Binding
	Help         key.Binding
	Quit         key.Binding
	Reconnect    key.Binding
	ScrollBottom key.Binding
	ScrollDown   key.Binding
	ScrollUp     key.Binding
	Send         key.Binding
}

// NewKeyMap creates a KeyMap. Pass nil for customKeys to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Disconnect:   buildBinding("disconnect", defaults, customKeys),
		Help:         buildBinding("help", defaults, customKeys),
		Quit:         buildBinding("quit", defaults, customKeys),
		Reconnect:    buildBinding("reconnect", defaults, customKeys),
		ScrollBottom: buildBinding("scroll_bottom", defaults, customKeys),
		ScrollDown:   buildBinding("scroll_down", defaults, customKeys),
		ScrollUp:     buildBinding("scroll_up", defaults, customKeys),
		Send:         buildBinding("send", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}

// ShortHelp returns the bindings shown in the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Disconnect, k.Reconnect, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help screen
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Disconnect, k.Reconnect},
		{k.ScrollUp, k.ScrollDown, k.ScrollBottom},
		{k.Help, k.Quit},
	}
}
