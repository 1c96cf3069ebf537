package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/shellbridge/internal/theme"
)

var helpGroups = []string{"Session", "Scrollback", "Application"}

// HelpScreen displays keyboard shortcuts organized by group
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func buildHelpContent(keys *KeyMap) string {
	var content strings.Builder
	for i, group := range keys.FullHelp() {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(theme.HelpGroupStyle.Render(helpGroups[i]) + "\n")
		for _, binding := range group {
			help := binding.Help()
			content.WriteString(renderShortcut(help.Key, help.Desc))
		}
	}

	content.WriteString("\n" + theme.HelpGroupStyle.Render("Status lines (read-only)") + "\n")
	content.WriteString(renderShortcut("[Connected to …]", "shell is open"))
	content.WriteString(renderShortcut("[Connection Error]", "attempt failed, nothing to clean up"))
	content.WriteString(renderShortcut("[Disconnected]", "connection released"))
	content.WriteString(renderShortcut("> line", "what you sent"))
	return content.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	footer := theme.HelpStyle.Render("Press esc or " + h.keys.Help.Help().Key + " to close • ↑↓/PgUp/PgDn to scroll")
	return h.viewport.View() + "\n\n" + footer
}
