package ui

import tea "github.com/charmbracelet/bubbletea"

// Dialog wraps any tea.Model content and prepends the application header.
type Dialog struct {
	content tea.Model
	devMode bool
	title   string
}

// NewDialog creates a new dialog wrapper.
func NewDialog(title string, content tea.Model, devMode bool) *Dialog {
	return &Dialog{
		content: content,
		devMode: devMode,
		title:   title,
	}
}

// Init delegates to wrapped content's Init method.
func (d *Dialog) Init() tea.Cmd {
	return d.content.Init()
}

// Update delegates to wrapped content's Update method.
func (d *Dialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedContent, cmd := d.content.Update(msg)
	d.content = updatedContent
	return d, cmd
}

// View returns the header followed by the content view
func (d *Dialog) View() string {
	return renderHeader(d.devMode, d.title) + d.content.View()
}

// Content returns the wrapped content for type assertion.
func (d *Dialog) Content() tea.Model {
	return d.content
}
