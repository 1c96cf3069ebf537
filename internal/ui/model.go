package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/renato0307/shellbridge/internal/config"
	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/output"
	"github.com/renato0307/shellbridge/internal/terminal"
	"github.com/renato0307/shellbridge/internal/theme"
)

// Bridge is the session the presenter drives
type Bridge interface {
	Close()
	Connect(target domain.Target, credential domain.Credential) error
	Disconnect()
	Output() *output.Channel
	Send(line string) error
	State() domain.ConnectionState
	Target() domain.Target
}

// DefaultFrameInterval is how often the output channel is drained
const DefaultFrameInterval = 33 * time.Millisecond

// status bar, input line and a two line footer
const chromeHeight = 4

type uiState int

const (
	stateSession uiState = iota
	stateCredentials
	stateHelp
)

// ModelOptions configures the presenter
type ModelOptions struct {
	// Connect starts the first attempt with Credential instead of showing the form
	Connect         bool
	Credential      domain.Credential
	Defaults        CredentialDefaults
	DevMode         bool
	ErrorClearDelay time.Duration
	FrameInterval   time.Duration
	Keys            config.KeyBindingsConfig
	ScrollbackBytes int
}

// Model is the presenter: it drains the bridge output once per frame and forwards
// submitted lines to the bridge.
type Model struct {
	bridge         Bridge
	credentialForm *Dialog
	defaults       CredentialDefaults
	devMode        bool
	errorManager   *ErrorManager
	frameInterval  time.Duration
	height         int
	help           help.Model
	helpScreen     *Dialog
	input          textinput.Model
	keys           KeyMap
	pending        *connectRequestMsg
	quitting       bool
	sanitizer      terminal.StreamSanitizer
	scrollback     *Scrollback
	state          uiState
	viewport       viewport.Model
	width          int
}

// NewModel creates the presenter for bridge
func NewModel(bridge Bridge, opts ModelOptions) *Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = DefaultFrameInterval
	}

	input := textinput.New()
	input.Prompt = theme.PromptStyle.Render("> ")
	input.Placeholder = "type a command and press enter"
	input.Focus()

	m := &Model{
		bridge:        bridge,
		defaults:      opts.Defaults,
		devMode:       opts.DevMode,
		errorManager:  NewErrorManager(opts.ErrorClearDelay),
		frameInterval: opts.FrameInterval,
		help:          help.New(),
		input:         input,
		keys:          NewKeyMap(opts.Keys),
		scrollback:    NewScrollback(opts.ScrollbackBytes),
		state:         stateSession,
		viewport:      viewport.New(0, 0),
	}

	if opts.Connect {
		m.pending = &connectRequestMsg{credential: opts.Credential, target: m.defaultTarget()}
	} else {
		m.openCredentialForm()
	}
	return m
}

func (m *Model) defaultTarget() domain.Target {
	return domain.Target{Host: m.defaults.Host, Port: m.defaults.Port, Username: m.defaults.Username}
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.frameTick()}
	if m.pending != nil {
		req := *m.pending
		m.pending = nil
		cmds = append(cmds, func() tea.Msg { return req })
	}
	if m.state == stateCredentials {
		cmds = append(cmds, m.credentialForm.Init())
	}
	return tea.Batch(cmds...)
}

func (m *Model) frameTick() tea.Cmd {
	return tea.Tick(m.frameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Messages every state handles
	switch msg := msg.(type) {
	case frameTickMsg:
		m.drainOutput()
		return m, m.frameTick()

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil

	case connectRequestMsg:
		return m, m.connect(msg)

	case disconnectedMsg:
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, m.forwardSize(msg)
	}

	switch m.state {
	case stateCredentials:
		return m.updateCredentials(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m.updateSession(msg)
}

func (m *Model) updateSession(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()

		case key.Matches(msg, m.keys.Send):
			return m, m.send()

		case key.Matches(msg, m.keys.Disconnect):
			bridge := m.bridge
			return m, func() tea.Msg {
				bridge.Disconnect()
				return disconnectedMsg{}
			}

		case key.Matches(msg, m.keys.Reconnect):
			m.openCredentialForm()
			return m, tea.Batch(m.credentialForm.Init(), m.forwardSize(tea.WindowSizeMsg{Width: m.width, Height: m.height}))

		case key.Matches(msg, m.keys.Help):
			m.helpScreen = NewDialog("Keyboard shortcuts", NewHelpScreen(&m.keys), m.devMode)
			m.state = stateHelp
			return m, tea.Batch(m.helpScreen.Init(), m.forwardSize(tea.WindowSizeMsg{Width: m.width, Height: m.height}))

		case key.Matches(msg, m.keys.ScrollUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, m.keys.ScrollDown):
			m.viewport.HalfViewDown()
			return m, nil

		case key.Matches(msg, m.keys.ScrollBottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateCredentials(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Quit) {
		return m, m.quit()
	}

	updated, cmd := m.credentialForm.Update(msg)
	m.credentialForm = updated.(*Dialog)

	form, ok := m.credentialForm.Content().(*CredentialForm)
	if !ok || !form.Completed {
		return m, cmd
	}

	m.defaults = form.Defaults()
	m.credentialForm = nil
	m.state = stateSession

	if form.Result().Cancelled {
		return m, nil
	}

	target, credential, err := form.Credentials()
	if err != nil {
		return m, m.errorManager.SetError(err)
	}
	return m, func() tea.Msg {
		return connectRequestMsg{credential: credential, target: target}
	}
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if screen, ok := m.helpScreen.Content().(*HelpScreen); ok && screen.Completed {
		m.helpScreen = nil
		m.state = stateSession
		return m, nil
	}
	return m, cmd
}

func (m *Model) openCredentialForm() {
	m.credentialForm = NewDialog("Connect", NewCredentialForm(m.defaults), m.devMode)
	m.state = stateCredentials
}

func (m *Model) connect(req connectRequestMsg) tea.Cmd {
	if err := m.bridge.Connect(req.target, req.credential); err != nil {
		logging.Logger.Warn("Connect rejected", "target", req.target.String(), "error", err)
		return m.errorManager.SetError(err)
	}
	return nil
}

func (m *Model) send() tea.Cmd {
	line := m.input.Value()
	m.input.Reset()

	if line == "" {
		return nil
	}
	if m.bridge.State() != domain.StateConnected {
		return m.errorManager.SetError(fmt.Errorf("%w: press %s to connect", domain.ErrNotConnected, m.keys.Reconnect.Help().Key))
	}
	if err := m.bridge.Send(line); err != nil {
		return m.errorManager.SetError(err)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	bridge := m.bridge
	return func() tea.Msg {
		bridge.Close()
		return tea.QuitMsg{}
	}
}

// drainOutput moves everything queued since the last frame into the scrollback
func (m *Model) drainOutput() {
	var text string
	if chunks := m.bridge.Output().DrainAll(); len(chunks) > 0 {
		text = m.sanitizer.Push(output.Text(chunks))
	} else if m.sanitizer.Pending() != "" && m.bridge.State() != domain.StateConnected {
		// no more output will complete the held fragment
		text = m.sanitizer.Flush()
	}
	if text == "" {
		return
	}
	m.scrollback.Append(text)
	m.viewport.SetContent(m.scrollback.String())
	m.viewport.GotoBottom()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 1)
	m.input.Width = max(width-4, 1)
	m.help.Width = width
	m.viewport.SetContent(m.scrollback.String())
	m.viewport.GotoBottom()
}

func (m *Model) forwardSize(msg tea.WindowSizeMsg) tea.Cmd {
	var cmds []tea.Cmd
	if m.credentialForm != nil {
		updated, cmd := m.credentialForm.Update(msg)
		m.credentialForm = updated.(*Dialog)
		cmds = append(cmds, cmd)
	}
	if m.helpScreen != nil {
		updated, cmd := m.helpScreen.Update(msg)
		m.helpScreen = updated.(*Dialog)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateCredentials:
		return m.credentialForm.View()
	case stateHelp:
		return m.helpScreen.View()
	}

	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *Model) renderStatusBar() string {
	state := m.bridge.State()
	badge := theme.StateStyle(state).Render(strings.ToUpper(state.String()))

	target := m.bridge.Target()
	label := "no target"
	if target.Host != "" {
		label = target.String()
	}

	right := fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)
	room := max(m.width-ansi.StringWidth(badge)-ansi.StringWidth(right), 0)
	label = ansi.Truncate(" "+label, room, "…")
	gap := strings.Repeat(" ", max(room-ansi.StringWidth(label), 0))

	return badge + theme.StatusTargetStyle.Render(label) + theme.StatusBarStyle.Render(gap+right)
}

func (m *Model) renderFooter() string {
	if err := m.errorManager.GetError(); err != nil {
		return theme.ErrorStyle.Render(formatErrorForDisplay(err, m.width))
	}
	return m.help.View(m.keys)
}
