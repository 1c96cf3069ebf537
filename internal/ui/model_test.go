package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/shellbridge/internal/domain"
	"github.com/renato0307/shellbridge/internal/output"
)

type fakeBridge struct {
	closed      int
	connects    []domain.Target
	disconnects int
	out         *output.Channel
	sendErr     error
	sent        []string
	state       domain.ConnectionState
	target      domain.Target
}

func newFakeBridge() *fakeBridge {
	return &fakeBridge{out: output.NewChannel()}
}

func (b *fakeBridge) Close()      { b.closed++ }
func (b *fakeBridge) Disconnect() { b.disconnects++ }

func (b *fakeBridge) Connect(target domain.Target, credential domain.Credential) error {
	credential.Destroy()
	b.connects = append(b.connects, target)
	b.target = target
	return nil
}

func (b *fakeBridge) Output() *output.Channel       { return b.out }
func (b *fakeBridge) State() domain.ConnectionState { return b.state }
func (b *fakeBridge) Target() domain.Target         { return b.target }

func (b *fakeBridge) Send(line string) error {
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, line)
	return nil
}

func newSessionModel(t *testing.T, bridge *fakeBridge) *Model {
	t.Helper()
	m := NewModel(bridge, ModelOptions{
		Connect:    true,
		Credential: domain.AgentCredential(),
		Defaults:   CredentialDefaults{Host: "example.com", Port: 22, Username: "ops"},
	})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func TestModel_ConnectRequestReachesBridge(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	m.Update(connectRequestMsg{credential: domain.AgentCredential(), target: domain.Target{Host: "example.com", Port: 22, Username: "ops"}})

	require.Len(t, bridge.connects, 1)
	assert.Equal(t, "ops@example.com:22", bridge.connects[0].String())
}

func TestModel_FrameDrainsAndSanitizes(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	bridge.out.Enqueue(domain.ConnectedChunk("example.com"))
	bridge.out.Enqueue(domain.RemoteChunk("\x1b[32mok\x1b[0m\r\n$ \x1b[3"))
	_, cmd := m.Update(frameTickMsg{})

	assert.NotNil(t, cmd, "tick is rescheduled")
	assert.Equal(t, 0, bridge.out.Len())
	assert.Equal(t, "\n[Connected to example.com]\nok\r\n$ ", m.scrollback.String())

	bridge.out.Enqueue(domain.RemoteChunk("1mred"))
	m.Update(frameTickMsg{})

	assert.Equal(t, "\n[Connected to example.com]\nok\r\n$ red", m.scrollback.String())
	assert.Contains(t, m.viewport.View(), "red")
}

func TestModel_HeldFragmentShownOnceDisconnected(t *testing.T) {
	bridge := newFakeBridge()
	bridge.state = domain.StateConnected
	m := newSessionModel(t, bridge)

	bridge.out.Enqueue(domain.RemoteChunk("$ \x1b["))
	m.Update(frameTickMsg{})
	assert.Equal(t, "$ ", m.scrollback.String())

	m.Update(frameTickMsg{})
	assert.Equal(t, "$ ", m.scrollback.String(), "still connected, fragment may complete")

	bridge.state = domain.StateDisconnected
	m.Update(frameTickMsg{})
	assert.Equal(t, "$ \x1b[", m.scrollback.String())
	assert.Empty(t, m.sanitizer.Pending())
}

func TestModel_FrameWithNothingQueued(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	m.Update(frameTickMsg{})

	assert.Equal(t, 0, m.scrollback.Len())
}

func TestModel_EnterSendsAndClearsInput(t *testing.T) {
	bridge := newFakeBridge()
	bridge.state = domain.StateConnected
	m := newSessionModel(t, bridge)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ls -la")})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"ls -la"}, bridge.sent)
	assert.Empty(t, m.input.Value())
	assert.False(t, m.errorManager.HasError())
}

func TestModel_EnterWhileDisconnected(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	m.input.SetValue("uptime")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, bridge.sent)
	assert.ErrorIs(t, m.errorManager.GetError(), domain.ErrNotConnected)
	assert.Nil(t, cmd, "no clear delay configured")
	assert.Empty(t, m.input.Value())
}

func TestModel_SendErrorShown(t *testing.T) {
	bridge := newFakeBridge()
	bridge.state = domain.StateConnected
	bridge.sendErr = errors.New("send to example.com: broken pipe")
	m := newSessionModel(t, bridge)

	m.input.SetValue("ls")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Contains(t, m.View(), "broken pipe")
}

func TestModel_EmptyEnterDoesNothing(t *testing.T) {
	bridge := newFakeBridge()
	bridge.state = domain.StateConnected
	m := newSessionModel(t, bridge)

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, bridge.sent)
	assert.False(t, m.errorManager.HasError())
}

func TestModel_DisconnectRunsOffTheUpdateLoop(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.Equal(t, 0, bridge.disconnects)
	require.NotNil(t, cmd)
	assert.Equal(t, disconnectedMsg{}, cmd())
	assert.Equal(t, 1, bridge.disconnects)
}

func TestModel_QuitClosesBridge(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, bridge.closed)
	assert.Empty(t, m.View())
}

func TestModel_ReconnectOpensPrefilledForm(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	require.Equal(t, stateCredentials, m.state)
	form, ok := m.credentialForm.Content().(*CredentialForm)
	require.True(t, ok)
	assert.Equal(t, "example.com", form.Result().Host)
	assert.Equal(t, "22", form.Result().Port)
	assert.Empty(t, form.Result().Password)
}

func TestModel_CancelledFormReturnsToSession(t *testing.T) {
	bridge := newFakeBridge()
	m := NewModel(bridge, ModelOptions{Defaults: CredentialDefaults{Host: "example.com"}})
	require.Equal(t, stateCredentials, m.state)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateSession, m.state)
	assert.Empty(t, bridge.connects)
}

func TestModel_QuitFromForm(t *testing.T) {
	bridge := newFakeBridge()
	m := NewModel(bridge, ModelOptions{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 1, bridge.closed)
}

func TestModel_HelpScreenToggles(t *testing.T) {
	bridge := newFakeBridge()
	m := newSessionModel(t, bridge)

	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "disconnect from host")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, stateSession, m.state)
}

func TestModel_StatusBarFitsWidth(t *testing.T) {
	bridge := newFakeBridge()
	bridge.state = domain.StateConnected
	bridge.target = domain.Target{Host: strings.Repeat("very-long-host-", 10) + "example.com", Port: 22, Username: "ops"}
	m := newSessionModel(t, bridge)

	bar := m.renderStatusBar()

	assert.Contains(t, bar, "CONNECTED")
	assert.Contains(t, bar, "…")
	assert.NotContains(t, bar, "\n")
}

func TestModel_ErrorClearedOnlyByItsOwnTick(t *testing.T) {
	em := NewErrorManager(5)

	assert.NotNil(t, em.SetError(errors.New("first")))
	assert.NotNil(t, em.SetError(errors.New("second")))

	em.HandleClear(clearErrorMsg{seq: 1})
	assert.EqualError(t, em.GetError(), "second")

	em.HandleClear(clearErrorMsg{seq: 2})
	assert.False(t, em.HasError())
}
