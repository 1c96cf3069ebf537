package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/renato0307/shellbridge/internal/logging"
	"github.com/renato0307/shellbridge/internal/ui"
)

// sessionModel ties one bridge to one incoming SSH session
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("Bridge session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updated, cmd := s.Model.Update(msg)
	if m, ok := updated.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

// teaHandler creates an independent bridge and presenter for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.NewString()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	bridge, err := s.newBridge()
	if err != nil {
		logging.Logger.Error("Failed to create bridge for SSH session", "error", err, "session_id", sessionID)
		return errorModel{err}, nil
	}

	// The program is torn down without a QuitMsg when the client drops
	go func() {
		<-sess.Context().Done()
		bridge.Close()
		logging.Logger.Debug("Bridge closed", "session_id", sessionID)
	}()

	opts := s.modelOptions
	if opts.Defaults.Username == "" {
		opts.Defaults.Username = sess.User()
	}

	return &sessionModel{
			Model:     ui.NewModel(bridge, opts),
			sessionID: sessionID,
			startTime: time.Now(),
		}, []tea.ProgramOption{
			tea.WithAltScreen(),
		}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
