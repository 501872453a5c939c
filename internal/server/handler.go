package server

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/ui"
)

// teaHandler serves the live monitor to interactive SSH sessions
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	startTime := time.Now()
	logging.Logger.Info("SSH monitor session started",
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String())

	results, unsubscribe := s.controller.Subscribe()
	go func() {
		<-sess.Context().Done()
		unsubscribe()
		logging.Logger.Info("SSH monitor session ended",
			"user", sess.User(),
			"duration", time.Since(startTime).String())
	}()

	return ui.NewMonitor(s.controller, results, s.monitorHistory), []tea.ProgramOption{tea.WithAltScreen()}
}
