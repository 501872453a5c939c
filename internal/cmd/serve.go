package cmd

import (
	"fmt"

	"github.com/renato0307/sftpbot/internal/config"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/server"
)

// ServeCmd starts the SSH control server
type ServeCmd struct {
	Host string `help:"Host to bind to" default:"localhost"`
	Port string `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	if cli.settings != nil {
		if s.Host == config.DefaultServerHost && cli.settings.ServerHost != "" {
			s.Host = cli.settings.ServerHost
		}
		if s.Port == config.DefaultServerPort && cli.settings.ServerPort != "" {
			s.Port = cli.settings.ServerPort
		}
	}

	logging.Logger.Info("Starting sftpbot SSH server",
		"host", s.Host,
		"port", s.Port,
		"db_path", config.GetDBPath())

	srv, err := server.NewServer(s.Host, s.Port, cli.Container.Lifecycle, cli.settings)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start()
}
