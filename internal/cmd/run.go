package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/services"
	"github.com/renato0307/sftpbot/internal/ui"
)

// RunCmd begins a session on a root and ends it on exit
type RunCmd struct {
	Plain  bool `help:"Print one line per file instead of the interactive monitor"`
	RootID uint `arg:"" help:"ID of the root to watch"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	lifecycle := cli.Container.Lifecycle

	results, unsubscribe := lifecycle.Subscribe()
	defer unsubscribe()

	begin, err := lifecycle.Begin(context.Background(), r.RootID)
	if err != nil {
		return fmt.Errorf("failed to begin session: %w", err)
	}
	defer r.end(lifecycle)

	logging.Logger.Info("Session running from CLI",
		"session_id", begin.SessionID,
		"root", begin.Root.Name,
		"plain", r.Plain)

	if r.Plain {
		return r.runPlain(lifecycle, begin, results)
	}

	p := tea.NewProgram(
		ui.NewMonitor(lifecycle, results, cli.settings.GetMonitorHistory()),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Monitor program error", "error", err)
		return fmt.Errorf("error running monitor: %w", err)
	}
	return nil
}

func (r *RunCmd) runPlain(lifecycle *services.LifecycleController, begin services.BeginResult, results <-chan domain.DispatchResult) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Watching %s for root '%s' (%d test cases). Press Ctrl+C to stop.\n",
		begin.Root.IncomingDir, begin.Root.Name, begin.Rules)

	done := lifecycle.Done()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			if err := lifecycle.Status().LastError; err != nil {
				return fmt.Errorf("session stopped: %w", err)
			}
			return nil
		case result := <-results:
			printResult(result)
		}
	}
}

func (r *RunCmd) end(lifecycle *services.LifecycleController) {
	result := lifecycle.End()
	if result.Stopped {
		fmt.Printf("Session ended, %d files seen\n", result.Dispatched)
	}
}

func printResult(result domain.DispatchResult) {
	ts := result.Arrival.DetectedAt.Format("15:04:05")
	name := result.Arrival.Filename()

	switch result.Outcome {
	case domain.OutcomeMatched:
		fmt.Printf("%s %s matched '%s' -> %s\n", ts, name, result.TestCase.Name, result.OutputPath)
	case domain.OutcomeFailed:
		fmt.Printf("%s %s failed: %v\n", ts, name, result.Err)
	default:
		fmt.Printf("%s %s no match\n", ts, name)
	}
}
