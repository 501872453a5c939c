package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/services"
)

var errUsage = errors.New("usage: begin <root-id> | end | cleanup <root-id> | status")

// SessionController is what the SSH surface drives
type SessionController interface {
	Begin(ctx context.Context, rootID uint) (services.BeginResult, error)
	Cleanup(ctx context.Context, rootID uint) (services.CleanupReport, error)
	End() services.EndResult
	Status() domain.SessionStatus
	Subscribe() (<-chan domain.DispatchResult, func())
}

type command struct {
	name   string
	rootID uint
}

type rootResponse struct {
	ErrorDir    string `json:"error_dir"`
	ID          uint   `json:"id"`
	IncomingDir string `json:"incoming_dir"`
	Name        string `json:"name"`
	OutgoingDir string `json:"outgoing_dir"`
}

type beginResponse struct {
	AlreadyRunning bool         `json:"already_running"`
	Root           rootResponse `json:"root"`
	Rules          int          `json:"rules"`
	SessionID      string       `json:"session_id"`
}

type endResponse struct {
	Dispatched int           `json:"dispatched"`
	Root       *rootResponse `json:"root,omitempty"`
	SessionID  string        `json:"session_id,omitempty"`
	Stopped    bool          `json:"stopped"`
}

type cleanupResponse struct {
	Dirs    []services.DirCleanup `json:"dirs"`
	Removed int                   `json:"removed"`
	Root    rootResponse          `json:"root"`
}

type statusResponse struct {
	Dispatched int           `json:"dispatched"`
	Failed     int           `json:"failed"`
	LastError  string        `json:"last_error,omitempty"`
	Matched    int           `json:"matched"`
	Root       *rootResponse `json:"root,omitempty"`
	Rules      int           `json:"rules"`
	Running    bool          `json:"running"`
	SessionID  string        `json:"session_id,omitempty"`
	StartedAt  *time.Time    `json:"started_at,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// commandMiddleware answers exec requests (ssh host begin 1) with a JSON
// document and passes interactive sessions on to the monitor
func (s *Server) commandMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			args := sess.Command()
			if len(args) == 0 {
				next(sess)
				return
			}

			logging.Logger.Info("SSH command received",
				"user", sess.User(),
				"remote_addr", sess.RemoteAddr().String(),
				"command", args)

			exitCode := 0
			response, err := s.execute(sess.Context(), args)
			if err != nil {
				logging.Logger.Warn("SSH command failed", "command", args, "error", err)
				response = errorResponse{Error: err.Error()}
				exitCode = 1
			}

			enc := json.NewEncoder(sess)
			enc.SetIndent("", "  ")
			if err := enc.Encode(response); err != nil {
				logging.Logger.Error("Failed to write command response", "error", err)
				exitCode = 1
			}
			if err := sess.Exit(exitCode); err != nil {
				logging.Logger.Debug("Failed to send exit status", "error", err)
			}
		}
	}
}

func (s *Server) execute(ctx context.Context, args []string) (any, error) {
	cmd, err := parseCommand(args)
	if err != nil {
		return nil, err
	}

	switch cmd.name {
	case "begin":
		result, err := s.controller.Begin(ctx, cmd.rootID)
		if err != nil {
			return nil, err
		}
		return beginResponse{
			AlreadyRunning: result.AlreadyRunning,
			Root:           toRootResponse(result.Root),
			Rules:          result.Rules,
			SessionID:      result.SessionID,
		}, nil

	case "end":
		result := s.controller.End()
		resp := endResponse{
			Dispatched: result.Dispatched,
			SessionID:  result.SessionID,
			Stopped:    result.Stopped,
		}
		if result.Root != nil {
			root := toRootResponse(*result.Root)
			resp.Root = &root
		}
		return resp, nil

	case "cleanup":
		report, err := s.controller.Cleanup(ctx, cmd.rootID)
		if err != nil {
			return nil, err
		}
		return cleanupResponse{
			Dirs:    report.Dirs,
			Removed: report.Removed(),
			Root:    toRootResponse(report.Root),
		}, nil

	case "status":
		return toStatusResponse(s.controller.Status()), nil
	}
	return nil, errUsage
}

// parseCommand validates exec arguments
func parseCommand(args []string) (command, error) {
	if len(args) == 0 {
		return command{}, errUsage
	}

	cmd := command{name: args[0]}
	switch cmd.name {
	case "begin", "cleanup":
		if len(args) != 2 {
			return command{}, fmt.Errorf("%s requires a root id: %w", cmd.name, errUsage)
		}
		id, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil || id == 0 {
			return command{}, fmt.Errorf("invalid root id %q: %w", args[1], errUsage)
		}
		cmd.rootID = uint(id)
	case "end", "status":
		if len(args) != 1 {
			return command{}, fmt.Errorf("%s takes no arguments: %w", cmd.name, errUsage)
		}
	default:
		return command{}, fmt.Errorf("unknown command %q: %w", cmd.name, errUsage)
	}
	return cmd, nil
}

func toRootResponse(root domain.Root) rootResponse {
	return rootResponse{
		ErrorDir:    root.ErrorDir,
		ID:          root.ID,
		IncomingDir: root.IncomingDir,
		Name:        root.Name,
		OutgoingDir: root.OutgoingDir,
	}
}

func toStatusResponse(st domain.SessionStatus) statusResponse {
	resp := statusResponse{
		Dispatched: st.Dispatched,
		Failed:     st.Failed,
		Matched:    st.Matched,
		Rules:      st.Rules,
		Running:    st.Running,
		SessionID:  st.ID,
	}
	if st.LastError != nil {
		resp.LastError = st.LastError.Error()
	}
	if st.Root != nil {
		root := toRootResponse(*st.Root)
		resp.Root = &root
	}
	if !st.StartedAt.IsZero() {
		startedAt := st.StartedAt
		resp.StartedAt = &startedAt
	}
	return resp
}
