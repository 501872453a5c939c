package ui

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/sftpbot/internal/domain"
	"github.com/renato0307/sftpbot/internal/logging"
	"github.com/renato0307/sftpbot/internal/theme"
)

const statusRefreshInterval = time.Second

// StatusSource reports the current session state
type StatusSource interface {
	Status() domain.SessionStatus
}

// MonitorKeys are the monitor's key bindings
type MonitorKeys struct {
	Clear key.Binding
	Quit  key.Binding
}

func newMonitorKeys() MonitorKeys {
	return MonitorKeys{
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type resultMsg domain.DispatchResult

type resultsClosedMsg struct{}

type statusTickMsg time.Time

// Monitor is a Bubble Tea model showing the running session and its most
// recent dispatch results
type Monitor struct {
	history    []domain.DispatchResult
	keys       MonitorKeys
	maxHistory int
	results    <-chan domain.DispatchResult
	source     StatusSource
	spinner    spinner.Model
	status     domain.SessionStatus
	width      int
}

// NewMonitor creates a monitor reading results until the channel is closed
func NewMonitor(source StatusSource, results <-chan domain.DispatchResult, maxHistory int) *Monitor {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.SpinnerStyle

	return &Monitor{
		keys:       newMonitorKeys(),
		maxHistory: maxHistory,
		results:    results,
		source:     source,
		spinner:    s,
		status:     source.Status(),
	}
}

// Init starts the spinner, the result listener and the status refresh
func (m *Monitor) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.results), tickStatus())
}

// Update handles incoming messages
func (m *Monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			logging.Logger.Debug("Monitor quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Clear):
			m.history = nil
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case resultMsg:
		m.push(domain.DispatchResult(msg))
		m.status = m.source.Status()
		return m, waitForResult(m.results)

	case resultsClosedMsg:
		logging.Logger.Debug("Monitor result stream closed")
		return m, nil

	case statusTickMsg:
		m.status = m.source.Status()
		return m, tickStatus()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the monitor
func (m *Monitor) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("sftpbot monitor"))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n\n")
	b.WriteString(theme.SubtitleStyle.Render("Recent files"))
	b.WriteString("\n")
	b.WriteString(m.renderHistory())
	b.WriteString(theme.HelpStyle.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Clear.Help().Key, m.keys.Clear.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)))

	return b.String()
}

// History returns the retained results, oldest first
func (m *Monitor) History() []domain.DispatchResult {
	return m.history
}

func (m *Monitor) push(result domain.DispatchResult) {
	m.history = append(m.history, result)
	if m.maxHistory > 0 && len(m.history) > m.maxHistory {
		m.history = m.history[len(m.history)-m.maxHistory:]
	}
}

func (m *Monitor) renderStatus() string {
	st := m.status
	var lines []string

	if st.Running {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			m.spinner.View(),
			theme.RunningStyle.Render("watching"),
			theme.MutedStyle.Render("since "+st.StartedAt.Format("15:04:05"))))
	} else {
		lines = append(lines, theme.StoppedStyle.Render("no session running"))
	}
	if st.LastError != nil {
		lines = append(lines, theme.ErrorStyle.Render("last error: "+st.LastError.Error()))
	}

	if st.Root != nil {
		lines = append(lines,
			row("root", st.Root.Name),
			row("incoming", st.Root.IncomingDir),
			row("outgoing", st.Root.OutgoingDir),
			row("error", st.Root.ErrorDir),
			row("rules", fmt.Sprintf("%d", st.Rules)),
			row("files", fmt.Sprintf("%d seen, %d matched, %d failed", st.Dispatched, st.Matched, st.Failed)),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Monitor) renderHistory() string {
	if len(m.history) == 0 {
		return theme.MutedStyle.Render("  waiting for files...") + "\n"
	}

	var b strings.Builder
	// Newest first
	for i := len(m.history) - 1; i >= 0; i-- {
		b.WriteString(renderResult(m.history[i]))
		b.WriteString("\n")
	}
	return b.String()
}

func renderResult(r domain.DispatchResult) string {
	ts := theme.MutedStyle.Render(r.Arrival.DetectedAt.Format("15:04:05"))
	name := r.Arrival.Filename()

	switch r.Outcome {
	case domain.OutcomeMatched:
		return fmt.Sprintf("  %s %s %s %s",
			theme.MatchedIconStyle.Render(theme.IconMatched), ts, name,
			theme.MutedStyle.Render(fmt.Sprintf("→ %s (%s)", filepath.Base(filepath.Dir(r.OutputPath)), r.TestCase.Name)))
	case domain.OutcomeFailed:
		msg := "failed"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return fmt.Sprintf("  %s %s %s %s",
			theme.FailedIconStyle.Render(theme.IconFailed), ts, name, theme.ErrorStyle.Render(msg))
	default:
		return fmt.Sprintf("  %s %s %s %s",
			theme.NoMatchIconStyle.Render(theme.IconNoMatch), ts, name, theme.MutedStyle.Render("no match"))
	}
}

func row(label, value string) string {
	return theme.LabelStyle.Render(label) + theme.NormalStyle.Render(value)
}

func waitForResult(results <-chan domain.DispatchResult) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return resultsClosedMsg{}
		}
		return resultMsg(r)
	}
}

func tickStatus() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}
