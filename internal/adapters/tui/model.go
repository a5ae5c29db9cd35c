// Package tui is the local console for a grind session.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/grindbot/internal/adapters/render/message"
	"github.com/bnema/grindbot/internal/domain"
	"github.com/bnema/grindbot/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultLogSize  = 8
	refreshInterval = time.Second
)

type notificationMsg struct {
	notification domain.Notification
}

type refreshMsg struct{}

type Model struct {
	commands ports.GrindCommands
	summary  domain.SessionSummary
	spinner  spinner.Model
	styles   styles
	feedback string
	log      []string
	logSize  int
}

func NewModel(commands ports.GrindCommands) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return Model{
		commands: commands,
		summary:  commands.Status(),
		spinner:  s,
		styles:   newStyles(),
		logSize:  defaultLogSize,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refresh())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case notificationMsg:
		m.summary = msg.notification.Summary
		m.appendLog(message.Notification(msg.notification))
		return m, nil
	case refreshMsg:
		m.summary = m.commands.Status()
		return m, refresh()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		summary domain.SessionSummary
		err     error
		done    func(domain.SessionSummary) string
	)

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "g":
		summary, err = m.commands.Toggle()
		done = func(s domain.SessionSummary) string {
			if s.IsActive {
				return "Grinding started."
			}
			return "Stopping after the current cycle."
		}
	case "p":
		summary, err = m.commands.Pause()
		done = func(domain.SessionSummary) string { return "Grinding paused." }
	case "r":
		summary, err = m.commands.Resume()
		done = func(domain.SessionSummary) string { return "Grinding resumed." }
	case "x":
		summary, err = m.commands.Reset()
		done = func(domain.SessionSummary) string { return "Statistics reset." }
	default:
		return m, nil
	}

	if err != nil {
		m.feedback = m.styles.warning.Render(firstLine(message.Error(err)))
		m.summary = m.commands.Status()
		return m, nil
	}

	m.summary = summary
	m.feedback = m.styles.feedback.Render(done(summary))
	return m, nil
}

func (m *Model) appendLog(text string) {
	m.log = append(m.log, firstLine(text))
	if len(m.log) > m.logSize {
		m.log = m.log[len(m.log)-m.logSize:]
	}
}

func (m Model) View() string {
	s := m.styles

	state := s.label.Render(string(m.summary.Label()))
	if m.summary.IsActive && !m.summary.IsPaused {
		state = m.spinner.View() + " " + state
	}

	lines := []string{
		s.title.Render("grindbot console"),
		state,
		s.detail.Render(fmt.Sprintf("cycles: %d  exp: %d  currency: %d  last: %s",
			m.summary.CycleCount, m.summary.TotalExperience, m.summary.TotalCurrency, m.summary.LastAction)),
	}
	if m.feedback != "" {
		lines = append(lines, m.feedback)
	}

	logLines := []string{s.header.Render("events")}
	if len(m.log) == 0 {
		logLines = append(logLines, s.empty.Render("no events yet"))
	}
	for _, entry := range m.log {
		logLines = append(logLines, s.detail.Render(entry))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, logLines...)))
	lines = append(lines, s.section.Render(s.help.Render("g toggle • p pause • r resume • x reset • q quit")))

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return line
}

// Run blocks until the operator quits or ctx ends. Notifications sent to n
// while the program runs are shown in the event log.
func Run(ctx context.Context, commands ports.GrindCommands, n *Notifier, input io.Reader, output io.Writer) error {
	p := tea.NewProgram(
		NewModel(commands),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)

	n.attach(p)
	defer n.attach(nil)

	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
