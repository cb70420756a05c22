package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const progressPollInterval = 100 * time.Millisecond

// acquireProgress reports collected samples out of the window being filled.
type acquireProgress func() (collected, window int)

type acquireProgressMsg struct {
	collected int
	window    int
}

type acquireDoneMsg struct {
	err error
}

// acquireModel shows how far the live window has filled while one cycle runs.
type acquireModel struct {
	spinner   spinner.Model
	source    string
	progress  acquireProgress
	cycle     tea.Cmd
	collected int
	window    int
	err       error
	done      bool
}

var acquireCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111"))

func newAcquireModel(source string, progress acquireProgress, cycle tea.Cmd) acquireModel {
	return acquireModel{
		spinner:  spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		source:   source,
		progress: progress,
		cycle:    cycle,
	}
}

func (m acquireModel) pollProgress() tea.Cmd {
	progress := m.progress
	return tea.Tick(progressPollInterval, func(time.Time) tea.Msg {
		collected, window := progress()
		return acquireProgressMsg{collected: collected, window: window}
	})
}

func (m acquireModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cycle, m.pollProgress())
}

func (m acquireModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case acquireProgressMsg:
		if m.done {
			return m, nil
		}
		m.collected, m.window = msg.collected, msg.window
		return m, m.pollProgress()
	case acquireDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m acquireModel) View() string {
	if m.done {
		return ""
	}
	if m.window <= 0 {
		return fmt.Sprintf("%s waiting for %s", m.spinner.View(), m.source)
	}

	count := acquireCountStyle.Render(fmt.Sprintf("%d/%d", m.collected, m.window))
	return fmt.Sprintf("%s %s samples from %s", m.spinner.View(), count, m.source)
}

// runAcquireSpinner runs cycle while output shows the window filling up.
func runAcquireSpinner(ctx context.Context, output io.Writer, source string, progress acquireProgress, cycle func(context.Context) error) error {
	cycleCmd := func() tea.Msg {
		return acquireDoneMsg{err: cycle(ctx)}
	}

	p := tea.NewProgram(
		newAcquireModel(source, progress, cycleCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(acquireModel)
	if !ok {
		return fmt.Errorf("unexpected final acquire model type %T", finalModel)
	}

	return result.err
}
