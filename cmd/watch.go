package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/luminabrain/lb/internal/adapters/render/dashboard"
	"github.com/luminabrain/lb/internal/application"
	"github.com/luminabrain/lb/internal/domain"
	"github.com/spf13/cobra"
)

const watchKeys = "b set baseline | q quit"

func newWatchCmd(app *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show a live dashboard refreshed every ui.refresh_interval seconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWatch(cmd, app, source)
		},
	}

	addSourceFlag(cmd, &source)

	return cmd
}

func runWatch(cmd *cobra.Command, app *app, source string) error {
	ctx := cmd.Context()

	service, err := app.newService(ctx, source, app.quietLogger())
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	session, err := service.NewSession(ctx)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		newWatchModel(ctx, service, session, app.cfg.UI.RefreshInterval),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(watchModel)
	if !ok {
		return fmt.Errorf("unexpected final watch model type %T", finalModel)
	}

	return result.err
}

type bandsReadMsg struct {
	bands  domain.BandPowers
	source domain.BandSource
}

type refreshMsg struct{}

type baselineSavedMsg struct {
	baseline domain.Baseline
	err      error
}

// watchModel owns the session. Only Update touches it; commands only read
// bands or persist a baseline. A captured baseline reaches the session once it
// is stored.
type watchModel struct {
	ctx      context.Context
	service  *application.Service
	session  *application.Session
	interval time.Duration
	reading  *application.Reading
	status   string
	err      error
}

func newWatchModel(ctx context.Context, service *application.Service, session *application.Session, interval time.Duration) watchModel {
	return watchModel{
		ctx:      ctx,
		service:  service,
		session:  session,
		interval: interval,
	}
}

func (m watchModel) Init() tea.Cmd {
	return m.readBands()
}

func (m watchModel) readBands() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		bands, source := service.ReadBands(ctx)
		return bandsReadMsg{bands: bands, source: source}
	}
}

func (m watchModel) saveBaseline(state domain.BrainState) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		baseline, err := service.SaveBaseline(ctx, nil, state)
		return baselineSavedMsg{baseline: baseline, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case bandsReadMsg:
		reading := m.service.Observe(m.session, msg.bands, msg.source)
		m.reading = &reading
		return m, tea.Tick(m.interval, func(time.Time) tea.Msg {
			return refreshMsg{}
		})
	case refreshMsg:
		return m, m.readBands()
	case baselineSavedMsg:
		if msg.err != nil {
			m.status = "baseline not saved: " + msg.err.Error()
			return m, nil
		}
		m.session.SetBaseline(msg.baseline.State)
		m.status = fmt.Sprintf("baseline saved at %s", msg.baseline.CapturedAt.Format(time.TimeOnly))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "b":
			if m.reading == nil {
				return m, nil
			}
			m.status = "saving baseline..."
			return m, m.saveBaseline(m.reading.State)
		}
	}

	return m, nil
}

func (m watchModel) View() string {
	footer := watchKeys
	if m.status != "" {
		footer += " | " + m.status
	}

	if m.reading == nil {
		return dashboard.Compose(dashboard.Dashboard{}, dashboard.RenderOptions{Footer: footer})
	}

	return dashboard.Compose(dashboard.Dashboard{
		Reading:  m.reading,
		Recovery: m.session.Recovery(),
	}, dashboard.RenderOptions{Footer: footer})
}
