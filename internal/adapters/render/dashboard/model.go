package dashboard

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	dashboard Dashboard
	opts      RenderOptions
	styles    styles
	output    string
}

func newModel(d Dashboard, opts RenderOptions) model {
	return model{
		dashboard: d,
		opts:      opts,
		styles:    newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.dashboard, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out d once and returns the text.
func Render(d Dashboard, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(d, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

// Compose lays out d without starting a program. Long-running programs call
// it from their own View.
func Compose(d Dashboard, opts RenderOptions) string {
	return renderView(d, opts, newStyles())
}
