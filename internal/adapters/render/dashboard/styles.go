package dashboard

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/luminabrain/lb/internal/domain"
)

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	section    lipgloss.Style
	sectionKey lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	meta       lipgloss.Style
	empty      lipgloss.Style
	warning    lipgloss.Style
	ok         lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
	sparkline  lipgloss.Style
	tiers      map[domain.AdvisoryTier]lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:    lipgloss.NewStyle().MarginTop(1),
		sectionKey: lipgloss.NewStyle().Bold(true),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Width(10),
		value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		meta:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:      lipgloss.NewStyle().Faint(true),
		warning:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		ok:         lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		sparkline:  lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		tiers: map[domain.AdvisoryTier]lipgloss.Style{
			domain.AdvisoryOptimal:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			domain.AdvisoryWarning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
			domain.AdvisoryCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		},
	}
}

func (s styles) tier(t domain.AdvisoryTier) lipgloss.Style {
	if style, ok := s.tiers[t]; ok {
		return style
	}
	return s.value
}
