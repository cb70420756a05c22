package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/luminabrain/lb/internal/application"
	"github.com/luminabrain/lb/internal/domain"
)

const defaultBarWidth = 24

// Dashboard is what one screen shows. Nil or empty parts are left out.
type Dashboard struct {
	Reading  *application.Reading
	Recovery []domain.RecoveryEntry
	Team     []domain.OperatorLoad
	Zones    []domain.ZoneLoad
}

type RenderOptions struct {
	BarWidth int
	// Footer is printed last, e.g. key bindings.
	Footer string
}

func renderView(d Dashboard, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	lines := []string{s.title.Render("LUMINABRAIN")}

	if d.Reading == nil && len(d.Team) == 0 && len(d.Zones) == 0 {
		lines = append(lines, s.empty.Render("No readings available."))
		if opts.Footer != "" {
			lines = append(lines, s.section.Render(s.meta.Render(opts.Footer)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if r := d.Reading; r != nil {
		lines = append(lines,
			s.header.Render(readingHeader(*r)),
			s.section.Render(renderBands(r.Bands, s)),
			s.section.Render(renderState(*r, width, s)),
			s.section.Render(renderEnergy(r.Energy, s)),
			s.section.Render(renderAdvisory(*r, s)),
			s.section.Render(renderRisk(*r, width, s)),
			s.section.Render(renderFirewall(r.Flags, s)),
		)
	}
	if len(d.Recovery) > 0 {
		lines = append(lines, s.section.Render(renderRecovery(d.Recovery, s)))
	}
	if len(d.Team) > 0 {
		lines = append(lines, s.section.Render(renderTeam(d.Team, width, s)))
	}
	if len(d.Zones) > 0 {
		lines = append(lines, s.section.Render(renderZones(d.Zones, width, s)))
	}
	if opts.Footer != "" {
		lines = append(lines, s.section.Render(s.meta.Render(opts.Footer)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func readingHeader(r application.Reading) string {
	parts := []string{}
	if r.SessionID != "" {
		parts = append(parts, "session "+shortID(r.SessionID))
	}
	parts = append(parts, "source "+string(r.Source))
	if !r.At.IsZero() {
		parts = append(parts, r.At.Format(time.TimeOnly))
	}
	return strings.Join(parts, " | ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderBands(b domain.BandPowers, s styles) string {
	parts := []string{s.sectionKey.Render("Bands")}
	for _, band := range domain.Bands {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render(string(band)),
			s.value.Render(fmt.Sprintf("%8.2f", b.Get(band))),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderState(r application.Reading, width int, s styles) string {
	rows := []struct {
		name  string
		value float64
		delta float64
	}{
		{name: "stress", value: r.State.Stress, delta: r.Delta.Stress},
		{name: "focus", value: r.State.Focus, delta: r.Delta.Focus},
		{name: "fatigue", value: r.State.Fatigue, delta: r.Delta.Fatigue},
		{name: "load", value: r.State.Load, delta: r.Delta.Load},
	}

	parts := []string{s.sectionKey.Render("State") + s.meta.Render(fmt.Sprintf("  baseline load %.2f", r.Baseline.Load))}
	for _, row := range rows {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render(row.name),
			renderProgressBar(row.value, width, s),
			" ",
			s.value.Render(fmt.Sprintf("%6.2f", row.value)),
			" ",
			s.meta.Render(fmt.Sprintf("(%+.2f)", row.delta)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderEnergy(e domain.EnergyEstimate, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.sectionKey.Render("Energy"),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("metabolic"), s.value.Render(fmt.Sprintf("%.2f", e.Metabolic))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("biophoton"), s.value.Render(fmt.Sprintf("%.2f", e.BiophotonProxy))),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("pulse"), s.value.Render(fmt.Sprintf("%.2f bpm", e.PulseEstimate))),
	)
}

func renderAdvisory(r application.Reading, s styles) string {
	actions := make([]string, 0, len(r.Actions))
	for _, a := range r.Actions {
		actions = append(actions, string(a))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.sectionKey.Render("Advisory"),
		s.tier(r.Advisory.Tier).Render(r.Advisory.Message),
		s.meta.Render("actions: "+strings.Join(actions, ", ")),
	)
}

func renderRisk(r application.Reading, width int, s styles) string {
	riskStyle := lipgloss.NewStyle().Foreground(interpolateColor(r.Risk, 0, 100))
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render("risk"),
		renderProgressBar(r.Risk, width, s),
		" ",
		riskStyle.Render(fmt.Sprintf("%.2f%%", r.Risk)),
	)

	history := s.meta.Render(fmt.Sprintf("collecting trend (%d/%d)", len(r.History), domain.MinTrendSamples))
	if len(r.History) >= domain.MinTrendSamples {
		history = s.sparkline.Render(sparkline(r.History))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.sectionKey.Render("Trend"),
		line,
		lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render("history"), history),
	)
}

func renderFirewall(flags []domain.Flag, s styles) string {
	status := s.ok.Render("clear")
	if len(flags) > 0 {
		names := make([]string, 0, len(flags))
		for _, f := range flags {
			names = append(names, string(f))
		}
		status = s.warning.Render(strings.Join(names, ", "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, s.sectionKey.Render("Firewall "), status)
}

func renderRecovery(entries []domain.RecoveryEntry, s styles) string {
	loads := make([]float64, 0, len(entries))
	for _, e := range entries {
		loads = append(loads, e.Load)
	}
	last := entries[len(entries)-1]

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.sectionKey.Render("Recovery")+s.meta.Render(fmt.Sprintf("  %d entries", len(entries))),
		s.sparkline.Render(sparkline(loads)),
		s.meta.Render(fmt.Sprintf("last %s load %.2f", last.At.Format(time.TimeOnly), last.Load)),
	)
}

func renderTeam(rows []domain.OperatorLoad, width int, s styles) string {
	parts := []string{s.sectionKey.Render("Team")}
	for _, row := range rows {
		parts = append(parts, loadRow(row.Operator, row.Load, row.Status, width, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderZones(rows []domain.ZoneLoad, width int, s styles) string {
	parts := []string{s.sectionKey.Render("Battlefield")}
	for _, row := range rows {
		parts = append(parts, loadRow(row.Zone, row.AvgLoad, row.Status, width, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func loadRow(name string, load float64, status string, width int, s styles) string {
	statusStyle := s.ok
	if status == domain.LoadStatusHigh {
		statusStyle = s.warning
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(name),
		renderProgressBar(load, width, s),
		" ",
		s.value.Render(fmt.Sprintf("%6.2f", load)),
		" ",
		statusStyle.Render(status),
	)
}

// renderProgressBar fills proportionally to percent, clamped to 0-100.
func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	filled = min(max(filled, 0), width)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// sparkline maps 0-100 onto eight block heights.
func sparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		idx := int(clampPercent(v) / 100 * float64(len(sparkTicks)-1))
		b.WriteRune(sparkTicks[idx])
	}
	return b.String()
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, faded at min and bright white at max.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
