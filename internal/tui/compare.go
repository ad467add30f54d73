package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtuomik/lapster/internal/athlete"
)

var splitColors = []lipgloss.Color{
	"#6C63FF", "#2EC4B6", "#FF6B6B", "#F39C12", "#2ECC71", "#9B59B6", "#3498DB", "#E74C3C",
}

// compareModel shows the athletes side by side: lap splits as a stacked bar
// per athlete, and a summary table with target and PB deltas.
type compareModel struct {
	roster *athlete.Roster
	width  int
	height int

	chart barchart.Model
}

func newCompareModel(r *athlete.Roster) compareModel {
	return compareModel{
		roster: r,
		chart:  barchart.New(60, 12),
	}
}

func (m *compareModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.buildChart()
}

func (m compareModel) update(msg tea.Msg) (compareModel, tea.Cmd) {
	switch msg.(type) {
	case rosterChangedMsg:
		m.buildChart()
		return m, nil
	}
	return m, nil
}

// buildChart stacks each athlete's lap splits (in seconds) into one bar.
func (m *compareModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, a := range m.roster.Athletes() {
		var values []barchart.BarValue
		for i := range a.Laps {
			style := lipgloss.NewStyle().Foreground(splitColors[i%len(splitColors)])
			values = append(values, barchart.BarValue{
				Name:  fmt.Sprintf("Lap %d", i+1),
				Value: float64(a.Split(i)) / 1000.0,
				Style: style,
			})
		}
		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}
		bars = append(bars, barchart.BarData{
			Label:  a.Name,
			Values: values,
		})
	}

	if len(bars) > 0 {
		m.chart.PushAll(bars)
		m.chart.Draw()
	}
}

func (m compareModel) view() string {
	w := m.width - 4
	title := titleStyle.Render("Compare")

	if m.roster.Len() == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No athletes to compare."),
		)
		return panelStyle.Width(w).Render(content)
	}

	chartView := m.chart.View()
	tableView := m.renderSummaryTable(w)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title, "", chartView, "", tableView,
		),
	)
}

func (m compareModel) renderSummaryTable(w int) string {
	var rows []string
	header := mutedStyle.Render(fmt.Sprintf("  %-16s %6s %10s %10s %10s %11s %11s",
		"Name", "Laps", "Total", "Best Lap", "Avg Lap", "vs Target", "vs PB"))
	rows = append(rows, header)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 80))))

	for _, a := range m.roster.Athletes() {
		rows = append(rows, "  "+m.renderSummaryRow(a))
	}
	return strings.Join(rows, "\n")
}

func (m compareModel) renderSummaryRow(a *athlete.Athlete) string {
	total := "-"
	if last := a.LastLap(); last != nil {
		total = athlete.FormatTime(last.TotalTime)
	}

	best, avg := "-", "-"
	if n := len(a.Laps); n > 0 {
		bestMs := a.Split(0)
		var sum int64
		for i := 0; i < n; i++ {
			s := a.Split(i)
			sum += s
			if s < bestMs {
				bestMs = s
			}
		}
		best = athlete.FormatTime(bestMs)
		avg = athlete.FormatTime(sum / int64(n))
	}

	vsTarget := "-"
	if a.TargetTime > 0 {
		if last := a.LastLap(); last != nil {
			vsTarget = formatDelta(last.TotalTime - a.TargetTime)
		}
	}

	vsPB := "-"
	if a.PBTime > 0 {
		if last := a.LastLap(); last != nil {
			vsPB = formatDelta(last.TotalTime - a.PBTime)
		}
	}

	return fmt.Sprintf("%-16s %6d %10s %10s %10s %11s %11s",
		a.Name, len(a.Laps), total, best, avg, vsTarget, vsPB)
}
