package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtuomik/lapster/internal/athlete"
	"github.com/mtuomik/lapster/internal/export"
)

const (
	formatText = "text"
	formatPDF  = "pdf"
)

// exportModel is the export overlay: a date-range and format form, then a
// file write. Blank dates mean all-time.
type exportModel struct {
	roster *athlete.Roster

	active bool
	form   *huh.Form

	fromDate *string
	toDate   *string
	format   *string
}

func newExportModel(r *athlete.Roster) exportModel {
	from, to, format := "", "", formatText
	return exportModel{
		roster:   r,
		fromDate: &from,
		toDate:   &to,
		format:   &format,
	}
}

func (m exportModel) open() (exportModel, tea.Cmd) {
	*m.fromDate = ""
	*m.toDate = ""
	*m.format = formatText

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("From (YYYY-MM-DD, blank = all)").Value(m.fromDate),
			huh.NewInput().Title("To (YYYY-MM-DD, blank = all)").Value(m.toDate),
			huh.NewSelect[string]().Title("Format").
				Options(
					huh.NewOption("Text report", formatText),
					huh.NewOption("PDF (print)", formatPDF),
				).Value(m.format),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.active = true
	return m, m.form.Init()
}

func (m exportModel) update(msg tea.Msg) (exportModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.active = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.active = false
		return m, m.doExport()
	}

	return m, cmd
}

// doExport writes the report to the user's home directory. An empty range
// result is surfaced as a status error, and no file is produced.
func (m exportModel) doExport() tea.Cmd {
	athletes := m.roster.Athletes()
	from := parseDate(*m.fromDate)
	to := parseDate(*m.toDate)
	if !to.IsZero() {
		// Inclusive end of day.
		to = to.Add(24*time.Hour - time.Millisecond)
	}
	format := *m.format

	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		var err error
		if format == formatPDF {
			path = filepath.Join(home, fmt.Sprintf("lapster-report-%s.pdf", dateStr))
			err = export.ToPDF(athletes, from, to, path)
		} else {
			path = filepath.Join(home, fmt.Sprintf("lapster-report-%s.txt", dateStr))
			err = export.Report(athletes, from, to, path)
		}

		if errors.Is(err, export.ErrNoData) {
			return statusMsg{text: "No laps in the selected range", isError: true}
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}

func (m exportModel) view(width int) string {
	title := titleStyle.Render("Export")
	content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
	return activePanelStyle.Width(width - 4).Render(content)
}
