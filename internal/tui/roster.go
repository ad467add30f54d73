package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtuomik/lapster/internal/athlete"
	"github.com/mtuomik/lapster/internal/store"
)

// rosterModel is the main view: the athlete list with live clocks and the
// start/stop/lap/reset commands, plus the add/edit forms.
type rosterModel struct {
	store  *store.Store
	roster *athlete.Roster
	width  int
	height int

	cursor int
	now    int64 // unix ms, advanced by the tick loop

	formActive bool
	form       *huh.Form
	formType   string // "add", "edit"

	// Form field pointers (survive value copies)
	formName       *string
	formTarget     *string
	formLapDist    *string
	formTargetTime *string
	formPBTime     *string

	editingID int64
}

func newRosterModel(s *store.Store, r *athlete.Roster) rosterModel {
	name, target, lapDist, targetTime, pbTime := "", "", "", "", ""
	return rosterModel{
		store:          s,
		roster:         r,
		now:            time.Now().UnixMilli(),
		formName:       &name,
		formTarget:     &target,
		formLapDist:    &lapDist,
		formTargetTime: &targetTime,
		formPBTime:     &pbTime,
	}
}

func (m *rosterModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// current returns the athlete under the cursor, or nil.
func (m rosterModel) current() *athlete.Athlete {
	athletes := m.roster.Athletes()
	if m.cursor < 0 || m.cursor >= len(athletes) {
		return nil
	}
	return athletes[m.cursor]
}

// persist writes the whole roster back to the store. A failed save is
// surfaced as a status message; the in-memory mutation stands regardless.
func (m rosterModel) persist() tea.Cmd {
	if err := m.store.SaveAthletes(m.roster.Athletes()); err != nil {
		return statusCmd(fmt.Sprintf("Save failed: %v", err), true)
	}
	return func() tea.Msg { return rosterChangedMsg{} }
}

func (m rosterModel) update(msg tea.Msg) (rosterModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg).UnixMilli()
		return m, nil

	case tea.KeyMsg:
		return m.updateList(msg)
	}
	return m, nil
}

func (m rosterModel) updateList(msg tea.KeyMsg) (rosterModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < m.roster.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.StartStop):
		a := m.current()
		if a == nil {
			return m, nil
		}
		now := time.Now().UnixMilli()
		if a.Running {
			a.Stop(now)
			return m, tea.Batch(m.persist(),
				statusCmd(fmt.Sprintf("%s stopped at %s", a.Name, athlete.FormatTime(a.Time)), false))
		}
		a.Start(now)
		return m, tea.Batch(m.persist(), statusCmd(a.Name+" started", false))

	case key.Matches(msg, keys.Lap):
		a := m.current()
		if a == nil {
			return m, nil
		}
		if !a.Running {
			return m, statusCmd("Timer is not running", true)
		}
		if !a.RecordLap(time.Now().UnixMilli()) {
			return m, statusCmd(a.Name+" has completed the race", true)
		}
		lap := a.LastLap()
		return m, tea.Batch(m.persist(),
			statusCmd(fmt.Sprintf("%s lap %d: %s", a.Name, lap.Number, athlete.FormatTime(a.Split(lap.Number-1))), false))

	case key.Matches(msg, keys.Reset):
		a := m.current()
		if a == nil {
			return m, nil
		}
		a.Reset()
		return m, tea.Batch(m.persist(), statusCmd(a.Name+" reset", false))

	case key.Matches(msg, keys.New):
		return m.showAddForm()

	case key.Matches(msg, keys.Edit):
		if m.current() != nil {
			return m.showEditForm()
		}

	case key.Matches(msg, keys.Delete):
		a := m.current()
		if a == nil {
			return m, nil
		}
		m.roster.Remove(a.ID)
		if m.cursor >= m.roster.Len() {
			m.cursor = max(0, m.roster.Len()-1)
		}
		return m, tea.Batch(m.persist(), statusCmd(a.Name+" removed", false))
	}
	return m, nil
}

func (m rosterModel) showAddForm() (rosterModel, tea.Cmd) {
	*m.formName = ""
	*m.formTarget = ""
	*m.formLapDist = ""
	*m.formTargetTime = ""
	*m.formPBTime = ""
	m.formType = "add"
	return m.openForm()
}

func (m rosterModel) showEditForm() (rosterModel, tea.Cmd) {
	a := m.current()
	*m.formName = a.Name
	*m.formTarget = formatMeters(a.TargetDistance)
	*m.formLapDist = formatMeters(a.LapDistance)
	*m.formTargetTime = ""
	*m.formPBTime = ""
	if a.TargetTime > 0 {
		*m.formTargetTime = athlete.FormatTime(a.TargetTime)
	}
	if a.PBTime > 0 {
		*m.formPBTime = athlete.FormatTime(a.PBTime)
	}
	m.formType = "edit"
	m.editingID = a.ID
	return m.openForm()
}

func (m rosterModel) openForm() (rosterModel, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(m.formName),
			huh.NewInput().Title("Target distance (m, 0 = time only)").Value(m.formTarget),
			huh.NewInput().Title("Lap distance (m)").Value(m.formLapDist),
			huh.NewInput().Title("Target time (mm:ss.hh)").Value(m.formTargetTime),
			huh.NewInput().Title("PB time (mm:ss.hh)").Value(m.formPBTime),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m rosterModel) updateForm(msg tea.Msg) (rosterModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		if strings.TrimSpace(*m.formName) == "" {
			return m, statusCmd("Name is required", true)
		}
		p := m.profileFromForm()
		switch m.formType {
		case "add":
			m.roster.Add(p)
			m.cursor = m.roster.Len() - 1
			return m, tea.Batch(m.persist(), statusCmd(p.Name+" added", false))
		case "edit":
			m.roster.Edit(m.editingID, p)
			return m, tea.Batch(m.persist(), statusCmd(p.Name+" updated", false))
		}
	}

	return m, cmd
}

// profileFromForm applies the lenient input rules: bad distances fall back
// to 0, bad times to 0. A zero lap distance becomes the 400m default inside
// the roster.
func (m rosterModel) profileFromForm() athlete.Profile {
	return athlete.Profile{
		Name:           strings.TrimSpace(*m.formName),
		TargetDistance: parseDistance(*m.formTarget),
		LapDistance:    parseDistance(*m.formLapDist),
		TargetTime:     athlete.ParseTime(*m.formTargetTime),
		PBTime:         athlete.ParseTime(*m.formPBTime),
	}
}

func (m rosterModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("New Athlete")
		if m.formType == "edit" {
			title = titleStyle.Render("Edit Athlete")
		}
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Athletes")

	if m.roster.Len() == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render("No athletes yet. Press n to add one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	header := mutedStyle.Render(fmt.Sprintf("  %-3s %-16s %10s %6s %12s %10s", "", "Name", "Time", "Laps", "Distance", "Last Lap"))
	rows = append(rows, header)

	for i, a := range m.roster.Athletes() {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+m.renderAthleteRow(a)))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  s: start/stop  l: lap  r: reset  n: new  e: edit  d: remove"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m rosterModel) renderAthleteRow(a *athlete.Athlete) string {
	dot := mutedStyle.Render("■")
	clock := clockStoppedStyle.Render(athlete.FormatTime(a.Elapsed(m.now)))
	switch {
	case a.Running:
		dot = successStyle.Render("●")
		clock = clockRunningStyle.Render(athlete.FormatTime(a.Elapsed(m.now)))
	case a.Finished():
		dot = clockFinishedStyle.Render("✔")
		clock = clockFinishedStyle.Render(athlete.FormatTime(a.Time))
	}

	dist := "-"
	if a.DistanceMode() {
		dist = fmt.Sprintf("%s/%s m", formatMeters(a.TotalDistance()), formatMeters(a.TargetDistance))
	}

	lastLap := "-"
	if n := len(a.Laps); n > 0 {
		lastLap = athlete.FormatTime(a.Split(n - 1))
	}

	return fmt.Sprintf("%s %-16s %10s %6d %12s %10s", dot, a.Name, clock, len(a.Laps), dist, lastLap)
}
