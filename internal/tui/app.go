package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mtuomik/lapster/internal/athlete"
	"github.com/mtuomik/lapster/internal/store"
)

// tickInterval bounds how often running clocks are redrawn. Timing math
// always derives from the wall clock, so the interval only affects display
// freshness.
const tickInterval = 100 * time.Millisecond

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	roster *athlete.Roster
	width  int
	height int

	activeView viewState
	showHelp   bool

	rosterView  rosterModel
	compareView compareModel
	exportView  exportModel

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(s *store.Store, r *athlete.Roster) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:       s,
		roster:      r,
		activeView:  viewRoster,
		rosterView:  newRosterModel(s, r),
		compareView: newCompareModel(r),
		exportView:  newExportModel(r),
		help:        h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd re-arms the display refresh. The loop lives and dies with the
// program; bubbletea stops delivering ticks on teardown.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.rosterView.setSize(a.width, contentHeight)
		a.compareView.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportView.active {
			var cmd tea.Cmd
			a.exportView, cmd = a.exportView.update(msg)
			return a, cmd
		}

		// Forms capture input before global keys.
		if a.rosterView.formActive {
			var cmd tea.Cmd
			a.rosterView, cmd = a.rosterView.update(msg)
			return a, cmd
		}

		switch {
		case key.Matches(msg, keys.Export):
			var cmd tea.Cmd
			a.exportView, cmd = a.exportView.open()
			return a, cmd
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewRoster
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewCompare
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 2
			return a, nil
		}
		return a.updateActiveView(msg)

	case tickMsg:
		var cmd tea.Cmd
		a.rosterView, cmd = a.rosterView.update(msg)
		return a, tea.Batch(tickCmd(), cmd)

	case rosterChangedMsg:
		var cmd tea.Cmd
		a.compareView, cmd = a.compareView.update(msg)
		return a, cmd

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.statusErr = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewRoster:
		a.rosterView, cmd = a.rosterView.update(msg)
	case viewCompare:
		a.compareView, cmd = a.compareView.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewRoster:
		content = a.rosterView.view()
	case viewCompare:
		content = a.compareView.view()
	}

	if a.exportView.active && a.exportView.form != nil {
		content = a.exportView.view(a.width)
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("lapster")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		if a.statusErr {
			status = errorStyle.Render(" " + a.status)
		} else {
			status = mutedStyle.Render(" " + a.status)
		}
	}

	// Running-athlete count in the footer.
	running := 0
	for _, at := range a.roster.Athletes() {
		if at.Running {
			running++
		}
	}
	runInfo := ""
	if running > 0 {
		runInfo = successStyle.Render(fmt.Sprintf(" ● %d running", running))
	}

	left := footerStyle.Render(helpView)
	right := runInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
