package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtuomik/lapster/internal/athlete"
)

// viewState represents the currently active view.
type viewState int

const (
	viewRoster viewState = iota
	viewCompare
)

var viewNames = []string{"Roster", "Compare"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// rosterChangedMsg tells the app an athlete mutation was persisted, so other
// views can rebuild derived state.
type rosterChangedMsg struct{}

// --- Helpers ---

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}

// parseDistance reads a meters value from form input. Anything unparseable
// or negative falls back to 0.
func parseDistance(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseDate reads a YYYY-MM-DD form value. Blank means unbounded (zero
// time); anything unparseable is treated as blank.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatDelta renders a signed gap against a reference time.
func formatDelta(ms int64) string {
	if ms < 0 {
		return "-" + athlete.FormatTime(-ms)
	}
	return "+" + athlete.FormatTime(ms)
}

func formatMeters(m float64) string {
	return fmt.Sprintf("%.0f", m)
}
