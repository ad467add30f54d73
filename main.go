package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtuomik/lapster/internal/athlete"
	"github.com/mtuomik/lapster/internal/store"
	"github.com/mtuomik/lapster/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	athletes, err := s.LoadAthletes()
	if err != nil {
		// Unreadable state is never fatal: start with an empty roster.
		log.Printf("warning: could not load saved athletes, starting empty: %v", err)
		athletes = nil
	}

	app := tui.NewApp(s, athlete.NewRoster(athletes))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
