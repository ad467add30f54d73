package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mtuomik/lapster/internal/athlete"
)

// athletesKey is the single slot the whole athlete list lives under.
const athletesKey = "athletes"

// LoadAthletes reads the persisted athlete list. A missing slot yields an
// empty list with a nil error. A malformed blob also yields an empty list,
// with the decode error returned so the caller can log it; the session
// proceeds either way.
//
// Loaded records are normalized: timers never resume across a restart, and
// records written by older versions may lack a lap distance (defaults to
// 400) or lap timestamps (left at 0).
func (s *Store) LoadAthletes() ([]*athlete.Athlete, error) {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, athletesKey).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}

	var athletes []*athlete.Athlete
	if err := json.Unmarshal([]byte(blob), &athletes); err != nil {
		return nil, fmt.Errorf("decode athletes: %w", err)
	}

	for _, a := range athletes {
		a.Running = false
		a.StartTime = 0
		if a.LapDistance <= 0 {
			a.LapDistance = athlete.DefaultLapDistance
		}
	}
	return athletes, nil
}

// SaveAthletes replaces the whole slot with the given list. Each write is a
// single atomic replace; last write wins.
func (s *Store) SaveAthletes(athletes []*athlete.Athlete) error {
	blob, err := json.Marshal(athletes)
	if err != nil {
		return fmt.Errorf("encode athletes: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		athletesKey, string(blob),
	)
	if err != nil {
		return fmt.Errorf("save athletes: %w", err)
	}
	return nil
}
