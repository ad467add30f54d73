package export

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mtuomik/lapster/internal/athlete"
)

// ErrNoData is returned when no athlete has a lap inside the requested
// range; no file is produced in that case.
var ErrNoData = errors.New("no laps in the selected range")

// block is one athlete's slice of the report: the athlete plus the laps
// whose timestamps fall inside the requested range.
type block struct {
	athlete *athlete.Athlete
	laps    []athlete.Lap
}

// collect gathers the report blocks for an inclusive [from, to] range. A
// zero from or to leaves that side unbounded.
func collect(athletes []*athlete.Athlete, from, to time.Time) []block {
	var blocks []block
	for _, a := range athletes {
		var laps []athlete.Lap
		for _, lap := range a.Laps {
			ts := time.UnixMilli(lap.Timestamp)
			if !from.IsZero() && ts.Before(from) {
				continue
			}
			if !to.IsZero() && ts.After(to) {
				continue
			}
			laps = append(laps, lap)
		}
		if len(laps) > 0 {
			blocks = append(blocks, block{athlete: a, laps: laps})
		}
	}
	return blocks
}

// split returns the i-th included lap's time relative to the one before it
// within the filtered set. The first included lap's split is its own total.
func split(laps []athlete.Lap, i int) int64 {
	if i == 0 {
		return laps[0].TotalTime
	}
	return laps[i].TotalTime - laps[i-1].TotalTime
}

// Report writes a plain-text report covering every athlete with at least one
// lap in range. Returns ErrNoData (and writes nothing) when no athlete
// qualifies.
func Report(athletes []*athlete.Athlete, from, to time.Time, path string) error {
	blocks := collect(athletes, from, to)
	if len(blocks) == 0 {
		return ErrNoData
	}

	var b strings.Builder
	for i, blk := range blocks {
		if i > 0 {
			b.WriteString("\n")
		}
		a := blk.athlete
		b.WriteString(a.Name + "\n")
		if a.TargetDistance > 0 && a.TargetTime > 0 {
			fmt.Fprintf(&b, "Target: %.0f m in %s\n", a.TargetDistance, athlete.FormatTime(a.TargetTime))
		}
		if a.PBDistance > 0 && a.PBTime > 0 {
			fmt.Fprintf(&b, "PB: %.0f m in %s\n", a.PBDistance, athlete.FormatTime(a.PBTime))
		}
		b.WriteString("Lap\tDist(m)\tLap Time\tTotal Time\tTimestamp\n")
		for j, lap := range blk.laps {
			fmt.Fprintf(&b, "%d\t%.0f\t%s\t%s\t%s\n",
				lap.Number,
				lap.TotalDistance,
				athlete.FormatTime(split(blk.laps, j)),
				athlete.FormatTime(lap.TotalTime),
				formatTimestamp(lap.Timestamp),
			)
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04:05")
}
