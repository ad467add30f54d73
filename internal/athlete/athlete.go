package athlete

// DefaultLapDistance is the lap step (meters) used when an athlete has no
// lap distance configured.
const DefaultLapDistance = 400

// Lap is a single recorded split. Laps are immutable once recorded and are
// only ever removed wholesale by Reset.
type Lap struct {
	Number        int     `json:"lapNumber"`
	TotalTime     int64   `json:"totalTime"`     // ms elapsed since the timer started
	TotalDistance float64 `json:"totalDistance"` // cumulative meters, 0 in simple mode
	Timestamp     int64   `json:"timestamp"`     // wall clock, ms since epoch
}

// Athlete is a mutable aggregate identified by ID. StartTime is set if and
// only if Running; Time is authoritative while stopped and is only written
// back when the timer stops.
type Athlete struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Running        bool    `json:"isRunning"`
	StartTime      int64   `json:"startTime,omitempty"` // ms since epoch, 0 when stopped
	Time           int64   `json:"time"`                // accumulated ms
	Laps           []Lap   `json:"laps"`
	TargetDistance float64 `json:"targetDistance"` // 0 = simple mode
	LapDistance    float64 `json:"lapDistance"`    // meters per lap in distance mode
	TargetTime     int64   `json:"targetTime"`     // ms, 0 = unset
	PBTime         int64   `json:"pbTime"`         // ms, 0 = unset
	PBDistance     float64 `json:"pbDistance"`     // kept in sync with TargetDistance
}

// Elapsed returns the athlete's elapsed time at now (unix ms). While running
// it is derived from the start time; while stopped the stored value is
// authoritative.
func (a *Athlete) Elapsed(now int64) int64 {
	if a.Running {
		return now - a.StartTime
	}
	return a.Time
}

// DistanceMode reports whether the athlete tracks distance per lap.
func (a *Athlete) DistanceMode() bool { return a.TargetDistance > 0 }

// Finished reports whether a distance-mode athlete has reached the target.
// Simple-mode athletes never finish.
func (a *Athlete) Finished() bool {
	if !a.DistanceMode() || len(a.Laps) == 0 {
		return false
	}
	return a.Laps[len(a.Laps)-1].TotalDistance >= a.TargetDistance
}

// TotalDistance returns the cumulative distance covered so far.
func (a *Athlete) TotalDistance() float64 {
	if len(a.Laps) == 0 {
		return 0
	}
	return a.Laps[len(a.Laps)-1].TotalDistance
}

// LastLap returns the most recent lap, or nil when none are recorded.
func (a *Athlete) LastLap() *Lap {
	if len(a.Laps) == 0 {
		return nil
	}
	return &a.Laps[len(a.Laps)-1]
}

// Split returns the i-th lap's time relative to the lap before it. The first
// lap's split is its own total time.
func (a *Athlete) Split(i int) int64 {
	if i < 0 || i >= len(a.Laps) {
		return 0
	}
	if i == 0 {
		return a.Laps[0].TotalTime
	}
	return a.Laps[i].TotalTime - a.Laps[i-1].TotalTime
}
