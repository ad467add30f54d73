package athlete

// Start flips a stopped athlete to running at now (unix ms). The start time
// is backdated by the accumulated Time so elapsed accounting continues where
// it left off. No-op while running.
func (a *Athlete) Start(now int64) {
	if a.Running {
		return
	}
	a.StartTime = now - a.Time
	a.Running = true
}

// Stop freezes a running athlete at now. A closing lap is recorded at the
// stop instant, exactly as if the lap command had fired, before the state
// flips to stopped. No-op while stopped.
func (a *Athlete) Stop(now int64) {
	if !a.Running {
		return
	}
	elapsed := now - a.StartTime
	if lap, ok := NextLap(a, elapsed, now); ok {
		a.Laps = append(a.Laps, lap)
	}
	a.Running = false
	a.StartTime = 0
	a.Time = elapsed
}

// RecordLap appends a lap at now and reports whether one was recorded. Only
// valid while running; run state is unchanged.
func (a *Athlete) RecordLap(now int64) bool {
	if !a.Running {
		return false
	}
	lap, ok := NextLap(a, now-a.StartTime, now)
	if !ok {
		return false
	}
	a.Laps = append(a.Laps, lap)
	return true
}

// Reset clears accumulated time and all laps, in any state. This is the only
// way laps are deleted.
func (a *Athlete) Reset() {
	a.Time = 0
	a.Laps = nil
	a.Running = false
	a.StartTime = 0
}
