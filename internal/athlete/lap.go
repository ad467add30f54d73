package athlete

// NextLap derives the lap that recording at elapsed (ms since the timer
// started) would produce, without mutating the athlete. The second return is
// false when no lap may be recorded: once a distance-mode athlete has
// reached the target, the race is complete and nothing more is appended —
// not even the implicit lap normally recorded on stop.
//
// In distance mode each lap advances by LapDistance, and the final lap snaps
// to TargetDistance exactly whether or not LapDistance divides it evenly.
// In simple mode laps carry no distance.
func NextLap(a *Athlete, elapsed, now int64) (Lap, bool) {
	if a.Finished() {
		return Lap{}, false
	}
	lap := Lap{
		Number:    len(a.Laps) + 1,
		TotalTime: elapsed,
		Timestamp: now,
	}
	if a.DistanceMode() {
		candidate := a.TotalDistance() + a.LapDistance
		if candidate >= a.TargetDistance {
			candidate = a.TargetDistance
		}
		lap.TotalDistance = candidate
	}
	return lap, true
}
