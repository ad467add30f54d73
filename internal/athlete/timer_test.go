package athlete

import "testing"

func TestStartStop(t *testing.T) {
	a := &Athlete{Name: "Ada", LapDistance: DefaultLapDistance}

	a.Start(1000)
	if !a.Running {
		t.Fatal("athlete should be running after start")
	}
	if a.StartTime != 1000 {
		t.Fatalf("start time = %d, want 1000", a.StartTime)
	}

	a.Stop(31000)
	if a.Running {
		t.Fatal("athlete should be stopped")
	}
	if a.StartTime != 0 {
		t.Fatal("start time should be cleared when stopped")
	}
	if a.Time != 30000 {
		t.Fatalf("time = %d, want 30000", a.Time)
	}
}

func TestStartContinuesFromAccumulatedTime(t *testing.T) {
	a := &Athlete{Name: "Ada", Time: 20000, LapDistance: DefaultLapDistance}

	a.Start(100000)
	// Backdated so that elapsed picks up at 20s.
	if got := a.Elapsed(100000); got != 20000 {
		t.Fatalf("elapsed right after restart = %d, want 20000", got)
	}
	if got := a.Elapsed(105000); got != 25000 {
		t.Fatalf("elapsed after 5s = %d, want 25000", got)
	}
}

func TestStartWhileRunningIsNoop(t *testing.T) {
	a := &Athlete{LapDistance: DefaultLapDistance}
	a.Start(1000)
	a.Start(9999)
	if a.StartTime != 1000 {
		t.Fatal("second start should not move the start time")
	}
}

func TestStopWhileStoppedIsNoop(t *testing.T) {
	a := &Athlete{Time: 5000, LapDistance: DefaultLapDistance}
	a.Stop(99999)
	if a.Time != 5000 || len(a.Laps) != 0 {
		t.Fatal("stop on a stopped athlete should change nothing")
	}
}

func TestStopRecordsClosingLap(t *testing.T) {
	a := &Athlete{TargetDistance: 1000, LapDistance: 400}
	a.Start(0)
	a.Stop(60000)

	if len(a.Laps) != 1 {
		t.Fatalf("expected 1 closing lap, got %d", len(a.Laps))
	}
	lap := a.Laps[0]
	if lap.TotalTime != 60000 || lap.TotalDistance != 400 || lap.Timestamp != 60000 {
		t.Fatalf("closing lap = %+v", lap)
	}
}

func TestImmediateStartStop(t *testing.T) {
	a := &Athlete{TargetDistance: 1000, LapDistance: 400}
	a.Start(5000)
	a.Stop(5000)

	if a.Time != 0 {
		t.Fatalf("time = %d, want 0", a.Time)
	}
	if len(a.Laps) != 1 {
		t.Fatalf("expected exactly one lap, got %d", len(a.Laps))
	}
	if a.Laps[0].TotalDistance != 400 {
		t.Fatalf("distance = %v, want 400", a.Laps[0].TotalDistance)
	}
}

func TestStopAfterFinishAddsNoLap(t *testing.T) {
	a := &Athlete{TargetDistance: 400, LapDistance: 400}
	a.Start(0)
	if !a.RecordLap(30000) {
		t.Fatal("first lap should record")
	}
	a.Stop(40000)

	if len(a.Laps) != 1 {
		t.Fatalf("stop after completion must not append, got %d laps", len(a.Laps))
	}
	if a.Time != 40000 {
		t.Fatalf("time = %d, want 40000", a.Time)
	}
}

func TestRecordLapWhileStopped(t *testing.T) {
	a := &Athlete{LapDistance: DefaultLapDistance}
	if a.RecordLap(1000) {
		t.Fatal("lap should not record while stopped")
	}
}

func TestLapNumbersContiguous(t *testing.T) {
	a := &Athlete{TargetDistance: 2000, LapDistance: 400}
	a.Start(0)
	a.RecordLap(30000)
	a.RecordLap(65000)
	a.Stop(100000)
	a.Start(100000)
	a.RecordLap(140000)
	a.Stop(180000)

	if len(a.Laps) == 0 {
		t.Fatal("expected laps")
	}
	var prevTime int64
	var prevDist float64
	for i, lap := range a.Laps {
		if lap.Number != i+1 {
			t.Fatalf("laps[%d].Number = %d, want %d", i, lap.Number, i+1)
		}
		if lap.TotalTime < prevTime {
			t.Fatalf("total time decreased at lap %d", i+1)
		}
		if lap.TotalDistance < prevDist {
			t.Fatalf("distance decreased at lap %d", i+1)
		}
		if lap.TotalDistance > a.TargetDistance {
			t.Fatalf("distance %v exceeds target", lap.TotalDistance)
		}
		prevTime = lap.TotalTime
		prevDist = lap.TotalDistance
	}
}

func TestReset(t *testing.T) {
	a := &Athlete{TargetDistance: 1000, LapDistance: 400}
	a.Start(0)
	a.RecordLap(30000)

	a.Reset()
	if a.Time != 0 || a.Running || a.StartTime != 0 || len(a.Laps) != 0 {
		t.Fatalf("reset left state behind: %+v", a)
	}

	// Reset while stopped is equally valid.
	a.Start(0)
	a.Stop(10000)
	a.Reset()
	if a.Time != 0 || len(a.Laps) != 0 {
		t.Fatal("reset from stopped should also clear everything")
	}
}

func TestElapsedWhileStopped(t *testing.T) {
	a := &Athlete{Time: 42000}
	if got := a.Elapsed(999999999); got != 42000 {
		t.Fatalf("elapsed = %d, want stored 42000", got)
	}
}

func TestIndependentAthletes(t *testing.T) {
	a := &Athlete{ID: 1, LapDistance: DefaultLapDistance}
	b := &Athlete{ID: 2, LapDistance: DefaultLapDistance}

	a.Start(0)
	b.Start(10000)
	a.Stop(30000)

	if b.Running != true {
		t.Fatal("stopping one athlete must not stop another")
	}
	if got := b.Elapsed(40000); got != 30000 {
		t.Fatalf("b elapsed = %d, want 30000", got)
	}
}
