package athlete

import "testing"

func TestNextLapSimpleMode(t *testing.T) {
	a := &Athlete{Name: "Kim", LapDistance: DefaultLapDistance}
	a.Start(0)

	for i, elapsed := range []int64{10000, 25000, 40000} {
		lap, ok := NextLap(a, elapsed, 1000+elapsed)
		if !ok {
			t.Fatalf("lap %d: expected a lap", i+1)
		}
		if lap.Number != i+1 {
			t.Fatalf("lap number = %d, want %d", lap.Number, i+1)
		}
		if lap.TotalDistance != 0 {
			t.Fatalf("simple mode lap should have zero distance, got %v", lap.TotalDistance)
		}
		if lap.TotalTime != elapsed {
			t.Fatalf("total time = %d, want %d", lap.TotalTime, elapsed)
		}
		a.Laps = append(a.Laps, lap)
	}
}

func TestNextLapDistanceSteps(t *testing.T) {
	a := &Athlete{TargetDistance: 1000, LapDistance: 400}
	a.Start(0)

	// Manual laps at 60s and 130s step by the lap distance.
	lap, ok := NextLap(a, 60000, 60000)
	if !ok || lap.TotalDistance != 400 || lap.Number != 1 {
		t.Fatalf("first lap = %+v ok=%v, want 400m number 1", lap, ok)
	}
	a.Laps = append(a.Laps, lap)

	lap, ok = NextLap(a, 130000, 130000)
	if !ok || lap.TotalDistance != 800 || lap.Number != 2 {
		t.Fatalf("second lap = %+v ok=%v, want 800m number 2", lap, ok)
	}
	a.Laps = append(a.Laps, lap)

	// Third lap would land on 1200m; it snaps to the 1000m target.
	lap, ok = NextLap(a, 200000, 200000)
	if !ok || lap.TotalDistance != 1000 || lap.Number != 3 {
		t.Fatalf("third lap = %+v ok=%v, want snapped 1000m number 3", lap, ok)
	}
	a.Laps = append(a.Laps, lap)

	// Race complete: a fourth attempt yields nothing.
	if _, ok := NextLap(a, 260000, 260000); ok {
		t.Fatal("expected no lap after race completion")
	}
}

func TestNextLapSnapWhenLapLongerThanTarget(t *testing.T) {
	a := &Athlete{TargetDistance: 300, LapDistance: 400}

	lap, ok := NextLap(a, 45000, 45000)
	if !ok {
		t.Fatal("expected a lap")
	}
	if lap.TotalDistance != 300 {
		t.Fatalf("distance = %v, want snap to 300", lap.TotalDistance)
	}
}

func TestNextLapExactDivision(t *testing.T) {
	a := &Athlete{TargetDistance: 800, LapDistance: 400}

	lap, _ := NextLap(a, 60000, 0)
	a.Laps = append(a.Laps, lap)
	lap, ok := NextLap(a, 120000, 0)
	if !ok || lap.TotalDistance != 800 {
		t.Fatalf("final lap = %+v ok=%v, want exactly 800", lap, ok)
	}
	a.Laps = append(a.Laps, lap)

	if !a.Finished() {
		t.Fatal("athlete should be finished at the target")
	}
	if _, ok := NextLap(a, 180000, 0); ok {
		t.Fatal("no lap may follow an exact finish")
	}
}

func TestNextLapDoesNotMutate(t *testing.T) {
	a := &Athlete{TargetDistance: 1000, LapDistance: 400}
	NextLap(a, 60000, 60000)
	if len(a.Laps) != 0 {
		t.Fatal("NextLap must not append")
	}
}

func TestSplit(t *testing.T) {
	a := &Athlete{Laps: []Lap{
		{Number: 1, TotalTime: 60000},
		{Number: 2, TotalTime: 130000},
		{Number: 3, TotalTime: 200000},
	}}

	wants := []int64{60000, 70000, 70000}
	for i, want := range wants {
		if got := a.Split(i); got != want {
			t.Errorf("Split(%d) = %d, want %d", i, got, want)
		}
	}
	if a.Split(-1) != 0 || a.Split(3) != 0 {
		t.Error("out-of-range split should be 0")
	}
}
