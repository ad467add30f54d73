package athlete

// Profile carries the editable fields of an athlete.
type Profile struct {
	Name           string
	TargetDistance float64
	LapDistance    float64
	TargetTime     int64
	PBTime         int64
}

// Roster owns the in-memory athlete list and the id counter. All mutations
// go through its methods; the caller persists the list after any mutation.
type Roster struct {
	athletes []*Athlete
	nextID   int64
}

// NewRoster wraps a loaded athlete list. The id counter is seeded to one
// past the highest existing id so ids are never reused within a session.
func NewRoster(athletes []*Athlete) *Roster {
	r := &Roster{athletes: athletes}
	for _, a := range athletes {
		if a.ID >= r.nextID {
			r.nextID = a.ID + 1
		}
	}
	return r
}

// Athletes returns the list in insertion order. The slice is shared; callers
// must not reorder or mutate it directly.
func (r *Roster) Athletes() []*Athlete { return r.athletes }

func (r *Roster) Len() int { return len(r.athletes) }

// Get returns the athlete with the given id, or nil.
func (r *Roster) Get(id int64) *Athlete {
	for _, a := range r.athletes {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Add creates a new athlete from p and appends it to the roster. A
// non-positive lap distance falls back to DefaultLapDistance.
func (r *Roster) Add(p Profile) *Athlete {
	a := &Athlete{
		ID:             r.nextID,
		Name:           p.Name,
		TargetDistance: p.TargetDistance,
		LapDistance:    p.LapDistance,
		TargetTime:     p.TargetTime,
		PBTime:         p.PBTime,
		PBDistance:     p.TargetDistance,
	}
	if a.LapDistance <= 0 {
		a.LapDistance = DefaultLapDistance
	}
	r.nextID++
	r.athletes = append(r.athletes, a)
	return a
}

// Edit overwrites the profile fields of the athlete with the given id. Run
// state and laps are untouched. PBDistance always follows TargetDistance;
// the two are not independently editable.
func (r *Roster) Edit(id int64, p Profile) bool {
	a := r.Get(id)
	if a == nil {
		return false
	}
	a.Name = p.Name
	a.TargetDistance = p.TargetDistance
	a.LapDistance = p.LapDistance
	if a.LapDistance <= 0 {
		a.LapDistance = DefaultLapDistance
	}
	a.TargetTime = p.TargetTime
	a.PBTime = p.PBTime
	a.PBDistance = p.TargetDistance
	return true
}

// Remove deletes the athlete with the given id.
func (r *Roster) Remove(id int64) bool {
	for i, a := range r.athletes {
		if a.ID == id {
			r.athletes = append(r.athletes[:i], r.athletes[i+1:]...)
			return true
		}
	}
	return false
}
