package bitcube

// Tracker wraps a Cube and records every turn applied to it.
type Tracker struct {
	cube           Cube
	history        []Rotation
	solvedCallback func(moves int)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{cube: NewCube()}
}

// SetSolvedCallback sets a callback that fires whenever a turn leaves the
// cube solved. It receives the number of turns in the history.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solvedCallback = cb
}

// Reset resets the tracker to a solved cube with an empty history.
func (t *Tracker) Reset() {
	t.cube = NewCube()
	t.history = nil
}

// Apply applies a turn and records it.
func (t *Tracker) Apply(r Rotation) {
	t.cube.RotateInPlace(r)
	t.history = append(t.history, r)
	t.checkSolved()
}

// ApplyAll applies multiple turns.
func (t *Tracker) ApplyAll(rs []Rotation) {
	for _, r := range rs {
		t.Apply(r)
	}
}

// Undo reverts the most recent turn. It returns false if the history is empty.
// Undoing does not fire the solved callback.
func (t *Tracker) Undo() (Rotation, bool) {
	if len(t.history) == 0 {
		return Rotation{}, false
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.cube.RotateInPlace(last.Inverse())
	return last, true
}

func (t *Tracker) checkSolved() {
	if t.solvedCallback != nil && t.cube.IsSolved() {
		t.solvedCallback(len(t.history))
	}
}

// History returns a copy of the applied turns, oldest first.
func (t *Tracker) History() []Rotation {
	out := make([]Rotation, len(t.history))
	copy(out, t.history)
	return out
}

// Len returns the number of recorded turns.
func (t *Tracker) Len() int {
	return len(t.history)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns a copy of the current cube state.
func (t *Tracker) Cube() Cube {
	return t.cube
}
