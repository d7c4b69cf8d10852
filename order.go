package bitcube

import "fmt"

// DefaultOrderLimit bounds Order searches. The largest order of any cube
// element is 1260.
const DefaultOrderLimit = 1260

// Order returns the smallest n >= 1 such that applying seq n times to a
// solved cube gives a solved cube. It returns ErrOrderLimit if no such n
// exists up to limit.
func Order(seq []Rotation, limit int) (int, error) {
	c := NewCube()
	for n := 1; n <= limit; n++ {
		c.RotateManyInPlace(seq)
		if c.IsSolved() {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: no return to solved within %d repetitions", ErrOrderLimit, limit)
}
