package bitcube

// Face identifies one of the six cube faces.
// The ids are fixed: they index the packed state and the adjacency table,
// and face i is covered by color i when solved.
type Face int

const (
	FaceU Face = 0 // Up
	FaceL Face = 1 // Left
	FaceF Face = 2 // Front
	FaceR Face = 3 // Right
	FaceB Face = 4 // Back
	FaceD Face = 5 // Down

	numFaces = 6
)

// Faces lists every face in id order.
var Faces = [numFaces]Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceL:
		return "L"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved, which is also the
// color of its center.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Direction is the sense of a quarter turn, as seen when looking at the
// turning face from outside the cube.
type Direction int

const (
	CW  Direction = 0 // Clockwise
	CCW Direction = 1 // Counter-clockwise
)

func (d Direction) String() string {
	if d == CCW {
		return "CCW"
	}
	return "CW"
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == CW {
		return CCW
	}
	return CW
}

// Rotation is a single quarter turn of one face.
type Rotation struct {
	Face Face
	Dir  Direction
}

// NewRotation creates a rotation.
func NewRotation(face Face, dir Direction) Rotation {
	return Rotation{Face: face, Dir: dir}
}

// Inverse returns the rotation that undoes r.
// R becomes R', R' becomes R.
func (r Rotation) Inverse() Rotation {
	return Rotation{Face: r.Face, Dir: r.Dir.Opposite()}
}

// Notation returns the standard cube notation for this rotation.
// Examples: R, R', U, U'
func (r Rotation) Notation() string {
	if r.Dir == CCW {
		return r.Face.String() + "'"
	}
	return r.Face.String()
}

// String returns the notation string (alias for Notation).
func (r Rotation) String() string {
	return r.Notation()
}
