package bitcube

// Predefined quarter turns.
//
// Example:
//
//	c.Apply(bitcube.R, bitcube.U, bitcube.RPrime, bitcube.UPrime)
var (
	U      = Rotation{Face: FaceU, Dir: CW}  // Up clockwise
	UPrime = Rotation{Face: FaceU, Dir: CCW} // Up counter-clockwise

	L      = Rotation{Face: FaceL, Dir: CW}  // Left clockwise
	LPrime = Rotation{Face: FaceL, Dir: CCW} // Left counter-clockwise

	F      = Rotation{Face: FaceF, Dir: CW}  // Front clockwise
	FPrime = Rotation{Face: FaceF, Dir: CCW} // Front counter-clockwise

	R      = Rotation{Face: FaceR, Dir: CW}  // Right clockwise
	RPrime = Rotation{Face: FaceR, Dir: CCW} // Right counter-clockwise

	B      = Rotation{Face: FaceB, Dir: CW}  // Back clockwise
	BPrime = Rotation{Face: FaceB, Dir: CCW} // Back counter-clockwise

	D      = Rotation{Face: FaceD, Dir: CW}  // Down clockwise
	DPrime = Rotation{Face: FaceD, Dir: CCW} // Down counter-clockwise
)

// SexyMove is R U' R' U; six repetitions return to the start.
var SexyMove = []Rotation{R, UPrime, RPrime, U}

// TPerm swaps two corners and two edges of the top layer; it is its own inverse.
var TPerm = []Rotation{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
