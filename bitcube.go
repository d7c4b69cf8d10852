// Package bitcube models a 3x3 Rubik's cube as six packed words and applies
// quarter turns with bit operations.
//
// # State
//
// A Cube stores 8 stickers per face, 4 bits each, in one uint32 per face.
// Centers never move and are not stored. Cube is a plain value: assignment
// copies it and == compares it.
//
// # Quick Start
//
//	c := bitcube.NewCube()
//
//	// Apply turns using predefined values
//	c.Apply(bitcube.R, bitcube.U, bitcube.RPrime, bitcube.UPrime)
//
//	// Or from notation
//	seq, err := bitcube.ParseRotations("F B2 L' D")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c.RotateManyInPlace(seq)
//
//	fmt.Println("Solved:", c.IsSolved())
//
// Rotate and RotateMany return a new cube and leave the receiver untouched:
//
//	next := c.Rotate(bitcube.NewRotation(bitcube.FaceF, bitcube.CCW))
//
// # Faces and Colors
//
// Face ids are fixed: U=0, L=1, F=2, R=3, B=4, D=5. In the solved state face
// i is covered by color i (White, Green, Red, Blue, Orange, Yellow).
//
// # Concurrency
//
// Turns are synchronous and allocation free. A Cube shared between
// goroutines needs the usual exclusive access while it is being mutated.
package bitcube
