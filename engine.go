package bitcube

import "math/bits"

// sticker addresses one stored sticker: a face and a ring position.
type sticker struct {
	face int
	pos  int
}

// rowRef names the 3-sticker row starting at pos on face.
// The row covers positions pos, pos+1, pos+2 (mod 8).
type rowRef struct {
	face Face
	pos  int
}

// adjacent lists, for each turned face, the four neighbor rows dragged
// along by the turn. Entries are in counter-clockwise cycle order; a
// clockwise turn walks the same pairs backwards.
//
// Indexed by Face id, so the Face constants must not be reordered.
var adjacent = [numFaces][4]rowRef{
	FaceU: {{FaceB, 0}, {FaceR, 0}, {FaceF, 0}, {FaceL, 0}},
	FaceL: {{FaceU, 6}, {FaceF, 6}, {FaceD, 6}, {FaceB, 2}},
	FaceF: {{FaceR, 6}, {FaceD, 0}, {FaceL, 2}, {FaceU, 4}},
	FaceR: {{FaceU, 2}, {FaceB, 6}, {FaceD, 2}, {FaceF, 2}},
	FaceB: {{FaceU, 0}, {FaceL, 6}, {FaceD, 4}, {FaceR, 2}},
	FaceD: {{FaceF, 4}, {FaceR, 4}, {FaceB, 4}, {FaceL, 4}},
}

// faceShift is the word rotation for a quarter turn: two stickers.
const faceShift = 2 * stickerBits

// RotateInPlace applies a single quarter turn to the cube.
func (c *Cube) RotateInPlace(r Rotation) {
	f := int(r.Face)

	// The face's own ring moves two positions.
	if r.Dir == CW {
		c.faces[f] = bits.RotateLeft32(c.faces[f], faceShift)
	} else {
		c.faces[f] = bits.RotateLeft32(c.faces[f], -faceShift)
	}

	// Three adjacent row swaps make the 4-cycle of neighbor rows.
	rows := &adjacent[f]
	if r.Dir == CW {
		for i := len(rows) - 2; i >= 0; i-- {
			c.swapRows(rows[i], rows[i+1])
		}
	} else {
		for i := 0; i < len(rows)-1; i++ {
			c.swapRows(rows[i], rows[i+1])
		}
	}
}

// Rotate returns a copy of the cube with r applied. c is left unchanged.
func (c Cube) Rotate(r Rotation) Cube {
	c.RotateInPlace(r)
	return c
}

// RotateManyInPlace applies rotations left to right.
func (c *Cube) RotateManyInPlace(rs []Rotation) {
	for _, r := range rs {
		c.RotateInPlace(r)
	}
}

// RotateMany returns a copy of the cube with rs applied left to right.
func (c Cube) RotateMany(rs []Rotation) Cube {
	c.RotateManyInPlace(rs)
	return c
}

// Apply is a variadic form of RotateManyInPlace.
//
//	c.Apply(bitcube.R, bitcube.U, bitcube.RPrime, bitcube.UPrime)
func (c *Cube) Apply(rs ...Rotation) {
	c.RotateManyInPlace(rs)
}

// swapRows exchanges two neighbor rows sticker by sticker.
func (c *Cube) swapRows(a, b rowRef) {
	for k := 0; k < 3; k++ {
		c.swapStickers(
			sticker{int(a.face), (a.pos + k) % StickersPerFace},
			sticker{int(b.face), (b.pos + k) % StickersPerFace},
		)
	}
}

// swapStickers exchanges two 4-bit fields with an XOR swap.
// Swapping a sticker with itself is a no-op.
func (c *Cube) swapStickers(a, b sticker) {
	sa := uint(a.pos * stickerBits)
	sb := uint(b.pos * stickerBits)

	diff := ((c.faces[a.face] >> sa) ^ (c.faces[b.face] >> sb)) & stickerMask

	c.faces[a.face] ^= diff << sa
	c.faces[b.face] ^= diff << sb
}
