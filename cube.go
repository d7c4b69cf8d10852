package bitcube

import (
	"fmt"
	"strings"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Green  Color = 1 // Left face when solved
	Red    Color = 2 // Front face when solved
	Blue   Color = 3 // Right face when solved
	Orange Color = 4 // Back face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Valid reports whether c is one of the six cube colors.
func (c Color) Valid() bool {
	return c <= Yellow
}

const (
	// StickersPerFace is the number of stored stickers on a face.
	// The center is implied by the face and never stored.
	StickersPerFace = 8

	stickerBits = 4
	stickerMask = 0xF
)

// Cube represents a 3x3 Rubik's cube.
//
// Each face is packed into one word holding 8 four-bit stickers, indexed
// clockwise around the perimeter:
//
//	0 1 2
//	7 . 3
//	6 5 4
//
// Sticker i occupies bits 4i..4i+3. Cube is a value type: copying it copies
// the whole state, and two cubes are equal iff every stored sticker matches.
type Cube struct {
	faces [6]uint32
}

// solved is the canonical solved state: every sticker of face i has color i.
var solved = Cube{faces: [6]uint32{
	0x00000000,
	0x11111111,
	0x22222222,
	0x33333333,
	0x44444444,
	0x55555555,
}}

// NewCube returns a solved cube.
func NewCube() Cube {
	return solved
}

// Solved is an alias for NewCube.
func Solved() Cube {
	return solved
}

// IsSolved returns true if the cube is in the solved state.
func (c Cube) IsSolved() bool {
	return c == solved
}

// Equal reports whether both cubes store exactly the same stickers.
// No symmetry or recoloring is taken into account.
func (c Cube) Equal(other Cube) bool {
	return c.faces == other.faces
}

// Clone returns an independent copy of the cube.
func (c Cube) Clone() Cube {
	return c
}

// Sticker returns the color stored at the given ring position of a face.
// Positions wrap modulo 8.
func (c Cube) Sticker(face Face, pos int) Color {
	return Color(c.sticker(int(face), pos&7))
}

// Center returns the color of a face's center sticker.
func (c Cube) Center(face Face) Color {
	return face.SolvedColor()
}

// Face returns the 8 stored stickers of a face in ring order.
func (c Cube) Face(face Face) [StickersPerFace]Color {
	var out [StickersPerFace]Color
	for i := range out {
		out[i] = Color(c.sticker(int(face), i))
	}
	return out
}

func (c Cube) sticker(face, pos int) uint32 {
	return (c.faces[face] >> (pos * stickerBits)) & stickerMask
}

// String returns a compact one-line representation, one group per face
// listing ring positions 0..7.
func (c Cube) String() string {
	var b strings.Builder
	for f := Face(0); f < numFaces; f++ {
		if f > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(f.String())
		b.WriteByte(':')
		for _, s := range c.Face(f) {
			b.WriteString(s.String())
		}
	}
	return b.String()
}

// Debug returns the raw face words.
func (c Cube) Debug() string {
	return fmt.Sprintf("%08x", c.faces)
}
