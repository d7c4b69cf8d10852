package bitcube

import (
	"math/rand/v2"
	"testing"
)

// Face words after one clockwise turn of each face on a solved cube.
var singleTurnWords = map[Face][6]uint32{
	FaceU: {0x00000000, 0x11111222, 0x22222333, 0x33333444, 0x44444111, 0x55555555},
	FaceL: {0x44000004, 0x11111111, 0x00222220, 0x33333333, 0x44455544, 0x22555552},
	FaceF: {0x01110000, 0x11155511, 0x22222222, 0x00333330, 0x44444444, 0x55555333},
	FaceR: {0x00022200, 0x11111111, 0x22255522, 0x33333333, 0x00444440, 0x55544455},
	FaceB: {0x00000333, 0x00111110, 0x22222222, 0x33355533, 0x44444444, 0x51115555},
	FaceD: {0x00000000, 0x14441111, 0x21112222, 0x32223333, 0x43334444, 0x55555555},
}

func TestSingleTurnWords(t *testing.T) {
	for face, want := range singleTurnWords {
		c := NewCube().Rotate(NewRotation(face, CW))
		if c.faces != want {
			t.Errorf("%v: got %08x, want %08x", face, c.faces, want)
		}
	}
}

func TestFaceShiftIsTwoStickers(t *testing.T) {
	c := NewCube()
	c.faces[FaceU] = 0x76543210

	cw := c.Rotate(U)
	if cw.faces[FaceU] != 0x54321076 {
		t.Errorf("U: got %08x, want 54321076", cw.faces[FaceU])
	}
	ccw := c.Rotate(UPrime)
	if ccw.faces[FaceU] != 0x10765432 {
		t.Errorf("U': got %08x, want 10765432", ccw.faces[FaceU])
	}
}

func TestRRRR_ReturnsToSolved_AllFaces(t *testing.T) {
	for _, face := range Faces {
		for _, dir := range []Direction{CW, CCW} {
			c := NewCube()
			r := NewRotation(face, dir)
			for i := 0; i < 4; i++ {
				c.RotateInPlace(r)
			}
			if !c.IsSolved() {
				t.Errorf("%v x 4 should return to solved", r)
				t.Log(c.String())
			}
		}
	}
}

func TestQuarterTurnOrder_FromScrambled(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		start := NewCube().RotateMany(Scramble(WithRand(rng)))
		r := RandomRotation(rng)

		c := start
		for i := 0; i < 4; i++ {
			c.RotateInPlace(r)
		}
		if c != start {
			t.Errorf("%v x 4 should be the identity", r)
		}

		// 24 turns of one face is six full cycles.
		for i := 0; i < 24; i++ {
			c.RotateInPlace(r)
		}
		if c != start {
			t.Errorf("%v x 24 should be the identity", r)
		}
	}
}

func TestTurnAndInverseCancel(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for trial := 0; trial < 50; trial++ {
		start := NewCube().RotateMany(Scramble(WithRand(rng)))
		for _, face := range Faces {
			for _, dir := range []Direction{CW, CCW} {
				r := NewRotation(face, dir)
				if got := start.Rotate(r).Rotate(r.Inverse()); got != start {
					t.Errorf("%v then %v should cancel", r, r.Inverse())
				}
			}
		}
	}
}

func TestSequenceAndInverseCancel(t *testing.T) {
	seq := Scramble(WithSeed(99), WithLength(40))
	c := NewCube().RotateMany(seq).RotateMany(Invert(seq))
	if !c.IsSolved() {
		t.Error("A sequence followed by its inverse should return to solved")
		t.Log(c.String())
	}
}

func TestSequenceSplitAnyPoint(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	seq := Scramble(WithRand(rng), WithLength(30))
	start := NewCube().RotateMany(Scramble(WithRand(rng)))
	whole := start.RotateMany(seq)

	for split := 0; split <= len(seq); split++ {
		got := start.RotateMany(seq[:split]).RotateMany(seq[split:])
		if got != whole {
			t.Errorf("Split at %d gives a different cube", split)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U' R' U) x 6 = identity
	c := NewCube()
	for i := 0; i < 6; i++ {
		c.RotateManyInPlace(SexyMove)
		if i < 5 && c.IsSolved() {
			t.Errorf("Sexy move x %d should not be solved", i+1)
		}
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestTPerm_Twice_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	c.RotateManyInPlace(TPerm)
	if c.IsSolved() {
		t.Error("T-perm once should not be solved")
	}
	c.RotateManyInPlace(TPerm)
	if !c.IsSolved() {
		t.Error("T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestBackTPerm_Twice_ReturnsToSolved(t *testing.T) {
	// T-perm mirrored onto the L, D and B faces.
	backTPerm := []Rotation{
		LPrime, DPrime, L, D, L, BPrime, LPrime, LPrime,
		D, L, D, LPrime, DPrime, L, B,
	}
	c := NewCube()
	c.Apply(backTPerm...)
	c.Apply(backTPerm...)
	if !c.IsSolved() {
		t.Error("Back T-perm x 2 should return to solved")
		t.Log(c.String())
	}
}

func TestOppositeFacesCommute(t *testing.T) {
	start := NewCube().RotateMany(TPerm)
	pairs := [][2]Rotation{{U, D}, {L, R}, {F, B}, {UPrime, D}, {LPrime, RPrime}}
	for _, p := range pairs {
		ab := start.Rotate(p[0]).Rotate(p[1])
		ba := start.Rotate(p[1]).Rotate(p[0])
		if ab != ba {
			t.Errorf("%v and %v should commute", p[0], p[1])
		}
	}
}

func TestSwapStickers_SelfInverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(8, 9))
	start := NewCube().RotateMany(Scramble(WithRand(rng)))

	for trial := 0; trial < 200; trial++ {
		a := sticker{rng.IntN(6), rng.IntN(8)}
		b := sticker{rng.IntN(6), rng.IntN(8)}
		if trial%10 == 0 {
			b = a
		}

		c := start
		c.swapStickers(a, b)
		if a == b && c != start {
			t.Errorf("Swapping %v with itself should be a no-op", a)
		}
		if c.sticker(a.face, a.pos) != start.sticker(b.face, b.pos) ||
			c.sticker(b.face, b.pos) != start.sticker(a.face, a.pos) {
			t.Errorf("Swap %v <-> %v did not exchange stickers", a, b)
		}
		c.swapStickers(a, b)
		if c != start {
			t.Errorf("Swap %v <-> %v twice should restore the cube", a, b)
		}
	}
}

func TestSwapStickers_Symmetric(t *testing.T) {
	a := NewCube()
	b := NewCube()
	a.swapStickers(sticker{0, 1}, sticker{3, 4})
	b.swapStickers(sticker{3, 4}, sticker{0, 1})
	if a != b {
		t.Error("Swap should not depend on argument order")
	}
}

func TestSwapStickers_TouchesOnlyTwoFields(t *testing.T) {
	c := NewCube()
	c.swapStickers(sticker{int(FaceU), 5}, sticker{int(FaceD), 2})

	for _, face := range Faces {
		for pos := 0; pos < StickersPerFace; pos++ {
			want := Color(face)
			switch {
			case face == FaceU && pos == 5:
				want = Yellow
			case face == FaceD && pos == 2:
				want = White
			}
			if got := c.Sticker(face, pos); got != want {
				t.Errorf("%v[%d] = %v, want %v", face, pos, got, want)
			}
		}
	}
}

func TestAdjacencyTable_Shape(t *testing.T) {
	for _, face := range Faces {
		seen := map[Face]bool{}
		for _, row := range adjacent[face] {
			if row.face == face {
				t.Errorf("%v lists itself as a neighbor", face)
			}
			if row.face == opposite(face) {
				t.Errorf("%v lists its opposite face %v", face, row.face)
			}
			if row.pos%2 != 0 {
				t.Errorf("%v: row on %v starts at odd position %d", face, row.face, row.pos)
			}
			seen[row.face] = true
		}
		if len(seen) != 4 {
			t.Errorf("%v should touch 4 distinct neighbors, got %d", face, len(seen))
		}
	}
}

func opposite(f Face) Face {
	return map[Face]Face{
		FaceU: FaceD, FaceD: FaceU,
		FaceL: FaceR, FaceR: FaceL,
		FaceF: FaceB, FaceB: FaceF,
	}[f]
}

func TestCenterNeverMoves(t *testing.T) {
	c := NewCube().RotateMany(Scramble(WithSeed(1)))
	for _, face := range Faces {
		if c.Center(face) != face.SolvedColor() {
			t.Errorf("%v center moved", face)
		}
	}
}

func BenchmarkRotateInPlace(b *testing.B) {
	c := NewCube()
	for i := 0; i < b.N; i++ {
		c.RotateInPlace(TPerm[i%len(TPerm)])
	}
}
