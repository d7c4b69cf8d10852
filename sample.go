package bitcube

import "math/rand/v2"

// RandomFace returns a uniformly chosen face.
func RandomFace(rng *rand.Rand) Face {
	return Face(rng.IntN(numFaces))
}

// RandomDirection returns CW or CCW with equal probability.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.IntN(2))
}

// RandomRotation returns a uniformly chosen quarter turn.
func RandomRotation(rng *rand.Rand) Rotation {
	return Rotation{Face: RandomFace(rng), Dir: RandomDirection(rng)}
}

// Scramble returns a random sequence of quarter turns.
//
//	seq := bitcube.Scramble(bitcube.WithLength(30), bitcube.WithSeed(42))
//	c := bitcube.NewCube().RotateMany(seq)
func Scramble(opts ...Option) []Rotation {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	seq := make([]Rotation, 0, cfg.length)
	for len(seq) < cfg.length {
		r := RandomRotation(rng)
		if !cfg.cancellations && len(seq) > 0 && seq[len(seq)-1] == r.Inverse() {
			continue
		}
		seq = append(seq, r)
	}
	return seq
}
