package bitcube

import "math/rand/v2"

// DefaultScrambleLength is the number of quarter turns Scramble produces
// when no length is given.
const DefaultScrambleLength = 25

// Option configures Scramble.
type Option func(*config)

type config struct {
	length        int
	rng           *rand.Rand
	cancellations bool
}

func defaultConfig() *config {
	return &config{
		length:        DefaultScrambleLength,
		cancellations: false,
	}
}

// WithLength sets the number of quarter turns in a scramble.
// Negative lengths are treated as zero.
func WithLength(n int) Option {
	return func(c *config) {
		c.length = max(n, 0)
	}
}

// WithSeed makes the scramble deterministic.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand draws from the given source. Useful for sharing one source
// across many scrambles.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithCancellations allows a turn to be immediately followed by its inverse.
// Disabled by default, since such pairs do nothing.
func WithCancellations(enabled bool) Option {
	return func(c *config) {
		c.cancellations = enabled
	}
}
