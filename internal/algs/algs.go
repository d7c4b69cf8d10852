// Package algs loads named turn sequences from YAML and checks their orders.
package algs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/bitcube"
)

//go:embed default.yaml
var defaultYAML []byte

// Sentinel errors for library loading and verification.
var (
	ErrMissingName   = errors.New("algs: algorithm without a name")
	ErrDuplicateName = errors.New("algs: duplicate algorithm name")
	ErrOrderMismatch = errors.New("algs: order mismatch")
)

// Algorithm is a named turn sequence with its expected order.
// An Order of 0 means "not checked".
type Algorithm struct {
	Name     string `yaml:"name"`
	Notation string `yaml:"notation"`
	Order    int    `yaml:"order,omitempty"`

	rotations []bitcube.Rotation
}

// Rotations returns the parsed quarter turns.
func (a Algorithm) Rotations() []bitcube.Rotation {
	return a.rotations
}

// Library is an ordered collection of algorithms.
type Library struct {
	Algorithms []Algorithm `yaml:"algorithms"`
}

// Default returns the built-in library.
func Default() (*Library, error) {
	return Parse(defaultYAML)
}

// Load reads a library from a YAML file.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read algorithm file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes a library and validates every entry.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse algorithm yaml: %w", err)
	}

	seen := make(map[string]bool, len(lib.Algorithms))
	for i := range lib.Algorithms {
		a := &lib.Algorithms[i]
		if a.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingName)
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, a.Name)
		}
		seen[a.Name] = true

		rs, err := bitcube.ParseRotations(a.Notation)
		if err != nil {
			return nil, fmt.Errorf("algorithm %s: %w", a.Name, err)
		}
		a.rotations = rs
	}

	return &lib, nil
}

// Find returns the algorithm with the given name.
func (l *Library) Find(name string) (Algorithm, bool) {
	for _, a := range l.Algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}

// Result is the outcome of verifying one algorithm.
type Result struct {
	Algorithm Algorithm
	Order     int   // measured order, 0 if over the limit
	Err       error // nil when the measured order matches
}

// OK reports whether the algorithm passed.
func (r Result) OK() bool {
	return r.Err == nil
}

// Verify measures each algorithm's order and compares it with the
// expected one. Entries without an expected order only fail if no order
// is found within limit.
func (l *Library) Verify(limit int) []Result {
	results := make([]Result, 0, len(l.Algorithms))
	for _, a := range l.Algorithms {
		res := Result{Algorithm: a}
		n, err := bitcube.Order(a.rotations, limit)
		switch {
		case err != nil:
			res.Err = err
		case a.Order != 0 && n != a.Order:
			res.Order = n
			res.Err = fmt.Errorf("%w: %s has order %d, expected %d", ErrOrderMismatch, a.Name, n, a.Order)
		default:
			res.Order = n
		}
		results = append(results, res)
	}
	return results
}

// Failed counts results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}
