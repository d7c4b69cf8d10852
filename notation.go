package bitcube

import (
	"fmt"
	"slices"
	"strings"
)

// parseToken parses one notation token into a quarter turn and a repeat
// count. Half turns (R2, R2') repeat a clockwise quarter turn twice.
func parseToken(s string) (Rotation, int, error) {
	if len(s) == 0 {
		return Rotation{}, 0, ErrInvalidNotation
	}

	// Extract face
	var face Face
	switch s[0] {
	case 'U', 'u':
		face = FaceU
	case 'L', 'l':
		face = FaceL
	case 'F', 'f':
		face = FaceF
	case 'R', 'r':
		face = FaceR
	case 'B', 'b':
		face = FaceB
	case 'D', 'd':
		face = FaceD
	default:
		return Rotation{}, 0, ErrInvalidNotation
	}

	// Extract turn
	switch s[1:] {
	case "":
		return Rotation{face, CW}, 1, nil
	case "'", "`":
		return Rotation{face, CCW}, 1, nil
	case "2", "2'", "2`":
		return Rotation{face, CW}, 2, nil
	default:
		return Rotation{}, 0, ErrInvalidNotation
	}
}

// ParseRotation parses a single quarter turn.
// Examples: R, R', U`
// Half turns are rejected; use ParseRotations for those.
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	r, n, err := parseToken(s)
	if err != nil || n != 1 {
		return Rotation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return r, nil
}

// ParseRotations parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Half turns expand to two quarter turns. The first invalid token aborts
// parsing.
func ParseRotations(s string) ([]Rotation, error) {
	parts := strings.Fields(s)
	rotations := make([]Rotation, 0, len(parts))

	for _, part := range parts {
		r, n, err := parseToken(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, part)
		}
		for i := 0; i < n; i++ {
			rotations = append(rotations, r)
		}
	}

	return rotations, nil
}

// MustParseRotations is like ParseRotations but panics on invalid input.
// Intended for package-level algorithm tables.
func MustParseRotations(s string) []Rotation {
	rs, err := ParseRotations(s)
	if err != nil {
		panic(err)
	}
	return rs
}

// FormatRotations formats rotations as a space-separated notation string.
func FormatRotations(rs []Rotation) string {
	if len(rs) == 0 {
		return ""
	}

	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = r.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes rs: reversed, each turn inverted.
func Invert(rs []Rotation) []Rotation {
	inv := make([]Rotation, len(rs))
	for i, r := range rs {
		inv[i] = r.Inverse()
	}
	slices.Reverse(inv)
	return inv
}
