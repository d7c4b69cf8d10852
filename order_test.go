package bitcube

import (
	"errors"
	"testing"
)

func TestOrder_KnownSequences(t *testing.T) {
	tests := []struct {
		name string
		seq  []Rotation
		want int
	}{
		{"empty", nil, 1},
		{"single", []Rotation{R}, 4},
		{"sexy", SexyMove, 6},
		{"t-perm", TPerm, 2},
		{"R U", MustParseRotations("R U"), 105},
		{"R U F", MustParseRotations("R U F"), 80},
		{"R2 U2", MustParseRotations("R2 U2"), 6},
	}
	for _, tt := range tests {
		got, err := Order(tt.seq, DefaultOrderLimit)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Order = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestOrder_Limit(t *testing.T) {
	_, err := Order(MustParseRotations("R U"), 100)
	if !errors.Is(err, ErrOrderLimit) {
		t.Errorf("error = %v, want ErrOrderLimit", err)
	}
}
