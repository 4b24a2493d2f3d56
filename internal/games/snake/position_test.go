package snake

import (
	"errors"
	"testing"
)

func TestPositionAdd(t *testing.T) {
	origin := Position{X: 2, Y: 2}

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{Up, Position{X: 2, Y: 3}},
		{Down, Position{X: 2, Y: 1}},
		{Left, Position{X: 1, Y: 2}},
		{Right, Position{X: 3, Y: 2}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := origin.Add(tc.dir); got != tc.expected {
				t.Errorf("Add(%s) = %s, expected %s", tc.dir, got, tc.expected)
			}
		})
	}

	// No bounds checking
	if got := (Position{}).Add(Left); got != (Position{X: -1, Y: 0}) {
		t.Errorf("Add(Left) from origin = %s, expected (-1,0)", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{Up: Down, Down: Up, Left: Right, Right: Left}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%s.Opposite().Opposite() = %s, expected %s", d, got, d)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
	}{
		{"up", Up},
		{"D", Down},
		{" Left ", Left},
		{"r", Right},
	}
	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseDirection(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(north) = %v, expected ErrUnknownDirection", err)
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if !d.Valid() {
			t.Errorf("%s.Valid() = false, expected true", d)
		}
	}
	for _, d := range []Direction{Direction(-1), Direction(4), Direction(9)} {
		if d.Valid() {
			t.Errorf("Direction(%d).Valid() = true, expected false", int(d))
		}
	}
}
