package snake

import (
	"errors"
	"testing"
)

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(5, 4)
	if err != nil {
		t.Fatalf("NewBoard(5, 4) failed: %v", err)
	}
	if b.Width() != 5 || b.Height() != 4 || b.Area() != 20 {
		t.Errorf("board = %dx%d area %d, expected 5x4 area 20", b.Width(), b.Height(), b.Area())
	}

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("NewBoard(%d, %d) = %v, expected ErrInvalidBoard", dims[0], dims[1], err)
		}
	}
}

func TestBoardContains(t *testing.T) {
	b, _ := NewBoard(5, 5)

	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"origin", Position{X: 0, Y: 0}, true},
		{"far corner", Position{X: 4, Y: 4}, true},
		{"x too large", Position{X: 5, Y: 2}, false},
		{"y too large", Position{X: 2, Y: 5}, false},
		{"x negative", Position{X: -1, Y: 2}, false},
		{"y negative", Position{X: 2, Y: -1}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.pos); got != tc.expected {
				t.Errorf("Contains(%s) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}
