package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidBoard is returned for boards with a non-positive dimension.
var ErrInvalidBoard = errors.New("snake: board dimensions must be positive")

// Board holds the grid dimensions. It is immutable once created.
type Board struct {
	width  int
	height int
}

// NewBoard validates the dimensions and returns a board.
func NewBoard(width, height int) (Board, error) {
	if width <= 0 || height <= 0 {
		return Board{}, fmt.Errorf("%w: got %dx%d", ErrInvalidBoard, width, height)
	}
	return Board{width: width, height: height}, nil
}

// Width returns the number of columns.
func (b Board) Width() int { return b.width }

// Height returns the number of rows.
func (b Board) Height() int { return b.height }

// Area returns the number of cells on the board.
func (b Board) Area() int { return b.width * b.height }

// Contains reports whether p lies on the board.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}
