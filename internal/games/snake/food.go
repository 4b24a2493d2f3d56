package snake

import "math/rand"

// sampleAttempts bounds the rejection-sampling phase of PlaceFood.
const sampleAttempts = 64

// PlaceFood picks a uniformly random cell not covered by the snake.
// It samples random cells first and, once the attempt budget is spent,
// chooses among the enumerated free cells, so it always terminates.
// Returns false when the snake covers the whole board.
func PlaceFood(rng *rand.Rand, b Board, s *Snake) (Position, bool) {
	occupied := s.Occupied()
	if len(occupied) >= b.Area() {
		return Position{}, false
	}

	for range sampleAttempts {
		p := Position{X: rng.Intn(b.Width()), Y: rng.Intn(b.Height())}
		if _, taken := occupied[p]; !taken {
			return p, true
		}
	}

	free := make([]Position, 0, b.Area()-len(occupied))
	for y := range b.Height() {
		for x := range b.Width() {
			p := Position{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
