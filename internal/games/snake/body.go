package snake

// Snake is the ordered set of cells the snake occupies.
// body[0] is the segment directly behind the head; the last element is the tail.
type Snake struct {
	head Position
	body []Position
}

// NewSnake creates a snake of length one at head.
func NewSnake(head Position) *Snake {
	return &Snake{head: head}
}

// Head returns the head cell.
func (s *Snake) Head() Position {
	return s.head
}

// Body returns a copy of the body, front to back.
func (s *Snake) Body() []Position {
	out := make([]Position, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of occupied cells, head included.
func (s *Snake) Len() int {
	return len(s.body) + 1
}

// Tail returns the last occupied cell. For a snake without a body this is
// the head.
func (s *Snake) Tail() Position {
	if len(s.body) == 0 {
		return s.head
	}
	return s.body[len(s.body)-1]
}

// Occupied returns the set of cells covered by the snake.
func (s *Snake) Occupied() map[Position]struct{} {
	cells := make(map[Position]struct{}, len(s.body)+1)
	cells[s.head] = struct{}{}
	for _, p := range s.body {
		cells[p] = struct{}{}
	}
	return cells
}

// Contains reports whether p is the head or any body segment.
func (s *Snake) Contains(p Position) bool {
	if p == s.head {
		return true
	}
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Advance moves the head to newHead. The old head becomes body[0] and, unless
// grow is set, the tail segment is dropped so the length stays the same.
func (s *Snake) Advance(newHead Position, grow bool) {
	if grow {
		s.body = append(s.body, Position{})
	}
	if len(s.body) > 0 {
		copy(s.body[1:], s.body[:len(s.body)-1])
		s.body[0] = s.head
	}
	s.head = newHead
}
