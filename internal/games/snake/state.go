// Package snake implements the classic grid snake game: a pure simulation
// state machine plus an adapter that plugs it into the game registry.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrOutOfBounds is returned when a setup position lies off the board.
	ErrOutOfBounds = errors.New("snake: position outside board")
	// ErrFoodOnSnake is returned when the initial food overlaps the head.
	ErrFoodOnSnake = errors.New("snake: food placed on snake")
)

// Action classifies the outcome of the most recent tick.
type Action int

const (
	ActionNone Action = iota // no tick has run yet
	ActionMove
	ActionGrow
	ActionGameOver
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionGrow:
		return "grow"
	case ActionGameOver:
		return "game_over"
	default:
		return "none"
	}
}

// Setup describes a new game.
type Setup struct {
	Width     int
	Height    int
	Head      Position
	Food      Position
	Direction Direction
}

// State is the authoritative simulation state of one game.
// It is not safe for concurrent use; the tick driver owns it.
type State struct {
	board     Board
	rng       *rand.Rand
	snake     *Snake
	food      Position
	hasFood   bool
	direction Direction
	pending   Direction
	requested bool
	score     uint
	action    Action
	gameOver  bool
	filled    bool
}

// NewGame validates the setup and creates a running game.
func NewGame(setup Setup, rng *rand.Rand) (*State, error) {
	board, err := NewBoard(setup.Width, setup.Height)
	if err != nil {
		return nil, err
	}
	if !board.Contains(setup.Head) {
		return nil, fmt.Errorf("%w: head %s on %dx%d", ErrOutOfBounds, setup.Head, setup.Width, setup.Height)
	}
	if !board.Contains(setup.Food) {
		return nil, fmt.Errorf("%w: food %s on %dx%d", ErrOutOfBounds, setup.Food, setup.Width, setup.Height)
	}
	if !setup.Direction.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(setup.Direction))
	}
	if setup.Food == setup.Head {
		return nil, fmt.Errorf("%w: %s", ErrFoodOnSnake, setup.Food)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &State{
		board:     board,
		rng:       rng,
		snake:     NewSnake(setup.Head),
		food:      setup.Food,
		hasFood:   true,
		direction: setup.Direction,
	}, nil
}

// Gate returns requested unless it would reverse current.
func Gate(current, requested Direction) Direction {
	if requested == current.Opposite() {
		return current
	}
	return requested
}

// RequestDirection buffers a heading change for the next tick.
// Later requests replace earlier ones within the same tick window.
// Values that are not a valid heading are ignored.
func (s *State) RequestDirection(d Direction) {
	if !d.Valid() {
		return
	}
	s.pending = d
	s.requested = true
}

// Tick advances the simulation by one step and returns its outcome.
// After game over it does nothing and keeps reporting the final action.
func (s *State) Tick() Action {
	if s.gameOver {
		s.requested = false
		return s.action
	}

	if s.requested {
		s.direction = Gate(s.direction, s.pending)
		s.requested = false
	}

	newHead := s.snake.Head().Add(s.direction)

	if !s.board.Contains(newHead) {
		return s.end()
	}

	eating := s.hasFood && newHead == s.food
	if s.hitsBody(newHead, eating) {
		return s.end()
	}

	if !eating {
		s.snake.Advance(newHead, false)
		s.action = ActionMove
		return s.action
	}

	s.score++
	s.snake.Advance(newHead, true)
	s.action = ActionGrow
	s.food, s.hasFood = PlaceFood(s.rng, s.board, s.snake)
	if !s.hasFood {
		s.filled = true
		s.gameOver = true
	}
	return s.action
}

// hitsBody reports whether moving the head to p runs into the body.
// The tail cell is vacated during a plain move and does not count, except
// when the tail is also the neck: swapping head and neck is a collision.
func (s *State) hitsBody(p Position, growing bool) bool {
	body := s.snake.body
	n := len(body)
	if !growing && n > 1 {
		n--
	}
	for _, seg := range body[:n] {
		if seg == p {
			return true
		}
	}
	return false
}

func (s *State) end() Action {
	s.action = ActionGameOver
	s.gameOver = true
	return s.action
}

// Board returns the board the game is played on.
func (s *State) Board() Board { return s.board }

// Head returns the head position.
func (s *State) Head() Position { return s.snake.Head() }

// Body returns the body segments front to back.
func (s *State) Body() []Position { return s.snake.Body() }

// Snake exposes the snake for read-only queries.
func (s *State) Snake() *Snake { return s.snake }

// Food returns the food position. The second value is false once the board
// is filled and no food can be placed.
func (s *State) Food() (Position, bool) { return s.food, s.hasFood }

// Direction returns the current heading.
func (s *State) Direction() Direction { return s.direction }

// Score returns the number of food items eaten.
func (s *State) Score() uint { return s.score }

// Action returns the outcome of the most recent tick.
func (s *State) Action() Action { return s.action }

// GameOver reports whether the game has reached its terminal state.
func (s *State) GameOver() bool { return s.gameOver }

// Filled reports whether the game ended because the snake covers the board.
func (s *State) Filled() bool { return s.filled }
