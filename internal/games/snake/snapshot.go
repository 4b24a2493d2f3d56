package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateFilled   GameStateType = "filled"
	StateInvalid  GameStateType = "invalid"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Score   uint
	Head    Position
	Body    []Position
	Food    Position
	HasFood bool
	Dir     Direction
	Action  Action
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Tick: g.tick, State: StateInvalid}
	}

	state := StatePlaying
	switch {
	case g.state.Filled():
		state = StateFilled
	case g.state.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	food, hasFood := g.state.Food()
	return Snapshot{
		Tick:    g.tick,
		Score:   g.state.Score(),
		Head:    g.state.Head(),
		Body:    g.state.Body(),
		Food:    food,
		HasFood: hasFood,
		Dir:     g.state.Direction(),
		Action:  g.state.Action(),
		State:   state,
	}
}
