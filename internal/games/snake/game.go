package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// DefaultVariant is the variant played when none is named.
const DefaultVariant = config.DefaultPreset

// titles maps preset names to display names.
var titles = map[string]string{
	"classic": "Snake",
	"small":   "Snake - Small Board",
}

// Game adapts the simulation to the registry.Game interface: it maps input
// frames to direction requests, handles pause and restart, and renders.
type Game struct {
	id      string
	title   string
	cfg     config.SnakeConfig
	rng     *rand.Rand
	state   *State
	tick    uint64
	paused  bool
	screenW int
	screenH int
	err     error // setup failure, shown instead of the board
}

// New creates a classic Snake game played with cfg.
func New(cfg config.SnakeConfig) *Game {
	return newVariant(registry.Variant{ID: DefaultVariant, Title: titles[DefaultVariant], Config: cfg})
}

func newVariant(v registry.Variant) *Game {
	return &Game{id: v.ID, title: v.Title, cfg: v.Config}
}

// init registers one variant per embedded preset.
func init() {
	for _, name := range config.PresetNames() {
		cfg, err := config.Preset(name)
		if err != nil {
			panic(err)
		}
		title, ok := titles[name]
		if !ok {
			title = "Snake - " + name
		}
		registry.Register(registry.Variant{ID: name, Title: title, Config: cfg}, func(v registry.Variant) registry.Game {
			return newVariant(v)
		})
	}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// SetupFromConfig converts a config into a simulation setup.
func SetupFromConfig(cfg config.SnakeConfig) (Setup, error) {
	dir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return Setup{}, err
	}
	return Setup{
		Width:     cfg.Board.Width,
		Height:    cfg.Board.Height,
		Head:      Position{X: cfg.Start.Head.X, Y: cfg.Start.Head.Y},
		Food:      Position{X: cfg.Start.Food.X, Y: cfg.Start.Food.Y},
		Direction: dir,
	}, nil
}

// Reset initializes/restarts the game from the configured setup.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.state = nil
	setup, err := SetupFromConfig(g.cfg)
	if err == nil {
		g.state, err = NewGame(setup, g.rng)
	}
	g.err = err
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.state == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart is only honoured once the game has ended
	if input.Has(core.ActionRestart) && g.state.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.state.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.state.GameOver() {
		return core.StepResult{State: g.State()}
	}

	switch input.Last(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		g.state.RequestDirection(Up)
	case core.ActionDown:
		g.state.RequestDirection(Down)
	case core.ActionLeft:
		g.state.RequestDirection(Left)
	case core.ActionRight:
		g.state.RequestDirection(Right)
	}

	g.state.Tick()

	return core.StepResult{State: g.State()}
}

// Sim returns the underlying simulation state, or nil if setup failed.
func (g *Game) Sim() *State {
	return g.state
}

// Err returns the setup error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    int(g.state.Score()),
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.state == nil {
		return fmt.Sprintf("Tick: %d, setup error: %v\n", g.tick, g.err)
	}
	food, ok := g.state.Food()
	foodStr := "none"
	if ok {
		foodStr = food.String()
	}
	return fmt.Sprintf("Tick: %d, Score: %d, Len: %d, Dir: %s\nHead: %s, Food: %s, Action: %s, GameOver: %v\n",
		g.tick, g.state.Score(), g.state.Snake().Len(), g.state.Direction(),
		g.state.Head(), foodStr, g.state.Action(), g.state.GameOver())
}
