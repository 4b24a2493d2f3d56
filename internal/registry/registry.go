// Package registry keeps the playable snake variants. A variant pairs an id
// with the preset configuration it starts from. Game packages register their
// variants in init() so the CLI can list and create them by id.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownVariant is returned when no variant has the requested id.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is what the terminal platform drives. Implementations keep their
// simulation free of terminal code; the platform maps keys, schedules ticks
// and paints the screen buffer.
type Game interface {
	// ID returns the variant id the game was created for (e.g., "classic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new game. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies the input collected since the last tick and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, game over and pause flags.
	State() core.GameState
}

// Variant describes a registered board preset.
type Variant struct {
	ID     string
	Title  string
	Config config.SnakeConfig
}

// Board returns the board size as "WxH".
func (v Variant) Board() string {
	return fmt.Sprintf("%dx%d", v.Config.Board.Width, v.Config.Board.Height)
}

// Factory builds a game for a variant. The variant's Config may differ from
// the registered preset when the user supplied overrides.
type Factory func(v Variant) Game

var (
	variants  = make(map[string]Variant)
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a variant and its factory.
// Panics if the id is taken or the preset does not validate.
func Register(v Variant, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if err := v.Config.Validate(); err != nil {
		panic(fmt.Sprintf("registry: variant %q: %v", v.ID, err))
	}

	variants[v.ID] = v
	factories[v.ID] = f
}

// List returns all registered variants, smallest board first, then by id.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		ai := result[i].Config.Board.Width * result[i].Config.Board.Height
		aj := result[j].Config.Board.Width * result[j].Config.Board.Height
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the registered variant with the given id.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v, nil
}

// Create builds a game for v using v.Config, which is validated first.
func Create(v Variant) (Game, error) {
	mu.RLock()
	f, ok := factories[v.ID]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, v.ID)
	}
	if err := v.Config.Validate(); err != nil {
		return nil, fmt.Errorf("registry: variant %q: %w", v.ID, err)
	}
	return f(v), nil
}
