package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ v Variant }

func (g *stubGame) ID() string { return g.v.ID }
func (g *stubGame) Title() string { return g.v.Title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func newStub(v Variant) Game { return &stubGame{v: v} }

func stubVariant(id string, w, h int) Variant {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.SnakeBoard{Width: w, Height: h}
	cfg.Start.Head = config.Cell{X: 1, Y: 1}
	cfg.Start.Food = config.Cell{X: 0, Y: 0}
	return Variant{ID: id, Title: "Stub " + id, Config: cfg}
}

func TestRegisterLookupCreate(t *testing.T) {
	Register(stubVariant("zz_stub_create", 6, 4), newStub)

	v, err := Lookup("zz_stub_create")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if v.Board() != "6x4" {
		t.Errorf("Board() = %q, expected \"6x4\"", v.Board())
	}

	// Overrides flow through to the factory
	v.Config.TickMS = 40
	g, err := Create(v)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if got := g.(*stubGame).v.Config.TickMS; got != 40 {
		t.Errorf("factory got TickMS = %d, expected 40", got)
	}
	if g.ID() != "zz_stub_create" {
		t.Errorf("ID() = %q, expected \"zz_stub_create\"", g.ID())
	}
}

func TestCreateRejectsInvalidOverride(t *testing.T) {
	Register(stubVariant("zz_stub_invalid", 5, 5), newStub)

	v, err := Lookup("zz_stub_invalid")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	v.Config.Board.Width = 0
	if _, err := Create(v); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Create() = %v, expected config.ErrInvalid", err)
	}
}

func TestListOrder(t *testing.T) {
	Register(stubVariant("zz_stub_big", 30, 30), newStub)
	Register(stubVariant("zz_stub_tiny_b", 3, 3), newStub)
	Register(stubVariant("zz_stub_tiny_a", 3, 3), newStub)

	list := List()
	pos := make(map[string]int)
	for i, v := range list {
		pos[v.ID] = i
	}
	if !(pos["zz_stub_tiny_a"] < pos["zz_stub_tiny_b"] && pos["zz_stub_tiny_b"] < pos["zz_stub_big"]) {
		t.Errorf("List() order = %v, expected smallest board first then by id", list)
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, err := Lookup("no_such_variant"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Lookup() = %v, expected ErrUnknownVariant", err)
	}
	if _, err := Create(Variant{ID: "no_such_variant", Config: config.DefaultSnakeConfig()}); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Create() = %v, expected ErrUnknownVariant", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(stubVariant("zz_stub_dup", 5, 5), newStub)

	tests := []struct {
		name string
		v    Variant
	}{
		{"duplicate id", stubVariant("zz_stub_dup", 5, 5)},
		{"invalid preset", stubVariant("zz_stub_bad", 0, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tc.v, newStub)
		})
	}
}
