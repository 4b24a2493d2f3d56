package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagMoves string
	flagTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a scripted game without a terminal UI",
	Long: `Runs the simulation headlessly and prints the final board and score.

Each character of --moves is one tick:
  U, D, L, R - Request a direction before the tick
  .          - Tick without a request

When --ticks is larger than the move script, the remaining ticks run
without requests. The run stops early once the game is over.

Examples:
  snake sim --moves RRRUUL
  snake sim small --moves UUUL
  snake sim --moves "...." --ticks 40 --seed 42
  snake sim --moves UUL --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagMoves, "moves", "", "Move script, one of U/D/L/R/. per tick")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Total ticks to run (default: length of --moves)")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	script, err := parseMoves(flagMoves)
	if err != nil {
		return err
	}

	v, err := loadVariant(args, logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = 1 // headless runs stay reproducible unless a seed is given
	}

	created, err := registry.Create(v)
	if err != nil {
		return err
	}
	game, ok := created.(*snake.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run headlessly", v.ID)
	}

	// Board plus frame plus HUD.
	w := max(v.Config.Board.Width+2, 40)
	h := v.Config.Board.Height + 4
	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, Seed: seed})
	if err := game.Err(); err != nil {
		return err
	}

	ticks := simulate(game, script, flagTicks, logger)

	screen := core.NewScreen(w, h)
	game.Render(screen)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())

	sim := game.Sim()
	fmt.Fprintf(out, "variant=%s ticks=%d score=%d length=%d action=%s game_over=%v filled=%v\n",
		v.ID, ticks, sim.Score(), sim.Snake().Len(), sim.Action(), sim.GameOver(), sim.Filled())
	return nil
}

// parseMoves converts a move script into per-tick input actions.
func parseMoves(s string) ([]core.Action, error) {
	moves := make([]core.Action, 0, len(s))
	for i, r := range strings.ToUpper(s) {
		switch r {
		case 'U':
			moves = append(moves, core.ActionUp)
		case 'D':
			moves = append(moves, core.ActionDown)
		case 'L':
			moves = append(moves, core.ActionLeft)
		case 'R':
			moves = append(moves, core.ActionRight)
		case '.':
			moves = append(moves, core.ActionNone)
		default:
			return nil, fmt.Errorf("invalid move %q at position %d", r, i)
		}
	}
	return moves, nil
}

// simulate steps the game through the script and returns the number of ticks run.
func simulate(game *snake.Game, script []core.Action, total int, logger *log.Logger) int {
	total = max(total, len(script))
	input := core.NewInputFrame()

	n := 0
	for n < total && !game.Sim().GameOver() {
		input.Clear()
		if n < len(script) && script[n] != core.ActionNone {
			input.Set(script[n])
		}
		game.Step(input)
		n++

		sim := game.Sim()
		logger.Debug("tick", "n", n, "action", sim.Action(), "head", sim.Head(), "dir", sim.Direction(), "score", sim.Score())
	}

	if sim := game.Sim(); sim.GameOver() {
		logger.Info("game over", "ticks", n, "score", sim.Score(), "filled", sim.Filled())
	}
	return n
}
