package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagTick time.Duration

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The variant defaults to classic;
run 'snake list' to see the others.

Controls:
  Arrows/WASD/HJKL - Change direction
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play small
  snake play --tick 120ms
  snake play --config ./my-snake.yaml --seed 7
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval override, e.g. 150ms (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Logs would corrupt the alternate screen, so they go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := openLogFile()
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	v, err := loadVariant(args, logger)
	if err != nil {
		return err
	}

	tick := v.Config.TickInterval()
	if flagTick > 0 {
		tick = flagTick
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Tick:    tick,
		Seed:    flagSeed,
	}

	game, err := registry.Create(v)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "variant", v.ID, "board", v.Board(), "screen", fmt.Sprintf("%dx%d", width, height), "tick", tick)

	final, err := tui.Run(game, cfg, logger)
	if err != nil {
		logger.Error("tui failed", "err", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("finished", "score", final.Score, "game_over", final.GameOver)
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", final.Score)
	return nil
}
