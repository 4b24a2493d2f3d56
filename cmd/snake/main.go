// snake is a terminal snake game built around a deterministic simulation core.
//
// Usage:
//
//	snake list                       - List board variants
//	snake play [variant]             - Play in the terminal (default: classic)
//	snake sim [variant] --moves RRUL - Run a scripted game headlessly and print the board
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible food placement
//	--config <path>      - Path to a snake YAML config
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file (required to see logs while playing)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake moves across a fixed board, grows when it eats food and
ends when it hits a wall or itself.

Available commands:
  list     - Show the board variants
  play     - Play in the terminal
  sim      - Run a scripted game without a terminal UI

Examples:
  snake play
  snake play small
  snake play --config ./my-snake.yaml --tick 150ms
  snake sim --moves RRRUUL --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the structured logger for a command.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens --log-file for appending. The caller closes it.
func openLogFile() (*os.File, error) {
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// loadVariant looks up a variant and applies --config or the config search
// path on top of its preset.
func loadVariant(args []string, logger *log.Logger) (registry.Variant, error) {
	id := snake.DefaultVariant
	if len(args) > 0 {
		id = args[0]
	}

	v, err := registry.Lookup(id)
	if err != nil {
		return v, fmt.Errorf("%w (run 'snake list' to see variants)", err)
	}
	v.Config, err = config.LoadSnake(v.Config, flagConfig)
	if err != nil {
		return v, err
	}

	logger.Debug("config loaded",
		"variant", v.ID,
		"path", flagConfig,
		"board", v.Board(),
		"tick", v.Config.TickInterval(),
	)
	return v, nil
}
