package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

// isolate points the config search path at empty directories and restores
// the global flags afterwards.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	saved := []any{flagSeed, flagConfig, flagLogLevel, flagLogFile, flagMoves, flagTicks}
	t.Cleanup(func() {
		flagSeed = saved[0].(int64)
		flagConfig = saved[1].(string)
		flagLogLevel = saved[2].(string)
		flagLogFile = saved[3].(string)
		flagMoves = saved[4].(string)
		flagTicks = saved[5].(int)
	})
	flagSeed, flagConfig, flagLogLevel, flagLogFile = 0, "", "error", ""
}

func testCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunList(t *testing.T) {
	cmd, out := testCmd()
	if err := runList(cmd, nil); err != nil {
		t.Fatalf("runList() = %v", err)
	}

	text := out.String()
	for _, want := range []string{"classic", "20x20", "250ms", "small", "10x10", "180ms"} {
		if !strings.Contains(text, want) {
			t.Errorf("list output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "small") > strings.Index(text, "classic") {
		t.Errorf("small board should be listed first:\n%s", text)
	}
}

func TestRunSimSmallVariant(t *testing.T) {
	isolate(t)
	flagMoves = "UUL"
	flagTicks = 0

	cmd, out := testCmd()
	if err := runSim(cmd, []string{"small"}); err != nil {
		t.Fatalf("runSim() = %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "variant=small ticks=3 score=0") {
		t.Errorf("unexpected summary:\n%s", text)
	}
	if !strings.Contains(text, "Small Board") {
		t.Errorf("board render missing variant title:\n%s", text)
	}
}

func TestRunSimConfigOverride(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("start:\n  head: {x: 8, y: 5}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	flagConfig = path
	flagMoves = ""
	flagTicks = 10

	cmd, out := testCmd()
	if err := runSim(cmd, []string{"small"}); err != nil {
		t.Fatalf("runSim() = %v", err)
	}

	// (8,5) moving right on a 10x10 board leaves it on the second tick
	if !strings.Contains(out.String(), "ticks=2 score=0 length=1 action=game_over game_over=true") {
		t.Errorf("unexpected summary:\n%s", out.String())
	}
}

func TestUnknownVariantReturnsError(t *testing.T) {
	isolate(t)
	flagLogFile = filepath.Join(t.TempDir(), "snake.log")

	cmd, _ := testCmd()
	err := runPlay(cmd, []string{"giant"})
	if !errors.Is(err, registry.ErrUnknownVariant) {
		t.Fatalf("runPlay() = %v, expected ErrUnknownVariant", err)
	}
	if _, statErr := os.Stat(flagLogFile); statErr != nil {
		t.Errorf("log file should have been created: %v", statErr)
	}

	if err := runSim(cmd, []string{"giant"}); !errors.Is(err, registry.ErrUnknownVariant) {
		t.Errorf("runSim() = %v, expected ErrUnknownVariant", err)
	}
}

func TestRunSimBadMoves(t *testing.T) {
	isolate(t)
	flagMoves = "UZ"

	cmd, _ := testCmd()
	if err := runSim(cmd, nil); err == nil {
		t.Error("runSim() with an invalid move should fail")
	}
}
