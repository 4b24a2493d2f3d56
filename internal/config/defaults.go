package config

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/*.yaml
var presetFS embed.FS

// DefaultPreset is the preset used when no variant is named.
const DefaultPreset = "classic"

// DefaultSnakeConfig returns the hardcoded classic configuration.
// The embedded classic preset carries the same values.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  20,
			Height: 20,
		},
		Start: SnakeStart{
			Head:      Cell{X: 10, Y: 10},
			Food:      Cell{X: 5, Y: 5},
			Direction: "right",
		},
		TickMS: 250,
	}
}

// PresetNames returns the names of the embedded presets, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("defaults")
	if err != nil {
		return []string{DefaultPreset}
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Preset returns the validated embedded preset with the given name.
// Fields a preset omits keep the classic values.
func Preset(name string) (SnakeConfig, error) {
	data, err := presetFS.ReadFile(path.Join("defaults", name+".yaml"))
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: unknown preset %q", name)
	}
	cfg, err := parseSnake(data, DefaultSnakeConfig())
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to parse preset %q: %w", name, err)
	}
	return cfg, cfg.Validate()
}
