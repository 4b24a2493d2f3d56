// Package config provides YAML-based game configuration loading and
// validation for the snake platform.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid snake config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  SnakeBoard `yaml:"board"`
	Start  SnakeStart `yaml:"start"`
	TickMS int        `yaml:"tick_ms"` // Milliseconds between snake moves
}

// SnakeBoard defines the playing field dimensions in cells.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines the initial snake head, food and heading.
type SnakeStart struct {
	Head      Cell   `yaml:"head"`
	Food      Cell   `yaml:"food"`
	Direction string `yaml:"direction"` // up, down, left, right or u, d, l, r
}

// Cell is a board coordinate.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// directions lists the accepted heading names, matching the short forms
// the game itself parses.
var directions = map[string]bool{
	"up":    true,
	"u":     true,
	"down":  true,
	"d":     true,
	"left":  true,
	"l":     true,
	"right": true,
	"r":     true,
}

// TickInterval returns the configured interval between moves.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks that the config describes a playable game.
func (c SnakeConfig) Validate() error {
	w, h := c.Board.Width, c.Board.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: board must be positive, got %dx%d", ErrInvalid, w, h)
	}
	if !c.Start.Head.in(w, h) {
		return fmt.Errorf("%w: head (%d,%d) outside %dx%d board", ErrInvalid, c.Start.Head.X, c.Start.Head.Y, w, h)
	}
	if !c.Start.Food.in(w, h) {
		return fmt.Errorf("%w: food (%d,%d) outside %dx%d board", ErrInvalid, c.Start.Food.X, c.Start.Food.Y, w, h)
	}
	if c.Start.Food == c.Start.Head {
		return fmt.Errorf("%w: food and head share cell (%d,%d)", ErrInvalid, c.Start.Head.X, c.Start.Head.Y)
	}
	if !directions[strings.ToLower(strings.TrimSpace(c.Start.Direction))] {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalid, c.Start.Direction)
	}
	if c.TickMS <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	return nil
}

func (p Cell) in(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
