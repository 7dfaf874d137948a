package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	TickRate   int    // Simulation ticks per second; 0 keeps the config value
	ConfigPath string // Custom game config file; empty uses the search order
	Difficulty string // Difficulty preset name; empty keeps the config value
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int    // Current score
	Ticks       uint64 // Ticks simulated since Reset
	PelletsLeft int    // Pellets still on the board
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Collected int // Pellets removed this tick
}

// Display describes how a host should present a game once it has been reset.
type Display struct {
	Width, Height         float64       // Canvas size in canvas pixels
	CellWidth, CellHeight float64       // Canvas pixels per terminal column and row
	TickRate              int           // Simulation ticks per second
	RefreshRate           int           // Host frame callbacks per second
	HoldWindow            time.Duration // How long a terminal key counts as held after its last repeat
}
