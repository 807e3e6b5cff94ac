// Package tui provides the Bubble Tea integration: it owns the terminal,
// draws snapshots handed over by the engine loop and feeds key presses back
// to the loop as a pollable input source.
package tui

import "github.com/vovakirdan/termidle/internal/games/termidle"

// FrameMsg carries a snapshot from the loop to the model.
type FrameMsg termidle.Snapshot

// stopMsg tells the model the loop has ended and the program should exit.
type stopMsg struct{}
