// Package tui provides the terminal user interface for stack.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Rendering of stacks and stack lists
package tui
