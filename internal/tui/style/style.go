// Package style holds the lipgloss styles shared by stack's output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Level names used as output prefixes
const (
	LevelInfo    = "INFO"
	LevelSuccess = "SUCCESS"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

var levelStyles = map[string]lipgloss.Style{
	LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
	LevelSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
	LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// LevelPrefix renders "[LEVEL]" in the level's colour. Unknown levels yield "".
func LevelPrefix(level string) string {
	s, ok := levelStyles[level]
	if !ok {
		return ""
	}
	return s.Render("[" + level + "]")
}

// ConfigureColor drops to plain ASCII output when stdout is not a terminal
// or NO_COLOR is set.
func ConfigureColor() {
	if os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// ColorBranchName colors a branch name based on whether it's checked out
func ColorBranchName(branchName string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Render(branchName + " (current)")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Render(branchName)
}

// ColorStackName colors a stack name, bold when it is the selected stack
func ColorStackName(name string, isCurrent bool) string {
	if isCurrent {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true).
			Render("* " + name)
	}
	return "  " + name
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}
