package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/list"

	"gitstack.dev/stack/internal/tui/style"
)

// indexEnumerator numbers items from 0 so the printed index is the one
// accepted by insert and remove.
func indexEnumerator(_ list.Items, i int) string {
	return fmt.Sprintf("%d.", i)
}

// RenderStack renders a stack bottom-to-top with its indices. The branch that
// is checked out in git, if any, is highlighted.
func RenderStack(name string, branches []string, checkedOut string) string {
	if len(branches) == 0 {
		return fmt.Sprintf("%s %s\n", name, style.ColorDim("(empty)"))
	}
	items := make([]any, len(branches))
	for i, b := range branches {
		items[i] = style.ColorBranchName(b, b == checkedOut)
	}
	l := list.New(items...).Enumerator(indexEnumerator)
	return name + "\n" + l.String() + "\n"
}

// RenderStackNames renders all stack names, marking the selected one
func RenderStackNames(names []string, current string) string {
	if len(names) == 0 {
		return style.ColorDim("no stacks") + "\n"
	}
	items := make([]any, len(names))
	for i, n := range names {
		items[i] = style.ColorStackName(n, n == current)
	}
	l := list.New(items...).Enumerator(func(list.Items, int) string { return "" })
	return l.String() + "\n"
}
