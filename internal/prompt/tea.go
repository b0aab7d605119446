package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmKeyMap struct {
	Yes      key.Binding
	No       key.Binding
	Continue key.Binding
}

var confirmKeys = confirmKeyMap{
	Yes:      key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:       key.NewBinding(key.WithKeys("n", "N", "enter"), key.WithHelp("n", "no, stop here")),
	Continue: key.NewBinding(key.WithKeys("c", "C"), key.WithHelp("c", "skip and continue")),
}

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// confirmModel is a single-keypress three-way confirmation
type confirmModel struct {
	prompt   string
	decision Decision
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, confirmKeys.Yes):
		m.decision = Proceed
	case key.Matches(keyMsg, confirmKeys.Continue):
		m.decision = SkipStep
	default:
		// n, enter, esc and any unrecognized key all stop the cascade
		m.decision = Abort
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return fmt.Sprintf("%s %s\n", promptStyle.Render(m.prompt), m.decision)
	}
	help := fmt.Sprintf("%s • %s • %s",
		confirmKeys.Yes.Help().Key+" "+confirmKeys.Yes.Help().Desc,
		confirmKeys.No.Help().Key+" "+confirmKeys.No.Help().Desc,
		confirmKeys.Continue.Help().Key+" "+confirmKeys.Continue.Help().Desc,
	)
	return fmt.Sprintf("%s %s\n%s\n", promptStyle.Render(m.prompt), Hint, hintStyle.Render(help))
}

// TeaPrompter asks with a bubbletea program reading single key presses
type TeaPrompter struct {
	in  io.Reader
	out io.Writer
}

// NewTeaPrompter creates a key-driven prompter
func NewTeaPrompter(in io.Reader, out io.Writer) *TeaPrompter {
	return &TeaPrompter{in: in, out: out}
}

// Ask runs the confirmation program until a decision key is pressed
func (p *TeaPrompter) Ask(message string) (Decision, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return Abort, err
	}

	program := tea.NewProgram(confirmModel{prompt: message}, tea.WithInput(p.in), tea.WithOutput(p.out))
	final, err := program.Run()
	if err != nil {
		return Abort, err
	}
	m, ok := final.(confirmModel)
	if !ok {
		return Abort, fmt.Errorf("unexpected model type")
	}
	return m.decision, nil
}
