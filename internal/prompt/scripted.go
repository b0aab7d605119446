package prompt

import (
	"fmt"
)

// ScriptedPrompter replays fixed answers and records the questions asked.
// It is meant for tests.
type ScriptedPrompter struct {
	Answers []string
	Asked   []string
}

// Ask returns the next scripted answer. Running out of answers is an error.
func (p *ScriptedPrompter) Ask(message string) (Decision, error) {
	p.Asked = append(p.Asked, message)
	if len(p.Answers) == 0 {
		return Abort, fmt.Errorf("unexpected prompt: %s", message)
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return ParseAnswer(answer), nil
}
