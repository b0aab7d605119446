// Package prompt implements the three-way confirmation used to gate each step
// of a rebase cascade, and the prompters that collect the answer.
package prompt

import (
	"strings"
)

// Decision is the outcome of one confirmation gate
type Decision int

const (
	// Abort stops the whole remaining cascade
	Abort Decision = iota
	// SkipStep skips only the gated step and moves on
	SkipStep
	// Proceed performs the gated step
	Proceed
)

func (d Decision) String() string {
	switch d {
	case Proceed:
		return "proceed"
	case SkipStep:
		return "skip"
	default:
		return "abort"
	}
}

// Accepted reports whether the gated step should run
func (d Decision) Accepted() bool {
	return d == Proceed
}

// Continue reports whether the cascade should go on after this gate
func (d Decision) Continue() bool {
	return d != Abort
}

// ParseAnswer maps a typed answer to a decision. Anything unrecognized aborts.
func ParseAnswer(answer string) Decision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return Proceed
	case "c", "continue":
		return SkipStep
	default:
		return Abort
	}
}

// Prompter asks the user a three-way question
type Prompter interface {
	Ask(message string) (Decision, error)
}

// Confirmer gates operations behind a prompt
type Confirmer struct {
	prompter Prompter
}

// NewConfirmer creates a Confirmer asking through p
func NewConfirmer(p Prompter) *Confirmer {
	return &Confirmer{prompter: p}
}

// Confirm asks about message unless skipAll is set or the config does not
// require confirmation, in which case the step proceeds without a prompt.
func (c *Confirmer) Confirm(message string, required, skipAll bool) (Decision, error) {
	if skipAll || !required {
		return Proceed, nil
	}
	return c.prompter.Ask(message)
}
