package actions

import (
	"fmt"

	"gitstack.dev/stack/internal/prompt"
	"gitstack.dev/stack/internal/runtime"
	"gitstack.dev/stack/internal/tui/style"
)

// RebaseOptions contains options for the rebase command
type RebaseOptions struct {
	// From and To select the window of stack indices; nil means the bottom
	// and top of the stack. Out-of-range values are clamped.
	From *int
	To   *int
	// OntoTrunk first rebases the bottom branch onto the trunk branch.
	// It only applies when the window starts at index 0.
	OntoTrunk bool
	// Yes accepts every gate without prompting
	Yes bool
}

// StepState is the state of one gated step of the cascade
type StepState int

const (
	// StateDeciding waits on the confirmation gate
	StateDeciding StepState = iota
	// StateExecuting runs the git operation
	StateExecuting
	// StateSkipped means the step was skipped and the cascade goes on
	StateSkipped
	// StateAborted means the whole cascade stops here
	StateAborted
	// StateDone means the step ran
	StateDone
)

func (s StepState) String() string {
	switch s {
	case StateDeciding:
		return "deciding"
	case StateExecuting:
		return "executing"
	case StateSkipped:
		return "skipped"
	case StateAborted:
		return "aborted"
	default:
		return "done"
	}
}

// transition maps a gate decision to the next step state
func transition(d prompt.Decision) StepState {
	switch d {
	case prompt.Proceed:
		return StateExecuting
	case prompt.SkipStep:
		return StateSkipped
	default:
		return StateAborted
	}
}

// RebasedPair records one rebase of Target onto Base
type RebasedPair struct {
	Target string
	Base   string
}

// RebaseReport describes what a cascade did
type RebaseReport struct {
	Stack   string
	Rebased []RebasedPair
	Pushed  []string
	// Skipped lists the gates answered with "continue"
	Skipped []string
	// Aborted is set when a gate answered "no"
	Aborted bool
}

// Window clamps the requested indices into [0, length-1]
func Window(length int, from, to *int) (int, int) {
	last := length - 1
	start, end := 0, last
	if from != nil {
		start = clamp(*from, 0, last)
	}
	if to != nil {
		end = clamp(*to, 0, last)
	}
	return start, end
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type cascade struct {
	ctx    *runtime.Context
	opts   RebaseOptions
	report *RebaseReport
}

// RebaseAction rebases and pushes each branch of the current stack window onto
// its predecessor, lowest index first, asking before every rebase and push.
// Answering "no" at any gate stops the cascade without an error; a git failure
// stops it with the error and leaves already rebased branches as they are.
func RebaseAction(ctx *runtime.Context, opts RebaseOptions) (*RebaseReport, error) {
	name, err := ctx.CurrentStack()
	if err != nil {
		return nil, err
	}
	branches, err := ctx.Store.Contents(name)
	if err != nil {
		return nil, err
	}

	report := &RebaseReport{Stack: name}
	if len(branches) == 0 {
		ctx.Splog.Success("Stack %s is empty, nothing to rebase.", name)
		return report, nil
	}

	from, to := Window(len(branches), opts.From, opts.To)
	c := &cascade{ctx: ctx, opts: opts, report: report}

	if opts.OntoTrunk && from == 0 {
		trunk := ctx.Config.MainBranchName
		state, err := c.rebaseAndPush(branches[0], trunk, func() error {
			if err := ctx.Git.Checkout(ctx, trunk); err != nil {
				return err
			}
			if err := ctx.Git.Pull(ctx); err != nil {
				return err
			}
			return ctx.Git.RebaseOnto(ctx, branches[0], trunk)
		})
		if err != nil {
			return report, err
		}
		if state == StateAborted {
			return c.stopped(), nil
		}
	}

	for i := from; i < to; i++ {
		base, target := branches[i], branches[i+1]
		state, err := c.rebaseAndPush(target, base, func() error {
			return ctx.Git.RebaseOnto(ctx, target, base)
		})
		if err != nil {
			return report, err
		}
		if state == StateAborted {
			return c.stopped(), nil
		}
	}

	ctx.Splog.Success("Rebased stack %s.", name)
	return report, nil
}

// rebaseAndPush runs the rebase gate and, only if the rebase ran, the push gate
func (c *cascade) rebaseAndPush(target, base string, rebase func() error) (StepState, error) {
	ctx := c.ctx
	rebaseMsg := fmt.Sprintf("Rebase %s onto %s?", style.ColorBranchName(target, false), style.ColorBranchName(base, false))
	state, err := c.gate(rebaseMsg, ctx.Config.ConfirmationOnGitRebase, func() error {
		ctx.Splog.Info("Rebasing %s onto %s.", target, base)
		if err := rebase(); err != nil {
			return fmt.Errorf("failed to rebase %s onto %s: %w", target, base, err)
		}
		c.report.Rebased = append(c.report.Rebased, RebasedPair{Target: target, Base: base})
		ctx.Splog.Success("Rebased %s onto %s.", target, base)
		return nil
	})
	if err != nil || state != StateDone {
		if state == StateSkipped {
			c.skip("rebase " + target)
		}
		return state, err
	}

	pushMsg := fmt.Sprintf("Push %s?", style.ColorBranchName(target, false))
	state, err = c.gate(pushMsg, ctx.Config.ConfirmationOnGitPush, func() error {
		ctx.Splog.Info("Pushing %s.", target)
		if err := ctx.Git.Push(ctx, true); err != nil {
			return fmt.Errorf("failed to push %s: %w", target, err)
		}
		c.report.Pushed = append(c.report.Pushed, target)
		ctx.Splog.Success("Pushed %s.", target)
		return nil
	})
	if state == StateSkipped {
		c.skip("push " + target)
	}
	return state, err
}

// gate drives one step from Deciding to a terminal state
func (c *cascade) gate(message string, required bool, execute func() error) (StepState, error) {
	state := StateDeciding
	for {
		switch state {
		case StateDeciding:
			decision, err := c.ctx.Confirmer.Confirm(message, required, c.opts.Yes)
			if err != nil {
				return StateAborted, err
			}
			state = transition(decision)
		case StateExecuting:
			if err := execute(); err != nil {
				return StateExecuting, err
			}
			state = StateDone
		default:
			return state, nil
		}
	}
}

func (c *cascade) skip(step string) {
	c.report.Skipped = append(c.report.Skipped, step)
	c.ctx.Splog.Info("Skipped %s.", step)
}

func (c *cascade) stopped() *RebaseReport {
	c.report.Aborted = true
	c.ctx.Splog.Info("Stopped. Remaining branches were left as they are.")
	return c.report
}
