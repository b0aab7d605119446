// Package errors provides the error kinds used across the stack tool.
// Use errors.Is() against a kind sentinel and errors.As() for the concrete types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per error kind
var (
	// ErrIO indicates a filesystem or subprocess plumbing failure
	ErrIO = errors.New("io error")

	// ErrGit indicates the git binary exited with a non-zero status
	ErrGit = errors.New("git error")

	// ErrInvalid indicates a violated precondition (duplicate branch, bad index, ...)
	ErrInvalid = errors.New("invalid")

	// ErrNotFound indicates a missing stack or control directory
	ErrNotFound = errors.New("not found")

	// ErrOther is the uncategorized kind
	ErrOther = errors.New("error")

	// ErrAlreadyExists is an Invalid error raised when creating a stack that exists
	ErrAlreadyExists = errors.New("already exists")
)

// StackError is an error tagged with one of the kind sentinels
type StackError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *StackError) Error() string {
	switch e.Kind {
	case ErrIO:
		if e.Err != nil {
			if e.Msg != "" {
				return fmt.Sprintf("%s: %v", e.Msg, e.Err)
			}
			return e.Err.Error()
		}
		return e.Msg
	case ErrOther, nil:
		return e.Msg
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
}

// Is reports whether target is this error's kind. An AlreadyExists error is
// also Invalid.
func (e *StackError) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	return e.Kind == ErrAlreadyExists && target == ErrInvalid
}

func (e *StackError) Unwrap() error {
	return e.Err
}

// Invalid creates an Invalid error
func Invalid(format string, args ...interface{}) *StackError {
	return &StackError{Kind: ErrInvalid, Msg: fmt.Sprintf(format, args...)}
}

// NotFound creates a NotFound error
func NotFound(format string, args ...interface{}) *StackError {
	return &StackError{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// AlreadyExists creates an AlreadyExists error
func AlreadyExists(format string, args ...interface{}) *StackError {
	return &StackError{Kind: ErrAlreadyExists, Msg: fmt.Sprintf(format, args...)}
}

// Other creates an uncategorized error
func Other(format string, args ...interface{}) *StackError {
	return &StackError{Kind: ErrOther, Msg: fmt.Sprintf(format, args...)}
}

// IO wraps a filesystem or process error. A nil err yields nil.
func IO(msg string, err error) error {
	if err == nil {
		return nil
	}
	return &StackError{Kind: ErrIO, Msg: msg, Err: err}
}

// GitCommandError represents a failed git invocation
type GitCommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *GitCommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git error: %s", e.Stderr)
	}
	return fmt.Sprintf("git error: git command failed: git %v", e.Args)
}

// Is returns true if the target error is ErrGit
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGit
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(args []string, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Args:   args,
		Stderr: stderr,
		Err:    err,
	}
}
