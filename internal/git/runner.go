package git

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	stackerrors "gitstack.dev/stack/internal/errors"
)

// OutputSink receives the live output of a git command.
// *tui.Splog satisfies it.
type OutputSink interface {
	Page(content string)
	Warn(format string, args ...interface{})
}

// Runner executes git commands
type Runner interface {
	// Run streams stdout to the sink and fails with a Git error on non-zero exit
	Run(ctx context.Context, args ...string) error
	// Output captures stdout instead of streaming it
	Output(ctx context.Context, args ...string) (string, error)
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
	sink       OutputSink
	mu         sync.Mutex
}

var _ Runner = (*CommandRunner)(nil)

// NewCommandRunner creates a new CommandRunner. A nil sink discards output.
func NewCommandRunner(workingDir string, sink OutputSink) *CommandRunner {
	return &CommandRunner{workingDir: workingDir, sink: sink}
}

func (r *CommandRunner) command(ctx context.Context, args []string) *exec.Cmd {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	return cmd
}

// Run executes git with args, blocking until it exits. Each stdout line is
// written to the sink as it arrives; each stderr line is surfaced as a warning
// and collected into the returned error.
func (r *CommandRunner) Run(ctx context.Context, args ...string) error {
	cmd := r.command(ctx, args)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return stackerrors.IO("failed to run git", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return stackerrors.IO("failed to run git", err)
	}
	if err := cmd.Start(); err != nil {
		return stackerrors.IO("failed to run git", err)
	}

	var (
		wg         sync.WaitGroup
		errorLines []string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		r.scan(stdout, func(line string) { r.page(line + "\n") })
	}()
	go func() {
		defer wg.Done()
		r.scan(stderr, func(line string) {
			errorLines = append(errorLines, line)
			r.warn(line)
		})
	}()
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		return stackerrors.NewGitCommandError(args, strings.Join(errorLines, "\n"), err)
	}
	return nil
}

// Output executes git with args and returns its trimmed stdout
func (r *CommandRunner) Output(ctx context.Context, args ...string) (string, error) {
	cmd := r.command(ctx, args)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", stackerrors.IO("failed to run git", err)
		}
		return "", stackerrors.NewGitCommandError(args, strings.TrimSpace(stderr.String()), err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *CommandRunner) scan(rd io.Reader, fn func(string)) {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	// Drain whatever the scanner refused so the process is never blocked on a full pipe.
	_, _ = io.Copy(io.Discard, rd)
}

func (r *CommandRunner) page(content string) {
	if r.sink == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink.Page(content)
}

func (r *CommandRunner) warn(line string) {
	if r.sink == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sink.Warn(line)
}
