// Package git wraps the git binary for the stack tool.
//
// It provides:
//   - CommandRunner, which runs git, streams its stdout and collects stderr
//   - Git, the typed adapter used by the rebase cascade (checkout, rebase, push, pull)
//   - go-git based repository lookups (worktree root, HEAD branch)
//
// This package should be the only place where direct git commands are executed.
package git
