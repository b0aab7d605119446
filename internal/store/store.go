// Package store persists stacks as ordered lists of branch names.
//
// Layout under the repository root:
//
//	.stack/
//	  stacks/<name>   one branch name per line, bottom of the stack first
//	  current         name of the selected stack (absent = none)
//	  config          see package config
//	  lock            advisory lock held during read-modify-write
package store

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	stackerrors "gitstack.dev/stack/internal/errors"
)

// Names of the control directory and its entries
const (
	DirName     = ".stack"
	StacksDir   = "stacks"
	CurrentFile = "current"
	LockFile    = "lock"
)

// Store is the set of operations the actions need from stack persistence
type Store interface {
	Create(name string) error
	Remove(name string) error
	Exists(name string) bool
	SetCurrent(name string) error
	Current() (string, error)
	ClearCurrent() error
	Contents(name string) ([]string, error)
	Push(name, branch string) error
	Pop(name string) (string, error)
	Shift(name string) (string, error)
	InsertAt(name, branch string, index int) error
	RemoveAt(name string, index int) (string, error)
	List() ([]string, error)
}

// FsStore is a Store backed by files in the control directory
type FsStore struct {
	rootDir     string
	stackDir    string
	stacksDir   string
	currentPath string
	lock        *flock.Flock
}

var _ Store = (*FsStore)(nil)

// Init creates the control directory under dir. It fails with Invalid if the
// directory already exists.
func Init(dir string) (string, error) {
	stackDir := filepath.Join(dir, DirName)
	if _, err := os.Stat(stackDir); err == nil {
		return "", stackerrors.Invalid("Stack directory already exists!")
	}
	if err := os.MkdirAll(filepath.Join(stackDir, StacksDir), 0750); err != nil {
		return "", stackerrors.IO("failed to create stack directory", err)
	}
	return stackDir, nil
}

// FindRoot walks from startDir up through its parents until it finds a
// directory containing the control directory.
func FindRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", stackerrors.IO("failed to resolve path", err)
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, DirName)); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", stackerrors.NotFound("No %s directory found. Run `stack init` to create one.", DirName)
		}
		dir = parent
	}
}

// New opens the store rooted at rootDir, creating the stacks directory if needed
func New(rootDir string) (*FsStore, error) {
	stackDir := filepath.Join(rootDir, DirName)
	stacksDir := filepath.Join(stackDir, StacksDir)
	if err := os.MkdirAll(stacksDir, 0750); err != nil {
		return nil, stackerrors.IO("failed to create stacks directory", err)
	}
	return &FsStore{
		rootDir:     rootDir,
		stackDir:    stackDir,
		stacksDir:   stacksDir,
		currentPath: filepath.Join(stackDir, CurrentFile),
		lock:        flock.New(filepath.Join(stackDir, LockFile)),
	}, nil
}

// RootDir returns the repository root the store lives in
func (s *FsStore) RootDir() string {
	return s.rootDir
}

// StackDir returns the control directory
func (s *FsStore) StackDir() string {
	return s.stackDir
}

func (s *FsStore) stackPath(name string) string {
	return filepath.Join(s.stacksDir, name)
}

// Exists reports whether a stack with this name exists
func (s *FsStore) Exists(name string) bool {
	_, err := os.Stat(s.stackPath(name))
	return err == nil
}

// Create creates an empty stack
func (s *FsStore) Create(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if s.Exists(name) {
		return stackerrors.AlreadyExists("Stack %s already exists.", name)
	}
	return writeFileAtomic(s.stackPath(name), nil)
}

// Remove deletes a stack. The current-stack pointer is left untouched.
func (s *FsStore) Remove(name string) error {
	if !s.Exists(name) {
		return stackerrors.NotFound("Stack %s does not exist.", name)
	}
	return stackerrors.IO("failed to remove stack", os.Remove(s.stackPath(name)))
}

// SetCurrent selects a stack
func (s *FsStore) SetCurrent(name string) error {
	if !s.Exists(name) {
		return stackerrors.NotFound("Stack %s does not exist.", name)
	}
	return writeFileAtomic(s.currentPath, []byte(name))
}

// Current returns the selected stack name
func (s *FsStore) Current() (string, error) {
	data, err := os.ReadFile(s.currentPath)
	if os.IsNotExist(err) {
		return "", stackerrors.NotFound("No stack is checked out.")
	}
	if err != nil {
		return "", stackerrors.IO("failed to read current stack", err)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return "", stackerrors.Invalid("Current stack name is empty.")
	}
	return name, nil
}

// ClearCurrent deselects the current stack. Clearing when nothing is
// selected is not an error.
func (s *FsStore) ClearCurrent() error {
	err := os.Remove(s.currentPath)
	if os.IsNotExist(err) {
		return nil
	}
	return stackerrors.IO("failed to clear current stack", err)
}

// Contents returns the stack's branches, bottom first
func (s *FsStore) Contents(name string) ([]string, error) {
	data, err := os.ReadFile(s.stackPath(name))
	if os.IsNotExist(err) {
		return nil, stackerrors.NotFound("Stack %s does not exist.", name)
	}
	if err != nil {
		return nil, stackerrors.IO("failed to read stack", err)
	}
	return parseLines(string(data)), nil
}

// Push appends a branch to the top of the stack
func (s *FsStore) Push(name, branch string) error {
	return s.mutate(name, func(branches []string) ([]string, error) {
		return append(branches, branch), nil
	})
}

// Pop removes and returns the top branch
func (s *FsStore) Pop(name string) (string, error) {
	var popped string
	err := s.mutate(name, func(branches []string) ([]string, error) {
		if len(branches) == 0 {
			return nil, stackerrors.Invalid("Stack %s is empty.", name)
		}
		popped = branches[len(branches)-1]
		return branches[:len(branches)-1], nil
	})
	return popped, err
}

// Shift removes and returns the bottom branch
func (s *FsStore) Shift(name string) (string, error) {
	var shifted string
	err := s.mutate(name, func(branches []string) ([]string, error) {
		if len(branches) == 0 {
			return nil, stackerrors.Invalid("Stack %s is empty.", name)
		}
		shifted = branches[0]
		return branches[1:], nil
	})
	return shifted, err
}

// InsertAt inserts a branch at index; index == len is an append
func (s *FsStore) InsertAt(name, branch string, index int) error {
	return s.mutate(name, func(branches []string) ([]string, error) {
		if index < 0 || index > len(branches) {
			return nil, stackerrors.Invalid("Index %d is out of bounds for stack %s of length %d.", index, name, len(branches))
		}
		out := make([]string, 0, len(branches)+1)
		out = append(out, branches[:index]...)
		out = append(out, branch)
		return append(out, branches[index:]...), nil
	})
}

// RemoveAt removes and returns the branch at index
func (s *FsStore) RemoveAt(name string, index int) (string, error) {
	var removed string
	err := s.mutate(name, func(branches []string) ([]string, error) {
		if index < 0 || index >= len(branches) {
			return nil, stackerrors.Invalid("Index %d is out of bounds for stack %s of length %d.", index, name, len(branches))
		}
		removed = branches[index]
		out := make([]string, 0, len(branches)-1)
		out = append(out, branches[:index]...)
		return append(out, branches[index+1:]...), nil
	})
	return removed, err
}

// List returns all stack names in directory order
func (s *FsStore) List() ([]string, error) {
	dir, err := os.Open(s.stacksDir)
	if err != nil {
		return nil, stackerrors.IO("failed to list stacks", err)
	}
	defer func() { _ = dir.Close() }()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, stackerrors.IO("failed to list stacks", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// mutate rewrites a whole stack file under the store lock
func (s *FsStore) mutate(name string, fn func([]string) ([]string, error)) error {
	if err := s.lock.Lock(); err != nil {
		return stackerrors.IO("failed to lock stack directory", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	branches, err := s.Contents(name)
	if err != nil {
		return err
	}
	updated, err := fn(branches)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.stackPath(name), []byte(formatLines(updated)))
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return stackerrors.Invalid("%q is not a valid stack name.", name)
	}
	return nil
}

func parseLines(contents string) []string {
	lines := strings.Split(contents, "\n")
	branches := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches
}

func formatLines(branches []string) string {
	if len(branches) == 0 {
		return ""
	}
	return strings.Join(branches, "\n") + "\n"
}

// writeFileAtomic writes via a temp file in the same directory and renames it
// over the target.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return stackerrors.IO("failed to write "+filepath.Base(path), err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write "+filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write "+filepath.Base(path), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write "+filepath.Base(path), err)
	}
	return nil
}
