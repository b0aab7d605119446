package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	stackerrors "gitstack.dev/stack/internal/errors"
)

// Recognized configuration keys
const (
	KeyMainBranchName          = "MAIN_BRANCH_NAME"
	KeyConfirmationOnGitPush   = "CONFIRMATION_ON_GIT_PUSH"
	KeyConfirmationOnGitRebase = "CONFIRMATION_ON_GIT_REBASE"
)

// FileName is the config file name inside the control directory
const FileName = "config"

// Config is the process-wide configuration, loaded once per invocation
type Config struct {
	MainBranchName          string
	ConfirmationOnGitPush   bool
	ConfirmationOnGitRebase bool

	path string
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		MainBranchName:          "main",
		ConfirmationOnGitPush:   true,
		ConfirmationOnGitRebase: true,
	}
}

// Keys returns the recognized keys in file order
func Keys() []string {
	return []string{KeyMainBranchName, KeyConfirmationOnGitPush, KeyConfirmationOnGitRebase}
}

// Load reads the config file in stackDir. A missing file yields defaults.
func Load(stackDir string) (*Config, error) {
	path := filepath.Join(stackDir, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}
	if err != nil {
		return nil, stackerrors.IO("failed to read config", err)
	}

	cfg := Parse(string(data))
	cfg.path = path
	return cfg, nil
}

// Parse builds a config from file contents. Unknown keys and malformed lines
// are ignored.
func Parse(contents string) *Config {
	cfg := Default()
	scanner := bufio.NewScanner(strings.NewReader(contents))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		cfg.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return cfg
}

// Set applies one key/value pair. It reports whether the key is recognized.
func (c *Config) Set(key, value string) bool {
	switch key {
	case KeyMainBranchName:
		c.MainBranchName = value
	case KeyConfirmationOnGitPush:
		c.ConfirmationOnGitPush = parseBool(value)
	case KeyConfirmationOnGitRebase:
		c.ConfirmationOnGitRebase = parseBool(value)
	default:
		return false
	}
	return true
}

func parseBool(value string) bool {
	return value == "true" || value == "1"
}

// String renders the config in file format
func (c *Config) String() string {
	return fmt.Sprintf("%s=%s\n%s=%t\n%s=%t\n",
		KeyMainBranchName, c.MainBranchName,
		KeyConfirmationOnGitPush, c.ConfirmationOnGitPush,
		KeyConfirmationOnGitRebase, c.ConfirmationOnGitRebase,
	)
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	return c.path
}

// SaveTo writes the config into stackDir and remembers the location
func (c *Config) SaveTo(stackDir string) error {
	c.path = filepath.Join(stackDir, FileName)
	return c.Save()
}

// Save writes the config back to the file it was loaded from
func (c *Config) Save() error {
	if c.path == "" {
		return stackerrors.Other("config has no file location")
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".config-*")
	if err != nil {
		return stackerrors.IO("failed to write config", err)
	}
	if _, err := tmp.WriteString(c.String()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write config", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write config", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		_ = os.Remove(tmp.Name())
		return stackerrors.IO("failed to write config", err)
	}
	return nil
}
