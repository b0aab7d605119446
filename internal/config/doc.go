// Package config manages the stack configuration file.
//
// The file lives at .stack/config and holds KEY=VALUE lines:
//   - MAIN_BRANCH_NAME: trunk branch name (default "main")
//   - CONFIRMATION_ON_GIT_REBASE: prompt before each rebase (default true)
//   - CONFIRMATION_ON_GIT_PUSH: prompt before each push (default true)
package config
