package actions

import (
	"strings"

	"gitstack.dev/stack/internal/config"
	stackerrors "gitstack.dev/stack/internal/errors"
	"gitstack.dev/stack/internal/runtime"
)

// ConfigShowAction prints the effective configuration
func ConfigShowAction(ctx *runtime.Context) {
	ctx.Splog.Page(ctx.Config.String())
}

// ConfigSetOptions contains options for config set
type ConfigSetOptions struct {
	Key   string
	Value string
}

// ConfigSetAction updates one key and saves the file
func ConfigSetAction(ctx *runtime.Context, opts ConfigSetOptions) error {
	if !ctx.Config.Set(opts.Key, opts.Value) {
		return stackerrors.Invalid("Unknown config key %s. Known keys: %s.", opts.Key, strings.Join(config.Keys(), ", "))
	}
	if err := ctx.Config.Save(); err != nil {
		return err
	}
	ctx.Splog.Success("Set %s=%s.", opts.Key, opts.Value)
	return nil
}

// ConfigEditAction walks through every setting interactively and saves the result
func ConfigEditAction(ctx *runtime.Context) error {
	q := ctx.Questioner
	cfg := ctx.Config

	trunk, err := q.Text("Name of the trunk branch:", cfg.MainBranchName)
	if err != nil {
		return err
	}
	confirmRebase, err := q.YesNo("Ask before every rebase?", cfg.ConfirmationOnGitRebase)
	if err != nil {
		return err
	}
	confirmPush, err := q.YesNo("Ask before every push?", cfg.ConfirmationOnGitPush)
	if err != nil {
		return err
	}

	cfg.MainBranchName = strings.TrimSpace(trunk)
	cfg.ConfirmationOnGitRebase = confirmRebase
	cfg.ConfirmationOnGitPush = confirmPush
	if err := cfg.Save(); err != nil {
		return err
	}
	ctx.Splog.Success("Saved config to %s.", cfg.Path())
	return nil
}
