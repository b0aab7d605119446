package actions

import (
	"gitstack.dev/stack/internal/runtime"
)

// CheckoutOptions contains options for the checkout command
type CheckoutOptions struct {
	Name   string
	Create bool
}

// CheckoutAction selects a stack, creating it first when asked
func CheckoutAction(ctx *runtime.Context, opts CheckoutOptions) error {
	if opts.Create {
		if err := ctx.Store.Create(opts.Name); err != nil {
			return err
		}
		ctx.Splog.Success("Created stack %s.", opts.Name)
	}
	if err := ctx.Store.SetCurrent(opts.Name); err != nil {
		return err
	}
	ctx.Splog.Success("Switched to stack %s.", opts.Name)
	return nil
}
