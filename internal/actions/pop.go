package actions

import (
	"gitstack.dev/stack/internal/runtime"
)

// PopAction removes the top branch of the current stack and returns it
func PopAction(ctx *runtime.Context) (string, error) {
	name, err := ctx.CurrentStack()
	if err != nil {
		return "", err
	}
	branch, err := ctx.Store.Pop(name)
	if err != nil {
		return "", err
	}
	ctx.Splog.Success("Popped %s from stack %s.", branch, name)
	return branch, nil
}

// ShiftAction removes the bottom branch of the current stack and returns it
func ShiftAction(ctx *runtime.Context) (string, error) {
	name, err := ctx.CurrentStack()
	if err != nil {
		return "", err
	}
	branch, err := ctx.Store.Shift(name)
	if err != nil {
		return "", err
	}
	ctx.Splog.Success("Shifted %s from stack %s.", branch, name)
	return branch, nil
}
