// Package actions provides the business logic behind each stack command.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Store, Git, Config, Splog and the Confirmer
//   - The selected stack is resolved once per action with ctx.CurrentStack()
//   - Mutations go straight to the store; only push, insert and rebase consult git
package actions
