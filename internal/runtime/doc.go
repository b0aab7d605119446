// Package runtime provides the execution context for stack commands.
//
// It encapsulates the dependencies shared by actions: the stack store, the
// git adapter, the loaded configuration, the logger and the prompts. The
// selected stack is resolved through the context once per command and passed
// explicitly to the store, so several contexts can coexist in tests.
package runtime
