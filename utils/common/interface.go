package common

import (
	"context"
)

// CommandExecutor runs external programs. env entries are added on top of the
// current process environment.
type CommandExecutor interface {
	RunCommand(ctx context.Context, name string, args []string, env map[string]string) ([]byte, error)
	StartCommand(name string, args []string, env map[string]string) (Process, error)
	LookPath(file string) (string, error)
}

// Process is a child started by StartCommand. It keeps running after the call
// that started it returns.
type Process interface {
	Pid() int
	Wait() error
	Kill() error
}
