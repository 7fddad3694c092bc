package common

import (
	"context"
	"os"
	"os/exec"
	"sort"
)

type RealCommandExecutor struct{}

// RunCommand runs name to completion and returns its stdout. On a non-zero
// exit the returned *exec.ExitError carries the captured stderr.
func (e *RealCommandExecutor) RunCommand(ctx context.Context, name string, args []string, env map[string]string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = mergeEnv(env)
	return cmd.Output()
}

// StartCommand starts name with the terminal attached and returns without
// waiting for it to exit.
func (e *RealCommandExecutor) StartCommand(name string, args []string, env map[string]string) (Process, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = mergeEnv(env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &execProcess{cmd: cmd}, nil
}

func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func mergeEnv(extra map[string]string) []string {
	if len(extra) == 0 {
		return nil
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := os.Environ()
	for _, k := range keys {
		env = append(env, k+"="+extra[k])
	}
	return env
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int    { return p.cmd.Process.Pid }
func (p *execProcess) Wait() error { return p.cmd.Wait() }
func (p *execProcess) Kill() error { return p.cmd.Process.Kill() }
