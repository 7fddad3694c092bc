package tunnel

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

// CLILauncher runs `aws ssm start-session` with the session credentials in
// its environment and the terminal attached.
type CLILauncher struct {
	CLIPath  string
	Executor common.CommandExecutor
	Logger   *zap.Logger
}

func NewCLILauncher(cliPath string, executor common.CommandExecutor, logger *zap.Logger) *CLILauncher {
	if cliPath == "" {
		cliPath = "aws"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLILauncher{CLIPath: cliPath, Executor: executor, Logger: logger}
}

func (l *CLILauncher) Launch(ctx context.Context, req models.TunnelRequest) (common.Process, error) {
	args := StartSessionArgs(req.Config, req.Region)

	var env map[string]string
	if req.Credentials != nil {
		env = req.Credentials.Env()
	}

	l.Logger.Info("starting SSM session",
		zap.String("profile", req.Profile),
		zap.String("target", req.Config.Target),
		zap.Uint16("local_port", req.Config.LocalPort),
		zap.Uint16("remote_port", req.Config.RemotePort),
	)

	proc, err := l.Executor.StartCommand(l.CLIPath, args, env)
	if err != nil {
		return nil, &apperr.IdentityCLIError{Message: fmt.Sprintf("AWS session '%s' failed: %v", req.Profile, err)}
	}
	return proc, nil
}

// StartSessionArgs builds the aws ssm start-session argument list. An empty
// document name leaves the choice to SSM.
func StartSessionArgs(cfg models.SessionConfig, region string) []string {
	args := []string{"ssm", "start-session", "--target", cfg.Target}
	if cfg.DocumentName != "" {
		args = append(args, "--document-name", cfg.DocumentName)
	}
	args = append(args, "--parameters", fmt.Sprintf("portNumber=%d,localPortNumber=%d", cfg.RemotePort, cfg.LocalPort))
	if region != "" {
		args = append(args, "--region", region)
	}
	return args
}
