package tunnel

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

const pluginInstallURL = "https://docs.aws.amazon.com/systems-manager/latest/userguide/session-manager-working-with-install-plugin.html"

type SSMAPI interface {
	StartSession(ctx context.Context, params *ssm.StartSessionInput, optFns ...func(*ssm.Options)) (*ssm.StartSessionOutput, error)
	TerminateSession(ctx context.Context, params *ssm.TerminateSessionInput, optFns ...func(*ssm.Options)) (*ssm.TerminateSessionOutput, error)
}

// SSMClientFactory builds an SSM client that signs with the given session credentials.
type SSMClientFactory func(ctx context.Context, creds *models.SessionCredentials, region string) (SSMAPI, error)

// PluginLauncher opens the SSM session through the API and hands the stream
// to session-manager-plugin, without going through the aws CLI.
type PluginLauncher struct {
	Clients  SSMClientFactory
	Executor common.CommandExecutor
	Logger   *zap.Logger
}

func NewPluginLauncher(executor common.CommandExecutor, logger *zap.Logger) *PluginLauncher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PluginLauncher{
		Clients:  StaticCredentialsSSMClient,
		Executor: executor,
		Logger:   logger,
	}
}

func StaticCredentialsSSMClient(ctx context.Context, creds *models.SessionCredentials, region string) (SSMAPI, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if creds != nil {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

func (l *PluginLauncher) Launch(ctx context.Context, req models.TunnelRequest) (common.Process, error) {
	region := req.APIRegion()
	if region == "" {
		return nil, fmt.Errorf("a region is required for plugin tunnels, set one on profile %s", req.Profile)
	}

	pluginPath, err := l.Executor.LookPath(pluginName())
	if err != nil {
		return nil, fmt.Errorf("session-manager-plugin not found. Install it from below: \n%s \n(%w)", pluginInstallURL, err)
	}

	client, err := l.Clients(ctx, req.Credentials, region)
	if err != nil {
		return nil, err
	}

	input := startSessionInput(req.Config)
	session, err := client.StartSession(ctx, input)
	if err != nil {
		return nil, &apperr.IdentityCLIError{Message: fmt.Sprintf("SSM port forwarding failed: %v", err)}
	}
	sessionID := aws.ToString(session.SessionId)

	args, err := pluginArgs(session, input, region)
	if err != nil {
		l.terminate(client, sessionID)
		return nil, err
	}

	l.Logger.Info("starting session-manager-plugin",
		zap.String("profile", req.Profile),
		zap.String("target", req.Config.Target),
		zap.String("session_id", sessionID),
	)
	proc, err := l.Executor.StartCommand(pluginPath, args, nil)
	if err != nil {
		l.terminate(client, sessionID)
		return nil, fmt.Errorf("failed to start session-manager-plugin: %w", err)
	}

	return &pluginProcess{
		Process:   proc,
		sessionID: sessionID,
		terminate: func() { l.terminate(client, sessionID) },
	}, nil
}

func (l *PluginLauncher) terminate(client SSMAPI, sessionID string) {
	if sessionID == "" {
		return
	}
	_, err := client.TerminateSession(context.Background(), &ssm.TerminateSessionInput{
		SessionId: aws.String(sessionID),
	})
	if err != nil {
		l.Logger.Warn("failed to terminate SSM session", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func startSessionInput(cfg models.SessionConfig) *ssm.StartSessionInput {
	input := &ssm.StartSessionInput{
		Target: aws.String(cfg.Target),
		Parameters: map[string][]string{
			"portNumber":      {strconv.Itoa(int(cfg.RemotePort))},
			"localPortNumber": {strconv.Itoa(int(cfg.LocalPort))},
		},
	}
	if cfg.DocumentName != "" {
		input.DocumentName = aws.String(cfg.DocumentName)
	}
	return input
}

// pluginArgs is the positional argument list session-manager-plugin expects:
// session response, region, operation, profile, request and endpoint.
func pluginArgs(session *ssm.StartSessionOutput, input *ssm.StartSessionInput, region string) ([]string, error) {
	sessionJSON, err := json.Marshal(map[string]string{
		"SessionId":  aws.ToString(session.SessionId),
		"StreamUrl":  aws.ToString(session.StreamUrl),
		"TokenValue": aws.ToString(session.TokenValue),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session parameters: %w", err)
	}

	request := map[string]interface{}{
		"Target":     aws.ToString(input.Target),
		"Parameters": input.Parameters,
	}
	if input.DocumentName != nil {
		request["DocumentName"] = aws.ToString(input.DocumentName)
	}
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session request: %w", err)
	}

	return []string{
		string(sessionJSON),
		region,
		"StartSession",
		"",
		string(requestJSON),
		fmt.Sprintf("https://ssm.%s.amazonaws.com", region),
	}, nil
}

func pluginName() string {
	if customPath := os.Getenv("AWS_SESSION_MANAGER_PLUGIN_PATH"); customPath != "" {
		return customPath
	}
	if runtime.GOOS == "windows" {
		return "session-manager-plugin.exe"
	}
	return "session-manager-plugin"
}

// pluginProcess ends the SSM session when the plugin is killed.
type pluginProcess struct {
	common.Process
	sessionID string
	terminate func()
	once      sync.Once
}

func (p *pluginProcess) SessionID() string {
	return p.sessionID
}

func (p *pluginProcess) Kill() error {
	p.once.Do(p.terminate)
	return p.Process.Kill()
}
