package identity

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

// CLIProvider talks to IAM and STS through the aws CLI.
type CLIProvider struct {
	CLIPath  string
	Executor common.CommandExecutor
	Logger   *zap.Logger
}

func NewCLIProvider(cliPath string, executor common.CommandExecutor, logger *zap.Logger) *CLIProvider {
	if cliPath == "" {
		cliPath = "aws"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIProvider{CLIPath: cliPath, Executor: executor, Logger: logger}
}

func (p *CLIProvider) GetCallerIdentity(ctx context.Context, profile string) (*models.CallerIdentity, error) {
	out, err := p.run(ctx, profile, "sts", "get-caller-identity")
	if err != nil {
		return nil, err
	}
	if out.Arn == "" {
		return nil, unexpected("no Arn in identity response")
	}
	return &models.CallerIdentity{UserID: out.UserID, Account: out.Account, Arn: out.Arn}, nil
}

func (p *CLIProvider) CreateVirtualMFADevice(ctx context.Context, profile, deviceName, outfile string) (*models.VirtualMFADevice, error) {
	out, err := p.run(ctx, profile,
		"iam", "create-virtual-mfa-device",
		"--virtual-mfa-device-name", deviceName,
		"--outfile", outfile,
		"--bootstrap-method", "QRCodePNG",
	)
	if err != nil {
		return nil, err
	}
	if out.VirtualMFADevice == nil || out.VirtualMFADevice.SerialNumber == "" {
		return nil, unexpected("no virtual MFA device in response")
	}
	return out.VirtualMFADevice, nil
}

func (p *CLIProvider) EnableMFADevice(ctx context.Context, profile, username, serial, code1, code2 string) error {
	_, err := p.exec(ctx, profile,
		"iam", "enable-mfa-device",
		"--user-name", username,
		"--serial-number", serial,
		"--authentication-code1", code1,
		"--authentication-code2", code2,
	)
	return err
}

// ListMFADevices returns an empty list when the response has no MFADevices.
func (p *CLIProvider) ListMFADevices(ctx context.Context, profile, username string) ([]models.MFADevice, error) {
	out, err := p.run(ctx, profile, "iam", "list-mfa-devices", "--user-name", username)
	if err != nil {
		return nil, err
	}
	if out.MFADevices == nil {
		return []models.MFADevice{}, nil
	}
	return *out.MFADevices, nil
}

func (p *CLIProvider) GetSessionToken(ctx context.Context, profile, serial, tokenCode string) (*models.SessionCredentials, error) {
	out, err := p.run(ctx, profile,
		"sts", "get-session-token",
		"--serial-number", serial,
		"--token-code", tokenCode,
	)
	if err != nil {
		return nil, err
	}
	if out.Credentials == nil {
		return nil, unexpected("no credentials in response")
	}
	return &models.SessionCredentials{
		AccessKeyID:     out.Credentials.AccessKeyID,
		SecretAccessKey: out.Credentials.SecretAccessKey,
		SessionToken:    out.Credentials.SessionToken,
		Expiration:      out.Credentials.Expiration.UTC(),
	}, nil
}

func (p *CLIProvider) run(ctx context.Context, profile string, args ...string) (*models.CLIOutput, error) {
	raw, err := p.exec(ctx, profile, args...)
	if err != nil {
		return nil, err
	}

	var out models.CLIOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, apperr.Mark(err, apperr.ErrUnexpectedResponse, "failed to parse aws CLI output")
	}
	return &out, nil
}

func (p *CLIProvider) exec(ctx context.Context, profile string, args ...string) ([]byte, error) {
	args = CLIArgs(profile, args...)
	p.Logger.Debug("running aws CLI", zap.String("service", args[0]), zap.String("operation", args[1]), zap.String("profile", profile))

	raw, err := p.Executor.RunCommand(ctx, p.CLIPath, args, nil)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &apperr.IdentityCLIError{Message: strings.TrimSpace(string(exitErr.Stderr))}
		}
		return nil, &apperr.IdentityCLIError{Message: err.Error()}
	}
	return raw, nil
}

// CLIArgs appends --profile (when set) and --output json to an aws CLI call.
func CLIArgs(profile string, args ...string) []string {
	full := make([]string, 0, len(args)+4)
	full = append(full, args...)
	if profile != "" {
		full = append(full, "--profile", profile)
	}
	return append(full, "--output", "json")
}

func unexpected(msg string) error {
	return errors.Mark(errors.New(msg), apperr.ErrUnexpectedResponse)
}
