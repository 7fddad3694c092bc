package identity

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	cerrors "github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tatran0195/akaw/internal/apperr"
	mock_akaw "github.com/tatran0195/akaw/internal/mocks"
	"github.com/tatran0195/akaw/models"
)

func newTestCLIProvider(t *testing.T) (*CLIProvider, *mock_akaw.MockCommandExecutor) {
	ctrl := gomock.NewController(t)
	executor := mock_akaw.NewMockCommandExecutor(ctrl)
	return NewCLIProvider("aws", executor, zaptest.NewLogger(t)), executor
}

func TestCLIArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"sts", "get-caller-identity", "--profile", "dev", "--output", "json"},
		CLIArgs("dev", "sts", "get-caller-identity"))
	assert.Equal(t,
		[]string{"sts", "get-caller-identity", "--output", "json"},
		CLIArgs("", "sts", "get-caller-identity"))
}

func TestCLIProvider_GetCallerIdentity(t *testing.T) {
	tests := []struct {
		name     string
		output   []byte
		runErr   error
		want     *models.CallerIdentity
		wantKind error
		wantCLI  string
	}{
		{
			name:   "success",
			output: []byte(`{"UserId":"AIDA123","Account":"123456789012","Arn":"arn:aws:iam::123456789012:user/alice"}`),
			want:   &models.CallerIdentity{UserID: "AIDA123", Account: "123456789012", Arn: "arn:aws:iam::123456789012:user/alice"},
		},
		{
			name:     "missing arn",
			output:   []byte(`{"Account":"123456789012"}`),
			wantKind: apperr.ErrUnexpectedResponse,
		},
		{
			name:     "not json",
			output:   []byte(`oops`),
			wantKind: apperr.ErrUnexpectedResponse,
		},
		{
			name:    "non-zero exit",
			runErr:  &exec.ExitError{Stderr: []byte("\nThe config profile (dev) could not be found\n")},
			wantCLI: "The config profile (dev) could not be found",
		},
		{
			name:    "binary missing",
			runErr:  errors.New(`exec: "aws": executable file not found in $PATH`),
			wantCLI: `exec: "aws": executable file not found in $PATH`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, executor := newTestCLIProvider(t)
			executor.EXPECT().
				RunCommand(gomock.Any(), "aws", []string{"sts", "get-caller-identity", "--profile", "dev", "--output", "json"}, nil).
				Return(tt.output, tt.runErr)

			got, err := provider.GetCallerIdentity(context.Background(), "dev")

			switch {
			case tt.wantCLI != "":
				var cliErr *apperr.IdentityCLIError
				require.True(t, errors.As(err, &cliErr))
				assert.Equal(t, tt.wantCLI, cliErr.Message)
			case tt.wantKind != nil:
				assert.True(t, cerrors.Is(err, tt.wantKind))
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCLIProvider_CreateVirtualMFADevice(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	executor.EXPECT().
		RunCommand(gomock.Any(), "aws", []string{
			"iam", "create-virtual-mfa-device",
			"--virtual-mfa-device-name", "alice",
			"--outfile", "/tmp/qr.png",
			"--bootstrap-method", "QRCodePNG",
			"--profile", "dev", "--output", "json",
		}, nil).
		Return([]byte(`{"VirtualMFADevice":{"SerialNumber":"arn:aws:iam::123456789012:mfa/alice"}}`), nil)

	device, err := provider.CreateVirtualMFADevice(context.Background(), "dev", "alice", "/tmp/qr.png")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:mfa/alice", device.SerialNumber)
}

func TestCLIProvider_CreateVirtualMFADevice_NoDevice(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	executor.EXPECT().RunCommand(gomock.Any(), "aws", gomock.Any(), nil).Return([]byte(`{}`), nil)

	_, err := provider.CreateVirtualMFADevice(context.Background(), "dev", "alice", "/tmp/qr.png")
	assert.True(t, cerrors.Is(err, apperr.ErrUnexpectedResponse))
}

func TestCLIProvider_EnableMFADevice(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	executor.EXPECT().
		RunCommand(gomock.Any(), "aws", []string{
			"iam", "enable-mfa-device",
			"--user-name", "alice",
			"--serial-number", "arn:aws:iam::123456789012:mfa/alice",
			"--authentication-code1", "111111",
			"--authentication-code2", "222222",
			"--profile", "dev", "--output", "json",
		}, nil).
		Return([]byte(""), nil)

	err := provider.EnableMFADevice(context.Background(), "dev", "alice", "arn:aws:iam::123456789012:mfa/alice", "111111", "222222")
	assert.NoError(t, err)
}

func TestCLIProvider_ListMFADevices(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	gomock.InOrder(
		executor.EXPECT().
			RunCommand(gomock.Any(), "aws", []string{"iam", "list-mfa-devices", "--user-name", "alice", "--profile", "dev", "--output", "json"}, nil).
			Return([]byte(`{"MFADevices":[{"UserName":"alice","SerialNumber":"arn:aws:iam::123456789012:mfa/alice","EnableDate":"2024-05-01T10:00:00Z"}]}`), nil),
		executor.EXPECT().
			RunCommand(gomock.Any(), "aws", gomock.Any(), nil).
			Return([]byte(`{}`), nil),
	)

	devices, err := provider.ListMFADevices(context.Background(), "dev", "alice")
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "arn:aws:iam::123456789012:mfa/alice", devices[0].SerialNumber)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), devices[0].EnableDate)

	devices, err = provider.ListMFADevices(context.Background(), "dev", "alice")
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestCLIProvider_GetSessionToken(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	executor.EXPECT().
		RunCommand(gomock.Any(), "aws", []string{
			"sts", "get-session-token",
			"--serial-number", "arn:aws:iam::123456789012:mfa/alice",
			"--token-code", "123456",
			"--profile", "dev", "--output", "json",
		}, nil).
		Return([]byte(`{"Credentials":{"AccessKeyId":"ASIA1","SecretAccessKey":"s3cr3t","SessionToken":"tok","Expiration":"2025-03-01T12:00:00+00:00"}}`), nil)

	creds, err := provider.GetSessionToken(context.Background(), "dev", "arn:aws:iam::123456789012:mfa/alice", "123456")
	require.NoError(t, err)
	assert.Equal(t, "ASIA1", creds.AccessKeyID)
	assert.Equal(t, "s3cr3t", creds.SecretAccessKey)
	assert.Equal(t, "tok", creds.SessionToken)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), creds.Expiration)
}

func TestCLIProvider_GetSessionToken_NoCredentials(t *testing.T) {
	provider, executor := newTestCLIProvider(t)
	executor.EXPECT().RunCommand(gomock.Any(), "aws", gomock.Any(), nil).Return([]byte(`{"Arn":"x"}`), nil)

	_, err := provider.GetSessionToken(context.Background(), "dev", "serial", "123456")
	assert.True(t, cerrors.Is(err, apperr.ErrUnexpectedResponse))
}
