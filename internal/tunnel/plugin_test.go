package tunnel

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tatran0195/akaw/internal/apperr"
	mock_akaw "github.com/tatran0195/akaw/internal/mocks"
	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

type MockSSMAPI struct {
	mock.Mock
}

func (m *MockSSMAPI) StartSession(ctx context.Context, params *ssm.StartSessionInput, optFns ...func(*ssm.Options)) (*ssm.StartSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ssm.StartSessionOutput)
	return out, args.Error(1)
}

func (m *MockSSMAPI) TerminateSession(ctx context.Context, params *ssm.TerminateSessionInput, optFns ...func(*ssm.Options)) (*ssm.TerminateSessionOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*ssm.TerminateSessionOutput)
	return out, args.Error(1)
}

var pluginRequest = models.TunnelRequest{
	Profile:     "dev",
	Region:      "us-east-1",
	Credentials: &models.SessionCredentials{AccessKeyID: "ASIA1", SecretAccessKey: "secret", SessionToken: "tok"},
	Config:      models.SessionConfig{Target: "i-123", LocalPort: 13389, RemotePort: 3389, DocumentName: "AWS-StartPortForwardingSession"},
}

func newPluginLauncher(t *testing.T, api *MockSSMAPI) (*PluginLauncher, *mock_akaw.MockCommandExecutor, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	executor := mock_akaw.NewMockCommandExecutor(ctrl)
	launcher := NewPluginLauncher(executor, zaptest.NewLogger(t))
	launcher.Clients = func(ctx context.Context, creds *models.SessionCredentials, region string) (SSMAPI, error) {
		assert.Equal(t, "ASIA1", creds.AccessKeyID)
		assert.Equal(t, "us-east-1", region)
		return api, nil
	}
	return launcher, executor, ctrl
}

func TestPluginLauncher_Launch(t *testing.T) {
	t.Setenv("AWS_SESSION_MANAGER_PLUGIN_PATH", "")
	api := &MockSSMAPI{}
	launcher, executor, ctrl := newPluginLauncher(t, api)
	proc := mock_akaw.NewMockProcess(ctrl)

	api.On("StartSession", mock.Anything, &ssm.StartSessionInput{
		Target:       aws.String("i-123"),
		DocumentName: aws.String("AWS-StartPortForwardingSession"),
		Parameters: map[string][]string{
			"portNumber":      {"3389"},
			"localPortNumber": {"13389"},
		},
	}).Return(&ssm.StartSessionOutput{
		SessionId:  aws.String("dev-0abc"),
		StreamUrl:  aws.String("wss://ssmmessages.us-east-1.amazonaws.com/v1/data-channel/dev-0abc"),
		TokenValue: aws.String("token"),
	}, nil)
	api.On("TerminateSession", mock.Anything, &ssm.TerminateSessionInput{SessionId: aws.String("dev-0abc")}).
		Return(&ssm.TerminateSessionOutput{}, nil).Once()

	executor.EXPECT().LookPath("session-manager-plugin").Return("/usr/local/bin/session-manager-plugin", nil)
	executor.EXPECT().StartCommand("/usr/local/bin/session-manager-plugin", gomock.Any(), nil).
		DoAndReturn(func(name string, args []string, env map[string]string) (common.Process, error) {
			require.Len(t, args, 6)
			var session map[string]string
			require.NoError(t, json.Unmarshal([]byte(args[0]), &session))
			assert.Equal(t, "dev-0abc", session["SessionId"])
			assert.Equal(t, "us-east-1", args[1])
			assert.Equal(t, "StartSession", args[2])
			assert.JSONEq(t, `{"Target":"i-123","DocumentName":"AWS-StartPortForwardingSession","Parameters":{"portNumber":["3389"],"localPortNumber":["13389"]}}`, args[4])
			assert.Equal(t, "https://ssm.us-east-1.amazonaws.com", args[5])
			return proc, nil
		})
	proc.EXPECT().Kill().Return(nil).Times(2)

	got, err := launcher.Launch(context.Background(), pluginRequest)
	require.NoError(t, err)

	ident, ok := got.(SessionIdentifier)
	require.True(t, ok)
	assert.Equal(t, "dev-0abc", ident.SessionID())

	require.NoError(t, got.Kill())
	require.NoError(t, got.Kill())
	api.AssertExpectations(t)
}

func TestPluginLauncher_PluginMissing(t *testing.T) {
	t.Setenv("AWS_SESSION_MANAGER_PLUGIN_PATH", "")
	api := &MockSSMAPI{}
	launcher, executor, _ := newPluginLauncher(t, api)
	executor.EXPECT().LookPath("session-manager-plugin").Return("", errors.New("not found"))

	_, err := launcher.Launch(context.Background(), pluginRequest)
	assert.ErrorContains(t, err, "session-manager-plugin not found")
	api.AssertNotCalled(t, "StartSession", mock.Anything, mock.Anything)
}

func TestPluginLauncher_StartSessionFails(t *testing.T) {
	t.Setenv("AWS_SESSION_MANAGER_PLUGIN_PATH", "/opt/plugin")
	api := &MockSSMAPI{}
	launcher, executor, _ := newPluginLauncher(t, api)
	executor.EXPECT().LookPath("/opt/plugin").Return("/opt/plugin", nil)
	api.On("StartSession", mock.Anything, mock.Anything).Return(nil, errors.New("TargetNotConnected"))

	_, err := launcher.Launch(context.Background(), pluginRequest)
	var cliErr *apperr.IdentityCLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Contains(t, cliErr.Message, "TargetNotConnected")
}

func TestPluginLauncher_SpawnFailureTerminatesSession(t *testing.T) {
	t.Setenv("AWS_SESSION_MANAGER_PLUGIN_PATH", "")
	api := &MockSSMAPI{}
	launcher, executor, _ := newPluginLauncher(t, api)
	executor.EXPECT().LookPath(gomock.Any()).Return("/usr/local/bin/session-manager-plugin", nil)
	api.On("StartSession", mock.Anything, mock.Anything).Return(&ssm.StartSessionOutput{SessionId: aws.String("dev-0abc")}, nil)
	api.On("TerminateSession", mock.Anything, &ssm.TerminateSessionInput{SessionId: aws.String("dev-0abc")}).
		Return(&ssm.TerminateSessionOutput{}, nil).Once()
	executor.EXPECT().StartCommand(gomock.Any(), gomock.Any(), nil).Return(nil, errors.New("exec format error"))

	_, err := launcher.Launch(context.Background(), pluginRequest)
	assert.ErrorContains(t, err, "failed to start session-manager-plugin")
	api.AssertExpectations(t)
}

func TestPluginLauncher_RequiresRegion(t *testing.T) {
	launcher, _, _ := newPluginLauncher(t, &MockSSMAPI{})
	req := pluginRequest
	req.Region = ""

	_, err := launcher.Launch(context.Background(), req)
	assert.ErrorContains(t, err, "region is required")
}

func TestPluginLauncher_FallsBackToDefaultRegion(t *testing.T) {
	t.Setenv("AWS_SESSION_MANAGER_PLUGIN_PATH", "")
	api := &MockSSMAPI{}
	launcher, executor, _ := newPluginLauncher(t, api)
	executor.EXPECT().LookPath("session-manager-plugin").Return("/usr/local/bin/session-manager-plugin", nil)
	api.On("StartSession", mock.Anything, mock.Anything).Return(nil, errors.New("AccessDeniedException"))
	req := pluginRequest
	req.Region = ""
	req.DefaultRegion = "us-east-1"

	_, err := launcher.Launch(context.Background(), req)
	assert.ErrorContains(t, err, "SSM port forwarding failed")
	api.AssertExpectations(t)
}
