package mfa

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_akaw "github.com/tatran0195/akaw/internal/mocks"
	mock_app "github.com/tatran0195/akaw/internal/mocks/app"
	"github.com/tatran0195/akaw/models"
)

func execute(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSetupCmd(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		mockSetup     func(*mock_app.MockServiceInterface)
		expectedError string
		wantOutput    string
	}{
		{
			name: "new device",
			args: []string{"dev"},
			mockSetup: func(s *mock_app.MockServiceInterface) {
				s.EXPECT().SetupMFA(gomock.Any(), "dev", "").
					Return(&models.MFASetupResult{Profile: "dev", Serial: "arn:aws:iam::1:mfa/alice"}, nil)
			},
			wantOutput: "MFA device arn:aws:iam::1:mfa/alice enabled for profile dev.",
		},
		{
			name: "import QR code",
			args: []string{"dev", "--import-qr", "/tmp/qr.png"},
			mockSetup: func(s *mock_app.MockServiceInterface) {
				s.EXPECT().SetupMFA(gomock.Any(), "dev", "/tmp/qr.png").
					Return(&models.MFASetupResult{Profile: "dev", Serial: "arn:aws:iam::1:mfa/alice", Imported: true}, nil)
			},
			wantOutput: "Imported MFA secret for profile dev",
		},
		{
			name: "service error",
			args: []string{"dev"},
			mockSetup: func(s *mock_app.MockServiceInterface) {
				s.EXPECT().SetupMFA(gomock.Any(), "dev", "").Return(nil, errors.New("AWS CLI not found"))
			},
			expectedError: "MFA setup failed: AWS CLI not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mock_app.NewMockServiceInterface(ctrl)
			tt.mockSetup(service)

			out, err := execute(SetupCmd(service), tt.args...)
			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantOutput)
		})
	}
}

func TestCodeCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_app.NewMockServiceInterface(ctrl)
	service.EXPECT().GenerateCode("dev").Return(&models.CodeResult{Code: "287082", TTL: 17}, nil)

	out, err := execute(CodeCmd(service), "dev")
	require.NoError(t, err)
	assert.Equal(t, "287082 (valid for 17s)\n", out)
}

func TestCodeCmd_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_app.NewMockServiceInterface(ctrl)
	service.EXPECT().GenerateCode("dev").Return(nil, errors.New("MFA secret not configured for profile"))

	_, err := execute(CodeCmd(service), "dev")
	assert.EqualError(t, err, "failed to generate code: MFA secret not configured for profile")
}

func TestRemoveCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mock_app.NewMockServiceInterface(ctrl)
	prompter := mock_akaw.NewMockPrompter(ctrl)
	prompter.EXPECT().Confirm("Remove the MFA secret for dev").Return(true, nil)
	service.EXPECT().RemoveMFA("dev").Return(nil)

	out, err := execute(RemoveCmd(MFADependencies{Service: service, Prompter: prompter}), "dev")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed MFA secret for profile dev.")
}

func TestNewMFACmd_Subcommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmd := NewMFACmd(MFADependencies{
		Service:  mock_app.NewMockServiceInterface(ctrl),
		Prompter: mock_akaw.NewMockPrompter(ctrl),
	})

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"setup", "code", "remove"}, names)
}
