package profile

import (
	"context"
	"errors"
	"testing"

	cerrors "github.com/cockroachdb/errors"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatran0195/akaw/internal/apperr"
	mock_akaw "github.com/tatran0195/akaw/internal/mocks"
	"github.com/tatran0195/akaw/models"
)

const (
	configPath      = "/home/user/.aws/config"
	credentialsPath = "/home/user/.aws/credentials"
)

const sampleConfig = `[default]
region = us-east-1
output = json

[profile dev]
region = eu-west-1

[sso-session corp]
sso_region = us-east-1

[profile prod]
output = table
`

const sampleCredentials = `[default]
aws_access_key_id = AKIA1

[legacy]
aws_access_key_id = AKIA2

[dev]
aws_access_key_id = AKIA3
`

func newRegistry(t *testing.T, config, credentials string) (*Registry, *mock_akaw.MockProvider) {
	fs := afero.NewMemMapFs()
	if config != "" {
		require.NoError(t, afero.WriteFile(fs, configPath, []byte(config), 0o600))
	}
	if credentials != "" {
		require.NoError(t, afero.WriteFile(fs, credentialsPath, []byte(credentials), 0o600))
	}
	provider := mock_akaw.NewMockProvider(gomock.NewController(t))
	return NewRegistry(fs, configPath, credentialsPath, provider), provider
}

func TestListProfiles(t *testing.T) {
	registry, _ := newRegistry(t, sampleConfig, sampleCredentials)

	profiles, err := registry.ListProfiles()
	require.NoError(t, err)
	assert.Equal(t, []models.Profile{
		{Name: "default", Region: "us-east-1", Output: "json"},
		{Name: "dev", Region: "eu-west-1"},
		{Name: "prod", Output: "table"},
		{Name: "legacy"},
	}, profiles)
}

func TestListProfiles_Errors(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		credentials string
		want        error
	}{
		{name: "no config file", credentials: sampleCredentials, want: apperr.ErrConfigMissing},
		{name: "config without profiles", config: "# empty\n", want: apperr.ErrNoProfiles},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, _ := newRegistry(t, tt.config, tt.credentials)
			_, err := registry.ListProfiles()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListProfiles_CredentialsOnlyAddsToConfig(t *testing.T) {
	registry, _ := newRegistry(t, "# no sections\n", "[ci]\naws_access_key_id = AKIA\n")

	names, err := registry.ProfileNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"ci"}, names)
}

func TestGetProfile(t *testing.T) {
	registry, _ := newRegistry(t, sampleConfig, "")

	p, err := registry.GetProfile("dev")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", p.Region)

	_, err = registry.GetProfile("missing")
	var notFound *apperr.ProfileNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "missing", notFound.Name)

	assert.True(t, registry.ProfileExists("prod"))
	assert.False(t, registry.ProfileExists("corp"))
}

func TestResolveUsername(t *testing.T) {
	registry, provider := newRegistry(t, sampleConfig, "")
	provider.EXPECT().GetCallerIdentity(gomock.Any(), "dev").Return(&models.CallerIdentity{
		Arn: "arn:aws:iam::123456789012:user/platform/alice",
	}, nil)

	username, err := registry.ResolveUsername(context.Background(), "dev")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestResolveUsername_IdentityFailure(t *testing.T) {
	registry, provider := newRegistry(t, sampleConfig, "")
	provider.EXPECT().GetCallerIdentity(gomock.Any(), "dev").Return(nil, &apperr.IdentityCLIError{Message: "expired"})

	_, err := registry.ResolveUsername(context.Background(), "dev")
	assert.True(t, cerrors.Is(err, apperr.ErrIdentityUnavailable))
	assert.ErrorContains(t, err, "expired")
}

func TestUsernameFromARN(t *testing.T) {
	tests := []struct {
		arn     string
		want    string
		wantErr bool
	}{
		{arn: "arn:aws:iam::123456789012:user/alice", want: "alice"},
		{arn: "arn:aws:sts::123456789012:assumed-role/Admin/bob", want: "bob"},
		{arn: "arn:aws:iam::123456789012:root", want: "root"},
		{arn: "not-an-arn", wantErr: true},
		{arn: "arn:aws:iam::123456789012:user/", wantErr: true},
	}
	for _, tt := range tests {
		got, err := UsernameFromARN(tt.arn)
		if tt.wantErr {
			assert.True(t, cerrors.Is(err, apperr.ErrIdentityUnavailable), tt.arn)
			continue
		}
		require.NoError(t, err, tt.arn)
		assert.Equal(t, tt.want, got)
	}
}
