package app

import (
	"context"

	"github.com/tatran0195/akaw/internal/tunnel"
	"github.com/tatran0195/akaw/models"
)

// ServiceInterface is what the CLI commands drive.
type ServiceInterface interface {
	ListProfiles(ctx context.Context) (*models.ProfileList, error)
	ProfileNames() ([]string, error)
	ShowConfig(profile string, overrides models.SessionOverrides) (*models.ConfigResponse, error)
	InitConfigs() (*models.ConfigResponse, error)
	CheckStatus(ctx context.Context, profile string) (*models.StatusReport, error)
	SetupMFA(ctx context.Context, profile, importQR string) (*models.MFASetupResult, error)
	Connect(ctx context.Context, profile string, overrides models.SessionOverrides) (*models.ConnectResult, *tunnel.Handle, error)
	GenerateCode(profile string) (*models.CodeResult, error)
	RemoveProfile(profile string) error
	RemoveMFA(profile string) error
	Tunnels() ([]models.TunnelSession, error)
	StopTunnel(profile string) error
	StopAllTunnels() ([]string, error)
}

// CLIChecker reports whether the AWS CLI can be run.
type CLIChecker interface {
	CheckAWSCLI() error
}
