package identity

import (
	"context"

	"github.com/tatran0195/akaw/models"
)

// Provider is the identity-provider boundary: caller identity, virtual MFA
// device management and session-token exchange. An empty profile means the
// default credential chain.
type Provider interface {
	GetCallerIdentity(ctx context.Context, profile string) (*models.CallerIdentity, error)
	CreateVirtualMFADevice(ctx context.Context, profile, deviceName, outfile string) (*models.VirtualMFADevice, error)
	EnableMFADevice(ctx context.Context, profile, username, serial, code1, code2 string) error
	ListMFADevices(ctx context.Context, profile, username string) ([]models.MFADevice, error)
	GetSessionToken(ctx context.Context, profile, serial, tokenCode string) (*models.SessionCredentials, error)
}
