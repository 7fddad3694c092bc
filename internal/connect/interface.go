package connect

import (
	"context"

	"github.com/tatran0195/akaw/models"
)

type ProfileResolver interface {
	GetProfile(name string) (*models.Profile, error)
	ResolveUsername(ctx context.Context, profile string) (string, error)
}

type SerialFetcher interface {
	FetchSerial(ctx context.Context, username, profile string) (string, error)
}

type ConfigResolver interface {
	Resolve(profile string, request models.SessionOverrides) (models.SessionConfig, error)
}

type CredentialCache interface {
	MFASecret(profile string) (string, error)
	CachedCredentials(profile string) (*models.SessionCredentials, error)
	CacheCredentials(profile string, creds *models.SessionCredentials) error
}

type CodeGenerator interface {
	Generate(secret string) (string, error)
}

type TokenExchanger interface {
	GetSessionToken(ctx context.Context, profile, serial, tokenCode string) (*models.SessionCredentials, error)
}

type TargetResolver interface {
	Resolve(ctx context.Context, creds *models.SessionCredentials, region, target string) (string, error)
}
