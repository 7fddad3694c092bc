package app

import (
	"context"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/internal/config"
	"github.com/tatran0195/akaw/internal/connect"
	"github.com/tatran0195/akaw/internal/identity"
	"github.com/tatran0195/akaw/internal/mfa"
	"github.com/tatran0195/akaw/internal/profile"
	"github.com/tatran0195/akaw/internal/sessionconfig"
	"github.com/tatran0195/akaw/internal/totp"
	"github.com/tatran0195/akaw/internal/tunnel"
	"github.com/tatran0195/akaw/internal/vault"
	"github.com/tatran0195/akaw/models"
)

// Dependencies are the outer boundaries a Service is built on. Targets,
// Processes and Clock are optional.
type Dependencies struct {
	Fs            afero.Fs
	Paths         config.Paths
	Identity      identity.Provider
	Vault         vault.Vault
	Launcher      tunnel.Launcher
	Ports         tunnel.PortChecker
	Targets       connect.TargetResolver
	Processes     tunnel.ProcessController
	CLI           CLIChecker
	RequireCLI    bool
	TunnelMode    string
	DefaultRegion string
	Clock         func() time.Time
	Logger        *zap.Logger
}

// Service implements the akaw operations on top of the profile files, the
// secret vault and the identity and tunnel boundaries.
type Service struct {
	Profiles       *profile.Registry
	Secrets        *vault.CredentialStore
	Codes          *totp.Engine
	Enroller       *mfa.Enroller
	Sessions       *sessionconfig.Store
	Orchestrator   *connect.Orchestrator
	TunnelRegistry *tunnel.Registry
	Identity       identity.Provider
	CLI            CLIChecker
	RequireCLI     bool
	Logger         *zap.Logger
}

var _ ServiceInterface = (*Service)(nil)

func NewService(deps Dependencies) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	codes := totp.NewEngineWithClock(clock)
	secrets := vault.NewCredentialStore(deps.Vault)
	profiles := profile.NewRegistry(deps.Fs, deps.Paths.AWSConfig, deps.Paths.AWSCredentials, deps.Identity)
	enroller := mfa.NewEnroller(deps.Identity, codes, deps.Fs, logger.Named("mfa"))
	sessions := sessionconfig.NewStore(deps.Fs, deps.Paths.Sessions)

	registry := tunnel.NewRegistry(deps.Fs, deps.Paths.TunnelState, logger.Named("tunnels"))
	if deps.Processes != nil {
		registry.Processes = deps.Processes
	}

	opts := []connect.Option{connect.WithClock(clock)}
	if deps.Targets != nil {
		opts = append(opts, connect.WithTargetResolver(deps.Targets))
	}
	orchestrator := connect.New(
		profiles, enroller, sessions, secrets, codes, deps.Identity,
		deps.Ports, deps.Launcher, registry,
		deps.TunnelMode, deps.DefaultRegion, logger.Named("connect"),
		opts...,
	)

	return &Service{
		Profiles:       profiles,
		Secrets:        secrets,
		Codes:          codes,
		Enroller:       enroller,
		Sessions:       sessions,
		Orchestrator:   orchestrator,
		TunnelRegistry: registry,
		Identity:       deps.Identity,
		CLI:            deps.CLI,
		RequireCLI:     deps.RequireCLI,
		Logger:         logger,
	}
}

// ListProfiles lists every AWS profile with its local MFA and tunnel config
// state. The MFA serial is only looked up for profiles with a stored secret,
// and a failed lookup leaves it empty.
func (s *Service) ListProfiles(ctx context.Context) (*models.ProfileList, error) {
	profiles, err := s.Profiles.ListProfiles()
	if err != nil {
		return nil, err
	}
	configured, err := s.Sessions.ListConfigured()
	if err != nil {
		return nil, err
	}
	hasConfig := make(map[string]bool, len(configured))
	for _, name := range configured {
		hasConfig[name] = true
	}

	list := &models.ProfileList{
		Profiles:          make([]models.ProfileInfo, 0, len(profiles)),
		HasConfigurations: len(configured) > 0,
	}
	for _, p := range profiles {
		info := models.ProfileInfo{
			Name:      p.Name,
			Region:    p.Region,
			HasMFA:    s.Secrets.HasMFASecret(p.Name),
			HasConfig: hasConfig[p.Name],
		}
		if info.HasMFA {
			info.MFASerial = s.lookupSerial(ctx, p.Name)
		}
		list.Profiles = append(list.Profiles, info)
	}
	return list, nil
}

func (s *Service) ProfileNames() ([]string, error) {
	return s.Profiles.ProfileNames()
}

// ShowConfig returns the persisted tunnel config of profile, writing the
// supplied overrides first when there are any.
func (s *Service) ShowConfig(profile string, overrides models.SessionOverrides) (*models.ConfigResponse, error) {
	if err := s.requireProfile(profile); err != nil {
		return nil, err
	}

	updated := !overrides.IsEmpty()
	if updated {
		if err := s.Sessions.Update(profile, overrides); err != nil {
			return nil, err
		}
		s.Logger.Info("updated tunnel config", zap.String("profile", profile))
	}

	persisted, err := s.Sessions.Load(profile)
	if err != nil {
		return nil, err
	}

	resp := &models.ConfigResponse{
		Profile:    profile,
		ConfigPath: s.Sessions.Path,
		Updated:    updated,
	}
	if persisted != nil {
		cfg := sessionconfig.Effective(*persisted)
		resp.Config = &cfg
	}
	return resp, nil
}

// InitConfigs writes a sessions file with an empty section per profile.
func (s *Service) InitConfigs() (*models.ConfigResponse, error) {
	names, err := s.Profiles.ProfileNames()
	if err != nil {
		return nil, err
	}
	if err := s.Sessions.CreateFromProfiles(names); err != nil {
		return nil, err
	}
	return &models.ConfigResponse{ConfigPath: s.Sessions.Path, Updated: true}, nil
}

// CheckStatus reports the MFA state of a profile. An unavailable identity
// is reported as absent, not as an error.
func (s *Service) CheckStatus(ctx context.Context, name string) (*models.StatusReport, error) {
	if err := s.requireProfile(name); err != nil {
		return nil, err
	}

	report := &models.StatusReport{
		Profile:      name,
		HasMFASecret: s.Secrets.HasMFASecret(name),
	}

	ident, err := s.Identity.GetCallerIdentity(ctx, name)
	if err != nil {
		s.Logger.Debug("caller identity unavailable", zap.String("profile", name), zap.Error(err))
		return report, nil
	}

	username, err := profile.UsernameFromARN(ident.Arn)
	if err != nil {
		username = ident.Arn
	}
	report.Identity = &models.IdentityInfo{
		Account:  ident.Account,
		Username: username,
		Arn:      ident.Arn,
	}
	if serial, err := s.Enroller.FetchSerial(ctx, username, name); err == nil {
		report.MFADevice = serial
	}
	return report, nil
}

// SetupMFA stores an MFA secret for profile. With importQR set the secret is
// read from an existing QR image and the device must already exist in IAM;
// otherwise a new virtual device is created and enabled.
func (s *Service) SetupMFA(ctx context.Context, profile, importQR string) (*models.MFASetupResult, error) {
	if err := s.checkCLI(); err != nil {
		return nil, err
	}
	if err := s.requireProfile(profile); err != nil {
		return nil, err
	}

	username, err := s.Profiles.ResolveUsername(ctx, profile)
	if err != nil {
		return nil, err
	}

	var serial, secret string
	if importQR != "" {
		if secret, err = s.Enroller.ImportQRCode(importQR); err != nil {
			return nil, err
		}
		if serial, err = s.Enroller.FetchSerial(ctx, username, profile); err != nil {
			return nil, err
		}
	} else {
		if serial, secret, err = s.Enroller.SetupDevice(ctx, username, profile); err != nil {
			return nil, err
		}
	}

	if err := s.Secrets.SetMFASecret(profile, secret); err != nil {
		return nil, err
	}
	s.Logger.Info("stored MFA secret", zap.String("profile", profile), zap.String("serial", serial), zap.Bool("imported", importQR != ""))

	return &models.MFASetupResult{Profile: profile, Serial: serial, Imported: importQR != ""}, nil
}

func (s *Service) Connect(ctx context.Context, profile string, overrides models.SessionOverrides) (*models.ConnectResult, *tunnel.Handle, error) {
	if err := s.checkCLI(); err != nil {
		return nil, nil, err
	}
	if err := s.requireProfile(profile); err != nil {
		return nil, nil, err
	}
	return s.Orchestrator.Connect(ctx, profile, overrides)
}

func (s *Service) GenerateCode(profile string) (*models.CodeResult, error) {
	if err := s.requireProfile(profile); err != nil {
		return nil, err
	}
	secret, err := s.Secrets.MFASecret(profile)
	if err != nil {
		return nil, err
	}
	code, err := s.Codes.Generate(secret)
	if err != nil {
		return nil, err
	}
	return &models.CodeResult{Code: code, TTL: s.Codes.TimeRemaining(secret)}, nil
}

// RemoveProfile deletes everything akaw stored for profile. The AWS profile
// itself is left alone.
func (s *Service) RemoveProfile(profile string) error {
	if err := s.RemoveMFA(profile); err != nil {
		return err
	}
	return s.Sessions.Remove(profile)
}

// RemoveMFA deletes the stored secret. Cached credentials go too, best effort.
func (s *Service) RemoveMFA(profile string) error {
	if err := s.requireProfile(profile); err != nil {
		return err
	}
	if err := s.Secrets.DeleteMFASecret(profile); err != nil {
		return err
	}
	if err := s.Secrets.DeleteCachedCredentials(profile); err != nil {
		s.Logger.Warn("failed to delete cached credentials", zap.String("profile", profile), zap.Error(err))
	}
	return nil
}

// Tunnels drops entries whose process is gone and lists the rest.
func (s *Service) Tunnels() ([]models.TunnelSession, error) {
	pruned, err := s.TunnelRegistry.Prune()
	if err != nil {
		return nil, err
	}
	if len(pruned) > 0 {
		s.Logger.Debug("pruned dead tunnels", zap.Strings("profiles", pruned))
	}
	return s.TunnelRegistry.List()
}

func (s *Service) StopTunnel(profile string) error {
	return s.TunnelRegistry.Stop(profile)
}

func (s *Service) StopAllTunnels() ([]string, error) {
	return s.TunnelRegistry.StopAll()
}

func (s *Service) requireProfile(name string) error {
	if !s.Profiles.ProfileExists(name) {
		return apperr.ProfileNotFound(name)
	}
	return nil
}

func (s *Service) checkCLI() error {
	if !s.RequireCLI || s.CLI == nil {
		return nil
	}
	return s.CLI.CheckAWSCLI()
}

func (s *Service) lookupSerial(ctx context.Context, profile string) string {
	username, err := s.Profiles.ResolveUsername(ctx, profile)
	if err != nil {
		s.Logger.Debug("username lookup failed", zap.String("profile", profile), zap.Error(err))
		return ""
	}
	serial, err := s.Enroller.FetchSerial(ctx, username, profile)
	if err != nil {
		s.Logger.Debug("MFA serial lookup failed", zap.String("profile", profile), zap.Error(err))
		return ""
	}
	return serial
}
