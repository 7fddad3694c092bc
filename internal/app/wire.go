package app

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/config"
	"github.com/tatran0195/akaw/internal/identity"
	"github.com/tatran0195/akaw/internal/target"
	"github.com/tatran0195/akaw/internal/tunnel"
	"github.com/tatran0195/akaw/internal/vault"
	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
	generalutils "github.com/tatran0195/akaw/utils/general"
)

// New builds a Service backed by the real AWS CLI or SDK, the OS keyring and
// the local filesystem, as selected by cfg.
func New(cfg *config.Config, fs afero.Fs, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	executor := &common.RealCommandExecutor{}

	var provider identity.Provider
	switch cfg.IdentityBackend {
	case config.IdentityBackendSDK:
		provider = identity.NewSDKProvider(cfg.DefaultRegion, fs, logger.Named("identity"))
	default:
		provider = identity.NewCLIProvider(cfg.AWSCLIPath, executor, logger.Named("identity"))
	}

	var launcher tunnel.Launcher
	switch cfg.TunnelMode {
	case models.TunnelModePlugin:
		launcher = tunnel.NewPluginLauncher(executor, logger.Named("tunnel"))
	default:
		launcher = tunnel.NewCLILauncher(cfg.AWSCLIPath, executor, logger.Named("tunnel"))
	}

	return NewService(Dependencies{
		Fs:            fs,
		Paths:         cfg.Paths,
		Identity:      provider,
		Vault:         vault.NewKeyringVault(cfg.KeyringService),
		Launcher:      launcher,
		Ports:         tunnel.NewListenPortChecker(),
		Targets:       target.NewResolver(),
		CLI:           generalutils.NewGeneralUtilsManager(cfg.AWSCLIPath),
		RequireCLI:    cfg.IdentityBackend != config.IdentityBackendSDK || cfg.TunnelMode != models.TunnelModePlugin,
		TunnelMode:    cfg.TunnelMode,
		DefaultRegion: cfg.DefaultRegion,
		Logger:        logger,
	})
}
