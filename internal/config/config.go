package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tatran0195/akaw/models"
)

const (
	IdentityBackendCLI = "cli"
	IdentityBackendSDK = "sdk"

	configFileName = "config.yaml"
	envPrefix      = "AKAW"
)

// Config holds the akaw application settings from ~/.akaw/config.yaml.
// Every key can be overridden with an AKAW_<KEY> environment variable.
type Config struct {
	AWSCLIPath      string `mapstructure:"aws_cli_path" yaml:"aws_cli_path"`
	IdentityBackend string `mapstructure:"identity_backend" yaml:"identity_backend"`
	TunnelMode      string `mapstructure:"tunnel_mode" yaml:"tunnel_mode"`
	KeyringService  string `mapstructure:"keyring_service" yaml:"keyring_service"`
	LogLevel        string `mapstructure:"log_level" yaml:"log_level"`
	DefaultRegion   string `mapstructure:"default_region" yaml:"default_region"`

	Paths Paths `mapstructure:"-" yaml:"-"`
}

var defaults = map[string]string{
	"aws_cli_path":     "aws",
	"identity_backend": IdentityBackendCLI,
	"tunnel_mode":      models.TunnelModeCLI,
	"keyring_service":  "akaw",
	"log_level":        "info",
	"default_region":   "us-east-1",
}

// Load reads the config file under the akaw home directory. A missing file is
// not an error; defaults and environment overrides still apply.
func Load(fs afero.Fs, homeDir string) (*Config, error) {
	paths := NewPaths(homeDir)

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(paths.AppConfig)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(fs, paths.AppConfig) {
			return nil, fmt.Errorf("failed to read config file %s: %w", paths.AppConfig, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Paths = paths

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.IdentityBackend {
	case IdentityBackendCLI, IdentityBackendSDK:
	default:
		return fmt.Errorf("invalid identity_backend %q: must be %q or %q", c.IdentityBackend, IdentityBackendCLI, IdentityBackendSDK)
	}
	switch c.TunnelMode {
	case models.TunnelModeCLI, models.TunnelModePlugin:
	default:
		return fmt.Errorf("invalid tunnel_mode %q: must be %q or %q", c.TunnelMode, models.TunnelModeCLI, models.TunnelModePlugin)
	}
	if c.KeyringService == "" {
		return fmt.Errorf("keyring_service must not be empty")
	}
	return nil
}

// Save writes the config back to ~/.akaw/config.yaml.
func (c *Config) Save(fs afero.Fs) error {
	if err := fs.MkdirAll(c.Paths.AppDir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := afero.WriteFile(fs, c.Paths.AppConfig, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// WriteDefaults seeds the config file with the built-in defaults when none
// exists yet, so there is a file to edit. Environment overrides are not
// persisted. It reports whether a file was written.
func WriteDefaults(fs afero.Fs, paths Paths) (bool, error) {
	if !isNotExist(fs, paths.AppConfig) {
		return false, nil
	}
	cfg := &Config{
		AWSCLIPath:      defaults["aws_cli_path"],
		IdentityBackend: defaults["identity_backend"],
		TunnelMode:      defaults["tunnel_mode"],
		KeyringService:  defaults["keyring_service"],
		LogLevel:        defaults["log_level"],
		DefaultRegion:   defaults["default_region"],
		Paths:           paths,
	}
	if err := cfg.Save(fs); err != nil {
		return false, err
	}
	return true, nil
}

func isNotExist(fs afero.Fs, path string) bool {
	_, err := fs.Stat(path)
	return os.IsNotExist(err)
}

// Paths are the files akaw reads and writes, all derived from one home directory.
type Paths struct {
	Home           string
	AWSConfig      string
	AWSCredentials string
	Sessions       string
	AppDir         string
	AppConfig      string
	LogFile        string
	TunnelState    string
}

func NewPaths(home string) Paths {
	awsDir := filepath.Join(home, ".aws")
	appDir := filepath.Join(home, ".akaw")
	return Paths{
		Home:           home,
		AWSConfig:      filepath.Join(awsDir, "config"),
		AWSCredentials: filepath.Join(awsDir, "credentials"),
		Sessions:       filepath.Join(awsDir, "sessions"),
		AppDir:         appDir,
		AppConfig:      filepath.Join(appDir, configFileName),
		LogFile:        filepath.Join(appDir, "logs", "akaw.log"),
		TunnelState:    filepath.Join(appDir, "tunnels.yaml"),
	}
}
