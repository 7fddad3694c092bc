package profile

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

const profilePrefix = "profile "

// Sections in ~/.aws/config that are not profiles.
var nonProfilePrefixes = []string{"sso-session ", "services "}

type CallerIdentifier interface {
	GetCallerIdentity(ctx context.Context, profile string) (*models.CallerIdentity, error)
}

// Registry reads AWS CLI profiles from ~/.aws/config and ~/.aws/credentials.
// Files are parsed on every call; nothing is cached.
type Registry struct {
	Fs              afero.Fs
	ConfigPath      string
	CredentialsPath string
	Identity        CallerIdentifier
}

func NewRegistry(fs afero.Fs, configPath, credentialsPath string, identity CallerIdentifier) *Registry {
	return &Registry{
		Fs:              fs,
		ConfigPath:      configPath,
		CredentialsPath: credentialsPath,
		Identity:        identity,
	}
}

// ListProfiles returns config-file profiles in file order followed by
// profiles that only exist in the credentials file.
func (r *Registry) ListProfiles() ([]models.Profile, error) {
	exists, err := afero.Exists(r.Fs, r.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", r.ConfigPath, err)
	}
	if !exists {
		return nil, apperr.ErrConfigMissing
	}

	cfg, err := loadIni(r.Fs, r.ConfigPath)
	if err != nil {
		return nil, err
	}

	var profiles []models.Profile
	seen := make(map[string]bool)
	for _, section := range cfg.Sections() {
		name, ok := profileName(section.Name())
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		profiles = append(profiles, models.Profile{
			Name:   name,
			Region: section.Key("region").String(),
			Output: section.Key("output").String(),
		})
	}

	// The credentials file is optional and a broken one is ignored.
	if creds, err := loadIni(r.Fs, r.CredentialsPath); err == nil {
		for _, section := range creds.Sections() {
			name := section.Name()
			if name == ini.DefaultSection || seen[name] {
				continue
			}
			seen[name] = true
			profiles = append(profiles, models.Profile{Name: name})
		}
	}

	if len(profiles) == 0 {
		return nil, apperr.ErrNoProfiles
	}
	return profiles, nil
}

func (r *Registry) GetProfile(name string) (*models.Profile, error) {
	profiles, err := r.ListProfiles()
	if err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i], nil
		}
	}
	return nil, apperr.ProfileNotFound(name)
}

func (r *Registry) ProfileExists(name string) bool {
	_, err := r.GetProfile(name)
	return err == nil
}

func (r *Registry) ProfileNames() ([]string, error) {
	profiles, err := r.ListProfiles()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	return names, nil
}

// ResolveUsername returns the IAM user name of the profile's caller identity.
func (r *Registry) ResolveUsername(ctx context.Context, profile string) (string, error) {
	identity, err := r.Identity.GetCallerIdentity(ctx, profile)
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrIdentityUnavailable, "failed to get caller identity")
	}
	return UsernameFromARN(identity.Arn)
}

// UsernameFromARN returns the last path segment of an ARN's resource, e.g.
// "alice" for arn:aws:iam::123456789012:user/team/alice.
func UsernameFromARN(raw string) (string, error) {
	parsed, err := arn.Parse(raw)
	if err != nil {
		return "", apperr.Mark(err, apperr.ErrIdentityUnavailable, "cannot extract username from ARN")
	}
	resource := parsed.Resource
	username := resource[strings.LastIndex(resource, "/")+1:]
	if username == "" {
		return "", errors.Mark(errors.Newf("cannot extract username from ARN %q", raw), apperr.ErrIdentityUnavailable)
	}
	return username, nil
}

func profileName(section string) (string, bool) {
	if section == ini.DefaultSection {
		return "", false
	}
	for _, prefix := range nonProfilePrefixes {
		if strings.HasPrefix(section, prefix) {
			return "", false
		}
	}
	return strings.TrimPrefix(section, profilePrefix), true
}

func loadIni(fs afero.Fs, path string) (*ini.File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
