package vault

import (
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

const (
	mfaSecretPrefix          = "mfa_secret_"
	sessionCredentialsPrefix = "session_credentials_"
)

func MFASecretKey(profile string) string {
	return mfaSecretPrefix + profile
}

func SessionCredentialsKey(profile string) string {
	return sessionCredentialsPrefix + profile
}

// CredentialStore keeps the per-profile MFA secret and the cached session
// credentials in a Vault.
type CredentialStore struct {
	vault Vault
}

func NewCredentialStore(v Vault) *CredentialStore {
	return &CredentialStore{vault: v}
}

func (s *CredentialStore) MFASecret(profile string) (string, error) {
	secret, err := s.vault.Get(MFASecretKey(profile))
	if errors.Is(err, ErrNotFound) {
		return "", errors.Mark(errors.Newf("MFA secret not configured for profile %s", profile), apperr.ErrSecretNotConfigured)
	}
	if err != nil {
		return "", vaultError(err, "read MFA secret")
	}
	return secret, nil
}

func (s *CredentialStore) SetMFASecret(profile, secret string) error {
	if err := s.vault.Set(MFASecretKey(profile), secret); err != nil {
		return vaultError(err, "store MFA secret")
	}
	return nil
}

// DeleteMFASecret removes the secret. A missing secret is reported as
// ErrSecretNotConfigured.
func (s *CredentialStore) DeleteMFASecret(profile string) error {
	err := s.vault.Delete(MFASecretKey(profile))
	if errors.Is(err, ErrNotFound) {
		return errors.Mark(errors.Newf("MFA secret not configured for profile %s", profile), apperr.ErrSecretNotConfigured)
	}
	if err != nil {
		return vaultError(err, "delete MFA secret")
	}
	return nil
}

func (s *CredentialStore) HasMFASecret(profile string) bool {
	_, err := s.vault.Get(MFASecretKey(profile))
	return err == nil
}

// CachedCredentials returns the cached session credentials, or nil when none
// are stored. Validity is left to the caller.
func (s *CredentialStore) CachedCredentials(profile string) (*models.SessionCredentials, error) {
	raw, err := s.vault.Get(SessionCredentialsKey(profile))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, vaultError(err, "read cached credentials")
	}

	var creds models.SessionCredentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, vaultError(err, "decode cached credentials")
	}
	return &creds, nil
}

func (s *CredentialStore) CacheCredentials(profile string, creds *models.SessionCredentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return vaultError(err, "encode credentials")
	}
	if err := s.vault.Set(SessionCredentialsKey(profile), string(raw)); err != nil {
		return vaultError(err, "cache credentials")
	}
	return nil
}

// DeleteCachedCredentials removes cached credentials. Missing entries are not an error.
func (s *CredentialStore) DeleteCachedCredentials(profile string) error {
	err := s.vault.Delete(SessionCredentialsKey(profile))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return vaultError(err, "delete cached credentials")
	}
	return nil
}

func vaultError(err error, msg string) error {
	if errors.Is(err, apperr.ErrSecretVault) {
		return errors.Wrap(err, msg)
	}
	return apperr.Mark(err, apperr.ErrSecretVault, msg)
}
