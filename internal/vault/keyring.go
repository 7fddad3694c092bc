package vault

import (
	"github.com/cockroachdb/errors"
	"github.com/zalando/go-keyring"

	"github.com/tatran0195/akaw/internal/apperr"
)

// KeyringVault stores secrets in the OS keyring (Keychain, Secret Service or
// Windows Credential Manager) under a fixed service name.
type KeyringVault struct {
	Service string
}

func NewKeyringVault(service string) *KeyringVault {
	return &KeyringVault{Service: service}
}

func (v *KeyringVault) Get(key string) (string, error) {
	value, err := keyring.Get(v.Service, key)
	if err != nil {
		return "", v.mapError(err, key)
	}
	return value, nil
}

func (v *KeyringVault) Set(key, value string) error {
	if err := keyring.Set(v.Service, key, value); err != nil {
		return v.mapError(err, key)
	}
	return nil
}

func (v *KeyringVault) Delete(key string) error {
	if err := keyring.Delete(v.Service, key); err != nil {
		return v.mapError(err, key)
	}
	return nil
}

func (v *KeyringVault) mapError(err error, key string) error {
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	return apperr.Mark(err, apperr.ErrSecretVault, "keyring "+v.Service+"/"+key)
}
