package vault

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

type failingVault struct {
	err error
}

func (f failingVault) Get(string) (string, error) { return "", f.err }
func (f failingVault) Set(string, string) error   { return f.err }
func (f failingVault) Delete(string) error        { return f.err }

func TestKeys(t *testing.T) {
	assert.Equal(t, "mfa_secret_dev", MFASecretKey("dev"))
	assert.Equal(t, "session_credentials_dev", SessionCredentialsKey("dev"))
}

func TestCredentialStore_MFASecret(t *testing.T) {
	store := NewCredentialStore(NewMemoryVault())

	_, err := store.MFASecret("dev")
	assert.True(t, errors.Is(err, apperr.ErrSecretNotConfigured))
	assert.False(t, store.HasMFASecret("dev"))

	require.NoError(t, store.SetMFASecret("dev", "JBSWY3DPEHPK3PXP"))
	secret, err := store.MFASecret("dev")
	require.NoError(t, err)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", secret)
	assert.True(t, store.HasMFASecret("dev"))

	require.NoError(t, store.DeleteMFASecret("dev"))
	err = store.DeleteMFASecret("dev")
	assert.True(t, errors.Is(err, apperr.ErrSecretNotConfigured))
}

func TestCredentialStore_CachedCredentials(t *testing.T) {
	mem := NewMemoryVault()
	store := NewCredentialStore(mem)

	creds, err := store.CachedCredentials("dev")
	require.NoError(t, err)
	assert.Nil(t, creds)

	want := &models.SessionCredentials{
		AccessKeyID:     "ASIAEXAMPLE",
		SecretAccessKey: "secret",
		SessionToken:    "token",
		Expiration:      time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.CacheCredentials("dev", want))

	raw, err := mem.Get("session_credentials_dev")
	require.NoError(t, err)
	assert.JSONEq(t, `{"access_key_id":"ASIAEXAMPLE","secret_access_key":"secret","session_token":"token","expiration":"2025-03-01T12:00:00Z"}`, raw)

	got, err := store.CachedCredentials("dev")
	require.NoError(t, err)
	assert.Equal(t, want.AccessKeyID, got.AccessKeyID)
	assert.True(t, want.Expiration.Equal(got.Expiration))

	require.NoError(t, store.DeleteCachedCredentials("dev"))
	require.NoError(t, store.DeleteCachedCredentials("dev"))
}

func TestCredentialStore_CorruptCache(t *testing.T) {
	mem := NewMemoryVault()
	require.NoError(t, mem.Set("session_credentials_dev", "{not json"))

	_, err := NewCredentialStore(mem).CachedCredentials("dev")
	assert.True(t, errors.Is(err, apperr.ErrSecretVault))
}

func TestCredentialStore_VaultFailure(t *testing.T) {
	store := NewCredentialStore(failingVault{err: errors.New("dbus unavailable")})

	_, err := store.MFASecret("dev")
	assert.True(t, errors.Is(err, apperr.ErrSecretVault))
	assert.False(t, errors.Is(err, apperr.ErrSecretNotConfigured))

	err = store.CacheCredentials("dev", &models.SessionCredentials{})
	assert.True(t, errors.Is(err, apperr.ErrSecretVault))
	assert.ErrorContains(t, err, "dbus unavailable")
}

func TestKeyringVault(t *testing.T) {
	keyring.MockInit()
	v := NewKeyringVault("akaw-test")

	_, err := v.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, v.Delete("missing"), ErrNotFound)

	require.NoError(t, v.Set("mfa_secret_dev", "SECRET"))
	value, err := v.Get("mfa_secret_dev")
	require.NoError(t, err)
	assert.Equal(t, "SECRET", value)
	require.NoError(t, v.Delete("mfa_secret_dev"))
}

func TestKeyringVault_BackendError(t *testing.T) {
	keyring.MockInitWithError(errors.New("locked"))
	defer keyring.MockInit()

	err := NewKeyringVault("akaw-test").Set("k", "v")
	assert.True(t, errors.Is(err, apperr.ErrSecretVault))
	assert.ErrorContains(t, err, "locked")
}
