package sessionconfig

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

const sessionsPath = "/home/user/.aws/sessions"

func newStore(t *testing.T, content string) (*Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, sessionsPath, []byte(content), 0o600))
	}
	return NewStore(fs, sessionsPath), fs
}

func TestLoad_NoFile(t *testing.T) {
	store, _ := newStore(t, "")

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingSection(t *testing.T) {
	store, _ := newStore(t, "[prod]\ntarget = i-999\n")

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyAndInvalidValuesAreUnset(t *testing.T) {
	store, _ := newStore(t, "[dev]\ntarget =\nlocal_port = abc\nremote_port = 70000\ndocument_name =\n")

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsEmpty())
}

func TestUpdateThenLoad(t *testing.T) {
	store, _ := newStore(t, "")

	require.NoError(t, store.Update("dev", models.SessionOverrides{Target: "i-123", LocalPort: 15432}))
	require.NoError(t, store.Update("dev", models.SessionOverrides{RemotePort: 5432, DocumentName: "AWS-StartPortForwardingSessionToRemoteHost"}))

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	assert.Equal(t, &models.SessionOverrides{
		Target:       "i-123",
		LocalPort:    15432,
		RemotePort:   5432,
		DocumentName: "AWS-StartPortForwardingSessionToRemoteHost",
	}, cfg)
}

func TestUpdate_KeepsOtherSections(t *testing.T) {
	store, fs := newStore(t, "[prod]\ntarget = i-999\n")

	require.NoError(t, store.Update("dev", models.SessionOverrides{Target: "i-123"}))

	data, err := afero.ReadFile(fs, sessionsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[prod]")
	assert.Contains(t, string(data), "i-999")

	names, err := store.ListConfigured()
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "dev"}, names)
}

func TestRemoveThenLoad(t *testing.T) {
	store, _ := newStore(t, "[dev]\ntarget = i-123\n\n[prod]\ntarget = i-999\n")

	require.NoError(t, store.Remove("dev"))

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	assert.Nil(t, cfg)

	cfg, err = store.Load("prod")
	require.NoError(t, err)
	assert.Equal(t, "i-999", cfg.Target)
}

func TestRemove_NoFile(t *testing.T) {
	store, fs := newStore(t, "")

	require.NoError(t, store.Remove("dev"))
	exists, err := afero.Exists(fs, sessionsPath)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateFromProfiles(t *testing.T) {
	store, _ := newStore(t, "")

	require.NoError(t, store.CreateFromProfiles([]string{"default", "dev"}))

	names, err := store.ListConfigured()
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "dev"}, names)

	cfg, err := store.Load("dev")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.IsEmpty())

	err = store.CreateFromProfiles([]string{"dev"})
	assert.True(t, errors.Is(err, apperr.ErrConfigAlreadyExists))
}

func TestListConfigured_NoFile(t *testing.T) {
	store, _ := newStore(t, "")

	names, err := store.ListConfigured()
	require.NoError(t, err)
	assert.Empty(t, names)
}
