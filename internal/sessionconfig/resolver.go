package sessionconfig

import (
	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

// Resolve picks each field independently: request value, then the profile's
// persisted value, then the default. Target has no default.
func (s *Store) Resolve(profile string, request models.SessionOverrides) (models.SessionConfig, error) {
	persisted, err := s.Load(profile)
	if err != nil {
		return models.SessionConfig{}, err
	}
	return Merge(request, persisted)
}

func Merge(request models.SessionOverrides, persisted *models.SessionOverrides) (models.SessionConfig, error) {
	if persisted == nil {
		persisted = &models.SessionOverrides{}
	}

	cfg := Effective(*persisted)
	if request.Target != "" {
		cfg.Target = request.Target
	}
	if request.LocalPort != 0 {
		cfg.LocalPort = request.LocalPort
	}
	if request.RemotePort != 0 {
		cfg.RemotePort = request.RemotePort
	}
	if request.DocumentName != "" {
		cfg.DocumentName = request.DocumentName
	}

	if cfg.Target == "" {
		return models.SessionConfig{}, apperr.ErrTargetRequired
	}
	return cfg, nil
}

// Effective fills unset fields of o with defaults. Target stays as is.
func Effective(o models.SessionOverrides) models.SessionConfig {
	cfg := models.SessionConfig{
		Target:       o.Target,
		LocalPort:    o.LocalPort,
		RemotePort:   o.RemotePort,
		DocumentName: o.DocumentName,
	}
	if cfg.LocalPort == 0 {
		cfg.LocalPort = models.DefaultLocalPort
	}
	if cfg.RemotePort == 0 {
		cfg.RemotePort = models.DefaultRemotePort
	}
	if cfg.DocumentName == "" {
		cfg.DocumentName = models.DefaultDocumentName
	}
	return cfg
}
