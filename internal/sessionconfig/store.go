package sessionconfig

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"

	"github.com/tatran0195/akaw/internal/apperr"
	"github.com/tatran0195/akaw/models"
)

const (
	keyTarget       = "target"
	keyLocalPort    = "local_port"
	keyRemotePort   = "remote_port"
	keyDocumentName = "document_name"
)

// Store is the per-profile tunnel settings file, ~/.aws/sessions: one ini
// section per profile with target, local_port, remote_port and document_name.
type Store struct {
	Fs   afero.Fs
	Path string

	mu sync.Mutex
}

func NewStore(fs afero.Fs, path string) *Store {
	return &Store{Fs: fs, Path: path}
}

// Load returns the persisted values for profile, or nil when the file or the
// section does not exist. Empty and unparsable values are left unset.
func (s *Store) Load(profile string) (*models.SessionOverrides, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil || cfg == nil {
		return nil, err
	}

	section, err := cfg.GetSection(profile)
	if err != nil {
		return nil, nil
	}

	return &models.SessionOverrides{
		Target:       strings.TrimSpace(section.Key(keyTarget).String()),
		LocalPort:    parsePort(section.Key(keyLocalPort).String()),
		RemotePort:   parsePort(section.Key(keyRemotePort).String()),
		DocumentName: strings.TrimSpace(section.Key(keyDocumentName).String()),
	}, nil
}

// Update writes the supplied fields of o into the profile's section, creating
// the file and section when needed. Unsupplied fields keep their stored value.
func (s *Store) Update(profile string, o models.SessionOverrides) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = ini.Empty()
	}

	section := cfg.Section(profile)
	if o.Target != "" {
		section.Key(keyTarget).SetValue(o.Target)
	}
	if o.LocalPort != 0 {
		section.Key(keyLocalPort).SetValue(strconv.Itoa(int(o.LocalPort)))
	}
	if o.RemotePort != 0 {
		section.Key(keyRemotePort).SetValue(strconv.Itoa(int(o.RemotePort)))
	}
	if o.DocumentName != "" {
		section.Key(keyDocumentName).SetValue(o.DocumentName)
	}

	return s.write(cfg)
}

// Remove deletes the profile's section. A missing file is not an error.
func (s *Store) Remove(profile string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil || cfg == nil {
		return err
	}
	cfg.DeleteSection(profile)
	return s.write(cfg)
}

// CreateFromProfiles writes a new file with an empty section per profile. It
// refuses to touch an existing file.
func (s *Store) CreateFromProfiles(profiles []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := afero.Exists(s.Fs, s.Path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", s.Path, err)
	}
	if exists {
		return errors.Mark(errors.Newf("configuration file already exists: %s", s.Path), apperr.ErrConfigAlreadyExists)
	}

	cfg := ini.Empty()
	for _, name := range profiles {
		section := cfg.Section(name)
		for _, key := range []string{keyTarget, keyLocalPort, keyRemotePort, keyDocumentName} {
			section.Key(key).SetValue("")
		}
	}
	return s.write(cfg)
}

// ListConfigured returns the profile names that have a section, in file order.
func (s *Store) ListConfigured() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.read()
	if err != nil || cfg == nil {
		return []string{}, err
	}

	names := []string{}
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, section.Name())
	}
	return names, nil
}

func (s *Store) read() (*ini.File, error) {
	data, err := afero.ReadFile(s.Fs, s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}
	return cfg, nil
}

func (s *Store) write(cfg *ini.File) error {
	var buf bytes.Buffer
	if _, err := cfg.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := afero.WriteFile(s.Fs, s.Path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func parsePort(raw string) uint16 {
	port, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil || port == 0 {
		return 0
	}
	return uint16(port)
}
