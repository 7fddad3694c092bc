package tunnel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/process"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tatran0195/akaw/models"
)

var ErrNoTunnel = errors.New("no tunnel registered for profile")

// ProcessController checks and stops tunnel processes by PID, including ones
// started by another akaw invocation.
type ProcessController interface {
	Alive(pid int) bool
	CreateTime(pid int) (time.Time, error)
	Terminate(pid int) error
}

// startTolerance bounds how far a process creation time may sit from the
// recorded StartedAt before the PID is treated as reused.
const startTolerance = time.Minute

type GopsutilController struct{}

func (GopsutilController) Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	exists, err := process.PidExists(int32(pid))
	if err != nil || !exists {
		return false
	}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return false
	}
	running, err := p.IsRunning()
	return err == nil && running
}

func (GopsutilController) CreateTime(pid int) (time.Time, error) {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return time.Time{}, err
	}
	ms, err := p.CreateTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

func (GopsutilController) Terminate(pid int) error {
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	if err := p.Terminate(); err != nil {
		return p.Kill()
	}
	return nil
}

type registryFile struct {
	Sessions map[string]models.TunnelSession `yaml:"sessions"`
}

// Registry records running tunnels by profile in ~/.akaw/tunnels.yaml so
// later invocations can list and stop them. At most one tunnel per profile.
type Registry struct {
	Fs        afero.Fs
	Path      string
	Processes ProcessController
	Logger    *zap.Logger

	mu sync.Mutex
}

func NewRegistry(fs afero.Fs, path string, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{Fs: fs, Path: path, Processes: GopsutilController{}, Logger: logger}
}

// Register records session, replacing any earlier entry for the same profile.
func (r *Registry) Register(session models.TunnelSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return err
	}
	state.Sessions[session.Profile] = session
	return r.save(state)
}

// Forget drops the profile's entry without touching the process, provided
// it still records pid.
func (r *Registry) Forget(profile string, pid int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return err
	}
	if s, ok := state.Sessions[profile]; !ok || s.PID != pid {
		return nil
	}
	delete(state.Sessions, profile)
	return r.save(state)
}

// List returns every recorded tunnel sorted by profile, with Running set
// from the live process table.
func (r *Registry) List() ([]models.TunnelSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return nil, err
	}

	sessions := make([]models.TunnelSession, 0, len(state.Sessions))
	for _, s := range state.Sessions {
		s.Running = r.owns(s)
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Profile < sessions[j].Profile
	})
	return sessions, nil
}

// Prune drops entries whose process has exited and returns their profiles.
func (r *Registry) Prune() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return nil, err
	}

	var pruned []string
	for profile, s := range state.Sessions {
		if !r.owns(s) {
			pruned = append(pruned, profile)
			delete(state.Sessions, profile)
		}
	}
	if len(pruned) == 0 {
		return nil, nil
	}
	sort.Strings(pruned)
	return pruned, r.save(state)
}

// Stop terminates the profile's tunnel process and forgets it.
func (r *Registry) Stop(profile string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return err
	}
	session, ok := state.Sessions[profile]
	if !ok {
		return errors.Mark(errors.Newf("no tunnel registered for profile %s", profile), ErrNoTunnel)
	}

	if err := r.terminate(session); err != nil {
		return err
	}
	delete(state.Sessions, profile)
	return r.save(state)
}

// StopAll stops every recorded tunnel and returns the profiles it stopped.
// Failures are collected and do not stop the remaining tunnels.
func (r *Registry) StopAll() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, err := r.load()
	if err != nil {
		return nil, err
	}

	profiles := make([]string, 0, len(state.Sessions))
	for profile := range state.Sessions {
		profiles = append(profiles, profile)
	}
	sort.Strings(profiles)

	var stopped []string
	var errs error
	for _, profile := range profiles {
		if err := r.terminate(state.Sessions[profile]); err != nil {
			errs = errors.CombineErrors(errs, err)
			continue
		}
		delete(state.Sessions, profile)
		stopped = append(stopped, profile)
	}

	if err := r.save(state); err != nil {
		return stopped, errors.CombineErrors(errs, err)
	}
	return stopped, errs
}

// owns reports whether the PID recorded for session still belongs to the
// tunnel process, rather than to something that reused the PID after it exited.
func (r *Registry) owns(session models.TunnelSession) bool {
	if !r.Processes.Alive(session.PID) || session.StartedAt.IsZero() {
		return false
	}
	created, err := r.Processes.CreateTime(session.PID)
	if err != nil {
		r.Logger.Debug("failed to read process start time", zap.Int("pid", session.PID), zap.Error(err))
		return false
	}
	return sameStart(created, session.StartedAt)
}

// sameStart reports whether a process created at created can be the one
// recorded as started at startedAt.
func sameStart(created, startedAt time.Time) bool {
	d := created.Sub(startedAt)
	return d >= -startTolerance && d <= startTolerance
}

func (r *Registry) terminate(session models.TunnelSession) error {
	if !r.owns(session) {
		r.Logger.Debug("tunnel process already gone", zap.String("profile", session.Profile), zap.Int("pid", session.PID))
		return nil
	}
	if err := r.Processes.Terminate(session.PID); err != nil {
		return fmt.Errorf("failed to stop tunnel for profile %s (pid %d): %w", session.Profile, session.PID, err)
	}
	r.Logger.Info("tunnel stopped", zap.String("profile", session.Profile), zap.Int("pid", session.PID))
	return nil
}

func (r *Registry) load() (*registryFile, error) {
	state := &registryFile{Sessions: map[string]models.TunnelSession{}}

	data, err := afero.ReadFile(r.Fs, r.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return nil, fmt.Errorf("failed to read tunnel registry: %w", err)
	}
	if err := yaml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse tunnel registry %s: %w", r.Path, err)
	}
	if state.Sessions == nil {
		state.Sessions = map[string]models.TunnelSession{}
	}
	return state, nil
}

func (r *Registry) save(state *registryFile) error {
	if err := r.Fs.MkdirAll(filepath.Dir(r.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal tunnel registry: %w", err)
	}
	if err := afero.WriteFile(r.Fs, r.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write tunnel registry: %w", err)
	}
	return nil
}
