package connect

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tatran0195/akaw/internal/target"
	"github.com/tatran0195/akaw/internal/tunnel"
	"github.com/tatran0195/akaw/models"
)

// Orchestrator picks cached or fresh session credentials for a profile and
// opens a port-forwarding tunnel with them.
type Orchestrator struct {
	Profiles    ProfileResolver
	Serials     SerialFetcher
	Configs     ConfigResolver
	Credentials CredentialCache
	Codes       CodeGenerator
	Tokens      TokenExchanger
	Targets     TargetResolver
	Ports       tunnel.PortChecker
	Launcher    tunnel.Launcher
	Registry    *tunnel.Registry

	Mode          string
	DefaultRegion string
	Logger        *zap.Logger

	now   func() time.Time
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func WithTargetResolver(r TargetResolver) Option {
	return func(o *Orchestrator) { o.Targets = r }
}

func New(
	profiles ProfileResolver,
	serials SerialFetcher,
	configs ConfigResolver,
	credentials CredentialCache,
	codes CodeGenerator,
	tokens TokenExchanger,
	ports tunnel.PortChecker,
	launcher tunnel.Launcher,
	registry *tunnel.Registry,
	mode, defaultRegion string,
	logger *zap.Logger,
	opts ...Option,
) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	o := &Orchestrator{
		Profiles:      profiles,
		Serials:       serials,
		Configs:       configs,
		Credentials:   credentials,
		Codes:         codes,
		Tokens:        tokens,
		Ports:         ports,
		Launcher:      launcher,
		Registry:      registry,
		Mode:          mode,
		DefaultRegion: defaultRegion,
		Logger:        logger,
		now:           time.Now,
		locks:         make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Connect resolves the tunnel settings, obtains credentials and starts the
// tunnel. Steps run strictly in order. The returned handle owns the tunnel
// process; nothing stops it implicitly.
func (o *Orchestrator) Connect(ctx context.Context, profile string, overrides models.SessionOverrides) (*models.ConnectResult, *tunnel.Handle, error) {
	cfg, err := o.Configs.Resolve(profile, overrides)
	if err != nil {
		return nil, nil, err
	}

	profileRegion := o.profileRegion(profile)
	region := profileRegion
	if region == "" {
		region = o.DefaultRegion
	}

	username, err := o.Profiles.ResolveUsername(ctx, profile)
	if err != nil {
		return nil, nil, err
	}
	serial, err := o.Serials.FetchSerial(ctx, username, profile)
	if err != nil {
		return nil, nil, err
	}

	creds, usingCached, err := o.credentials(ctx, profile, serial)
	if err != nil {
		return nil, nil, err
	}

	if o.Targets != nil && target.NeedsLookup(cfg.Target) {
		instanceID, err := o.Targets.Resolve(ctx, creds, region, cfg.Target)
		if err != nil {
			return nil, nil, err
		}
		o.Logger.Info("resolved target", zap.String("name", cfg.Target), zap.String("instance_id", instanceID))
		cfg.Target = instanceID
	}

	if err := o.Ports.Check(cfg.LocalPort); err != nil {
		return nil, nil, err
	}

	proc, err := o.Launcher.Launch(ctx, models.TunnelRequest{
		Profile:       profile,
		Region:        profileRegion,
		DefaultRegion: o.DefaultRegion,
		Credentials:   creds,
		Config:        cfg,
	})
	if err != nil {
		return nil, nil, err
	}

	session := models.TunnelSession{
		Profile:    profile,
		Target:     cfg.Target,
		LocalPort:  cfg.LocalPort,
		RemotePort: cfg.RemotePort,
		Document:   cfg.DocumentName,
		PID:        proc.Pid(),
		Mode:       o.Mode,
		StartedAt:  o.now().UTC(),
		Running:    true,
	}
	if ident, ok := proc.(tunnel.SessionIdentifier); ok {
		session.SessionID = ident.SessionID()
	}

	if o.Registry != nil {
		if err := o.Registry.Register(session); err != nil {
			o.Logger.Warn("failed to record tunnel", zap.String("profile", profile), zap.Error(err))
		}
	}

	result := &models.ConnectResult{
		Profile:     profile,
		Config:      cfg,
		Expiration:  creds.Expiration,
		UsingCached: usingCached,
		Session:     session,
	}
	handle := &tunnel.Handle{
		Session:  session,
		Process:  proc,
		Registry: o.Registry,
		Logger:   o.Logger,
	}
	return result, handle, nil
}

// credentials returns valid cached credentials or exchanges a fresh TOTP
// code for new ones. Calls for the same profile are serialised so that
// concurrent connects share one exchange.
func (o *Orchestrator) credentials(ctx context.Context, profile, serial string) (*models.SessionCredentials, bool, error) {
	lock := o.lockFor(profile)
	lock.Lock()
	defer lock.Unlock()

	cached, err := o.Credentials.CachedCredentials(profile)
	if err != nil {
		o.Logger.Warn("ignoring unreadable cached credentials", zap.String("profile", profile), zap.Error(err))
	} else if cached != nil && cached.IsValidAt(o.now()) {
		o.Logger.Debug("using cached credentials", zap.String("profile", profile), zap.Time("expiration", cached.Expiration))
		return cached, true, nil
	}

	secret, err := o.Credentials.MFASecret(profile)
	if err != nil {
		return nil, false, err
	}
	code, err := o.Codes.Generate(secret)
	if err != nil {
		return nil, false, err
	}

	creds, err := o.Tokens.GetSessionToken(ctx, profile, serial, code)
	if err != nil {
		return nil, false, err
	}
	o.Logger.Info("obtained session credentials", zap.String("profile", profile), zap.Time("expiration", creds.Expiration))

	if err := o.Credentials.CacheCredentials(profile, creds); err != nil {
		o.Logger.Warn("failed to cache session credentials", zap.String("profile", profile), zap.Error(err))
	}
	return creds, false, nil
}

// profileRegion is the region set on the profile itself, or "" so the aws
// CLI applies its own resolution.
func (o *Orchestrator) profileRegion(profile string) string {
	p, err := o.Profiles.GetProfile(profile)
	if err != nil {
		return ""
	}
	return p.Region
}

func (o *Orchestrator) lockFor(profile string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.locks == nil {
		o.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := o.locks[profile]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[profile] = lock
	}
	return lock
}
