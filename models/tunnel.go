package models

import "time"

const (
	TunnelModeCLI    = "cli"
	TunnelModePlugin = "plugin"
)

// TunnelSession is a running port-forwarding session as recorded in the
// tunnel registry.
type TunnelSession struct {
	Profile    string    `json:"profile" yaml:"profile"`
	Target     string    `json:"target" yaml:"target"`
	LocalPort  uint16    `json:"local_port" yaml:"local_port"`
	RemotePort uint16    `json:"remote_port" yaml:"remote_port"`
	Document   string    `json:"document" yaml:"document"`
	PID        int       `json:"pid" yaml:"pid"`
	Mode       string    `json:"mode" yaml:"mode"`
	SessionID  string    `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	Running    bool      `json:"running" yaml:"-"`
}

// ConnectResult is what a successful connect reports back.
type ConnectResult struct {
	Profile     string        `json:"profile"`
	Config      SessionConfig `json:"config"`
	Expiration  time.Time     `json:"expiration"`
	UsingCached bool          `json:"using_cached"`
	Session     TunnelSession `json:"session"`
}

// TunnelRequest is everything a launcher needs to open a port forward.
// Region is the profile's own region and may be empty; DefaultRegion is the
// configured fallback for launchers that call AWS APIs directly.
type TunnelRequest struct {
	Profile       string
	Region        string
	DefaultRegion string
	Credentials   *SessionCredentials
	Config        SessionConfig
}

// APIRegion is the region to sign SDK calls for.
func (r TunnelRequest) APIRegion() string {
	if r.Region != "" {
		return r.Region
	}
	return r.DefaultRegion
}
