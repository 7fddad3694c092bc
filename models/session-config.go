package models

const (
	DefaultLocalPort    uint16 = 13389
	DefaultRemotePort   uint16 = 3389
	DefaultDocumentName        = "AWS-StartPortForwardingSession"
)

// SessionConfig is a fully resolved set of tunnel parameters.
type SessionConfig struct {
	Target       string `json:"target" yaml:"target"`
	LocalPort    uint16 `json:"local_port" yaml:"local_port"`
	RemotePort   uint16 `json:"remote_port" yaml:"remote_port"`
	DocumentName string `json:"document_name" yaml:"document_name"`
}

// SessionOverrides holds tunnel parameters supplied with a request, or read
// from the sessions file. A zero field means "not set".
type SessionOverrides struct {
	Target       string
	LocalPort    uint16
	RemotePort   uint16
	DocumentName string
}

func (o SessionOverrides) IsEmpty() bool {
	return o == SessionOverrides{}
}

// ConfigResponse is returned by config show/init.
type ConfigResponse struct {
	Profile    string         `json:"profile"`
	Config     *SessionConfig `json:"config,omitempty"`
	ConfigPath string         `json:"config_path"`
	Updated    bool           `json:"updated"`
}
