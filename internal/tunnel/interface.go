package tunnel

import (
	"context"

	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

// Launcher starts a port-forwarding session and returns as soon as the
// forwarding process is running. The caller owns the returned process.
type Launcher interface {
	Launch(ctx context.Context, req models.TunnelRequest) (common.Process, error)
}

type PortChecker interface {
	Check(port uint16) error
}

// SessionIdentifier is implemented by processes tied to a broker-side SSM session.
type SessionIdentifier interface {
	SessionID() string
}
