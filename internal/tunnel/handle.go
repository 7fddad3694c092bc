package tunnel

import (
	"go.uber.org/zap"

	"github.com/tatran0195/akaw/models"
	"github.com/tatran0195/akaw/utils/common"
)

// Handle is a tunnel started by this process. The tunnel keeps running until
// Stop is called or the forwarding process exits on its own.
type Handle struct {
	Session  models.TunnelSession
	Process  common.Process
	Registry *Registry
	Logger   *zap.Logger
}

// Wait blocks until the forwarding process exits, then forgets it.
func (h *Handle) Wait() error {
	err := h.Process.Wait()
	h.forget()
	return err
}

func (h *Handle) Stop() error {
	err := h.Process.Kill()
	h.forget()
	return err
}

func (h *Handle) forget() {
	if h.Registry == nil {
		return
	}
	if err := h.Registry.Forget(h.Session.Profile, h.Session.PID); err != nil && h.Logger != nil {
		h.Logger.Warn("failed to update tunnel registry", zap.String("profile", h.Session.Profile), zap.Error(err))
	}
}
