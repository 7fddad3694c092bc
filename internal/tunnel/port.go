package tunnel

import (
	"net"
	"strconv"

	"github.com/tatran0195/akaw/internal/apperr"
)

// ListenPortChecker tests a port by binding it on the loopback address. The
// result is advisory: another process can still bind the port afterwards.
type ListenPortChecker struct {
	Host string
}

func NewListenPortChecker() *ListenPortChecker {
	return &ListenPortChecker{Host: "127.0.0.1"}
}

func (c *ListenPortChecker) Check(port uint16) error {
	ln, err := net.Listen("tcp", net.JoinHostPort(c.Host, strconv.Itoa(int(port))))
	if err != nil {
		return apperr.PortInUse(port)
	}
	return ln.Close()
}
