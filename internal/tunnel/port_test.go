package tunnel

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatran0195/akaw/internal/apperr"
)

func TestListenPortChecker(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := uint16(ln.Addr().(*net.TCPAddr).Port)

	checker := NewListenPortChecker()
	err = checker.Check(port)
	var inUse *apperr.PortInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, port, inUse.Port)

	require.NoError(t, ln.Close())
	assert.NoError(t, checker.Check(port))
}
