package scan

import (
	"io"
	"net"
	"testing"

	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// listen starts a loopback listener whose accepted connections are passed
// to handle. The listener is closed when the test ends.
func listen(t *testing.T, handle func(net.Conn)) uint16 {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go handle(conn)
		}
	}()

	return uint16(listener.Addr().(*net.TCPAddr).Port)
}

// silent accepts and holds connections open without writing.
func silent(conn net.Conn) {
	defer conn.Close()
	_, _ = io.Copy(io.Discard, conn)
}

func closedPort(t *testing.T) uint16 {
	t.Helper()
	port, err := freeport.GetFreePort()
	require.NoError(t, err)
	return uint16(port)
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
