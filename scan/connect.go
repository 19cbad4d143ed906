package scan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// Connect makes one TCP connection attempt to host:port which is abandoned
// after timeout. On StatusOpen the caller owns the returned connection and
// must close it. Any other status comes back with the dial error.
func Connect(ctx context.Context, host string, port uint16, timeout time.Duration) (net.Conn, Status, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", address(host, port))
	if err != nil {
		return nil, classifyDialError(ctx, err), err
	}
	return conn, StatusOpen, nil
}

func address(host string, port uint16) string {
	return net.JoinHostPort(host, strconv.Itoa(int(port)))
}

func classifyDialError(ctx context.Context, err error) Status {
	switch {
	case errors.Is(err, syscall.ECONNREFUSED):
		return StatusRefused
	case errors.Is(err, syscall.ECONNRESET):
		return StatusClosed
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return StatusTimedOut
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimedOut
	}
	return StatusFailed
}
