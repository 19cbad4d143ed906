package scan

import (
	"net"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
)

const (
	// DefaultReadTimeout bounds the banner probe independently of the connect timeout.
	DefaultReadTimeout = time.Second

	bannerBufferSize = 1024
)

func httpProbeRequest(host string) []byte {
	return []byte("GET / HTTP/1.1\r\nHost: " + host + "\r\nConnection: close\r\n\r\n")
}

// GrabBanner sends a plain HTTP GET over conn and returns up to 1024 bytes of
// whatever comes back. Invalid UTF-8 is replaced, never rejected. Failures of
// any kind yield an empty banner and false. The caller still owns conn.
func GrabBanner(conn net.Conn, host string, readTimeout time.Duration, logger logrus.Ext1FieldLogger) (string, bool) {
	if addr := conn.RemoteAddr(); addr != nil {
		logger = logger.WithField("remote", addr.String())
	}

	if err := conn.SetDeadline(time.Now().Add(readTimeout)); err != nil {
		logger.WithError(err).Debug("Failed to set probe deadline")
		return "", false
	}

	if _, err := conn.Write(httpProbeRequest(host)); err != nil {
		logger.WithError(err).Debug("Failed to send HTTP GET request")
		return "", false
	}
	logger.Trace("Sent HTTP GET request")

	buf := make([]byte, bannerBufferSize)
	n, err := conn.Read(buf)
	if n > 0 {
		logger.WithField("bytes", n).Trace("Read banner")
		return decodeLossy(buf[:n]), true
	}

	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		logger.Debug("Banner read timed out")
	} else if err != nil {
		logger.WithError(err).Debug("Failed to read banner")
	} else {
		logger.Debug("No banner data read")
	}
	return "", false
}

// decodeLossy replaces every invalid UTF-8 sequence with U+FFFD.
func decodeLossy(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
