package scan

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeHostLiteralIP(t *testing.T) {
	h := DescribeHost(context.Background(), "127.0.0.1", time.Second)
	assert.Equal(t, "127.0.0.1", h.IP)
}

func TestDescribeHostUnresolvable(t *testing.T) {
	h := DescribeHost(context.Background(), "nonexistent.invalid", 500*time.Millisecond)
	assert.Equal(t, Host{}, h)
}

func TestLookupManufacturer(t *testing.T) {
	mac, err := net.ParseMAC("00:00:0c:12:34:56")
	require.NoError(t, err)
	assert.Contains(t, lookupManufacturer(mac), "Cisco")

	mac, err = net.ParseMAC("02:00:00:00:00:01")
	require.NoError(t, err)
	assert.Empty(t, lookupManufacturer(mac))
}
