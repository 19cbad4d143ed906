package scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePortSpec(t *testing.T) {
	tests := []struct {
		spec string
		want []uint16
	}{
		{"22", []uint16{22}},
		{"20:25,31,32,45:50", []uint16{20, 21, 22, 23, 24, 25, 31, 32, 45, 46, 47, 48, 49, 50}},
		{"14, 15, 29", []uint16{14, 15, 29}},
		{" 80 : 82 ", []uint16{80, 81, 82}},
		{"443,22", []uint16{443, 22}},
		{"22,22,21:22", []uint16{22, 22, 21, 22}},
		{"0", []uint16{0}},
		{"65534:65535", []uint16{65534, 65535}},
		{"7:7", []uint16{7}},
	}

	for _, test := range tests {
		t.Run(test.spec, func(t *testing.T) {
			got, err := ParsePortSpec(test.spec)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParsePortSpecFullRange(t *testing.T) {
	ports, err := ParsePortSpec("0:65535")
	require.NoError(t, err)
	require.Len(t, ports, 65536)
	assert.Equal(t, uint16(0), ports[0])
	assert.Equal(t, uint16(65535), ports[65535])
}

func TestParsePortSpecInvalid(t *testing.T) {
	tests := []struct {
		spec  string
		token string
	}{
		{"14-15", "14-15"},
		{"14, a2", "a2"},
		{"", ""},
		{"22,", ""},
		{"1:2:3", "1:2:3"},
		{"10:1", "10:1"},
		{"65536", "65536"},
		{"1:70000", "1:70000"},
		{":80", ":80"},
		{"-1", "-1"},
	}

	for _, test := range tests {
		t.Run(test.spec, func(t *testing.T) {
			ports, err := ParsePortSpec(test.spec)
			require.Error(t, err)
			assert.Nil(t, ports)
			assert.True(t, errors.Is(err, ErrInvalidPortSpec))

			var specErr *PortSpecError
			require.True(t, errors.As(err, &specErr))
			assert.Equal(t, test.token, specErr.Token)
			assert.Contains(t, err.Error(), "'"+test.token+"'")
		})
	}
}

func TestParsePortSpecIsDeterministic(t *testing.T) {
	first, err := ParsePortSpec("8080,1:10,443,5:7")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ParsePortSpec("8080,1:10,443,5:7")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDescribePort(t *testing.T) {
	assert.Equal(t, "ssh", DescribePort(22))
	assert.Equal(t, "http", DescribePort(80))
	assert.Equal(t, "", DescribePort(1))
}
