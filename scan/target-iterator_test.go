package scan

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCIDRIteration(t *testing.T) {
	ti := NewTargetIterator("192.168.1.1/24")

	ip, err := ti.Peek()
	require.Nil(t, err)

	assert.Equal(t, ip, "192.168.1.0")

	for i := 0; i < 256; i++ {

		ip, err := ti.Peek()
		require.Nil(t, err)
		assert.Equal(t, ip, fmt.Sprintf("192.168.1.%d", i))

		ip, err = ti.Next()
		require.Nil(t, err)
		assert.Equal(t, ip, fmt.Sprintf("192.168.1.%d", i))
	}

	_, err = ti.Next()
	assert.Equal(t, io.EOF, err)
}

func TestSingleTargetIteration(t *testing.T) {
	for _, target := range []string{"127.0.0.1", "example.test", "::1"} {
		ti := NewTargetIterator(target)

		host, err := ti.Next()
		require.NoError(t, err)
		assert.Equal(t, target, host)

		_, err = ti.Next()
		assert.Equal(t, io.EOF, err)
	}
}
