package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	capacity int
	checksum bool
}

func withCapacity(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 0 {
			return errors.New("capacity cannot be negative")
		}
		c.capacity = n

		return nil
	})
}

func withChecksum(enabled bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.checksum = enabled
	})
}

func TestApply(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withCapacity(64), withChecksum(true))
	require.NoError(t, err)
	require.Equal(t, 64, cfg.capacity)
	require.True(t, cfg.checksum)
}

func TestApply_Error(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg, withCapacity(-1), withChecksum(true))
	require.Error(t, err)
	require.False(t, cfg.checksum, "options after a failing one must not apply")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, Apply(cfg))
}
