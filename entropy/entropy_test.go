package entropy

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	sorterrors "github.com/tamirms/sortition/errors"
)

func TestSystem_Bytes(t *testing.T) {
	src := System()
	b, err := src.Bytes(32)
	require.NoError(t, err)
	require.Len(t, b, 32)

	// Fresh reads must not repeat. 32 random bytes colliding is beyond
	// astronomically unlikely.
	c, err := src.Bytes(32)
	require.NoError(t, err)
	assert.False(t, bytes.Equal(b, c))
}

func TestSystem_InvalidCount(t *testing.T) {
	_, err := System().Bytes(0)
	assert.Error(t, err)
	_, err = System().Bytes(-5)
	assert.Error(t, err)
}

// TestSystem_ConcurrentFirstAccess races many readers through the shared
// source. The probe must be idempotent: every caller converges on the same
// backend and none observes partial state.
func TestSystem_ConcurrentFirstAccess(t *testing.T) {
	var g errgroup.Group
	for i := 0; i < 32; i++ {
		g.Go(func() error {
			b, err := System().Bytes(16)
			if err != nil {
				return err
			}
			if len(b) != 16 {
				return assert.AnError
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	name, err := Backend()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestBackend_Stable(t *testing.T) {
	a, err := Backend()
	require.NoError(t, err)
	b, err := Backend()
	require.NoError(t, err)
	assert.Equal(t, a, b, "backend choice is cached for the process lifetime")
}

func TestFixed_Deterministic(t *testing.T) {
	src := Fixed([]byte{0xDE, 0xAD})
	a, err := src.Bytes(5)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xDE, 0xAD, 0xDE}, a)

	b, err := src.Bytes(5)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestFixed_CopiesSeed(t *testing.T) {
	seed := []byte{1, 2, 3}
	src := Fixed(seed)
	seed[0] = 99

	b, err := src.Bytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b, "mutating the caller's seed must not affect the source")
}

func TestFixed_EmptySeed(t *testing.T) {
	_, err := Fixed(nil).Bytes(8)
	require.ErrorIs(t, err, sorterrors.ErrNoEntropySource)
}
