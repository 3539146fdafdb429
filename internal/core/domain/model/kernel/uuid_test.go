package kernel_test

import (
	"testing"

	"delivr/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new UUID is valid and unique", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		require.NoError(t, b.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("round-trips through string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects malformed string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})

	t.Run("round-trips through bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})
}

func TestGeoPoint(t *testing.T) {
	t.Run("creates point within bounds", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(12.9716, 77.5946)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.InDelta(t, 12.9716, p.Lat(), 1e-9)
		assert.InDelta(t, 77.5946, p.Lng(), 1e-9)
	})

	t.Run("rejects out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(91, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("rejects out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -181)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lng")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint

		require.Error(t, p.Validate())
	})

	t.Run("ZeroGeoPoint is valid", func(t *testing.T) {
		p := kernel.ZeroGeoPoint()

		require.NoError(t, p.Validate())
		assert.Zero(t, p.Lat())
		assert.Zero(t, p.Lng())
	})
}
