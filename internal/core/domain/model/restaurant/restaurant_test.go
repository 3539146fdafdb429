package restaurant_test

import (
	"testing"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/restaurant"
	"delivr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestaurant(t *testing.T) {
	location, err := kernel.NewGeoPoint(12.9352, 77.6245)
	require.NoError(t, err)

	t.Run("should create a valid restaurant", func(t *testing.T) {
		r, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "Spice Garden", "North Indian", "45 Koramangala", location, 4.2, true)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, "Spice Garden", r.Name())
		assert.True(t, r.IsOpen())
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "", "North Indian", "45 Koramangala", location, 4.2, true)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject an out of range rating", func(t *testing.T) {
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), "Spice Garden", "North Indian", "45 Koramangala", location, 5.5, true)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create a valid menu item", func(t *testing.T) {
		m, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(),
			"Paneer Tikka", "Char-grilled cottage cheese", 150, "Starters", true, true)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, int64(150), m.Price())
		assert.True(t, m.IsVeg())
	})

	t.Run("should reject a negative price", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Paneer Tikka", "", -1, "", true, true)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a missing name", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "", "", 150, "", true, true)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
