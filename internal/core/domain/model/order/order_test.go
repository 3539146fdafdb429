package order_test

import (
	"strings"
	"testing"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, quantity int, unitPrice int64) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, quantity, unitPrice, nil)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("12 MG Road", "Indiranagar", "Bengaluru", "560038")
	require.NoError(t, err)
	return addr
}

// newTestOrder builds a confirmed, unclaimed order worth 500 + 40 + 25 = 565.
func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	items := []order.Item{
		mustItem(t, "Paneer Tikka", 2, 150),
		mustItem(t, "Garlic Naan", 4, 50),
	}
	totals, err := order.NewTotals(500, 40, 25, 0)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		items,
		mustAddress(t),
		totals,
		order.PaymentMethodUPI,
		"ring the bell twice",
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should start confirmed with completed payment and no partner", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, order.PaymentStatusCompleted, o.PaymentStatus())
		assert.Nil(t, o.DeliveryPartner())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, int64(565), o.Totals().GrandTotal())
		assert.Equal(t, "ring the bell twice", o.SpecialInstructions())
	})

	t.Run("should generate a well formed reference", func(t *testing.T) {
		o := newTestOrder(t)

		ref := o.Reference()
		require.NoError(t, ref.Validate())
		assert.True(t, strings.HasPrefix(ref.String(), "ORD"))
	})

	t.Run("should generate distinct references per order", func(t *testing.T) {
		seen := make(map[order.Reference]bool)
		for range 20 {
			seen[newTestOrder(t).Reference()] = true
		}
		assert.Greater(t, len(seen), 1)
	})

	t.Run("should fail without items", func(t *testing.T) {
		totals, err := order.NewTotals(0, 40, 0, 0)
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil, mustAddress(t), totals, order.PaymentMethodCOD, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail when subtotal disagrees with line totals", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Masala Dosa", 1, 120)}
		totals, err := order.NewTotals(999, 40, 25, 0)
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items, mustAddress(t), totals, order.PaymentMethodUPI, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with an invalid customer id", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Masala Dosa", 1, 120)}
		totals, err := order.NewTotals(120, 40, 0, 0)
		require.NoError(t, err)

		var invalidID kernel.UUID
		o, err := order.NewOrder(
			kernel.NewUUID(), invalidID, kernel.NewUUID(),
			items, mustAddress(t), totals, order.PaymentMethodUPI, "")

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
	})
}

func TestOrder_Claim(t *testing.T) {
	t.Run("should assign partner and move to preparing", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()

		err := o.Claim(partnerID)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPreparing, o.Status())
		require.NotNil(t, o.DeliveryPartner())
		assert.True(t, o.DeliveryPartner().IsEqual(partnerID))
	})

	t.Run("should reject a second claim even by the same partner", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.Claim(partnerID))

		err := o.Claim(partnerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectAlreadyAssigned)
		assert.True(t, o.DeliveryPartner().IsEqual(partnerID))
	})

	t.Run("should reject claiming a cancelled order", func(t *testing.T) {
		o := newTestOrder(t)
		_, err := o.Cancel()
		require.NoError(t, err)

		err = o.Claim(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject an invalid partner id", func(t *testing.T) {
		o := newTestOrder(t)
		var invalidID kernel.UUID

		err := o.Claim(invalidID)

		require.Error(t, err)
		assert.Nil(t, o.DeliveryPartner())
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("should stamp deliveredAt exactly once on delivery", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(kernel.NewUUID()))

		for _, next := range []order.Status{
			order.StatusReady,
			order.StatusPickedUp,
			order.StatusOutForDelivery,
		} {
			require.NoError(t, o.AdvanceTo(next))
			assert.Nil(t, o.DeliveredAt())
		}

		require.NoError(t, o.AdvanceTo(order.StatusDelivered))
		first := o.DeliveredAt()
		require.NotNil(t, first)

		err := o.AdvanceTo(order.StatusDelivered)
		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, *first, *o.DeliveredAt())
	})

	t.Run("should reject skipping preparation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AdvanceTo(order.StatusOutForDelivery)

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.StatusConfirmed, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should release the assigned partner", func(t *testing.T) {
		o := newTestOrder(t)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.Claim(partnerID))

		previous, err := o.Cancel()

		require.NoError(t, err)
		require.NotNil(t, previous)
		assert.True(t, previous.IsEqual(partnerID))
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Nil(t, o.DeliveryPartner())
	})

	t.Run("should cancel an unclaimed order without a partner", func(t *testing.T) {
		o := newTestOrder(t)

		previous, err := o.Cancel()

		require.NoError(t, err)
		assert.Nil(t, previous)
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should reject cancelling a delivered order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(kernel.NewUUID()))
		for _, next := range []order.Status{
			order.StatusReady, order.StatusPickedUp,
			order.StatusOutForDelivery, order.StatusDelivered,
		} {
			require.NoError(t, o.AdvanceTo(next))
		}

		_, err := o.Cancel()

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestOrder_Reassign(t *testing.T) {
	t.Run("should swap partners and return the replaced one", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()
		require.NoError(t, o.Claim(first))

		previous, err := o.Reassign(second)

		require.NoError(t, err)
		require.NotNil(t, previous)
		assert.True(t, previous.IsEqual(first))
		assert.True(t, o.DeliveryPartner().IsEqual(second))
		assert.Equal(t, order.StatusPreparing, o.Status())
	})

	t.Run("should reject reassigning an unclaimed order", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Reassign(kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject reassigning a terminal order", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Claim(kernel.NewUUID()))
		_, err := o.Cancel()
		require.NoError(t, err)

		_, err = o.Reassign(kernel.NewUUID())

		assert.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild an order in any lifecycle state", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		items := []order.Item{mustItem(t, "Veg Biryani", 1, 220)}
		totals, err := order.NewTotals(220, 40, 13, 0)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			order.NewReference(),
			kernel.NewUUID(),
			kernel.NewUUID(),
			&partnerID,
			items,
			mustAddress(t),
			totals,
			order.PaymentMethodCOD,
			order.PaymentStatusCompleted,
			order.StatusPickedUp,
			"",
			nil,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.StatusPickedUp, o.Status())
		assert.True(t, o.DeliveryPartner().IsEqual(partnerID))
	})

	t.Run("should reject a malformed reference", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Veg Biryani", 1, 220)}
		totals, err := order.NewTotals(220, 40, 13, 0)
		require.NoError(t, err)

		_, err = order.RestoreOrder(
			kernel.NewUUID(),
			order.Reference("not-a-reference"),
			kernel.NewUUID(),
			kernel.NewUUID(),
			nil,
			items,
			mustAddress(t),
			totals,
			order.PaymentMethodCOD,
			order.PaymentStatusCompleted,
			order.StatusConfirmed,
			"",
			nil,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
