package orders_test

import (
	"context"
	"strings"
	"testing"

	"garments/cart"
	"garments/catalog"
	"garments/models"
	"garments/orders"
	"garments/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleTrackingSequence(t *testing.T) {
	o := placedOrder()

	labels := make([]string, len(o.TrackingSteps))
	for i, s := range o.TrackingSteps {
		labels[i] = s.Label
	}
	assert.Equal(t, []string{"Order Accepted", "Packed", "Shipped", "Out for Delivery", "Delivered"}, labels)

	assert.True(t, o.TrackingSteps[0].IsCompleted)
	assert.NotNil(t, o.TrackingSteps[0].Date)
	for _, s := range o.TrackingSteps[1:] {
		assert.False(t, s.IsCompleted)
		assert.Nil(t, s.Date)
	}
}

func TestAssembleTotalsAndMetadata(t *testing.T) {
	resolved := models.ResolvedDiscount{
		BaseTotal:            3000,
		ComboDiscountAmount:  200,
		TotalAfterCombo:      2800,
		AppliedCouponID:      "save10",
		CouponDiscountAmount: 280,
	}
	o := orders.Assemble("user-1",
		[]models.PurchasedItem{{ProductID: "kurta", Quantity: 1, PriceAtPurchase: 3000}},
		models.ShippingAddress{FullName: "A Kumar", City: "Pune", Pincode: "411001", Country: "India"},
		resolved, 0)

	assert.True(t, strings.HasPrefix(o.OrderID, "ORD-"))
	assert.Equal(t, orders.StatusProcessing, o.Status)
	assert.Equal(t, int64(2520), o.Total)
	assert.Equal(t, int64(480), o.DiscountAmount)
	assert.Equal(t, "save10", o.AppliedCoupon)
	assert.Equal(t, "COD", o.PaymentMethod)
	assert.True(t, o.DeliveryDate.After(o.Date))
}

func TestAssembleGeneratesUniqueIDs(t *testing.T) {
	a := placedOrder()
	b := placedOrder()
	assert.NotEqual(t, a.OrderID, b.OrderID)
}

func TestOrderPriceFreeze(t *testing.T) {
	cat := catalog.NewMemory(models.Product{ProductID: "kurta", Name: "Kurta", Price: 3000})
	svc := cart.NewService("user-1", cat, promo.DefaultRules())
	svc.AddItem("kurta", "M", "maroon", 1)

	order, err := svc.Checkout(func(items []models.PurchasedItem, resolved models.ResolvedDiscount) (models.Order, error) {
		return orders.Assemble("user-1", items, models.ShippingAddress{}, resolved, promo.ShippingFee(resolved.BaseTotal)), nil
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Equal(t, int64(3000), order.Items[0].PriceAtPurchase)

	// Catalog price changes after placement must not touch the order.
	cat.Upsert(models.Product{ProductID: "kurta", Name: "Kurta", Price: 4500})
	p, ok := cat.GetProduct(context.Background(), "kurta")
	require.True(t, ok)
	require.Equal(t, int64(4500), p.Price)

	assert.Equal(t, int64(3000), order.Items[0].PriceAtPurchase)
	assert.Equal(t, int64(2520), order.Total)
}

func TestCheckoutAssemblesFromResolvedSnapshot(t *testing.T) {
	cat := catalog.NewMemory(
		models.Product{ProductID: "jeans", Name: "Jeans", Price: 2000},
	)
	svc := cart.NewService("user-1", cat, promo.DefaultRules())
	svc.AddItem("jeans", "32", "indigo", 2) // base 4000, combo 450, after 3550, save10 -> 355

	order, err := svc.Checkout(func(items []models.PurchasedItem, resolved models.ResolvedDiscount) (models.Order, error) {
		return orders.Assemble("user-1", items, models.ShippingAddress{}, resolved, promo.ShippingFee(resolved.BaseTotal)), nil
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3550-355), order.Total)
	assert.Equal(t, int64(0), order.ShippingFee)
	assert.Empty(t, svc.Items(), "cart clears with placement")
}
