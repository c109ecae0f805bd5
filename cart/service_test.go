package cart_test

import (
	"errors"
	"testing"

	"garments/cart"
	"garments/catalog"
	"garments/models"
	"garments/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*cart.Service, *catalog.Memory) {
	cat := catalog.NewMemory(
		models.Product{ProductID: "tee", Name: "Tee", Price: 500},
		models.Product{ProductID: "jeans", Name: "Jeans", Price: 2000},
		models.Product{ProductID: "kurta", Name: "Kurta", Price: 3000},
	)
	return cart.NewService("user-1", cat, promo.DefaultRules()), cat
}

func TestAddItemMergesOnVariantKey(t *testing.T) {
	svc, _ := newTestService()

	svc.AddItem("tee", "M", "black", 2)
	svc.AddItem("tee", "M", "black", 3)

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemDifferentVariantsStaySeparate(t *testing.T) {
	svc, _ := newTestService()

	svc.AddItem("tee", "M", "black", 1)
	svc.AddItem("tee", "L", "black", 1)
	svc.AddItem("tee", "M", "white", 1)

	assert.Len(t, svc.Items(), 3)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newTestService()

	svc.AddItem("tee", "M", "black", 0)
	svc.AddItem("tee", "M", "black", -4)

	assert.Empty(t, svc.Items())
}

func TestAdjustQuantityFloorsAtOne(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("tee", "M", "black", 3)

	svc.AdjustQuantity("tee", "M", "black", -100)

	items := svc.Items()
	require.Len(t, items, 1, "clamped item must not be removed")
	assert.Equal(t, 1, items[0].Quantity)
}

func TestAdjustQuantityOnMissingKeyIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("tee", "M", "black", 1)

	before := svc.Resolved()
	after := svc.AdjustQuantity("ghost", "M", "black", 5)

	assert.Equal(t, before, after)
	assert.Len(t, svc.Items(), 1)
}

func TestRemoveItemMissingKeyIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("tee", "M", "black", 1)

	svc.RemoveItem("tee", "XL", "black")

	assert.Len(t, svc.Items(), 1)
}

func TestRecomputationAfterEveryMutation(t *testing.T) {
	svc, _ := newTestService()

	// jeans x1 = 2000: first combo tier applies.
	resolved := svc.AddItem("jeans", "32", "indigo", 1)
	assert.Equal(t, int64(200), resolved.ComboDiscountAmount)

	// jeans x2 = 4000: middle tier.
	resolved = svc.AdjustQuantity("jeans", "32", "indigo", 1)
	assert.Equal(t, int64(450), resolved.ComboDiscountAmount)

	// Removing the line must drop every discount immediately; nothing
	// from the prior state may survive.
	resolved = svc.RemoveItem("jeans", "32", "indigo")
	assert.Equal(t, int64(0), resolved.ComboDiscountAmount)
	assert.Empty(t, resolved.AppliedCouponID)
	assert.Equal(t, int64(0), resolved.BaseTotal)
}

func TestClearResetsResolvedState(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("kurta", "M", "maroon", 2)
	require.NotZero(t, svc.Resolved().ComboDiscountAmount)

	resolved := svc.Clear()

	assert.Empty(t, svc.Items())
	assert.Equal(t, models.ResolvedDiscount{}, resolved)
}

func TestToggleWishlist(t *testing.T) {
	svc, _ := newTestService()

	assert.True(t, svc.ToggleWishlist("tee"))
	assert.ElementsMatch(t, []string{"tee"}, svc.Wishlist())

	assert.False(t, svc.ToggleWishlist("tee"))
	assert.Empty(t, svc.Wishlist())
}

func TestWishlistDoesNotAffectDiscounts(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("jeans", "32", "indigo", 1)
	before := svc.Resolved()

	svc.ToggleWishlist("kurta")

	assert.Equal(t, before, svc.Resolved())
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Checkout(func([]models.PurchasedItem, models.ResolvedDiscount) (models.Order, error) {
		t.Fatal("assemble must not run for an empty cart")
		return models.Order{}, nil
	})

	assert.ErrorIs(t, err, cart.ErrEmptyCart)
}

func TestCheckoutFailureKeepsCart(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("tee", "M", "black", 2)

	_, err := svc.Checkout(func([]models.PurchasedItem, models.ResolvedDiscount) (models.Order, error) {
		return models.Order{}, errors.New("insert failed")
	})

	require.Error(t, err)
	assert.Len(t, svc.Items(), 1, "failed checkout must not clear the cart")
	assert.Equal(t, int64(1000), svc.Resolved().BaseTotal)
}

func TestCheckoutClearsCartAndResolvedState(t *testing.T) {
	svc, _ := newTestService()
	svc.AddItem("kurta", "M", "maroon", 1)

	var seenItems []models.PurchasedItem
	var seenResolved models.ResolvedDiscount
	order, err := svc.Checkout(func(items []models.PurchasedItem, resolved models.ResolvedDiscount) (models.Order, error) {
		seenItems = items
		seenResolved = resolved
		return models.Order{OrderID: "ORD-test"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-test", order.OrderID)

	require.Len(t, seenItems, 1)
	assert.Equal(t, int64(3000), seenItems[0].PriceAtPurchase)
	assert.Equal(t, int64(200), seenResolved.ComboDiscountAmount)

	// Cart and discount state reset in the same step as placement.
	assert.Empty(t, svc.Items())
	resolved := svc.Resolved()
	assert.Equal(t, int64(0), resolved.ComboDiscountAmount)
	assert.Empty(t, resolved.AppliedCouponID)
}

func TestRestoreDropsInvalidLines(t *testing.T) {
	svc, _ := newTestService()
	svc.Restore(models.CartSnapshot{
		UserID: "user-1",
		Items: []models.CartLineItem{
			{ProductID: "tee", SelectedSize: "M", SelectedColor: "black", Quantity: 2},
			{ProductID: "jeans", SelectedSize: "32", SelectedColor: "indigo", Quantity: 0},
		},
		Wishlist: []string{"kurta"},
	})

	require.Len(t, svc.Items(), 1)
	assert.Equal(t, "tee", svc.Items()[0].ProductID)
	assert.ElementsMatch(t, []string{"kurta"}, svc.Wishlist())
	assert.Equal(t, int64(1000), svc.Resolved().BaseTotal)
}
