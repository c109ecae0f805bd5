package promo_test

import (
	"context"
	"testing"

	"garments/catalog"
	"garments/models"
	"garments/promo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Memory {
	return catalog.NewMemory(
		models.Product{ProductID: "tee", Name: "Tee", Price: 500},
		models.Product{ProductID: "jeans", Name: "Jeans", Price: 2000},
		models.Product{ProductID: "kurta", Name: "Kurta", Price: 3000},
		models.Product{ProductID: "odd", Name: "Odd Price", Price: 1005},
	)
}

func line(id string, qty int) models.CartLineItem {
	return models.CartLineItem{ProductID: id, SelectedSize: "M", SelectedColor: "black", Quantity: qty}
}

func TestResolveEmptyCart(t *testing.T) {
	got := promo.Resolve(context.Background(), nil, testCatalog(), promo.DefaultRules())

	assert.Equal(t, int64(0), got.BaseTotal)
	assert.Equal(t, int64(0), got.ComboDiscountAmount)
	assert.Equal(t, int64(0), got.CouponDiscountAmount)
	assert.Empty(t, got.AppliedCouponID)
}

func TestResolveMissingProductContributesZero(t *testing.T) {
	lines := []models.CartLineItem{line("tee", 1), line("ghost", 5)}
	got := promo.Resolve(context.Background(), lines, testCatalog(), promo.DefaultRules())

	assert.Equal(t, int64(500), got.BaseTotal)
}

func TestComboTierSelection(t *testing.T) {
	rules := promo.DefaultRules()
	cases := []struct {
		name      string
		baseQty   int // jeans at 2000 each
		wantCombo int64
	}{
		{"below all tiers", 0, 0},
		{"first tier", 1, 200},   // 2000
		{"middle tier", 2, 450},  // 4000 qualifies 2000 and 3500, picks 450
		{"highest tier", 3, 750}, // 6000
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var lines []models.CartLineItem
			if tc.baseQty > 0 {
				lines = []models.CartLineItem{line("jeans", tc.baseQty)}
			}
			got := promo.Resolve(context.Background(), lines, testCatalog(), rules)
			assert.Equal(t, tc.wantCombo, got.ComboDiscountAmount)
		})
	}
}

func TestComboMaxDiscountWinsOverHighestThreshold(t *testing.T) {
	// Inconsistently authored data: lower threshold carries the bigger
	// reward. Max discount must still win.
	rules := promo.RuleSet{
		Combos: []promo.ComboOffer{
			{ID: "low", Threshold: 1000, Discount: 500},
			{ID: "high", Threshold: 2000, Discount: 300},
		},
	}
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("jeans", 1)}, testCatalog(), rules)
	assert.Equal(t, int64(500), got.ComboDiscountAmount)
}

func TestComboTieKeepsFirstDeclared(t *testing.T) {
	rules := promo.RuleSet{
		Combos: []promo.ComboOffer{
			{ID: "a", Threshold: 1000, Discount: 300},
			{ID: "b", Threshold: 1500, Discount: 300},
		},
	}
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("jeans", 1)}, testCatalog(), rules)
	assert.Equal(t, int64(300), got.ComboDiscountAmount)
}

func TestCouponBestFit(t *testing.T) {
	// jeans x3 = 6000, combo 750 => totalAfterCombo 5250.
	// save10 -> 525, flat200 -> 200, festive15 -> 788. festive15 wins.
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("jeans", 3)}, testCatalog(), promo.DefaultRules())

	require.Equal(t, int64(5250), got.TotalAfterCombo)
	assert.Equal(t, "festive15", got.AppliedCouponID)
	assert.Equal(t, int64(788), got.CouponDiscountAmount) // 787.5 rounds half-up
}

func TestCouponPercentageBeatsSmallerFixed(t *testing.T) {
	rules := promo.RuleSet{
		Coupons: []promo.Coupon{
			{ID: "ten", DiscountType: promo.DiscountPercentage, DiscountValue: 10, MinPurchase: 1000},
			{ID: "flat", DiscountType: promo.DiscountFixed, DiscountValue: 200, MinPurchase: 1999},
			{ID: "fifteen", DiscountType: promo.DiscountPercentage, DiscountValue: 15, MinPurchase: 4999},
		},
	}
	// No combos: totalAfterCombo = 5200.
	cat := catalog.NewMemory(models.Product{ProductID: "p", Price: 5200})
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("p", 1)}, cat, rules)

	assert.Equal(t, "fifteen", got.AppliedCouponID)
	assert.Equal(t, int64(780), got.CouponDiscountAmount)
}

func TestCouponNoneQualify(t *testing.T) {
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("tee", 1)}, testCatalog(), promo.DefaultRules())

	assert.Empty(t, got.AppliedCouponID)
	assert.Equal(t, int64(0), got.CouponDiscountAmount)
}

func TestCouponRoundsHalfUp(t *testing.T) {
	rules := promo.RuleSet{
		Coupons: []promo.Coupon{
			{ID: "ten", DiscountType: promo.DiscountPercentage, DiscountValue: 10, MinPurchase: 0},
		},
	}
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("odd", 1)}, testCatalog(), rules)

	// 10% of 1005 = 100.5 -> 101
	assert.Equal(t, int64(101), got.CouponDiscountAmount)
}

func TestCouponTieKeepsFirstDeclared(t *testing.T) {
	rules := promo.RuleSet{
		Coupons: []promo.Coupon{
			{ID: "first", DiscountType: promo.DiscountFixed, DiscountValue: 150, MinPurchase: 0},
			{ID: "second", DiscountType: promo.DiscountFixed, DiscountValue: 150, MinPurchase: 0},
		},
	}
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("tee", 1)}, testCatalog(), rules)
	assert.Equal(t, "first", got.AppliedCouponID)
}

func TestEndToEndScenario(t *testing.T) {
	// Cart of one ₹3000 kurta: combo ladder gives the 2000-tier ₹200,
	// totalAfterCombo 2800, save10 (280) beats flat200, shipping waived
	// above the free threshold.
	got := promo.Resolve(context.Background(), []models.CartLineItem{line("kurta", 1)}, testCatalog(), promo.DefaultRules())

	require.Equal(t, int64(3000), got.BaseTotal)
	assert.Equal(t, int64(200), got.ComboDiscountAmount)
	assert.Equal(t, int64(2800), got.TotalAfterCombo)
	assert.Equal(t, "save10", got.AppliedCouponID)
	assert.Equal(t, int64(280), got.CouponDiscountAmount)

	fee := promo.ShippingFee(got.BaseTotal)
	assert.Equal(t, int64(0), fee)
	assert.Equal(t, int64(2520), got.TotalAfterCombo-got.CouponDiscountAmount+fee)
}

func TestShippingFee(t *testing.T) {
	assert.Equal(t, promo.FlatShippingFee, promo.ShippingFee(500))
	assert.Equal(t, promo.FlatShippingFee, promo.ShippingFee(promo.FreeShippingThreshold))
	assert.Equal(t, int64(0), promo.ShippingFee(promo.FreeShippingThreshold+1))
}
