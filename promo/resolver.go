package promo

import (
	"context"

	"garments/models"
)

// Lookup resolves a product id to its catalog record. A miss returns
// ok == false and must never be treated as an error here.
type Lookup interface {
	GetProduct(ctx context.Context, productID string) (models.Product, bool)
}

// Resolve computes the single best combo offer and the single best coupon
// for the given cart. It is a pure function of its inputs and runs to
// completion synchronously; callers replace their resolved state
// wholesale with the result after every cart mutation.
func Resolve(ctx context.Context, lines []models.CartLineItem, lookup Lookup, rules RuleSet) models.ResolvedDiscount {
	var base int64
	for _, li := range lines {
		product, ok := lookup.GetProduct(ctx, li.ProductID)
		if !ok {
			// Unknown products contribute nothing rather than failing resolution.
			continue
		}
		base += product.Price * int64(li.Quantity)
	}

	combo := bestCombo(base, rules.Combos)
	afterCombo := base - combo

	couponID, couponAmount := bestCoupon(afterCombo, rules.Coupons)

	return models.ResolvedDiscount{
		BaseTotal:            base,
		ComboDiscountAmount:  combo,
		AppliedCouponID:      couponID,
		CouponDiscountAmount: couponAmount,
		TotalAfterCombo:      afterCombo,
	}
}

// bestCombo picks the qualifying offer with the maximum discount value,
// not the highest threshold. Ties keep the first-declared offer.
func bestCombo(baseTotal int64, offers []ComboOffer) int64 {
	var best int64
	for _, offer := range offers {
		if offer.Threshold <= baseTotal && offer.Discount > best {
			best = offer.Discount
		}
	}
	return best
}

// bestCoupon picks the qualifying coupon with the strictly greatest
// candidate discount. Ties keep the first-declared coupon.
func bestCoupon(afterCombo int64, coupons []Coupon) (string, int64) {
	var bestID string
	var best int64
	for _, c := range coupons {
		if c.MinPurchase > afterCombo {
			continue
		}
		candidate := couponAmount(c, afterCombo)
		if candidate > best {
			best = candidate
			bestID = c.ID
		}
	}
	return bestID, best
}

func couponAmount(c Coupon, afterCombo int64) int64 {
	switch c.DiscountType {
	case DiscountPercentage:
		// Round half-up to the nearest whole rupee.
		return (afterCombo*c.DiscountValue + 50) / 100
	case DiscountFixed:
		return c.DiscountValue
	}
	return 0
}
