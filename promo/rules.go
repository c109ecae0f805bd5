package promo

// DiscountType enumerates the supported coupon discount strategies.
type DiscountType string

const (
	// DiscountPercentage applies a percentage of the post-combo subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed applies a flat amount.
	DiscountFixed DiscountType = "fixed"
)

// ComboOffer is a flat reward unlocked once the cart subtotal crosses
// Threshold. Offers form a non-stacking ladder: only the single best
// qualifying offer applies.
type ComboOffer struct {
	ID        string `json:"id"`
	Threshold int64  `json:"threshold"`
	Discount  int64  `json:"discount"`
	Label     string `json:"label"`
}

// Coupon is an automatically applied discount requiring a minimum
// post-combo subtotal. At most one coupon is active at a time.
type Coupon struct {
	ID            string       `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
	MinPurchase   int64        `json:"minPurchase"`
}

// RuleSet holds the ordered promotion catalogs. Declaration order is the
// tie-breaker, so the slices are consulted in order and never re-sorted.
type RuleSet struct {
	Combos  []ComboOffer
	Coupons []Coupon
}

// DefaultRules is the storefront's live promotion data. Thresholds and
// discounts are authored co-monotonic: a higher threshold always carries
// a higher reward. The resolver does not enforce this.
func DefaultRules() RuleSet {
	return RuleSet{
		Combos: []ComboOffer{
			{ID: "combo-2000", Threshold: 2000, Discount: 200, Label: "₹200 off on orders above ₹2000"},
			{ID: "combo-3500", Threshold: 3500, Discount: 450, Label: "₹450 off on orders above ₹3500"},
			{ID: "combo-5000", Threshold: 5000, Discount: 750, Label: "₹750 off on orders above ₹5000"},
		},
		Coupons: []Coupon{
			{ID: "save10", Code: "SAVE10", DiscountType: DiscountPercentage, DiscountValue: 10, MinPurchase: 1000},
			{ID: "flat200", Code: "FLAT200", DiscountType: DiscountFixed, DiscountValue: 200, MinPurchase: 1999},
			{ID: "festive15", Code: "FESTIVE15", DiscountType: DiscountPercentage, DiscountValue: 15, MinPurchase: 4999},
		},
	}
}
