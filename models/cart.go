package models

// CartLineItem is a single cart entry, uniquely keyed by
// (productId, selectedSize, selectedColor). Quantity is always >= 1;
// a line that would reach zero is removed, never kept.
type CartLineItem struct {
	ProductID     string `json:"productId" bson:"productid"`
	SelectedSize  string `json:"selectedSize" bson:"selectedsize"`
	SelectedColor string `json:"selectedColor" bson:"selectedcolor"`
	Quantity      int    `json:"quantity" bson:"quantity"`
}

// SameKey reports whether two lines refer to the same product variant.
func (li CartLineItem) SameKey(other CartLineItem) bool {
	return li.ProductID == other.ProductID &&
		li.SelectedSize == other.SelectedSize &&
		li.SelectedColor == other.SelectedColor
}

// ResolvedDiscount is the always-fresh output of running the promotion
// rules against the current cart. It is recomputed wholesale after every
// cart mutation and never patched incrementally.
type ResolvedDiscount struct {
	BaseTotal            int64  `json:"baseTotal" bson:"basetotal"`
	ComboDiscountAmount  int64  `json:"comboDiscountAmount" bson:"combodiscountamount"`
	AppliedCouponID      string `json:"appliedCouponId,omitempty" bson:"appliedcouponid,omitempty"`
	CouponDiscountAmount int64  `json:"couponDiscountAmount" bson:"coupondiscountamount"`
	TotalAfterCombo      int64  `json:"totalAfterCombo" bson:"totalaftercombo"`
}

// CartSnapshot is the persisted shape of a user's cart.
type CartSnapshot struct {
	UserID   string         `json:"userId" bson:"userId"`
	Items    []CartLineItem `json:"items" bson:"items"`
	Wishlist []string       `json:"wishlist" bson:"wishlist"`
}
