package models

import "time"

// ShippingAddress is the checkout address form payload.
type ShippingAddress struct {
	FullName string `json:"fullName" bson:"fullname"`
	Mobile   string `json:"mobile" bson:"mobile"`
	Street   string `json:"street" bson:"street"`
	Village  string `json:"village,omitempty" bson:"village,omitempty"`
	City     string `json:"city" bson:"city"`
	Pincode  string `json:"pincode" bson:"pincode"`
	Country  string `json:"country" bson:"country"`
}

// PurchasedItem is a line item frozen at order time. PriceAtPurchase is
// captured once and never re-read from the live catalog.
type PurchasedItem struct {
	ProductID       string `json:"productId" bson:"productid"`
	Name            string `json:"name" bson:"name"`
	SelectedSize    string `json:"selectedSize" bson:"selectedsize"`
	SelectedColor   string `json:"selectedColor" bson:"selectedcolor"`
	Quantity        int    `json:"quantity" bson:"quantity"`
	PriceAtPurchase int64  `json:"priceAtPurchase" bson:"priceatpurchase"`
}

// TrackingStep is one stage of the fixed fulfillment sequence.
type TrackingStep struct {
	Label       string     `json:"label" bson:"label"`
	IsCompleted bool       `json:"isCompleted" bson:"iscompleted"`
	Date        *time.Time `json:"date,omitempty" bson:"date,omitempty"`
}

// Order is created once at checkout and thereafter mutated only through
// the status machine (cancel, advance, mark delivered).
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	UserID          string          `json:"userId" bson:"userId"`
	Date            time.Time       `json:"date" bson:"date"`
	Items           []PurchasedItem `json:"items" bson:"items"`
	Total           int64           `json:"total" bson:"total"`
	Status          string          `json:"status" bson:"status"`
	AppliedCoupon   string          `json:"appliedCoupon,omitempty" bson:"appliedcoupon,omitempty"`
	DiscountAmount  int64           `json:"discountAmount" bson:"discountamount"`
	ShippingFee     int64           `json:"shippingFee" bson:"shippingfee"`
	PaymentMethod   string          `json:"paymentMethod" bson:"paymentmethod"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingaddress"`
	DeliveryDate    time.Time       `json:"deliveryDate" bson:"deliverydate"`
	TrackingSteps   []TrackingStep  `json:"trackingSteps" bson:"trackingsteps"`
	CancelReason    string          `json:"cancelReason,omitempty" bson:"cancelreason,omitempty"`
}
