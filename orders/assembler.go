package orders

import (
	"time"

	"garments/models"

	"github.com/google/uuid"
)

// trackingLabels is the fixed five-step fulfillment sequence, in order.
var trackingLabels = []string{
	"Order Accepted",
	"Packed",
	"Shipped",
	"Out for Delivery",
	"Delivered",
}

const deliveryEstimateDays = 5

// Assemble converts a confirmed checkout into an immutable order. The
// item list and each PriceAtPurchase are frozen here; later catalog
// edits never touch a placed order. Payment is Cash-on-Delivery only.
func Assemble(userID string, items []models.PurchasedItem, address models.ShippingAddress, resolved models.ResolvedDiscount, shippingFee int64) models.Order {
	now := time.Now()

	steps := make([]models.TrackingStep, len(trackingLabels))
	for i, label := range trackingLabels {
		steps[i] = models.TrackingStep{Label: label}
	}
	steps[0].IsCompleted = true
	steps[0].Date = &now

	frozen := make([]models.PurchasedItem, len(items))
	copy(frozen, items)

	return models.Order{
		OrderID:         "ORD-" + uuid.NewString(),
		UserID:          userID,
		Date:            now,
		Items:           frozen,
		Total:           resolved.TotalAfterCombo - resolved.CouponDiscountAmount + shippingFee,
		Status:          StatusProcessing,
		AppliedCoupon:   resolved.AppliedCouponID,
		DiscountAmount:  resolved.ComboDiscountAmount + resolved.CouponDiscountAmount,
		ShippingFee:     shippingFee,
		PaymentMethod:   "COD",
		ShippingAddress: address,
		DeliveryDate:    now.AddDate(0, 0, deliveryEstimateDays),
		TrackingSteps:   steps,
	}
}
