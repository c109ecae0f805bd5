package orders

import (
	"time"

	"garments/models"
)

// Order status values. The lifecycle is linear and forward-only, with a
// side transition to Cancelled permitted until the parcel is out for
// delivery.
const (
	StatusProcessing     = "Processing"
	StatusPacked         = "Packed"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var forward = map[string]string{
	StatusProcessing:     StatusPacked,
	StatusPacked:         StatusShipped,
	StatusShipped:        StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

// stepIndex maps a status to the tracking step it completes.
var stepIndex = map[string]int{
	StatusPacked:         1,
	StatusShipped:        2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// CanCancel reports whether an order in the given status may still be
// cancelled. Cancellation is blocked once the order is out for delivery
// or already terminal.
func CanCancel(status string) bool {
	switch status {
	case StatusProcessing, StatusPacked, StatusShipped:
		return true
	}
	return false
}

// Cancel transitions the order to Cancelled, recording the optional
// reason. Returns false (and leaves the order untouched) when the
// boundary forbids it.
func Cancel(o *models.Order, reason string) bool {
	if !CanCancel(o.Status) {
		return false
	}
	o.Status = StatusCancelled
	o.CancelReason = reason
	return true
}

// Advance moves the order one step forward and completes the matching
// tracking step. Terminal orders do not advance.
func Advance(o *models.Order) bool {
	next, ok := forward[o.Status]
	if !ok {
		return false
	}
	o.Status = next
	completeStep(o, stepIndex[next])
	return true
}

// MarkDelivered forces the order to Delivered and completes every
// remaining tracking step with a timestamp. A cancelled order stays
// cancelled.
func MarkDelivered(o *models.Order) bool {
	if o.Status == StatusCancelled || o.Status == StatusDelivered {
		return false
	}
	o.Status = StatusDelivered
	now := time.Now()
	for i := range o.TrackingSteps {
		if !o.TrackingSteps[i].IsCompleted {
			o.TrackingSteps[i].IsCompleted = true
			o.TrackingSteps[i].Date = &now
		}
	}
	// DeliveryDate carries the estimate until the parcel lands, then the
	// actual delivery time.
	o.DeliveryDate = now
	return true
}

func completeStep(o *models.Order, idx int) {
	if idx < 0 || idx >= len(o.TrackingSteps) {
		return
	}
	if !o.TrackingSteps[idx].IsCompleted {
		now := time.Now()
		o.TrackingSteps[idx].IsCompleted = true
		o.TrackingSteps[idx].Date = &now
	}
}
