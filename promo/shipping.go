package promo

// Shipping is priced at total-assembly time, outside the resolver.
const (
	FlatShippingFee       int64 = 49
	FreeShippingThreshold int64 = 1999
)

// ShippingFee returns the delivery charge for a cart with the given base
// subtotal. Shipping is waived once the subtotal crosses the threshold.
func ShippingFee(baseTotal int64) int64 {
	if baseTotal > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
