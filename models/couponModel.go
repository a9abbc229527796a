package models

import "errors"

// SAVE10 is the only coupon: a flat discount for orders above the threshold,
// applied at most once per order.
const (
	CouponCode      = "SAVE10"
	CouponDiscount  = 100.0
	CouponThreshold = 100.0
)

var (
	ErrCouponBelowMinimum = errors.New("coupon can only be applied for orders above the minimum amount")
	ErrCouponApplied      = errors.New("coupon already applied")
	ErrCouponAfterPayment = errors.New("coupon cannot be applied after payment")
)

// ApplyCoupon returns the discount to record on the order, or the reason it
// cannot be applied. TotalAmount itself stays pre-discount; the payable
// amount is derived at payment time.
func ApplyCoupon(order *Order) (float64, error) {
	if order.PaymentStatus == PaymentPaid {
		return 0, ErrCouponAfterPayment
	}
	if order.CouponApplied {
		return 0, ErrCouponApplied
	}
	if order.TotalAmount <= CouponThreshold {
		return 0, ErrCouponBelowMinimum
	}
	return CouponDiscount, nil
}

// PayableAmount is what the customer is actually charged.
func PayableAmount(order *Order) float64 {
	return order.TotalAmount - order.Discount
}
