package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCouponAboveThreshold(t *testing.T) {
	order := &Order{TotalAmount: 130, PaymentStatus: PaymentPending}

	discount, err := ApplyCoupon(order)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, discount, 1e-9)
}

func TestApplyCouponRejectsAtOrBelowThreshold(t *testing.T) {
	order := &Order{TotalAmount: 100, PaymentStatus: PaymentPending}
	_, err := ApplyCoupon(order)
	assert.ErrorIs(t, err, ErrCouponBelowMinimum)

	order.TotalAmount = 99.5
	_, err = ApplyCoupon(order)
	assert.ErrorIs(t, err, ErrCouponBelowMinimum)
}

func TestApplyCouponOnlyOnce(t *testing.T) {
	order := &Order{TotalAmount: 130, PaymentStatus: PaymentPending}

	discount, err := ApplyCoupon(order)
	require.NoError(t, err)
	order.Discount = discount
	order.CouponApplied = true

	_, err = ApplyCoupon(order)
	assert.ErrorIs(t, err, ErrCouponApplied)
	assert.InDelta(t, 100.0, order.Discount, 1e-9)
}

func TestApplyCouponRejectedAfterPayment(t *testing.T) {
	order := &Order{TotalAmount: 130, PaymentStatus: PaymentPaid}
	_, err := ApplyCoupon(order)
	assert.ErrorIs(t, err, ErrCouponAfterPayment)
}

func TestPayableAmount(t *testing.T) {
	order := &Order{TotalAmount: 130, Discount: 100}
	assert.InDelta(t, 30.0, PayableAmount(order), 1e-9)

	order.Discount = 0
	assert.InDelta(t, 130.0, PayableAmount(order), 1e-9)
}
