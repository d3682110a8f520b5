package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-backend/internal/domains/coupon/model"
)

func TestCalculateDiscount(t *testing.T) {
	d := decimal.RequireFromString

	tests := []struct {
		name     string
		coupon   model.Coupon
		subtotal string
		want     string
	}{
		{"percentage", model.Coupon{DiscountType: model.DiscountTypePercentage, DiscountValue: d("10")}, "2000", "200"},
		{"percentage rounds half up", model.Coupon{DiscountType: model.DiscountTypePercentage, DiscountValue: d("15")}, "99.99", "15"},
		{"percentage over 100 clamps", model.Coupon{DiscountType: model.DiscountTypePercentage, DiscountValue: d("150")}, "80", "80"},
		{"fixed", model.Coupon{DiscountType: model.DiscountTypeFixed, DiscountValue: d("100")}, "500", "100"},
		{"fixed clamps to subtotal", model.Coupon{DiscountType: model.DiscountTypeFixed, DiscountValue: d("1000")}, "500", "500"},
		{"zero subtotal", model.Coupon{DiscountType: model.DiscountTypeFixed, DiscountValue: d("50")}, "0", "0"},
		{"unknown type", model.Coupon{DiscountType: "bogus", DiscountValue: d("50")}, "500", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDiscount(&tt.coupon, d(tt.subtotal))
			assert.True(t, d(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestCalculateDiscount_NeverExceedsSubtotal(t *testing.T) {
	subtotals := []string{"0.01", "1", "49.99", "500", "12345.67"}
	coupons := []model.Coupon{
		{DiscountType: model.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(100)},
		{DiscountType: model.DiscountTypePercentage, DiscountValue: decimal.NewFromInt(250)},
		{DiscountType: model.DiscountTypeFixed, DiscountValue: decimal.NewFromInt(99999)},
	}

	for _, s := range subtotals {
		sub := decimal.RequireFromString(s)
		for i := range coupons {
			got := CalculateDiscount(&coupons[i], sub)
			assert.True(t, got.LessThanOrEqual(sub), "subtotal %s discount %s", s, got)
		}
	}
}
