package service

import (
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/coupon/model"
)

var hundred = decimal.NewFromInt(100)

// CalculateDiscount tính số tiền giảm
//   - percentage: subtotal × value / 100
//   - fixed: value
//
// Kết quả luôn <= subtotal, làm tròn 2 chữ số (half-up)
func CalculateDiscount(c *model.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsNegative() {
		return decimal.Zero
	}

	var discount decimal.Decimal
	switch c.DiscountType {
	case model.DiscountTypePercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(hundred)
	case model.DiscountTypeFixed:
		discount = c.DiscountValue
	default:
		return decimal.Zero
	}

	// VD: đơn 500, fixed 1000 → chỉ giảm 500
	discount = decimal.Min(discount, subtotal)

	return discount.Round(2)
}
