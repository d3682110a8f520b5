package repository

import (
	"context"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// CountCouponUsageByUser đếm đơn của user có coupon_code = code, bỏ qua cancelled/returned
	CountCouponUsageByUser(ctx context.Context, userID uuid.UUID, code string) (int, error)
}
