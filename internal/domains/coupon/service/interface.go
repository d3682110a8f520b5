package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/coupon/model"
)

type ServiceInterface interface {
	// ValidateCoupon chạy toàn bộ rule theo thứ tự, read-only
	ValidateCoupon(ctx context.Context, code string, cartTotal decimal.Decimal, userID *uuid.UUID) (*model.ValidationResult, error)

	// RecordUsage gọi khi order đặt thành công
	RecordUsage(ctx context.Context, code string) error

	// Admin
	CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error)
	ListCoupons(ctx context.Context, page, limit int) ([]model.Coupon, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*model.Coupon, error)
}

// UsageCounter - tránh import cycle với order domain
type UsageCounter interface {
	CountCouponUsageByUser(ctx context.Context, userID uuid.UUID, code string) (int, error)
}
