package repository

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/coupon/model"
)

// CouponRepository định nghĩa interface cho coupon data access
type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	List(ctx context.Context, offset, limit int) ([]model.Coupon, int64, error)

	Create(ctx context.Context, coupon *model.Coupon) error
	UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*model.Coupon, error)
	// IncrementUsage tăng used_count atomically, fail nếu coupon inactive hoặc đã hết lượt
	IncrementUsage(ctx context.Context, code string) error
}
