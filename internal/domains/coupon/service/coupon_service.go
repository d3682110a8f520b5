package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/coupon/model"
	"storefront-backend/internal/domains/coupon/repository"
)

const successMessage = "Coupon applied successfully"

type couponService struct {
	repo   repository.CouponRepository
	orders UsageCounter
	now    func() time.Time
}

func NewCouponService(repo repository.CouponRepository, orders UsageCounter) ServiceInterface {
	return &couponService{
		repo:   repo,
		orders: orders,
		now:    time.Now,
	}
}

// -------------------------------------------------------------------
// VALIDATE
// -------------------------------------------------------------------

// ValidateCoupon validates coupon code với subtotal
//
// Thứ tự check (dừng ở lỗi đầu tiên):
// 1. code rỗng
// 2. không tìm thấy
// 3. inactive
// 4. chưa tới start_date
// 5. quá expiry_date
// 6. hết lượt toàn hệ thống
// 7. chưa đủ min purchase
// 8. user đã dùng đủ số lượt (guest bỏ qua)
func (s *couponService) ValidateCoupon(
	ctx context.Context,
	code string,
	cartTotal decimal.Decimal,
	userID *uuid.UUID,
) (*model.ValidationResult, error) {
	code = model.NormalizeCode(code)
	if code == "" {
		return nil, model.ErrCouponCodeRequired
	}

	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			return nil, model.ErrInvalidCouponCode
		}
		return nil, fmt.Errorf("find coupon: %w", err)
	}

	now := s.now()

	switch {
	case !coupon.IsActive:
		return nil, model.ErrCouponInactive
	case coupon.NotStartedAt(now):
		return nil, model.ErrCouponNotStarted
	case coupon.ExpiredAt(now):
		return nil, model.ErrCouponExpired
	case coupon.IsUsageLimitReached():
		return nil, model.ErrCouponUsageLimitReached
	case coupon.BelowMinimum(cartTotal):
		return nil, model.NewMinPurchaseError(*coupon.MinPurchaseAmount)
	}

	// TODO: guest checkout không bị giới hạn per-person, cần định danh theo email/phone khi đặt hàng
	if userID != nil && coupon.MaxUsesPerUser != nil {
		used, err := s.orders.CountCouponUsageByUser(ctx, *userID, coupon.Code)
		if err != nil {
			return nil, fmt.Errorf("count coupon usage: %w", err)
		}
		if used >= *coupon.MaxUsesPerUser {
			return nil, model.ErrCouponAlreadyUsed
		}
	}

	discount := CalculateDiscount(coupon, cartTotal)

	log.Debug().
		Str("code", coupon.Code).
		Str("subtotal", cartTotal.String()).
		Str("discount", discount.String()).
		Msg("coupon validated")

	return &model.ValidationResult{
		Valid:          true,
		DiscountAmount: discount,
		DiscountType:   coupon.DiscountType,
		Code:           coupon.Code,
		Message:        successMessage,
	}, nil
}

func (s *couponService) RecordUsage(ctx context.Context, code string) error {
	code = model.NormalizeCode(code)
	if code == "" {
		return model.ErrCouponCodeRequired
	}
	if err := s.repo.IncrementUsage(ctx, code); err != nil {
		if errors.Is(err, model.ErrUsageUnavailable) {
			return model.ErrCouponUsageLimitReached
		}
		return err
	}
	return nil
}

// -------------------------------------------------------------------
// ADMIN
// -------------------------------------------------------------------

func (s *couponService) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	req.NormalizeCode()

	coupon := &model.Coupon{
		ID:            uuid.New(),
		Code:          req.Code,
		DiscountType:  model.DiscountType(req.DiscountType),
		DiscountValue: decimal.NewFromFloat(req.DiscountValue),
		UsageLimit:    req.UsageLimit,
		IsActive:      true,
	}

	if req.MinPurchaseAmount != nil {
		min := decimal.NewFromFloat(*req.MinPurchaseAmount)
		coupon.MinPurchaseAmount = &min
	}
	if req.StartDate != nil {
		t, err := time.Parse(time.RFC3339, *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("parse start date: %w", err)
		}
		coupon.StartDate = &t
	}
	if req.ExpiryDate != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpiryDate)
		if err != nil {
			return nil, fmt.Errorf("parse expiry date: %w", err)
		}
		coupon.ExpiryDate = &t
	}

	maxPerUser := model.DefaultMaxUsesPerUser
	if req.MaxUsesPerUser != nil {
		maxPerUser = *req.MaxUsesPerUser
	}
	coupon.MaxUsesPerUser = &maxPerUser

	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, coupon); err != nil {
		if errors.Is(err, model.ErrDuplicateCode) {
			return nil, model.ErrCouponCodeTaken
		}
		return nil, err
	}

	log.Info().Str("code", coupon.Code).Str("id", coupon.ID.String()).Msg("✅ Coupon created")
	return coupon, nil
}

func (s *couponService) ListCoupons(ctx context.Context, page, limit int) ([]model.Coupon, int64, error) {
	return s.repo.List(ctx, (page-1)*limit, limit)
}

func (s *couponService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*model.Coupon, error) {
	coupon, err := s.repo.UpdateStatus(ctx, id, isActive)
	if err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			return nil, model.ErrCouponMissing
		}
		return nil, err
	}
	return coupon, nil
}
