package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

const DefaultMaxUsesPerUser = 1

// Coupon - mã giảm giá, code luôn lưu uppercase
type Coupon struct {
	ID                uuid.UUID
	Code              string
	DiscountType      DiscountType
	DiscountValue     decimal.Decimal
	MinPurchaseAmount *decimal.Decimal
	StartDate         *time.Time
	ExpiryDate        *time.Time
	UsageLimit        *int
	UsedCount         int
	MaxUsesPerUser    *int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (c *Coupon) NotStartedAt(now time.Time) bool {
	return c.StartDate != nil && now.Before(*c.StartDate)
}

func (c *Coupon) ExpiredAt(now time.Time) bool {
	return c.ExpiryDate != nil && now.After(*c.ExpiryDate)
}

func (c *Coupon) IsUsageLimitReached() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}

func (c *Coupon) BelowMinimum(subtotal decimal.Decimal) bool {
	return c.MinPurchaseAmount != nil && subtotal.LessThan(*c.MinPurchaseAmount)
}

// ValidationResult - kết quả validate thành công
type ValidationResult struct {
	Valid          bool
	DiscountAmount decimal.Decimal
	DiscountType   DiscountType
	Code           string
	Message        string
}
