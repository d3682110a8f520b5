package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =====================================================
// ORDER STATUS CONSTANTS
// =====================================================
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipping   = "shipping"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
	OrderStatusReturned   = "returned"
)

// ExcludedFromCouponUsage - đơn ở các trạng thái này không tính là đã dùng coupon
var ExcludedFromCouponUsage = []string{OrderStatusCancelled, OrderStatusReturned}

// Order - chỉ gồm các field cần cho việc đếm lượt dùng coupon
type Order struct {
	ID             uuid.UUID
	OrderNumber    string
	UserID         *uuid.UUID
	CouponCode     *string
	Status         string
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	CreatedAt      time.Time
}
