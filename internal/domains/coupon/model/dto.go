package model

import (
	"errors"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidateCouponRequest - body của POST /coupons/validate
type ValidateCouponRequest struct {
	Code      string  `json:"code"`
	CartTotal float64 `json:"cartTotal"`
}

func (r ValidateCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.By(func(interface{}) error {
				if strings.TrimSpace(r.Code) == "" {
					return errors.New(ErrCouponCodeRequired.Message)
				}
				return nil
			}),
		),
		validation.Field(&r.CartTotal,
			validation.Min(0.0).Error("Cart total must not be negative"),
		),
	)
}

// ValidateCouponResponse - JSON trả về cho storefront
type ValidateCouponResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount"`
	DiscountType   string  `json:"discountType"`
	Code           string  `json:"code"`
	Message        string  `json:"message"`
}

// RejectedCouponResponse - {valid:false, message}
type RejectedCouponResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func Rejected(message string) RejectedCouponResponse {
	return RejectedCouponResponse{Valid: false, Message: message}
}

func NewValidateCouponResponse(r *ValidationResult) ValidateCouponResponse {
	return ValidateCouponResponse{
		Valid:          r.Valid,
		DiscountAmount: r.DiscountAmount.InexactFloat64(),
		DiscountType:   string(r.DiscountType),
		Code:           r.Code,
		Message:        r.Message,
	}
}

// -------------------------------------------------------------------
// ADMIN REQUESTS
// -------------------------------------------------------------------

var couponCodePattern = regexp.MustCompile("^[A-Z0-9_-]+$")

type CreateCouponRequest struct {
	Code              string   `json:"code"`
	DiscountType      string   `json:"discountType"`
	DiscountValue     float64  `json:"discountValue"`
	MinPurchaseAmount *float64 `json:"minPurchaseAmount"`
	StartDate         *string  `json:"startDate"` // RFC3339
	ExpiryDate        *string  `json:"expiryDate"`
	UsageLimit        *int     `json:"usageLimit"`
	MaxUsesPerUser    *int     `json:"maxUsesPerUser"`
	IsActive          *bool    `json:"isActive"`
}

func (r CreateCouponRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code,
			validation.Required.Error("Coupon code is required"),
			validation.Length(3, 50).Error("Coupon code must be 3-50 characters"),
			validation.Match(couponCodePattern).Error("Coupon code may only contain A-Z, 0-9, '-' and '_'"),
		),
		validation.Field(&r.DiscountType,
			validation.Required.Error("Discount type is required"),
			validation.In(string(DiscountTypePercentage), string(DiscountTypeFixed)).Error("Discount type must be 'percentage' or 'fixed'"),
		),
		validation.Field(&r.DiscountValue,
			validation.Required.Error("Discount value is required"),
			validation.Min(0.01).Error("Discount value must be > 0"),
			validation.By(r.validateDiscountValue),
		),
		validation.Field(&r.MinPurchaseAmount,
			validation.When(r.MinPurchaseAmount != nil, validation.Min(0.0).Error("Minimum purchase amount must be >= 0")),
		),
		validation.Field(&r.StartDate,
			validation.When(r.StartDate != nil, validation.Date(time.RFC3339).Error("Invalid start date (RFC3339)")),
		),
		validation.Field(&r.ExpiryDate,
			validation.When(r.ExpiryDate != nil, validation.Date(time.RFC3339).Error("Invalid expiry date (RFC3339)")),
			validation.By(r.validateDateRange),
		),
		validation.Field(&r.UsageLimit,
			validation.When(r.UsageLimit != nil, validation.Min(1).Error("Usage limit must be >= 1")),
		),
		validation.Field(&r.MaxUsesPerUser,
			validation.When(r.MaxUsesPerUser != nil, validation.Min(1).Error("Max uses per user must be >= 1")),
		),
	)
}

func (r CreateCouponRequest) validateDiscountValue(interface{}) error {
	if r.DiscountType == string(DiscountTypePercentage) && r.DiscountValue > 100 {
		return errors.New("percentage discount cannot exceed 100")
	}
	return nil
}

func (r CreateCouponRequest) validateDateRange(interface{}) error {
	if r.StartDate == nil || r.ExpiryDate == nil {
		return nil
	}
	start, err := time.Parse(time.RFC3339, *r.StartDate)
	if err != nil {
		return nil // format lỗi đã báo ở field StartDate
	}
	expiry, err := time.Parse(time.RFC3339, *r.ExpiryDate)
	if err != nil {
		return nil
	}
	if !expiry.After(start) {
		return errors.New("expiry date must be after start date")
	}
	return nil
}

// NormalizeCode chuyển code về uppercase
func (r *CreateCouponRequest) NormalizeCode() {
	r.Code = NormalizeCode(r.Code)
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type UpdateCouponStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

func (r UpdateCouponStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IsActive, validation.NotNil.Error("isActive is required")),
	)
}

// CouponResponse - admin view
type CouponResponse struct {
	ID                string     `json:"id"`
	Code              string     `json:"code"`
	DiscountType      string     `json:"discountType"`
	DiscountValue     float64    `json:"discountValue"`
	MinPurchaseAmount *float64   `json:"minPurchaseAmount"`
	StartDate         *time.Time `json:"startDate"`
	ExpiryDate        *time.Time `json:"expiryDate"`
	UsageLimit        *int       `json:"usageLimit"`
	UsedCount         int        `json:"usedCount"`
	MaxUsesPerUser    *int       `json:"maxUsesPerUser"`
	IsActive          bool       `json:"isActive"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

func (c *Coupon) ToResponse() CouponResponse {
	resp := CouponResponse{
		ID:             c.ID.String(),
		Code:           c.Code,
		DiscountType:   string(c.DiscountType),
		DiscountValue:  c.DiscountValue.InexactFloat64(),
		StartDate:      c.StartDate,
		ExpiryDate:     c.ExpiryDate,
		UsageLimit:     c.UsageLimit,
		UsedCount:      c.UsedCount,
		MaxUsesPerUser: c.MaxUsesPerUser,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.MinPurchaseAmount != nil {
		v := c.MinPurchaseAmount.InexactFloat64()
		resp.MinPurchaseAmount = &v
	}
	return resp
}

// FirstValidationMessage lấy message đầu tiên theo thứ tự field ưu tiên
func FirstValidationMessage(err error, fieldOrder ...string) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err.Error()
	}
	for _, f := range fieldOrder {
		if fe, ok := errs[f]; ok && fe != nil {
			return fe.Error()
		}
	}
	for _, fe := range errs {
		if fe != nil {
			return fe.Error()
		}
	}
	return err.Error()
}
