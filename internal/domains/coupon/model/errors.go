package model

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Repository sentinels
var (
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrDuplicateCode    = errors.New("coupon code already exists")
	ErrUsageUnavailable = errors.New("coupon is inactive, missing or exhausted")
)

type ErrorCode string

const (
	ErrCodeCodeRequired       ErrorCode = "COUPON_CODE_REQUIRED"
	ErrCodeInvalidCode        ErrorCode = "COUPON_INVALID_CODE"
	ErrCodeInactive           ErrorCode = "COUPON_INACTIVE"
	ErrCodeNotStarted         ErrorCode = "COUPON_NOT_STARTED"
	ErrCodeExpired            ErrorCode = "COUPON_EXPIRED"
	ErrCodeUsageLimitExceeded ErrorCode = "COUPON_USAGE_LIMIT_EXCEEDED"
	ErrCodeMinPurchaseNotMet  ErrorCode = "COUPON_MIN_PURCHASE_NOT_MET"
	ErrCodeUserLimitExceeded  ErrorCode = "COUPON_USER_LIMIT_EXCEEDED"

	// Admin
	ErrCodeDuplicateCode    ErrorCode = "VAL_DUPLICATE_CODE"
	ErrCodeNotFound         ErrorCode = "COUPON_NOT_FOUND"
	ErrCodeValidationFailed ErrorCode = "VAL_INVALID_INPUT"
)

type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Predefined errors, message hiển thị trực tiếp cho shopper
var (
	ErrCouponCodeRequired = &AppError{
		Code:       ErrCodeCodeRequired,
		Message:    "Coupon code is required",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrInvalidCouponCode = &AppError{
		Code:       ErrCodeInvalidCode,
		Message:    "Invalid coupon code",
		HTTPStatus: http.StatusNotFound,
	}

	ErrCouponInactive = &AppError{
		Code:       ErrCodeInactive,
		Message:    "This coupon is no longer active",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrCouponNotStarted = &AppError{
		Code:       ErrCodeNotStarted,
		Message:    "This coupon is not yet active",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrCouponExpired = &AppError{
		Code:       ErrCodeExpired,
		Message:    "This coupon has expired",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrCouponUsageLimitReached = &AppError{
		Code:       ErrCodeUsageLimitExceeded,
		Message:    "This coupon has reached its usage limit",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrCouponAlreadyUsed = &AppError{
		Code:       ErrCodeUserLimitExceeded,
		Message:    "You have already used this coupon",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrCouponCodeTaken = &AppError{
		Code:       ErrCodeDuplicateCode,
		Message:    "Coupon code already exists",
		HTTPStatus: http.StatusConflict,
	}

	ErrCouponMissing = &AppError{
		Code:       ErrCodeNotFound,
		Message:    "Coupon not found",
		HTTPStatus: http.StatusNotFound,
	}
)

func NewMinPurchaseError(min decimal.Decimal) *AppError {
	return &AppError{
		Code:       ErrCodeMinPurchaseNotMet,
		Message:    fmt.Sprintf("Minimum purchase amount of Rs. %s required", min.String()),
		HTTPStatus: http.StatusBadRequest,
	}
}
