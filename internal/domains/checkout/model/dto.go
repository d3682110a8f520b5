package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CaptureRequest - body của POST /checkout/capture
type CaptureRequest struct {
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Name        string     `json:"name"`
	CartItems   []CartItem `json:"cartItems"`
	TotalAmount float64    `json:"totalAmount"`
}

// Normalize trim + lowercase email trước khi validate
func (r *CaptureRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.Phone = NormalizePhone(r.Phone)
}

func (r CaptureRequest) Validate() error {
	hasContact := NormalizeEmail(r.Email) != "" || NormalizePhone(r.Phone) != ""

	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(!hasContact, validation.Required.Error("Email or phone is required")),
			is.EmailFormat.Error("Invalid email address"),
		),
		validation.Field(&r.Phone, validation.Length(0, 32).Error("Phone is too long")),
		validation.Field(&r.Name, validation.Length(0, 200)),
		validation.Field(&r.CartItems, validation.Length(0, 200)),
		validation.Field(&r.TotalAmount, validation.Min(0.0).Error("Total amount must not be negative")),
	)
}

func (r CaptureRequest) ToSnapshot() Snapshot {
	items := r.CartItems
	if items == nil {
		items = []CartItem{}
	}
	return Snapshot{
		Email:       NormalizeEmail(r.Email),
		Phone:       NormalizePhone(r.Phone),
		Name:        r.Name,
		CartItems:   items,
		TotalAmount: r.TotalAmount,
	}
}

// RecoverResponse - snapshot trả cho frontend để khôi phục giỏ
type RecoverResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	CartItems   []CartItem `json:"cartItems"`
	TotalAmount float64    `json:"totalAmount"`
}

func (a *AbandonedCheckout) ToRecoverResponse() RecoverResponse {
	items := a.CartItems
	if items == nil {
		items = []CartItem{}
	}
	return RecoverResponse{
		ID:          a.ID.Hex(),
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		CartItems:   items,
		TotalAmount: a.TotalAmount,
	}
}

// AdminCheckoutResponse - admin list item
type AdminCheckoutResponse struct {
	RecoverResponse
	Recovered      bool       `json:"recovered"`
	RecoveredAt    *time.Time `json:"recoveredAt"`
	RecoverySentAt *time.Time `json:"recoverySentAt"`
	RecoveryCount  int        `json:"recoveryCount"`
	ClickedAt      *time.Time `json:"clickedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (a *AbandonedCheckout) ToAdminResponse() AdminCheckoutResponse {
	return AdminCheckoutResponse{
		RecoverResponse: a.ToRecoverResponse(),
		Recovered:       a.Recovered,
		RecoveredAt:     a.RecoveredAt,
		RecoverySentAt:  a.RecoverySentAt,
		RecoveryCount:   a.RecoveryCount,
		ClickedAt:       a.ClickedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
