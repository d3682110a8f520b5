package model

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem - snapshot một dòng trong giỏ tại thời điểm capture
type CartItem struct {
	ProductID int64   `bson:"product_id" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
	Variant   string  `bson:"variant,omitempty" json:"variant,omitempty"`
}

// AbandonedCheckout - document trong collection abandoned_checkouts.
// Mỗi contact (email, hoặc phone khi không có email) có tối đa một document
type AbandonedCheckout struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	Name           string             `bson:"name"`
	CartItems      []CartItem         `bson:"cart_items"`
	TotalAmount    float64            `bson:"total_amount"`
	Recovered      bool               `bson:"recovered"`
	RecoveredAt    *time.Time         `bson:"recovered_at,omitempty"`
	RecoverySentAt *time.Time         `bson:"recovery_sent_at,omitempty"`
	RecoveryCount  int                `bson:"recovery_count"`
	ClickedAt      *time.Time         `bson:"clicked_at,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

// Snapshot - dữ liệu cần để ghi đè một lần capture
type Snapshot struct {
	Email       string
	Phone       string
	Name        string
	CartItems   []CartItem
	TotalAmount float64
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func NormalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}

// Status filter cho admin list
const (
	StatusAll       = "all"
	StatusPending   = "pending"   // chưa gửi email
	StatusNotified  = "notified"  // đã gửi, chưa recover
	StatusClicked   = "clicked"   // đã mở link
	StatusRecovered = "recovered" // đã đặt hàng
)

var ListStatuses = []interface{}{StatusAll, StatusPending, StatusNotified, StatusClicked, StatusRecovered}

// Kết quả từng item trong một lần sweep
const (
	SweepStatusSent   = "sent"
	SweepStatusFailed = "failed"
)

type SweepResult struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type SweepReport struct {
	Success   bool          `json:"success"`
	Processed int           `json:"processed"`
	Sent      int           `json:"sent"`
	Results   []SweepResult `json:"results"`
}
