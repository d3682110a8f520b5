package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/domains/checkout/model"
)

type CheckoutRepository interface {
	// Upsert theo email (nếu có) hoặc phone, reset recovered=false
	Upsert(ctx context.Context, snap model.Snapshot, now time.Time) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.AbandonedCheckout, error)
	// MarkClicked chỉ stamp lần click đầu tiên, trả về true nếu lần này là lần đầu
	MarkClicked(ctx context.Context, id primitive.ObjectID, at time.Time) (bool, error)

	// FindRecoveryCandidates: updated_at trong [from, to], có email, chưa recovered, chưa gửi
	FindRecoveryCandidates(ctx context.Context, from, to time.Time, limit int) ([]model.AbandonedCheckout, error)
	MarkRecoverySent(ctx context.Context, id primitive.ObjectID, at time.Time) error
	MarkRecovered(ctx context.Context, contact string, at time.Time) error

	List(ctx context.Context, status string, offset, limit int) ([]model.AbandonedCheckout, int64, error)
	EnsureIndexes(ctx context.Context) error
}
