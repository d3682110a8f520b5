package repository

import (
	"context"

	"storefront-backend/internal/domains/review/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error

	// ListByProduct - mới nhất trước
	ListByProduct(ctx context.Context, productID int64, offset, limit int) ([]model.Review, int64, error)
}
