package service

import (
	"context"

	"github.com/google/uuid"

	"storefront-backend/internal/domains/review/model"
)

type ServiceInterface interface {
	// CreateReview - userID nil cho khách vãng lai
	CreateReview(ctx context.Context, productID int64, userID *uuid.UUID, req model.CreateReviewRequest) (*model.ReviewResponse, error)
	ListReviews(ctx context.Context, productID int64, page, limit int) ([]model.ReviewResponse, int64, error)
}

// ProductCatalog - phần của product service mà review cần
type ProductCatalog interface {
	Exists(ctx context.Context, id int64) (bool, error)
	InvalidateDetail(ctx context.Context, id int64) error
}
