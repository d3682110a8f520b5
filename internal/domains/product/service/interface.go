package service

import (
	"context"

	"storefront-backend/internal/domains/product/model"
)

type ServiceInterface interface {
	GetTrending(ctx context.Context, page, limit int) (*model.TrendingResponse, error)
	GetDetail(ctx context.Context, id int64) (*model.ProductDetailResponse, error)
	Exists(ctx context.Context, id int64) (bool, error)
	InvalidateDetail(ctx context.Context, id int64) error
}
