package repository

import (
	"context"

	"storefront-backend/internal/domains/product/model"
)

type ProductRepository interface {
	// ListTrending trả về products xếp theo số review giảm dần, tie-break theo id tăng dần
	ListTrending(ctx context.Context, offset, limit int) ([]model.TrendingProduct, error)
	CountVisible(ctx context.Context) (int64, error)
	FindDetail(ctx context.Context, id int64) (*model.ProductDetail, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
