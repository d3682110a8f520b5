package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"storefront-backend/internal/domains/product/model"
	"storefront-backend/internal/domains/product/repository"
	"storefront-backend/pkg/cache"
)

const (
	detailCachePrefix = "product:detail:"
	DetailCacheTTL    = 5 * time.Minute
)

func DetailCacheKey(id int64) string {
	return detailCachePrefix + strconv.FormatInt(id, 10)
}

type ProductService struct {
	repo  repository.ProductRepository
	cache cache.Cache
	sfg   singleflight.Group // gom các cache miss đồng thời cho cùng 1 product
}

func NewProductService(repo repository.ProductRepository, c cache.Cache) *ProductService {
	return &ProductService{repo: repo, cache: c}
}

// GetTrending luôn đọc thẳng DB, không cache
func (s *ProductService) GetTrending(ctx context.Context, page, limit int) (*model.TrendingResponse, error) {
	offset := (page - 1) * limit

	items, err := s.repo.ListTrending(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("get trending: %w", err)
	}

	total, err := s.repo.CountVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trending: %w", err)
	}

	return model.NewTrendingResponse(items, total, page, limit), nil
}

func (s *ProductService) GetDetail(ctx context.Context, id int64) (*model.ProductDetailResponse, error) {
	key := DetailCacheKey(id)

	var cached model.ProductDetailResponse
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		// Redis lỗi → vẫn phục vụ từ DB
		log.Warn().Err(err).Str("key", key).Msg("⚠️ product cache GET failed")
	}
	if found {
		return &cached, nil
	}

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		detail, err := s.repo.FindDetail(ctx, id)
		if err != nil {
			return nil, err
		}

		resp := detail.ToResponse()
		if err := s.cache.Set(ctx, key, resp, DetailCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("⚠️ product cache SET failed")
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, model.ErrProductMissing
		}
		return nil, fmt.Errorf("get product detail: %w", err)
	}

	return v.(*model.ProductDetailResponse), nil
}

func (s *ProductService) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *ProductService) InvalidateDetail(ctx context.Context, id int64) error {
	if err := s.cache.Delete(ctx, DetailCacheKey(id)); err != nil {
		return fmt.Errorf("invalidate product %d: %w", id, err)
	}
	return nil
}
