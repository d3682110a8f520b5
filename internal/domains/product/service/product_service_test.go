package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/product/model"
	rediscache "storefront-backend/internal/infrastructure/cache"
)

// ==================== FAKES ====================

type fakeRepo struct {
	products    []model.TrendingProduct
	detail      *model.ProductDetail
	detailCalls atomic.Int32
	gate        chan struct{} // chặn FindDetail cho test singleflight
	err         error
}

func (r *fakeRepo) ListTrending(ctx context.Context, offset, limit int) ([]model.TrendingProduct, error) {
	if r.err != nil {
		return nil, r.err
	}
	if offset >= len(r.products) {
		return []model.TrendingProduct{}, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	return r.products[offset:end], nil
}

func (r *fakeRepo) CountVisible(ctx context.Context) (int64, error) {
	return int64(len(r.products)), r.err
}

func (r *fakeRepo) FindDetail(ctx context.Context, id int64) (*model.ProductDetail, error) {
	r.detailCalls.Add(1)
	if r.gate != nil {
		<-r.gate
	}
	if r.detail == nil || r.detail.ID != id {
		return nil, fmt.Errorf("find product %d: %w", id, model.ErrProductNotFound)
	}
	return r.detail, nil
}

func (r *fakeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.detail != nil && r.detail.ID == id, nil
}

func newService(t *testing.T, repo *fakeRepo) (*ProductService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := rediscache.NewRedisCache(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return NewProductService(repo, c), mr
}

func sampleProducts(n int) []model.TrendingProduct {
	out := make([]model.TrendingProduct, n)
	for i := range out {
		out[i] = model.TrendingProduct{ID: int64(i + 1), Name: fmt.Sprintf("P%d", i+1), Price: decimal.NewFromInt(100)}
	}
	return out
}

// ==================== TRENDING ====================

func TestGetTrending(t *testing.T) {
	svc, _ := newService(t, &fakeRepo{products: sampleProducts(10)})

	resp, err := svc.GetTrending(context.Background(), 1, 8)
	require.NoError(t, err)
	assert.Len(t, resp.Products, 8)
	assert.EqualValues(t, 10, resp.Total)
	assert.True(t, resp.HasMore)
	assert.Equal(t, 1, resp.Page)

	resp, err = svc.GetTrending(context.Background(), 2, 8)
	require.NoError(t, err)
	assert.Len(t, resp.Products, 2)
	assert.False(t, resp.HasMore)
}

func TestGetTrending_Empty(t *testing.T) {
	svc, _ := newService(t, &fakeRepo{})

	resp, err := svc.GetTrending(context.Background(), 1, 8)
	require.NoError(t, err)
	assert.NotNil(t, resp.Products)
	assert.Empty(t, resp.Products)
	assert.Zero(t, resp.Total)
	assert.False(t, resp.HasMore)
}

func TestGetTrending_RepoError(t *testing.T) {
	boom := errors.New("db down")
	svc, _ := newService(t, &fakeRepo{err: boom})

	_, err := svc.GetTrending(context.Background(), 1, 8)
	assert.ErrorIs(t, err, boom)
}

// ==================== DETAIL ====================

func sampleDetail() *model.ProductDetail {
	return &model.ProductDetail{
		TrendingProduct: model.TrendingProduct{
			ID:          7,
			Name:        "Amber Oud",
			Slug:        "amber-oud",
			Price:       decimal.RequireFromString("1299.50"),
			Category:    &model.CategoryRef{ID: 1, Name: "Oud", Slug: "oud"},
			ReviewCount: 2,
		},
		Description: "warm",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetDetail_CachesResult(t *testing.T) {
	repo := &fakeRepo{detail: sampleDetail()}
	svc, mr := newService(t, repo)
	ctx := context.Background()

	first, err := svc.GetDetail(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 1299.5, first.Price)
	assert.True(t, mr.Exists(DetailCacheKey(7)))
	assert.Equal(t, DetailCacheTTL, mr.TTL(DetailCacheKey(7)))

	second, err := svc.GetDetail(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, "oud", second.Category.Slug)
	assert.EqualValues(t, 1, repo.detailCalls.Load())
}

func TestGetDetail_NotFound(t *testing.T) {
	svc, mr := newService(t, &fakeRepo{})

	_, err := svc.GetDetail(context.Background(), 99)
	assert.ErrorIs(t, err, model.ErrProductMissing)
	assert.False(t, mr.Exists(DetailCacheKey(99)))
}

func TestGetDetail_CollapsesConcurrentMisses(t *testing.T) {
	repo := &fakeRepo{detail: sampleDetail(), gate: make(chan struct{})}
	svc, _ := newService(t, repo)

	const callers = 10
	var wg sync.WaitGroup
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.GetDetail(context.Background(), 7)
			errs <- err
		}()
	}

	// đợi ít nhất 1 caller vào FindDetail rồi mới mở cổng
	require.Eventually(t, func() bool { return repo.detailCalls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(repo.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Less(t, repo.detailCalls.Load(), int32(callers))
}

func TestGetDetail_RedisDownFallsBackToDB(t *testing.T) {
	repo := &fakeRepo{detail: sampleDetail()}
	svc, mr := newService(t, repo)
	mr.Close()

	resp, err := svc.GetDetail(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Amber Oud", resp.Name)
}

func TestInvalidateDetail(t *testing.T) {
	repo := &fakeRepo{detail: sampleDetail()}
	svc, mr := newService(t, repo)
	ctx := context.Background()

	_, err := svc.GetDetail(ctx, 7)
	require.NoError(t, err)
	require.True(t, mr.Exists(DetailCacheKey(7)))

	require.NoError(t, svc.InvalidateDetail(ctx, 7))
	assert.False(t, mr.Exists(DetailCacheKey(7)))
}
