package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/product/model"
)

type stubService struct {
	trending  *model.TrendingResponse
	detail    *model.ProductDetailResponse
	err       error
	gotPage   int
	gotLimit  int
	gotDetail int64
}

func (s *stubService) GetTrending(ctx context.Context, page, limit int) (*model.TrendingResponse, error) {
	s.gotPage, s.gotLimit = page, limit
	if s.err != nil {
		return nil, s.err
	}
	return model.NewTrendingResponse(nil, 0, page, limit), nil
}

func (s *stubService) GetDetail(ctx context.Context, id int64) (*model.ProductDetailResponse, error) {
	s.gotDetail = id
	return s.detail, s.err
}

func (s *stubService) Exists(ctx context.Context, id int64) (bool, error) { return true, nil }

func (s *stubService) InvalidateDetail(ctx context.Context, id int64) error { return nil }

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(svc *stubService) *gin.Engine {
	r := gin.New()
	h := NewProductHandler(svc)
	r.GET("/products/trending", h.Trending)
	r.GET("/products/:id", h.GetDetail)
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestTrending_Pagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 8},
		{"explicit", "?page=3&limit=12", 3, 12},
		{"limit clamped high", "?limit=500", 1, 50},
		{"limit clamped low", "?limit=0", 1, 1},
		{"garbage falls back", "?page=abc&limit=xyz", 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			w := get(setupRouter(svc), "/products/trending"+tt.query)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantPage, svc.gotPage)
			assert.Equal(t, tt.wantLimit, svc.gotLimit)
		})
	}
}

func TestTrending_EmptyShape(t *testing.T) {
	w := get(setupRouter(&stubService{}), "/products/trending")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []interface{}{}, body["products"])
	assert.EqualValues(t, 0, body["total"])
	assert.Equal(t, false, body["hasMore"])
	assert.EqualValues(t, 1, body["page"])
}

func TestTrending_Error(t *testing.T) {
	w := get(setupRouter(&stubService{err: errors.New("db down")}), "/products/trending")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch trending products"}`, w.Body.String())
}

func TestGetDetail(t *testing.T) {
	svc := &stubService{detail: &model.ProductDetailResponse{
		TrendingProductResponse: model.TrendingProductResponse{ID: 5, Name: "Musk", Images: []string{}},
	}}
	w := get(setupRouter(svc), "/products/5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 5, svc.gotDetail)

	var body struct {
		Success bool                        `json:"success"`
		Data    model.ProductDetailResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Musk", body.Data.Name)
}

func TestGetDetail_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, get(setupRouter(&stubService{}), "/products/abc").Code)

	w := get(setupRouter(&stubService{err: model.ErrProductMissing}), "/products/9")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")

	w = get(setupRouter(&stubService{err: errors.New("boom")}), "/products/9")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
