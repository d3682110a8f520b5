package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/coupon/model"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/pkg/jwt"
)

type stubService struct {
	result    *model.ValidationResult
	err       error
	gotUserID *uuid.UUID
	gotTotal  decimal.Decimal

	coupons []model.Coupon
}

func (s *stubService) ValidateCoupon(ctx context.Context, code string, cartTotal decimal.Decimal, userID *uuid.UUID) (*model.ValidationResult, error) {
	s.gotUserID = userID
	s.gotTotal = cartTotal
	return s.result, s.err
}

func (s *stubService) RecordUsage(ctx context.Context, code string) error { return nil }

func (s *stubService) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Coupon{ID: uuid.New(), Code: req.Code, DiscountType: model.DiscountType(req.DiscountType), DiscountValue: decimal.NewFromFloat(req.DiscountValue), IsActive: true}, nil
}

func (s *stubService) ListCoupons(ctx context.Context, page, limit int) ([]model.Coupon, int64, error) {
	return s.coupons, int64(len(s.coupons)), s.err
}

func (s *stubService) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*model.Coupon, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.Coupon{ID: id, Code: "X", IsActive: isActive}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "test-secret"

func setupRouter(svc *stubService) *gin.Engine {
	r := gin.New()
	jm := jwt.NewManager(testSecret)

	r.POST("/coupons/validate", middleware.OptionalAuth(jm), NewPublicHandler(svc).ValidateCoupon)

	admin := NewAdminHandler(svc)
	g := r.Group("/admin", middleware.AuthMiddleware(jm), middleware.AdminMiddleware())
	g.POST("/coupons", admin.CreateCoupon)
	g.GET("/coupons", admin.ListCoupons)
	g.PATCH("/coupons/:id/status", admin.UpdateStatus)
	return r
}

func doJSON(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestValidateCoupon_Success(t *testing.T) {
	svc := &stubService{result: &model.ValidationResult{
		Valid:          true,
		DiscountAmount: decimal.NewFromInt(200),
		DiscountType:   model.DiscountTypePercentage,
		Code:           "SAVE10",
		Message:        "Coupon applied successfully",
	}}

	w := doJSON(setupRouter(svc), http.MethodPost, "/coupons/validate", `{"code":"save10","cartTotal":2000}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, float64(200), body["discountAmount"])
	assert.Equal(t, "percentage", body["discountType"])
	assert.Equal(t, "SAVE10", body["code"])
	assert.Nil(t, svc.gotUserID)
	assert.True(t, decimal.NewFromInt(2000).Equal(svc.gotTotal))
}

func TestValidateCoupon_AuthenticatedPassesUser(t *testing.T) {
	svc := &stubService{result: &model.ValidationResult{Valid: true, Code: "A"}}
	userID := uuid.New()
	token, err := jwt.NewManager(testSecret).GenerateAccessToken(userID.String(), "u@x.com", jwt.RoleCustomer)
	require.NoError(t, err)

	w := doJSON(setupRouter(svc), http.MethodPost, "/coupons/validate", `{"code":"A","cartTotal":10}`, token)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotUserID)
	assert.Equal(t, userID, *svc.gotUserID)
}

func TestValidateCoupon_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{"malformed", `{"code":`, nil, 400, "Invalid request body"},
		{"empty code", `{"code":"","cartTotal":100}`, nil, 400, "Coupon code is required"},
		{"not found", `{"code":"X","cartTotal":100}`, model.ErrInvalidCouponCode, 404, "Invalid coupon code"},
		{"minimum", `{"code":"SAVE10","cartTotal":500}`, model.NewMinPurchaseError(decimal.NewFromInt(1000)), 400, "Minimum purchase amount of Rs. 1000 required"},
		{"unexpected", `{"code":"X","cartTotal":100}`, errors.New("boom"), 500, "Failed to validate coupon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(setupRouter(&stubService{err: tt.svcErr}), http.MethodPost, "/coupons/validate", tt.body, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			assert.Equal(t, false, body["valid"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func adminToken(t *testing.T) string {
	token, err := jwt.NewManager(testSecret).GenerateAccessToken(uuid.NewString(), "admin@x.com", jwt.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestAdmin_CreateCoupon(t *testing.T) {
	r := setupRouter(&stubService{})

	w := doJSON(r, http.MethodPost, "/admin/coupons", `{"code":"summer","discountType":"percentage","discountValue":20}`, adminToken(t))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"SUMMER"`)

	w = doJSON(r, http.MethodPost, "/admin/coupons", `{"code":"summer","discountType":"percentage","discountValue":120}`, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/admin/coupons", `{"code":"summer","discountType":"percentage","discountValue":20}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdmin_CreateCoupon_Duplicate(t *testing.T) {
	r := setupRouter(&stubService{err: model.ErrCouponCodeTaken})

	w := doJSON(r, http.MethodPost, "/admin/coupons", `{"code":"summer","discountType":"fixed","discountValue":20}`, adminToken(t))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdmin_ListCoupons(t *testing.T) {
	svc := &stubService{coupons: []model.Coupon{{ID: uuid.New(), Code: "A"}, {ID: uuid.New(), Code: "B"}}}

	w := doJSON(setupRouter(svc), http.MethodGet, "/admin/coupons?page=1&limit=10", "", adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["data"], 2)
	assert.Equal(t, float64(2), body["meta"].(map[string]any)["total"])
}

func TestAdmin_UpdateStatus(t *testing.T) {
	r := setupRouter(&stubService{})

	w := doJSON(r, http.MethodPatch, "/admin/coupons/"+uuid.NewString()+"/status", `{"isActive":false}`, adminToken(t))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isActive":false`)

	w = doJSON(r, http.MethodPatch, "/admin/coupons/not-a-uuid/status", `{"isActive":false}`, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPatch, "/admin/coupons/"+uuid.NewString()+"/status", `{}`, adminToken(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
