package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/shared/middleware"
)

type stubService struct {
	captured  *model.CaptureRequest
	doc       *model.AbandonedCheckout
	report    *model.SweepReport
	err       error
	gotStatus string
}

func (s *stubService) Capture(ctx context.Context, req model.CaptureRequest) error {
	s.captured = &req
	return s.err
}

func (s *stubService) Recover(ctx context.Context, id string) (*model.AbandonedCheckout, error) {
	return s.doc, s.err
}

func (s *stubService) RunRecoverySweep(ctx context.Context) (*model.SweepReport, error) {
	return s.report, s.err
}

func (s *stubService) MarkRecovered(ctx context.Context, contact string) error { return s.err }

func (s *stubService) List(ctx context.Context, status string, page, limit int) ([]model.AbandonedCheckout, int64, error) {
	s.gotStatus = status
	if s.doc == nil {
		return nil, 0, s.err
	}
	return []model.AbandonedCheckout{*s.doc}, 1, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(svc *stubService) *gin.Engine {
	h := NewCheckoutHandler(svc)
	r := gin.New()
	r.POST("/checkout/capture", h.Capture)
	r.GET("/checkout/recover/:id", h.Recover)
	r.GET("/cron/abandoned-recovery", middleware.CronKey("cron-secret"), h.RecoverySweep)
	r.GET("/admin/abandoned-checkouts", h.ListAdmin)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCapture(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(svc)

	w := do(r, http.MethodPost, "/checkout/capture", `{"email":" Asha@Example.com ","name":"Asha","cartItems":[{"productId":1,"name":"Oud","price":1499,"quantity":2}],"totalAmount":2998}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NotNil(t, svc.captured)
	assert.Equal(t, "asha@example.com", svc.captured.Email)
	assert.Len(t, svc.captured.CartItems, 1)
}

func TestCapture_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"no contact", `{"name":"Asha","totalAmount":10}`, "Email or phone is required"},
		{"blank contact", `{"email":"  ","phone":" "}`, "Email or phone is required"},
		{"bad email", `{"email":"asha@"}`, "Invalid email address"},
		{"malformed", `{"email":`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			w := do(setupRouter(svc), http.MethodPost, "/checkout/capture", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.Nil(t, svc.captured)
		})
	}
}

func TestCapture_PhoneOnly(t *testing.T) {
	svc := &stubService{}
	w := do(setupRouter(svc), http.MethodPost, "/checkout/capture", `{"phone":"+91 98765 43210"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+91 98765 43210", svc.captured.Phone)
}

func TestRecover(t *testing.T) {
	id := primitive.NewObjectID()
	svc := &stubService{doc: &model.AbandonedCheckout{
		ID:          id,
		Email:       "a@example.com",
		Name:        "Asha",
		CartItems:   []model.CartItem{{ProductID: 7, Name: "Musk", Price: 999, Quantity: 1}},
		TotalAmount: 999,
	}}

	w := do(setupRouter(svc), http.MethodGet, "/checkout/recover/"+id.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                  `json:"success"`
		Data    model.RecoverResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, id.Hex(), body.Data.ID)
	assert.Equal(t, float64(999), body.Data.TotalAmount)
	assert.Len(t, body.Data.CartItems, 1)
}

func TestRecover_Errors(t *testing.T) {
	w := do(setupRouter(&stubService{err: model.ErrCheckoutNotFound}), http.MethodGet, "/checkout/recover/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(setupRouter(&stubService{err: errors.New("socket closed")}), http.MethodGet, "/checkout/recover/abc", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "socket closed")
}

func TestRecoverySweep(t *testing.T) {
	svc := &stubService{report: &model.SweepReport{
		Success:   true,
		Processed: 2,
		Sent:      1,
		Results: []model.SweepResult{
			{ID: "1", Email: "a@example.com", Status: model.SweepStatusSent},
			{ID: "2", Email: "b@example.com", Status: model.SweepStatusFailed, Error: "smtp down"},
		},
	}}
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/cron/abandoned-recovery?key=wrong", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/cron/abandoned-recovery?key=cron-secret", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var report model.SweepReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.Processed)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, "smtp down", report.Results[1].Error)
}

func TestRecoverySweep_DatabaseDown(t *testing.T) {
	w := do(setupRouter(&stubService{err: errors.New("no reachable servers")}), http.MethodGet, "/cron/abandoned-recovery?key=cron-secret", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestListAdmin(t *testing.T) {
	now := time.Now()
	svc := &stubService{doc: &model.AbandonedCheckout{ID: primitive.NewObjectID(), Email: "a@example.com", RecoverySentAt: &now, RecoveryCount: 1}}
	r := setupRouter(svc)

	w := do(r, http.MethodGet, "/admin/abandoned-checkouts?status=notified", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.StatusNotified, svc.gotStatus)
	assert.Contains(t, w.Body.String(), `"recoveryCount":1`)

	w = do(r, http.MethodGet, "/admin/abandoned-checkouts?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
