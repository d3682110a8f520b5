package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/coupon/model"
	"storefront-backend/internal/domains/coupon/service"
	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/response"
	"storefront-backend/internal/shared/utils"
)

// AdminHandler xử lý các API quản trị coupon (admin-only)
type AdminHandler struct {
	service service.ServiceInterface
}

func NewAdminHandler(s service.ServiceInterface) *AdminHandler {
	return &AdminHandler{service: s}
}

// CreateCoupon
// @Router /api/v1/admin/coupons [post]
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req model.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	req.NormalizeCode()
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, string(model.ErrCodeValidationFailed), "Validation failed", err)
		return
	}

	coupon, err := h.service.CreateCoupon(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Coupon created", coupon.ToResponse())
}

// ListCoupons
// @Router /api/v1/admin/coupons [get]
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	p := utils.ParsePagination(c, 20, 100)

	coupons, total, err := h.service.ListCoupons(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]model.CouponResponse, 0, len(coupons))
	for i := range coupons {
		items = append(items, coupons[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(p.Page, p.Limit, total))
}

// UpdateStatus bật/tắt coupon
// @Router /api/v1/admin/coupons/:id/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid coupon ID")
		return
	}

	var req model.UpdateCouponStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, string(model.ErrCodeValidationFailed), "Validation failed", err)
		return
	}

	coupon, err := h.service.UpdateStatus(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Coupon status updated", coupon.ToResponse())
}

func (h *AdminHandler) handleError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		response.Error(c, appErr.HTTPStatus, string(appErr.Code), appErr.Message)
		return
	}

	log.Error().Err(err).Str("request_id", c.GetString(shared.CtxRequestID)).Msg("coupon admin request failed")
	response.InternalServerError(c, "Internal server error")
}
