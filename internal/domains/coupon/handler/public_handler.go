package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/coupon/model"
	"storefront-backend/internal/domains/coupon/service"
	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/middleware"
)

// PublicHandler xử lý API coupon cho storefront
type PublicHandler struct {
	service service.ServiceInterface
}

func NewPublicHandler(s service.ServiceInterface) *PublicHandler {
	return &PublicHandler{service: s}
}

// ValidateCoupon kiểm tra coupon với tổng tiền giỏ hàng
// @Router /api/v1/coupons/validate [post]
func (h *PublicHandler) ValidateCoupon(c *gin.Context) {
	var req model.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.Rejected("Invalid request body"))
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, model.Rejected(model.FirstValidationMessage(err, "code", "cartTotal")))
		return
	}

	// Guest → userID nil, bỏ qua check per-user
	var userID *uuid.UUID
	if uid, ok := middleware.GetUserID(c); ok {
		userID = &uid
	}

	result, err := h.service.ValidateCoupon(c.Request.Context(), req.Code, decimal.NewFromFloat(req.CartTotal), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewValidateCouponResponse(result))
}

func (h *PublicHandler) handleError(c *gin.Context, err error) {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, model.Rejected(appErr.Message))
		return
	}

	log.Error().
		Err(err).
		Str("request_id", c.GetString(shared.CtxRequestID)).
		Msg("Failed to validate coupon")

	c.JSON(http.StatusInternalServerError, model.Rejected("Failed to validate coupon"))
}
