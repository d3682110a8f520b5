package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/domains/checkout/service"
	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/response"
	"storefront-backend/internal/shared/utils"
)

type CheckoutHandler struct {
	service service.ServiceInterface
}

func NewCheckoutHandler(s service.ServiceInterface) *CheckoutHandler {
	return &CheckoutHandler{service: s}
}

// Capture lưu snapshot giỏ hàng khi shopper điền form checkout
// @Router /api/v1/checkout/capture [post]
func (h *CheckoutHandler) Capture(c *gin.Context) {
	var req model.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": firstError(err)})
		return
	}

	if err := h.service.Capture(c.Request.Context(), req); err != nil {
		if errors.Is(err, model.ErrContactRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email or phone is required"})
			return
		}
		h.internalError(c, err, "Failed to capture checkout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Recover trả snapshot cho link khôi phục giỏ
// @Router /api/v1/checkout/recover/:id [get]
func (h *CheckoutHandler) Recover(c *gin.Context) {
	doc, err := h.service.Recover(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, model.ErrCheckoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Checkout not found"})
			return
		}
		h.internalError(c, err, "Failed to recover checkout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": doc.ToRecoverResponse()})
}

// RecoverySweep - gọi bởi scheduler bên ngoài (đã qua CronKey middleware)
// @Router /api/v1/cron/abandoned-recovery [get]
func (h *CheckoutHandler) RecoverySweep(c *gin.Context) {
	report, err := h.service.RunRecoverySweep(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "Failed to process abandoned checkouts")
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListAdmin
// @Router /api/v1/admin/abandoned-checkouts [get]
func (h *CheckoutHandler) ListAdmin(c *gin.Context) {
	p := utils.ParsePagination(c, 20, 100)

	status := c.DefaultQuery("status", model.StatusAll)
	if err := validation.Validate(status, validation.In(model.ListStatuses...)); err != nil {
		response.BadRequest(c, "Invalid status filter")
		return
	}

	docs, total, err := h.service.List(c.Request.Context(), status, p.Page, p.Limit)
	if err != nil {
		log.Error().Err(err).Str("request_id", c.GetString(shared.CtxRequestID)).Msg("list abandoned checkouts failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	items := make([]model.AdminCheckoutResponse, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].ToAdminResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, response.NewMeta(p.Page, p.Limit, total))
}

func (h *CheckoutHandler) internalError(c *gin.Context, err error, message string) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString(shared.CtxRequestID)).
		Str("path", c.Request.URL.Path).
		Msg(message)

	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": message})
}

func firstError(err error) string {
	var errs validation.Errors
	if errors.As(err, &errs) {
		for _, key := range []string{"email", "phone", "totalAmount", "cartItems", "name"} {
			if fe, ok := errs[key]; ok && fe != nil {
				return fe.Error()
			}
		}
	}
	return err.Error()
}
