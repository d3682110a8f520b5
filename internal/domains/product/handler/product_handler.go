package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/product/model"
	"storefront-backend/internal/domains/product/service"
	"storefront-backend/internal/shared"
	"storefront-backend/internal/shared/response"
	"storefront-backend/internal/shared/utils"
)

const (
	trendingDefaultLimit = 8
	trendingMaxLimit     = 50
)

type ProductHandler struct {
	service service.ServiceInterface
}

func NewProductHandler(s service.ServiceInterface) *ProductHandler {
	return &ProductHandler{service: s}
}

// Trending - sản phẩm nhiều review nhất
// @Router /api/v1/products/trending [get]
func (h *ProductHandler) Trending(c *gin.Context) {
	p := utils.ParsePagination(c, trendingDefaultLimit, trendingMaxLimit)

	resp, err := h.service.GetTrending(c.Request.Context(), p.Page, p.Limit)
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", c.GetString(shared.CtxRequestID)).
			Msg("Failed to fetch trending products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trending products"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDetail - chi tiết sản phẩm (cache Redis)
// @Router /api/v1/products/:id [get]
func (h *ProductHandler) GetDetail(c *gin.Context) {
	id, ok := ParseProductID(c)
	if !ok {
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.HTTPStatus, string(appErr.Code), appErr.Message)
			return
		}
		log.Error().Err(err).Int64("product_id", id).Msg("Failed to fetch product")
		response.InternalServerError(c, "Failed to fetch product")
		return
	}

	response.Success(c, http.StatusOK, "Product retrieved successfully", detail)
}

// ParseProductID đọc :id, ghi 400 và trả false nếu không hợp lệ
func ParseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, model.ErrInvalidProductID.HTTPStatus, string(model.ErrInvalidProductID.Code), model.ErrInvalidProductID.Message)
		return 0, false
	}
	return id, true
}
