package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/review/model"
	"storefront-backend/internal/domains/review/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
	"storefront-backend/internal/shared/utils"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews - review của 1 product, mới nhất trước
// GET /api/v1/products/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	p := utils.ParsePagination(c, model.DefaultPageLimit, model.MaxPageLimit)

	reviews, total, err := h.reviewService.ListReviews(c.Request.Context(), productID, p.Page, p.Limit)
	if err != nil {
		log.Error().Err(err).Int64("product_id", productID).Msg("Failed to list reviews")
		response.InternalServerError(c, "Failed to list reviews")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, reviews, response.NewMeta(p.Page, p.Limit, total))
}

// CreateReview - guest hoặc user đã login (OptionalAuth)
// POST /api/v1/products/:id/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	var userID *uuid.UUID
	if uid, ok := middleware.GetUserID(c); ok {
		userID = &uid
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), productID, userID, req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		if statusCode == http.StatusInternalServerError {
			log.Error().Err(err).Int64("product_id", productID).Msg("Failed to create review")
			response.InternalServerError(c, "Failed to create review")
			return
		}
		var revErr *model.ReviewError
		errors.As(err, &revErr)
		response.Error(c, statusCode, errCode, revErr.Message)
		return
	}

	response.Success(c, http.StatusCreated, "Review submitted", review)
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid product id")
		return 0, false
	}
	return id, true
}

func mapReviewError(err error) (int, string) {
	var revErr *model.ReviewError
	if !errors.As(err, &revErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}

	switch revErr.Code {
	case model.ErrCodeProductNotFound:
		return http.StatusNotFound, revErr.Code
	default:
		return http.StatusBadRequest, revErr.Code
	}
}
