package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/domains/review/model"
	"storefront-backend/internal/domains/review/repository"
)

type reviewService struct {
	repo     repository.ReviewRepository
	products ProductCatalog
}

func NewReviewService(repo repository.ReviewRepository, products ProductCatalog) ServiceInterface {
	return &reviewService{repo: repo, products: products}
}

func (s *reviewService) CreateReview(ctx context.Context, productID int64, userID *uuid.UUID, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, model.NewValidationError(model.FirstMessage(err))
	}

	exists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	if !exists {
		return nil, model.NewProductNotFoundError()
	}

	review := &model.Review{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	// review count / rating trong detail đã cũ
	if err := s.products.InvalidateDetail(ctx, productID); err != nil {
		log.Warn().Err(err).Int64("product_id", productID).Msg("⚠️ failed to invalidate product cache")
	}

	log.Info().
		Str("review_id", review.ID.String()).
		Int64("product_id", productID).
		Int("rating", review.Rating).
		Msg("⭐ review created")

	resp := review.ToResponse()
	return &resp, nil
}

func (s *reviewService) ListReviews(ctx context.Context, productID int64, page, limit int) ([]model.ReviewResponse, int64, error) {
	reviews, total, err := s.repo.ListByProduct(ctx, productID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	return model.ToResponses(reviews), total, nil
}
