package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest - body của POST /products/:id/reviews
type CreateReviewRequest struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Comment = strings.TrimSpace(r.Comment)
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("Name is required"),
			validation.RuneLength(1, MaxNameLength).Error("Name is too long"),
		),
		validation.Field(&r.Rating,
			validation.Required.Error(ErrInvalidRating.Error()),
			validation.Min(MinRating).Error(ErrInvalidRating.Error()),
			validation.Max(MaxRating).Error(ErrInvalidRating.Error()),
		),
		validation.Field(&r.Comment,
			validation.RuneLength(0, MaxCommentLength).Error("Comment must not exceed 2000 characters"),
		),
	)
}

// FirstMessage lấy message đầu tiên theo thứ tự field để trả cho client
func FirstMessage(err error) string {
	if errs, ok := err.(validation.Errors); ok {
		for _, field := range []string{"name", "rating", "comment"} {
			if e, ok := errs[field]; ok {
				return e.Error()
			}
		}
	}
	return err.Error()
}

// =====================================================
// RESPONSE DTOs
// =====================================================

type ReviewResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProductID int64      `json:"productId"`
	UserID    *uuid.UUID `json:"userId,omitempty"`
	Name      string     `json:"name"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (r *Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		Name:      r.Name,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

func ToResponses(reviews []Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, reviews[i].ToResponse())
	}
	return out
}
