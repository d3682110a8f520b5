package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-backend/internal/domains/review/model"
	"storefront-backend/internal/infrastructure/database/dbtest"
)

func TestReviewRepository(t *testing.T) {
	db := dbtest.StartPostgres(t)
	repo := NewPostgresRepository(db)
	ctx := context.Background()

	var productID int64
	require.NoError(t, db.QueryRow(ctx,
		`INSERT INTO products (name, slug, price) VALUES ('Rose', 'rose', 10) RETURNING id`,
	).Scan(&productID))

	userID := uuid.New()
	first := &model.Review{ID: uuid.New(), ProductID: productID, UserID: &userID, Name: "An", Rating: 5, Comment: "great"}
	require.NoError(t, repo.Create(ctx, first))
	assert.False(t, first.CreatedAt.IsZero())

	time.Sleep(10 * time.Millisecond)
	second := &model.Review{ID: uuid.New(), ProductID: productID, Name: "Guest", Rating: 3}
	require.NoError(t, repo.Create(ctx, second))

	t.Run("newest first", func(t *testing.T) {
		reviews, total, err := repo.ListByProduct(ctx, productID, 0, 10)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, reviews, 2)
		assert.Equal(t, second.ID, reviews[0].ID)
		assert.Nil(t, reviews[0].UserID)
		assert.Equal(t, first.ID, reviews[1].ID)
		require.NotNil(t, reviews[1].UserID)
		assert.Equal(t, userID, *reviews[1].UserID)
	})

	t.Run("paged", func(t *testing.T) {
		reviews, total, err := repo.ListByProduct(ctx, productID, 1, 1)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, reviews, 1)
		assert.Equal(t, first.ID, reviews[0].ID)
	})

	t.Run("rating constraint", func(t *testing.T) {
		bad := &model.Review{ID: uuid.New(), ProductID: productID, Name: "x", Rating: 6}
		assert.Error(t, repo.Create(ctx, bad))
	})
}
