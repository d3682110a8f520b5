package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/order/model"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) OrderRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CountCouponUsageByUser(ctx context.Context, userID uuid.UUID, code string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = $1
		  AND coupon_code = $2
		  AND status <> ALL($3)`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, code, model.ExcludedFromCouponUsage).Scan(&count); err != nil {
		return 0, fmt.Errorf("count coupon usage for user %s: %w", userID, err)
	}
	return count, nil
}
