package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/coupon/model"
)

const uniqueViolation = "23505"

const couponColumns = `
	id, code, discount_type, discount_value, min_purchase_amount,
	start_date, expiry_date, usage_limit, used_count, max_uses_per_user,
	is_active, created_at, updated_at`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) CouponRepository {
	return &PostgresRepository{db: db}
}

// -------------------------------------------------------------------
// READ OPERATIONS
// -------------------------------------------------------------------

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE code = $1`

	c, err := scanCoupon(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("find coupon %q: %w", code, model.ErrCouponNotFound)
		}
		return nil, fmt.Errorf("find coupon by code: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	c, err := scanCoupon(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("find coupon %s: %w", id, model.ErrCouponNotFound)
		}
		return nil, fmt.Errorf("find coupon by id: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context, offset, limit int) ([]model.Coupon, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM coupons`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count coupons: %w", err)
	}

	query := `SELECT ` + couponColumns + `
		FROM coupons
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	coupons := make([]model.Coupon, 0, limit)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan coupon: %w", err)
		}
		coupons = append(coupons, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate coupons: %w", err)
	}

	return coupons, total, nil
}

// -------------------------------------------------------------------
// WRITE OPERATIONS
// -------------------------------------------------------------------

func (r *PostgresRepository) Create(ctx context.Context, c *model.Coupon) error {
	query := `
		INSERT INTO coupons (
			id, code, discount_type, discount_value, min_purchase_amount,
			start_date, expiry_date, usage_limit, max_uses_per_user, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING used_count, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		c.ID, c.Code, string(c.DiscountType), c.DiscountValue, c.MinPurchaseAmount,
		c.StartDate, c.ExpiryDate, c.UsageLimit, c.MaxUsesPerUser, c.IsActive,
	).Scan(&c.UsedCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("create coupon %q: %w", c.Code, model.ErrDuplicateCode)
		}
		return fmt.Errorf("create coupon: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id uuid.UUID, isActive bool) (*model.Coupon, error) {
	query := `
		UPDATE coupons SET is_active = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + couponColumns

	c, err := scanCoupon(r.db.QueryRow(ctx, query, id, isActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update coupon %s: %w", id, model.ErrCouponNotFound)
		}
		return nil, fmt.Errorf("update coupon status: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) IncrementUsage(ctx context.Context, code string) error {
	query := `
		UPDATE coupons
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE code = $1
		  AND is_active
		  AND (usage_limit IS NULL OR used_count < usage_limit)`

	tag, err := r.db.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("increment coupon usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("increment coupon %q: %w", code, model.ErrUsageUnavailable)
	}
	return nil
}

func scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	var discountType string
	err := row.Scan(
		&c.ID,
		&c.Code,
		&discountType,
		&c.DiscountValue,
		&c.MinPurchaseAmount, // nullable
		&c.StartDate,
		&c.ExpiryDate,
		&c.UsageLimit,
		&c.UsedCount,
		&c.MaxUsesPerUser,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.DiscountType = model.DiscountType(discountType)
	return &c, nil
}
