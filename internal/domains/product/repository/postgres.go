package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domains/product/model"
)

// product hiển thị trên storefront: active và chưa archive
const visibleFilter = `p.is_active AND NOT p.is_archived`

const aggregateColumns = `
	p.id, p.name, p.slug, p.price, p.images, p.stock,
	c.id, c.name, c.slug,
	COUNT(r.id) AS review_count,
	COALESCE(ROUND(AVG(r.rating)::numeric, 1), 0)::float8 AS average_rating`

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) ProductRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListTrending(ctx context.Context, offset, limit int) ([]model.TrendingProduct, error) {
	query := `
		SELECT ` + aggregateColumns + `
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE ` + visibleFilter + `
		GROUP BY p.id, c.id
		ORDER BY review_count DESC, p.id ASC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list trending products: %w", err)
	}
	defer rows.Close()

	products := make([]model.TrendingProduct, 0, limit)
	for rows.Next() {
		var row productRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan trending product: %w", err)
		}
		products = append(products, row.toModel())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trending products: %w", err)
	}

	return products, nil
}

func (r *PostgresRepository) CountVisible(ctx context.Context) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM products p WHERE ` + visibleFilter
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) FindDetail(ctx context.Context, id int64) (*model.ProductDetail, error) {
	query := `
		SELECT ` + aggregateColumns + `,
			COALESCE(p.description, ''), p.created_at, p.updated_at
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN reviews r ON r.product_id = p.id
		WHERE p.id = $1 AND ` + visibleFilter + `
		GROUP BY p.id, c.id`

	var row productRow
	var d model.ProductDetail
	targets := append(row.targets(), &d.Description, &d.CreatedAt, &d.UpdatedAt)
	if err := r.db.QueryRow(ctx, query, id).Scan(targets...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("find product %d: %w", id, model.ErrProductNotFound)
		}
		return nil, fmt.Errorf("find product detail: %w", err)
	}

	d.TrendingProduct = row.toModel()
	return &d, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM products p WHERE p.id = $1 AND ` + visibleFilter + `)`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

// productRow khớp thứ tự với aggregateColumns.
// Cột category nullable vì LEFT JOIN
type productRow struct {
	p            model.TrendingProduct
	categoryID   *int64
	categoryName *string
	categorySlug *string
}

func (row *productRow) targets() []any {
	return []any{
		&row.p.ID, &row.p.Name, &row.p.Slug, &row.p.Price, &row.p.Images, &row.p.Stock,
		&row.categoryID, &row.categoryName, &row.categorySlug,
		&row.p.ReviewCount, &row.p.AverageRating,
	}
}

func (row *productRow) toModel() model.TrendingProduct {
	p := row.p
	if row.categoryID != nil {
		p.Category = &model.CategoryRef{ID: *row.categoryID}
		if row.categoryName != nil {
			p.Category.Name = *row.categoryName
		}
		if row.categorySlug != nil {
			p.Category.Slug = *row.categorySlug
		}
	}
	return p
}
