package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryRef struct {
	ID   int64
	Name string
	Slug string
}

// TrendingProduct - một dòng kết quả aggregate products + reviews
type TrendingProduct struct {
	ID            int64
	Name          string
	Slug          string
	Price         decimal.Decimal
	Images        []string
	Category      *CategoryRef // nil khi product chưa gán category
	Stock         int
	ReviewCount   int64
	AverageRating float64 // 0 khi chưa có review, làm tròn 1 chữ số
}

type ProductDetail struct {
	TrendingProduct
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
