package model

import "time"

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TrendingProductResponse struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Price         float64           `json:"price"`
	Images        []string          `json:"images"`
	Category      *CategoryResponse `json:"category"`
	Stock         int               `json:"stock"`
	ReviewCount   int64             `json:"reviewCount"`
	AverageRating float64           `json:"averageRating"`
}

// TrendingResponse - body của GET /products/trending
type TrendingResponse struct {
	Products []TrendingProductResponse `json:"products"`
	Total    int64                     `json:"total"`
	HasMore  bool                      `json:"hasMore"`
	Page     int                       `json:"page"`
}

type ProductDetailResponse struct {
	TrendingProductResponse
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *TrendingProduct) ToResponse() TrendingProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}

	resp := TrendingProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Price:         p.Price.InexactFloat64(),
		Images:        images,
		Stock:         p.Stock,
		ReviewCount:   p.ReviewCount,
		AverageRating: p.AverageRating,
	}
	if p.Category != nil {
		resp.Category = &CategoryResponse{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug}
	}
	return resp
}

func (p *ProductDetail) ToResponse() *ProductDetailResponse {
	return &ProductDetailResponse{
		TrendingProductResponse: p.TrendingProduct.ToResponse(),
		Description:             p.Description,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
	}
}

func NewTrendingResponse(items []TrendingProduct, total int64, page, limit int) *TrendingResponse {
	products := make([]TrendingProductResponse, 0, len(items))
	for i := range items {
		products = append(products, items[i].ToResponse())
	}
	return &TrendingResponse{
		Products: products,
		Total:    total,
		HasMore:  int64(page*limit) < total,
		Page:     page,
	}
}
