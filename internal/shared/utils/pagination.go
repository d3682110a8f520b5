package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ParsePagination đọc ?page=&limit= từ query.
// Giá trị không parse được → default; limit bị kẹp trong [1, maxLimit]
func ParsePagination(c *gin.Context, defaultLimit, maxLimit int) Pagination {
	return NewPagination(c.Query("page"), c.Query("limit"), defaultLimit, maxLimit)
}

func NewPagination(pageStr, limitStr string, defaultLimit, maxLimit int) Pagination {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return Pagination{Page: page, Limit: limit}
}
