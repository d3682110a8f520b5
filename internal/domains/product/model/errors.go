package model

import (
	"errors"
	"net/http"
)

var ErrProductNotFound = errors.New("product not found")

type ErrorCode string

const (
	ErrCodeNotFound  ErrorCode = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidID ErrorCode = "PRODUCT_INVALID_ID"
)

type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrProductMissing = &AppError{
		Code:       ErrCodeNotFound,
		Message:    "Product not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrInvalidProductID = &AppError{
		Code:       ErrCodeInvalidID,
		Message:    "Invalid product id",
		HTTPStatus: http.StatusBadRequest,
	}
)
