package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeProductNotFound = "REV001"
	ErrCodeInvalidRating   = "REV006"
	ErrCodeValidation      = "REV007"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

// ReviewError custom error type
type ReviewError struct {
	Code    string
	Message string
	Err     error
}

func (e *ReviewError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ReviewError) Unwrap() error {
	return e.Err
}

func NewProductNotFoundError() *ReviewError {
	return &ReviewError{
		Code:    ErrCodeProductNotFound,
		Message: "Product not found",
		Err:     ErrProductNotFound,
	}
}

func NewValidationError(message string) *ReviewError {
	return &ReviewError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}
