package model

import "errors"

var (
	ErrCheckoutNotFound = errors.New("abandoned checkout not found")
	ErrContactRequired  = errors.New("email or phone is required")
)
