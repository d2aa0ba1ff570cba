package product

import "errors"

var (
	ErrNotFound         = errors.New("product not found")
	ErrCategoryNotFound = errors.New("product category not found")
	ErrNameRequired     = errors.New("product name is required")
	ErrInvalidPrice     = errors.New("invalid product price")
)
