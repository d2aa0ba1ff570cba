package category

import "errors"

var (
	ErrNotFound       = errors.New("category not found")
	ErrParentNotFound = errors.New("parent category not found")
	ErrInvalidParent  = errors.New("category cannot be its own ancestor")
	ErrNameRequired   = errors.New("category name is required")
	ErrInUse          = errors.New("category still has products")
)
