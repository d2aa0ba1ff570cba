package dto

import "github.com/fekuna/omnipos-catalog-service/internal/model"

type ProductFilters struct {
	CategoryIDs []int64 // Empty means any category
	IsActive    *bool
	MinPrice    *float64
	MaxPrice    *float64
	SearchQuery string // Matched against the name
	SortBy      string // name, price, created_at
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}

type ProductPage struct {
	Products   []model.Product
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type ProductCounts struct {
	Total    int `db:"total"`
	Active   int `db:"active"`
	Inactive int `db:"inactive"`
}
