// Package catalogv1 holds the catalog.v1 gRPC contract: request and response messages,
// service descriptors, and clients. Messages travel as JSON (see pkg/codec).
package catalogv1

import "time"

type Category struct {
	CategoryID  int64     `json:"category_id"`
	ParentID    *int64    `json:"parent_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SortOrder   int32     `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryNode struct {
	Category
	Subcategories []*CategoryNode `json:"subcategories"`
}

type ParentOption struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Level      int32  `json:"level"`
}

type CreateCategoryRequest struct {
	ParentID    *int64 `json:"parent_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int32  `json:"sort_order"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type GetCategoryRequest struct {
	ID int64 `json:"id"`
}

type GetCategoryResponse struct {
	Category *Category `json:"category"`
}

type ListCategoriesRequest struct {
	ParentID *int64 `json:"parent_id"` // 0 selects top-level categories
	IsActive *bool  `json:"is_active"`
	Search   string `json:"search"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
	Total      int32       `json:"total"`
}

type UpdateCategoryRequest struct {
	ID          int64  `json:"id"`
	ParentID    *int64 `json:"parent_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int32  `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

type UpdateCategoryResponse struct {
	Category *Category `json:"category"`
}

type DeleteCategoryRequest struct {
	ID int64 `json:"id"`
}

type GetCategoryTreeRequest struct {
	ParentID *int64 `json:"parent_id"`
}

type GetCategoryTreeResponse struct {
	Version string          `json:"version"`
	ETag    string          `json:"etag"`
	Nodes   []*CategoryNode `json:"nodes"`
}

type GetCategoryBranchRequest struct {
	CategoryID int64 `json:"category_id"`
}

type GetCategoryBranchResponse struct {
	CategoryID  int64   `json:"category_id"`
	CategoryIDs []int64 `json:"category_ids"`
}

type ListAvailableParentsRequest struct {
	CategoryID int64 `json:"category_id"` // 0 for a category that does not exist yet
}

type ListAvailableParentsResponse struct {
	Options []*ParentOption `json:"options"`
}

type ValidateCategoriesRequest struct{}

type ValidateCategoriesResponse struct {
	OK         bool    `json:"ok"`
	Duplicates []int64 `json:"duplicates"`
	Orphans    []int64 `json:"orphans"`
	Cycles     []int64 `json:"cycles"`
	Detached   []int64 `json:"detached"`
}

type Product struct {
	ProductID     int64     `json:"product_id"`
	CategoryID    int64     `json:"category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	DiscountPrice *float64  `json:"discount_price"`
	Unit          string    `json:"unit"`
	Origin        string    `json:"origin,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	IsFeatured    bool      `json:"is_featured"`
	IsNew         bool      `json:"is_new"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	CategoryID    int64    `json:"category_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Unit          string   `json:"unit"`
	Origin        string   `json:"origin"`
	ImageURL      string   `json:"image_url"`
	IsFeatured    bool     `json:"is_featured"`
	IsNew         bool     `json:"is_new"`
}

type CreateProductResponse struct {
	Product *Product `json:"product"`
}

type GetProductRequest struct {
	ID int64 `json:"id"`
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListProductsRequest struct {
	Search    string   `json:"search"`
	IsActive  *bool    `json:"is_active"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	SortBy    string   `json:"sort_by"`    // name, price, created_at
	SortOrder string   `json:"sort_order"` // asc, desc
	Page      int32    `json:"page"`
	PageSize  int32    `json:"page_size"`
}

type ListProductsByCategoryRequest struct {
	CategoryID int64    `json:"category_id"`
	Search     string   `json:"search"`
	MinPrice   *float64 `json:"min_price"`
	MaxPrice   *float64 `json:"max_price"`
	SortBy     string   `json:"sort_by"`
	SortOrder  string   `json:"sort_order"`
	Page       int32    `json:"page"`
	PageSize   int32    `json:"page_size"`
}

type ListProductsResponse struct {
	Products   []*Product `json:"products"`
	Total      int32      `json:"total"`
	Page       int32      `json:"page"`
	PageSize   int32      `json:"page_size"`
	TotalPages int32      `json:"total_pages"`
}

type UpdateProductRequest struct {
	ID            int64    `json:"id"`
	CategoryID    int64    `json:"category_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Unit          string   `json:"unit"`
	Origin        string   `json:"origin"`
	ImageURL      string   `json:"image_url"`
	IsFeatured    bool     `json:"is_featured"`
	IsNew         bool     `json:"is_new"`
	IsActive      bool     `json:"is_active"`
}

type UpdateProductResponse struct {
	Product *Product `json:"product"`
}

type DeleteProductRequest struct {
	ID int64 `json:"id"`
}

type CountProductsRequest struct{}

type CountProductsResponse struct {
	Total         int32 `json:"total"`
	ActiveCount   int32 `json:"activeCount"`
	InactiveCount int32 `json:"inactiveCount"`
}
