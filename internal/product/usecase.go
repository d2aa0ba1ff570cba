package product

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/internal/product/dto"
	"github.com/fekuna/omnipos-catalog-service/pkg/search"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) (*dto.ProductPage, error)
	// ListByCategory lists the active products of categoryID and all of its subcategories.
	ListByCategory(ctx context.Context, categoryID int64, filters *dto.ProductFilters) (*dto.ProductPage, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (*dto.ProductCounts, error)
}

// CategoryDirectory is what products need from the category directory. category.UseCase
// satisfies it.
type CategoryDirectory interface {
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	GetBranch(ctx context.Context, categoryID int64) (categorytree.IDSet, error)
}

// ListCache stores serialized list results. *cache.RedisClient satisfies it.
type ListCache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) error
}

// SearchIndex is the full-text index products are mirrored into. *search.Client satisfies it.
type SearchIndex interface {
	CreateIndex(ctx context.Context, index, mapping string) error
	Index(ctx context.Context, index, id string, doc interface{}) error
	Delete(ctx context.Context, index, id string) error
	Search(ctx context.Context, index string, query map[string]interface{}) (*search.SearchResponse, error)
}
