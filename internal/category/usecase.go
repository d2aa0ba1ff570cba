package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Tree ops
	GetTree(ctx context.Context, parentID *int64) (*dto.Tree, error)
	GetBranch(ctx context.Context, categoryID int64) (categorytree.IDSet, error)
	ListAvailableParents(ctx context.Context, categoryID int64) ([]dto.ParentOption, error)
	ValidateDirectory(ctx context.Context) (categorytree.Report, error)

	// InvalidateTree marks the shared tree stale after a change made outside this service.
	InvalidateTree(ctx context.Context) error
}
