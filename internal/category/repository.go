package category

import (
	"context"

	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	FindAll(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error)
	// ListAll returns the whole directory ordered by sort_order, id.
	ListAll(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) error
	Delete(ctx context.Context, id int64) error
	CountChildren(ctx context.Context, id int64) (int, error)
}

// VersionStore holds the directory version shared by every replica. Any write to the
// directory bumps it; a replica whose tree was built from an older version rebuilds.
type VersionStore interface {
	Version(ctx context.Context) (int64, error)
	Bump(ctx context.Context) (int64, error)
}

type EventPublisher interface {
	PublishCategoryChanged(ctx context.Context, event *ChangedEvent) error
}
