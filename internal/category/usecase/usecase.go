package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type categoryUseCase struct {
	repo      category.Repository
	versions  category.VersionStore
	publisher category.EventPublisher
	tree      *treeCache
	logger    logger.ZapLogger
	now       func() time.Time
}

// NewCategoryUseCase wires the directory use case. publisher may be nil, in which case
// changes are only visible to replicas through the shared version.
func NewCategoryUseCase(repo category.Repository, versions category.VersionStore, publisher category.EventPublisher, treeTTL time.Duration, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:      repo,
		versions:  versions,
		publisher: publisher,
		tree:      newTreeCache(repo, versions, treeTTL, log),
		logger:    log,
		now:       time.Now,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, category.ErrNameRequired
	}

	if input.ParentID != nil {
		parent, err := uc.repo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, category.ErrParentNotFound
		}
	}

	now := uc.now()
	cat := &model.Category{
		ParentID:    input.ParentID,
		Name:        name,
		Description: optional(input.Description),
		SortOrder:   input.SortOrder,
		IsActive:    true,
		BaseModel:   model.BaseModel{CreatedAt: now, UpdatedAt: now},
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	uc.changed(ctx, cat.ID, category.ActionCreated)
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}
	return cat, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]model.Category, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, category.ErrNameRequired
	}

	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}

	if input.ParentID != nil {
		if err := uc.checkParent(ctx, cat.ID, *input.ParentID); err != nil {
			return nil, err
		}
	}

	cat.ParentID = input.ParentID
	cat.Name = name
	cat.Description = optional(input.Description)
	cat.SortOrder = input.SortOrder
	cat.IsActive = input.IsActive
	cat.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	uc.changed(ctx, cat.ID, category.ActionUpdated)
	return cat, nil
}

// checkParent rejects a parent that does not exist or that lies inside the category's
// own branch, either of which would detach the branch from the tree.
func (uc *categoryUseCase) checkParent(ctx context.Context, id, parentID int64) error {
	if parentID == id {
		return category.ErrInvalidParent
	}
	parent, err := uc.repo.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return category.ErrParentNotFound
	}

	// Read the directory fresh: a stale tree could miss a move made moments ago.
	cats, err := uc.repo.ListAll(ctx)
	if err != nil {
		return err
	}
	branch, err := categorytree.BranchIDs(id, cats)
	if err != nil {
		return err
	}
	if branch.Has(parentID) {
		return category.ErrInvalidParent
	}
	return nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int64) error {
	cat, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return category.ErrNotFound
	}

	children, err := uc.repo.CountChildren(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if children > 0 {
		uc.logger.Info("subcategories moved to the top level",
			zap.Int64("category_id", id),
			zap.Int("children", children),
		)
	}

	uc.changed(ctx, id, category.ActionDeleted)
	return nil
}

func (uc *categoryUseCase) GetTree(ctx context.Context, parentID *int64) (*dto.Tree, error) {
	snap, err := uc.tree.get(ctx)
	if err != nil {
		return nil, err
	}
	nodes, err := snap.Subtree(parentID)
	if err != nil {
		return nil, err
	}
	return &dto.Tree{Version: snap.Version, ETag: snap.ETag, Nodes: nodes}, nil
}

func (uc *categoryUseCase) GetBranch(ctx context.Context, categoryID int64) (categorytree.IDSet, error) {
	snap, err := uc.tree.get(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Branch(categoryID)
}

// ListAvailableParents lists the tree in display order, leaving out categoryID and its
// descendants. categoryID 0 stands for a category that is not created yet.
func (uc *categoryUseCase) ListAvailableParents(ctx context.Context, categoryID int64) ([]dto.ParentOption, error) {
	snap, err := uc.tree.get(ctx)
	if err != nil {
		return nil, err
	}

	exclude := categorytree.NewIDSet()
	if categoryID != 0 {
		if exclude, err = snap.Branch(categoryID); err != nil {
			return nil, err
		}
	}

	options := []dto.ParentOption{}
	for _, fn := range categorytree.Flatten(snap.Roots) {
		if exclude.Has(fn.Node.ID) {
			continue
		}
		options = append(options, dto.ParentOption{ID: fn.Node.ID, Name: fn.Node.Name, Level: fn.Level})
	}
	return options, nil
}

// ValidateDirectory inspects the stored directory directly, so it still answers when the
// tree cannot be built.
func (uc *categoryUseCase) ValidateDirectory(ctx context.Context) (categorytree.Report, error) {
	cats, err := uc.repo.ListAll(ctx)
	if err != nil {
		return categorytree.Report{}, err
	}
	return categorytree.Validate(cats), nil
}

func (uc *categoryUseCase) InvalidateTree(ctx context.Context) error {
	uc.tree.invalidate()
	_, err := uc.versions.Bump(ctx)
	return err
}

// changed bumps the shared version and announces the change. The write has already been
// committed, so failures here are logged and not returned.
func (uc *categoryUseCase) changed(ctx context.Context, id int64, action string) {
	uc.tree.invalidate()

	version, err := uc.versions.Bump(ctx)
	if err != nil {
		uc.logger.Error("failed to bump category directory version", zap.Int64("category_id", id), zap.Error(err))
	}

	if uc.publisher == nil {
		return
	}
	event := &category.ChangedEvent{
		EventID:   uuid.NewString(),
		EventType: category.EventCategoryChanged,
		Source:    category.EventSource,
		Payload:   category.ChangedPayload{CategoryID: id, Action: action, Version: version},
		Timestamp: uc.now().UTC(),
	}
	if err := uc.publisher.PublishCategoryChanged(ctx, event); err != nil {
		uc.logger.Error("failed to publish category event",
			zap.Int64("category_id", id),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
