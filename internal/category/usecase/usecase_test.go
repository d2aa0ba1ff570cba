package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	repo      *fakeRepo
	versions  *fakeVersions
	publisher *fakePublisher
	uc        *categoryUseCase
}

func setup(t *testing.T, repo *fakeRepo) *fixture {
	t.Helper()
	f := &fixture{
		repo:      repo,
		versions:  &fakeVersions{version: 1},
		publisher: &fakePublisher{},
	}
	f.uc = NewCategoryUseCase(f.repo, f.versions, f.publisher, time.Minute, logger.NewNop()).(*categoryUseCase)
	return f
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("top level", func(t *testing.T) {
		f := setup(t, newFakeRepo())
		got, err := f.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "  Food  ", Description: " "})
		require.NoError(t, err)

		assert.NotZero(t, got.ID)
		assert.Equal(t, "Food", got.Name)
		assert.Nil(t, got.Description)
		assert.True(t, got.IsActive)
		assert.Equal(t, int64(2), f.versions.version)

		require.Len(t, f.publisher.events, 1)
		ev := f.publisher.events[0]
		assert.Equal(t, category.EventCategoryChanged, ev.EventType)
		assert.Equal(t, category.EventSource, ev.Source)
		assert.Equal(t, category.ActionCreated, ev.Payload.Action)
		assert.Equal(t, got.ID, ev.Payload.CategoryID)
		assert.Equal(t, int64(2), ev.Payload.Version)
		assert.NotEmpty(t, ev.EventID)
	})

	t.Run("under existing parent", func(t *testing.T) {
		f := setup(t, newFakeRepo(groceries()...))
		got, err := f.uc.CreateCategory(ctx, &dto.CreateCategoryInput{ParentID: ptr(4), Name: "Juice"})
		require.NoError(t, err)
		require.NotNil(t, got.ParentID)
		assert.Equal(t, int64(4), *got.ParentID)
	})

	t.Run("missing parent is rejected", func(t *testing.T) {
		f := setup(t, newFakeRepo(groceries()...))
		_, err := f.uc.CreateCategory(ctx, &dto.CreateCategoryInput{ParentID: ptr(99), Name: "Lost"})
		assert.ErrorIs(t, err, category.ErrParentNotFound)
		assert.Empty(t, f.publisher.events)
		assert.Equal(t, int64(1), f.versions.version)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		f := setup(t, newFakeRepo())
		_, err := f.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "   "})
		assert.ErrorIs(t, err, category.ErrNameRequired)
	})

	t.Run("publish failure does not fail the write", func(t *testing.T) {
		f := setup(t, newFakeRepo())
		f.publisher.err = errors.New("kafka down")
		got, err := f.uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Food"})
		require.NoError(t, err)
		assert.NotZero(t, got.ID)
	})
}

func TestUpdateCategory_ParentRules(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		parent  *int64
		wantErr error
	}{
		{name: "self", id: 1, parent: ptr(1), wantErr: category.ErrInvalidParent},
		{name: "direct child", id: 1, parent: ptr(2), wantErr: category.ErrInvalidParent},
		{name: "deep descendant", id: 1, parent: ptr(3), wantErr: category.ErrInvalidParent},
		{name: "missing parent", id: 2, parent: ptr(99), wantErr: category.ErrParentNotFound},
		{name: "missing category", id: 42, parent: nil, wantErr: category.ErrNotFound},
		{name: "move to sibling branch", id: 2, parent: ptr(4)},
		{name: "move to top level", id: 3, parent: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, newFakeRepo(groceries()...))
			got, err := f.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
				ID:       tt.id,
				ParentID: tt.parent,
				Name:     "Renamed",
				IsActive: true,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.publisher.events)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.parent, got.ParentID)
			assert.Equal(t, "Renamed", got.Name)
			require.Len(t, f.publisher.events, 1)
			assert.Equal(t, category.ActionUpdated, f.publisher.events[0].Payload.Action)
		})
	}
}

func TestUpdateCategory_MoveIsVisibleInTree(t *testing.T) {
	ctx := context.Background()
	f := setup(t, newFakeRepo(groceries()...))

	before, err := f.uc.GetBranch(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, before.Slice())

	_, err = f.uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{ID: 2, ParentID: ptr(4), Name: "Dairy", IsActive: true})
	require.NoError(t, err)

	after, err := f.uc.GetBranch(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4}, after.Slice())
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("children move to the top level", func(t *testing.T) {
		f := setup(t, newFakeRepo(groceries()...))
		require.NoError(t, f.uc.DeleteCategory(ctx, 1))

		tree, err := f.uc.GetTree(ctx, nil)
		require.NoError(t, err)
		var names []string
		for _, n := range tree.Nodes {
			names = append(names, n.Name)
		}
		assert.ElementsMatch(t, []string{"Dairy", "Drinks"}, names)

		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, category.ActionDeleted, f.publisher.events[0].Payload.Action)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := setup(t, newFakeRepo(groceries()...))
		assert.ErrorIs(t, f.uc.DeleteCategory(ctx, 42), category.ErrNotFound)
	})
}

func TestGetCategory(t *testing.T) {
	f := setup(t, newFakeRepo(groceries()...))

	got, err := f.uc.GetCategory(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Dairy", got.Name)

	_, err = f.uc.GetCategory(context.Background(), 42)
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestGetTree(t *testing.T) {
	ctx := context.Background()
	f := setup(t, newFakeRepo(groceries()...))

	tree, err := f.uc.GetTree(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "1", tree.Version)
	assert.NotEmpty(t, tree.ETag)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, "Food", tree.Nodes[0].Name)
	require.Len(t, tree.Nodes[0].Subcategories, 1)
	assert.Equal(t, "Cheese", tree.Nodes[0].Subcategories[0].Subcategories[0].Name)

	sub, err := f.uc.GetTree(ctx, ptr(2))
	require.NoError(t, err)
	require.Len(t, sub.Nodes, 1)
	assert.Equal(t, "Cheese", sub.Nodes[0].Name)

	none, err := f.uc.GetTree(ctx, ptr(3))
	require.NoError(t, err)
	assert.Empty(t, none.Nodes)
}

func TestGetTree_CycleIsReported(t *testing.T) {
	cats := append(groceries(), cat(5, ptr(6), "a"), cat(6, ptr(5), "b"))
	f := setup(t, newFakeRepo(cats...))

	ctx := context.Background()

	tree, err := f.uc.GetTree(ctx, nil)
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, "Food", tree.Nodes[0].Name)

	ids, err := f.uc.GetBranch(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids.Slice())

	var cycle *categorytree.CycleError
	_, err = f.uc.GetBranch(ctx, 5)
	require.True(t, errors.As(err, &cycle))
	assert.Equal(t, int64(5), cycle.ID)

	_, err = f.uc.GetTree(ctx, ptr(6))
	assert.True(t, errors.As(err, &cycle))
}

func TestGetBranch(t *testing.T) {
	ctx := context.Background()
	f := setup(t, newFakeRepo(groceries()...))

	tests := []struct {
		id   int64
		want []int64
	}{
		{id: 1, want: []int64{1, 2, 3}},
		{id: 2, want: []int64{2, 3}},
		{id: 3, want: []int64{3}},
		{id: 404, want: []int64{404}},
	}
	for _, tt := range tests {
		ids, err := f.uc.GetBranch(ctx, tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.want, ids.Slice(), "branch(%d)", tt.id)
	}
}

func TestListAvailableParents(t *testing.T) {
	ctx := context.Background()
	f := setup(t, newFakeRepo(groceries()...))

	all, err := f.uc.ListAvailableParents(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []dto.ParentOption{
		{ID: 1, Name: "Food", Level: 0},
		{ID: 2, Name: "Dairy", Level: 1},
		{ID: 3, Name: "Cheese", Level: 2},
		{ID: 4, Name: "Drinks", Level: 0},
	}, all)

	forDairy, err := f.uc.ListAvailableParents(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []dto.ParentOption{
		{ID: 1, Name: "Food", Level: 0},
		{ID: 4, Name: "Drinks", Level: 0},
	}, forDairy)
}

func TestValidateDirectory(t *testing.T) {
	cats := append(groceries(), cat(9, ptr(99), "Lost"), cat(5, ptr(5), "Self"))
	f := setup(t, newFakeRepo(cats...))

	rep, err := f.uc.ValidateDirectory(context.Background())
	require.NoError(t, err)
	assert.False(t, rep.OK())
	assert.Equal(t, []int64{9}, rep.Orphans)
	assert.Equal(t, []int64{5}, rep.Cycles)
	assert.Equal(t, []int64{5, 9}, rep.Detached)
}

func TestInvalidateTree(t *testing.T) {
	ctx := context.Background()
	f := setup(t, newFakeRepo(groceries()...))

	_, err := f.uc.GetTree(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, f.repo.listAllCalls())

	require.NoError(t, f.uc.InvalidateTree(ctx))
	tree, err := f.uc.GetTree(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", tree.Version)
	assert.Equal(t, 2, f.repo.listAllCalls())
}
