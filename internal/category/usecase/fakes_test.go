package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/category/dto"
	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

type fakeRepo struct {
	mu       sync.Mutex
	cats     []model.Category
	nextID   int64
	listAll  int
	failList error
}

func newFakeRepo(cats ...model.Category) *fakeRepo {
	r := &fakeRepo{nextID: 100}
	r.cats = append(r.cats, cats...)
	return r
}

func (r *fakeRepo) Create(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	r.cats = append(r.cats, *c)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id int64) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.cats {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) FindAll(_ context.Context, f *dto.CategoryFilters) ([]model.Category, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Category
	for _, c := range r.cats {
		if f.ParentID != nil {
			if *f.ParentID == 0 && c.ParentID != nil {
				continue
			}
			if *f.ParentID != 0 && (c.ParentID == nil || *c.ParentID != *f.ParentID) {
				continue
			}
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *fakeRepo) ListAll(_ context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listAll++
	if r.failList != nil {
		return nil, r.failList
	}
	out := make([]model.Category, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, c *model.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cats {
		if r.cats[i].ID == c.ID {
			r.cats[i] = *c
			return nil
		}
	}
	return category.ErrNotFound
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.cats {
		if r.cats[i].ID != id {
			continue
		}
		r.cats = append(r.cats[:i], r.cats[i+1:]...)
		for j := range r.cats {
			if p := r.cats[j].ParentID; p != nil && *p == id {
				r.cats[j].ParentID = nil
			}
		}
		return nil
	}
	return category.ErrNotFound
}

func (r *fakeRepo) CountChildren(_ context.Context, id int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.cats {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) listAllCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listAll
}

type fakeVersions struct {
	mu      sync.Mutex
	version int64
	err     error
}

func (v *fakeVersions) Version(context.Context) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.version, v.err
}

func (v *fakeVersions) Bump(context.Context) (int64, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return 0, v.err
	}
	v.version++
	return v.version, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*category.ChangedEvent
	err    error
}

func (p *fakePublisher) PublishCategoryChanged(_ context.Context, e *category.ChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

var errRedisDown = errors.New("redis: connection refused")

func ptr(v int64) *int64 { return &v }

func cat(id int64, parent *int64, name string) model.Category {
	return model.Category{ID: id, ParentID: parent, Name: name, IsActive: true}
}

// groceries is Food(1) > Dairy(2) > Cheese(3), Drinks(4).
func groceries() []model.Category {
	return []model.Category{
		cat(1, nil, "Food"),
		cat(2, ptr(1), "Dairy"),
		cat(3, ptr(2), "Cheese"),
		cat(4, nil, "Drinks"),
	}
}
