package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/category"
	"github.com/fekuna/omnipos-catalog-service/internal/categorytree"
	"github.com/fekuna/omnipos-catalog-service/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type builtSnapshot struct {
	snap    *categorytree.Snapshot
	builtAt time.Time
}

// treeCache holds the one tree every request reads. A snapshot is reused while the
// shared directory version matches and it is younger than ttl; otherwise the first
// caller rebuilds it and concurrent callers wait for that build.
type treeCache struct {
	repo     category.Repository
	versions category.VersionStore
	ttl      time.Duration
	logger   logger.ZapLogger
	now      func() time.Time

	current atomic.Pointer[builtSnapshot]
	group   singleflight.Group
}

func newTreeCache(repo category.Repository, versions category.VersionStore, ttl time.Duration, log logger.ZapLogger) *treeCache {
	return &treeCache{
		repo:     repo,
		versions: versions,
		ttl:      ttl,
		logger:   log,
		now:      time.Now,
	}
}

func (c *treeCache) get(ctx context.Context) (*categorytree.Snapshot, error) {
	cur := c.current.Load()

	version, err := c.versions.Version(ctx)
	if err != nil {
		// Without the shared version only the age of the snapshot can be checked.
		c.logger.Warn("failed to read category directory version", zap.Error(err))
		if cur != nil && c.fresh(cur) {
			return cur.snap, nil
		}
		return c.rebuild(ctx, "")
	}

	want := strconv.FormatInt(version, 10)
	if cur != nil && cur.snap.Version == want && c.fresh(cur) {
		return cur.snap, nil
	}
	return c.rebuild(ctx, want)
}

func (c *treeCache) fresh(b *builtSnapshot) bool {
	return c.ttl <= 0 || c.now().Sub(b.builtAt) < c.ttl
}

func (c *treeCache) rebuild(ctx context.Context, version string) (*categorytree.Snapshot, error) {
	v, err, _ := c.group.Do("tree:"+version, func() (interface{}, error) {
		return c.build(context.WithoutCancel(ctx), version)
	})
	if err != nil {
		return nil, err
	}
	return v.(*categorytree.Snapshot), nil
}

func (c *treeCache) build(ctx context.Context, version string) (*categorytree.Snapshot, error) {
	cats, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := categorytree.NewSnapshot(cats, version)
	if err != nil {
		var dup *categorytree.DuplicateIDError
		if errors.As(err, &dup) {
			c.logger.Error("category directory has a duplicate id", zap.Int64("category_id", dup.ID))
		}
		return nil, err
	}

	if len(snap.Report.Cycles) > 0 {
		c.logger.Error("categories in a parent cycle left out of the tree",
			zap.Int64s("category_ids", snap.Report.Cycles),
		)
	}
	if len(snap.Report.Orphans) > 0 {
		c.logger.Warn("categories with a missing parent left out of the tree",
			zap.Int64s("category_ids", snap.Report.Orphans),
		)
	}

	c.current.Store(&builtSnapshot{snap: snap, builtAt: c.now()})
	c.logger.Debug("category tree rebuilt",
		zap.String("version", version),
		zap.Int("categories", snap.Len()),
	)
	return snap, nil
}

// invalidate drops the local snapshot. Used when the shared version could not be bumped.
func (c *treeCache) invalidate() {
	c.current.Store(nil)
}
