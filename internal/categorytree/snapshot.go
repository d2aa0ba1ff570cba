package categorytree

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Snapshot is the tree derived from one version of the category directory. It is never
// modified after NewSnapshot returns, so one instance can be shared by every request;
// callers must treat the returned nodes as read-only.
type Snapshot struct {
	Version string
	ETag    string
	Roots   []*Node
	Report  Report

	ix   *index
	byID map[int64]*Node
}

// NewSnapshot validates the directory and builds its top-level tree. Duplicate ids are an
// error. Orphans and parent cycles are recorded in Report and left out of Roots: no chain
// from a root can enter a loop, so the rest of the tree is still served, while Subtree
// and Branch report a *CycleError for any category inside one.
func NewSnapshot(categories []model.Category, version string) (*Snapshot, error) {
	rep := Validate(categories)
	if len(rep.Duplicates) > 0 {
		return nil, &DuplicateIDError{ID: rep.Duplicates[0]}
	}

	cats := make([]model.Category, len(categories))
	copy(cats, categories)

	ix, err := newIndex(cats)
	if err != nil {
		return nil, err
	}
	roots, err := ix.build(nil)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{
		Version: version,
		ETag:    etag(cats),
		Roots:   roots,
		Report:  rep,
		ix:      ix,
		byID:    make(map[int64]*Node, len(cats)),
	}
	for _, fn := range Flatten(roots) {
		s.byID[fn.Node.ID] = fn.Node
	}
	return s, nil
}

// Len is the number of categories in the directory, detached ones included.
func (s *Snapshot) Len() int {
	return len(s.ix.cats)
}

// Node returns a category that is part of the top-level tree.
func (s *Snapshot) Node(id int64) (*Node, bool) {
	n, ok := s.byID[id]
	return n, ok
}

// Category looks up any record of the directory, detached ones included.
func (s *Snapshot) Category(id int64) (model.Category, bool) {
	i, ok := s.ix.byID[id]
	if !ok {
		return model.Category{}, false
	}
	return s.ix.cats[i], true
}

// Subtree returns the children of parentID with their descendants, or the top level
// when parentID is nil.
func (s *Snapshot) Subtree(parentID *int64) ([]*Node, error) {
	if parentID == nil {
		return s.Roots, nil
	}
	if n, ok := s.byID[*parentID]; ok {
		return n.Subcategories, nil
	}
	return s.ix.build(parentID)
}

// Branch returns id and all of its descendants.
func (s *Snapshot) Branch(id int64) (IDSet, error) {
	return s.ix.branch(id)
}

// Categories returns a copy of the flat directory in its original order.
func (s *Snapshot) Categories() []model.Category {
	out := make([]model.Category, len(s.ix.cats))
	copy(out, s.ix.cats)
	return out
}

// etag fingerprints every field a rendered node carries, in directory order.
func etag(cats []model.Category) string {
	h := sha256.New()
	for _, c := range cats {
		writeField(h, strconv.FormatInt(c.ID, 10))
		if c.ParentID != nil {
			writeField(h, strconv.FormatInt(*c.ParentID, 10))
		} else {
			writeField(h, "-")
		}
		writeField(h, c.Name)
		if c.Description != nil {
			writeField(h, "+"+*c.Description)
		} else {
			writeField(h, "-")
		}
		writeField(h, strconv.Itoa(c.SortOrder))
		writeField(h, strconv.FormatBool(c.IsActive))
		writeField(h, strconv.FormatInt(c.CreatedAt.UnixNano(), 10))
		writeField(h, strconv.FormatInt(c.UpdatedAt.UnixNano(), 10))
	}
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func writeField(h hash.Hash, v string) {
	fmt.Fprintf(h, "%d:%s;", len(v), v)
}
