// Package categorytree derives the category navigation tree from the flat category
// directory and resolves the set of category ids under a branch.
//
// Traversal never recurses: a self-parented record or a parent loop is reported as a
// *CycleError instead of exhausting the stack. Records whose parent does not exist are
// left out of the tree rather than promoted to roots.
package categorytree

import (
	"sort"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Node is a category together with its direct children, in directory order.
type Node struct {
	model.Category
	Subcategories []*Node `json:"subcategories"`
}

func newNode(c model.Category) *Node {
	return &Node{Category: c, Subcategories: []*Node{}}
}

// Build returns the categories whose parent is parentID (nil for top level), each with
// its subcategories filled in at every depth. Sibling order follows the input.
func Build(categories []model.Category, parentID *int64) ([]*Node, error) {
	ix, err := newIndex(categories)
	if err != nil {
		return nil, err
	}
	return ix.build(parentID)
}

// BranchIDs returns categoryID plus the ids of all of its descendants. An id with no
// children, known or not, yields a set holding only itself.
func BranchIDs(categoryID int64, categories []model.Category) (IDSet, error) {
	ix, err := newIndex(categories)
	if err != nil {
		return nil, err
	}
	return ix.branch(categoryID)
}

// IDSet is a set of category ids, used as a membership predicate over products.
type IDSet map[int64]struct{}

func NewIDSet(ids ...int64) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.add(id)
	}
	return s
}

func (s IDSet) add(id int64) {
	s[id] = struct{}{}
}

func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Len() int {
	return len(s)
}

// Slice returns the ids in ascending order.
func (s IDSet) Slice() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Filter keeps the items whose category, as reported by categoryOf, is in ids.
func Filter[T any](items []T, ids IDSet, categoryOf func(T) int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if ids.Has(categoryOf(it)) {
			out = append(out, it)
		}
	}
	return out
}

// FlatNode is one row of an indented rendering of the tree.
type FlatNode struct {
	Node  *Node
	Level int
}

// Flatten lists the nodes in pre-order with their depth, roots at level 0.
func Flatten(roots []*Node) []FlatNode {
	var out []FlatNode
	stack := make([]FlatNode, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, FlatNode{Node: roots[i]})
	}
	for len(stack) > 0 {
		fn := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, fn)

		kids := fn.Node.Subcategories
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, FlatNode{Node: kids[i], Level: fn.Level + 1})
		}
	}
	return out
}
