package categorytree

import "github.com/fekuna/omnipos-catalog-service/internal/model"

// index groups a flat category list by parent. Child slices hold positions into cats
// and keep input order.
type index struct {
	cats     []model.Category
	byID     map[int64]int
	roots    []int
	children map[int64][]int
}

func newIndex(categories []model.Category) (*index, error) {
	ix := &index{
		cats:     categories,
		byID:     make(map[int64]int, len(categories)),
		children: make(map[int64][]int),
	}
	for i := range categories {
		c := &categories[i]
		if _, dup := ix.byID[c.ID]; dup {
			return nil, &DuplicateIDError{ID: c.ID}
		}
		ix.byID[c.ID] = i
		if c.ParentID == nil {
			ix.roots = append(ix.roots, i)
		} else {
			ix.children[*c.ParentID] = append(ix.children[*c.ParentID], i)
		}
	}
	return ix, nil
}

func (ix *index) childrenOf(parentID *int64) []int {
	if parentID == nil {
		return ix.roots
	}
	return ix.children[*parentID]
}

// build expands the records under parentID depth-first with an explicit stack.
// Every node is expanded once; meeting one again means the parent links loop.
func (ix *index) build(parentID *int64) ([]*Node, error) {
	start := ix.childrenOf(parentID)
	out := make([]*Node, 0, len(start))
	stack := make([]*Node, 0, len(start))
	for _, i := range start {
		n := newNode(ix.cats[i])
		out = append(out, n)
		stack = append(stack, n)
	}

	visited := make(map[int64]struct{}, len(ix.cats))
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, seen := visited[n.ID]; seen {
			return nil, &CycleError{ID: n.ID}
		}
		visited[n.ID] = struct{}{}

		kids := ix.children[n.ID]
		for _, i := range kids {
			c := newNode(ix.cats[i])
			n.Subcategories = append(n.Subcategories, c)
			stack = append(stack, c)
		}
	}
	return out, nil
}

func (ix *index) branch(categoryID int64) (IDSet, error) {
	ids := NewIDSet(categoryID)
	stack := []int64{categoryID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, i := range ix.children[id] {
			child := ix.cats[i].ID
			if ids.Has(child) {
				return nil, &CycleError{ID: child}
			}
			ids.add(child)
			stack = append(stack, child)
		}
	}
	return ids, nil
}
