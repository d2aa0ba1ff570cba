package categorytree

import (
	"sort"

	"github.com/fekuna/omnipos-catalog-service/internal/model"
)

// Report describes the defects of a flat category directory.
type Report struct {
	Duplicates []int64 `json:"duplicates"` // ids used by more than one record
	Orphans    []int64 `json:"orphans"`    // records whose parent_id matches no record
	Cycles     []int64 `json:"cycles"`     // records whose parent chain loops back onto itself
	Detached   []int64 `json:"detached"`   // records absent from the top-level tree, orphans and cycles included
}

func (r Report) OK() bool {
	return len(r.Duplicates) == 0 && len(r.Orphans) == 0 && len(r.Cycles) == 0
}

// Err returns the defect that makes the directory unusable. Orphans alone are not one.
func (r Report) Err() error {
	if len(r.Duplicates) > 0 {
		return &DuplicateIDError{ID: r.Duplicates[0]}
	}
	if len(r.Cycles) > 0 {
		return &CycleError{ID: r.Cycles[0]}
	}
	return nil
}

// Validate inspects categories without building the tree.
func Validate(categories []model.Category) Report {
	var rep Report

	seen := make(map[int64]int, len(categories))
	for _, c := range categories {
		seen[c.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			rep.Duplicates = append(rep.Duplicates, id)
		}
	}
	sortIDs(rep.Duplicates)
	if len(rep.Duplicates) > 0 {
		return rep
	}

	ix, _ := newIndex(categories)
	rep.Orphans = ix.orphans()
	rep.Cycles = ix.cycles()
	rep.Detached = ix.detached()
	return rep
}

func (ix *index) orphans() []int64 {
	var out []int64
	for _, c := range ix.cats {
		if c.ParentID == nil {
			continue
		}
		if _, ok := ix.byID[*c.ParentID]; !ok {
			out = append(out, c.ID)
		}
	}
	sortIDs(out)
	return out
}

// cycles follows each record's parent chain upwards. A chain that comes back to a record
// already on the current path closes a loop; the records from that point on are its members.
func (ix *index) cycles() []int64 {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make(map[int64]int, len(ix.cats))
	var out []int64

	for _, c := range ix.cats {
		var path []int64
		cur := c.ID
		for {
			if state[cur] == done {
				break
			}
			if state[cur] == onPath {
				for k := len(path) - 1; k >= 0; k-- {
					out = append(out, path[k])
					if path[k] == cur {
						break
					}
				}
				break
			}
			state[cur] = onPath
			path = append(path, cur)

			parent := ix.cats[ix.byID[cur]].ParentID
			if parent == nil {
				break
			}
			if _, ok := ix.byID[*parent]; !ok {
				break
			}
			cur = *parent
		}
		for _, id := range path {
			state[id] = done
		}
	}
	sortIDs(out)
	return out
}

func (ix *index) detached() []int64 {
	reached := make(map[int64]struct{}, len(ix.cats))
	stack := append([]int(nil), ix.roots...)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		id := ix.cats[i].ID
		if _, ok := reached[id]; ok {
			continue
		}
		reached[id] = struct{}{}
		stack = append(stack, ix.children[id]...)
	}

	var out []int64
	for _, c := range ix.cats {
		if _, ok := reached[c.ID]; !ok {
			out = append(out, c.ID)
		}
	}
	sortIDs(out)
	return out
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
