package categorytree

import "fmt"

// CycleError reports a category reached twice while walking down the parent links,
// either through a self-reference or a longer loop.
type CycleError struct {
	ID int64
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category hierarchy contains a cycle at category %d", e.ID)
}

type DuplicateIDError struct {
	ID int64
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("category %d appears more than once in the directory", e.ID)
}
