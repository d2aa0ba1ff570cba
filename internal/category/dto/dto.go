package dto

import "github.com/fekuna/omnipos-catalog-service/internal/categorytree"

type CategoryFilters struct {
	ParentID *int64 // Nil means ignore, 0 means root categories
	IsActive *bool
	Search   string
	Page     int
	PageSize int
}

// Tree is a slice of the shared category tree together with the directory version it
// was built from.
type Tree struct {
	Version string
	ETag    string
	Nodes   []*categorytree.Node
}

// ParentOption is one row of the parent picker, indented by Level.
type ParentOption struct {
	ID    int64
	Name  string
	Level int
}
