package model

type Category struct {
	ID          int64   `db:"id" json:"category_id"`
	ParentID    *int64  `db:"parent_id" json:"parent_id"` // Nullable, nil means root
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
	SortOrder   int     `db:"sort_order" json:"sort_order"`
	IsActive    bool    `db:"is_active" json:"is_active"`
	BaseModel
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
