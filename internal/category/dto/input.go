package dto

type CreateCategoryInput struct {
	ParentID    *int64
	Name        string
	Description string
	SortOrder   int
}

type UpdateCategoryInput struct {
	ID          int64
	ParentID    *int64 // Nil moves the category to the top level
	Name        string
	Description string
	SortOrder   int
	IsActive    bool
}
