package dto

type CreateProductInput struct {
	CategoryID    int64
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	Unit          string
	Origin        string
	ImageURL      string
	IsFeatured    bool
	IsNew         bool
}

type UpdateProductInput struct {
	ID            int64
	CategoryID    int64
	Name          string
	Description   string
	Price         float64
	DiscountPrice *float64
	Unit          string
	Origin        string
	ImageURL      string
	IsFeatured    bool
	IsNew         bool
	IsActive      bool
}
