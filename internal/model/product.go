package model

type Product struct {
	ID            int64    `db:"id" json:"product_id"`
	CategoryID    int64    `db:"category_id" json:"category_id"`
	Name          string   `db:"name" json:"name"`
	Description   *string  `db:"description" json:"description,omitempty"`
	Price         float64  `db:"price" json:"price"`
	DiscountPrice *float64 `db:"discount_price" json:"discount_price"` // Nullable
	Unit          string   `db:"unit" json:"unit"`
	Origin        *string  `db:"origin" json:"origin,omitempty"`
	ImageURL      *string  `db:"image_url" json:"image_url,omitempty"`
	IsFeatured    bool     `db:"is_featured" json:"is_featured"`
	IsNew         bool     `db:"is_new" json:"is_new"`
	IsActive      bool     `db:"is_active" json:"is_active"`
	BaseModel
	Category *Category `db:"-" json:"category,omitempty"` // Joined data
}

// EffectivePrice is the price a shopper pays: the discount price when one is set.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
