package entity

// MenuItem is one row of a vendor's menu.
type MenuItem struct {
	ID              ID      `json:"id"`
	VendorID        ID      `json:"vendorId"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	IsAvailable     bool    `json:"isAvailable"`
	Description     string  `json:"description,omitempty"`
	PreparationTime int     `json:"preparationTime,omitempty"` // minutes
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// MenuItemPatch carries the fields of a partial menu item update. Nil fields
// are left untouched.
type MenuItemPatch struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,max=60"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	IsAvailable     *bool    `json:"isAvailable,omitempty"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	PreparationTime *int     `json:"preparationTime,omitempty" validate:"omitempty,gte=0"`
	ImageURL        *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// IsEmpty reports whether the patch changes nothing.
func (p MenuItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Price == nil && p.IsAvailable == nil &&
		p.Description == nil && p.PreparationTime == nil && p.ImageURL == nil
}
