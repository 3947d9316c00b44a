package model

type Category struct {
	DTO
	BusinessId uint      `gorm:"index;not null" json:"businessId"`
	Name       string    `gorm:"not null" json:"name"`
	SortOrder  int       `json:"sortOrder"`
	Active     bool      `gorm:"default:true" json:"active"`
	Products   []Product `gorm:"foreignKey:CategoryId" json:"products,omitempty"`
}

type Product struct {
	DTO
	BusinessId  uint     `gorm:"index;not null" json:"businessId"`
	CategoryId  uint     `gorm:"index;not null" json:"categoryId"`
	Name        string   `gorm:"not null" json:"name"`
	Description string   `json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	PromoPrice  *float64 `json:"promoPrice"` // se presente, vale no lugar do preço base
	ImageUrl    *string  `json:"imageUrl"`
	Active      bool     `gorm:"default:true" json:"active"`

	AddonGroups []AddonGroup `gorm:"many2many:product_addon_groups" json:"addonGroups,omitempty"`
}

// EffectivePrice é o preço unitário no momento da venda: promocional
// quando existir, senão o preço base
func (p Product) EffectivePrice() float64 {
	if p.PromoPrice != nil {
		return *p.PromoPrice
	}
	return p.Price
}

type AddonGroup struct {
	DTO
	BusinessId   uint    `gorm:"index;not null" json:"businessId"`
	Name         string  `gorm:"not null" json:"name"`
	MinSelection int     `json:"minSelection"`
	MaxSelection int     `json:"maxSelection"` // 0 = sem limite
	Addons       []Addon `gorm:"foreignKey:AddonGroupId" json:"addons,omitempty"`
}

type Addon struct {
	DTO
	AddonGroupId uint    `gorm:"index;not null" json:"addonGroupId"`
	Name         string  `gorm:"not null" json:"name"`
	Price        float64 `json:"price"` // zero = grátis
}

type CreateCategoryInput struct {
	Name      string `validate:"required" json:"name"`
	SortOrder int    `json:"sortOrder"`
}

type EditCategoryInput struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

type CreateProductInput struct {
	CategoryId    uint     `validate:"required" json:"categoryId"`
	Name          string   `validate:"required" json:"name"`
	Description   string   `json:"description"`
	Price         float64  `validate:"required,gt=0" json:"price"`
	PromoPrice    *float64 `json:"promoPrice"`
	ImageUrl      *string  `json:"imageUrl"`
	AddonGroupIds []uint   `json:"addonGroupIds"`
}

type EditProductInput struct {
	CategoryId    *uint    `json:"categoryId"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price"`
	PromoPrice    *float64 `json:"promoPrice"`
	ImageUrl      *string  `json:"imageUrl"`
	Active        *bool    `json:"active"`
	AddonGroupIds *[]uint  `json:"addonGroupIds"`
}

type CreateAddonGroupInput struct {
	Name         string `validate:"required" json:"name"`
	MinSelection int    `validate:"gte=0" json:"minSelection"`
	MaxSelection int    `validate:"gte=0" json:"maxSelection"`
}

type CreateAddonInput struct {
	AddonGroupId uint    `validate:"required" json:"addonGroupId"`
	Name         string  `validate:"required" json:"name"`
	Price        float64 `validate:"gte=0" json:"price"`
}
