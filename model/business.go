package model

type Business struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Slug     string `gorm:"unique;not null" json:"slug"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	LogoUrl  *string `json:"logoUrl"`

	IsOpen            bool    `gorm:"default:true" json:"isOpen"`
	AutoApproveOrders bool    `gorm:"default:false" json:"autoApproveOrders"`
	OpeningTime       *string `json:"openingTime"` // "18:00" — se nulo, abertura manual
	ClosingTime       *string `json:"closingTime"` // "23:30"
	MinOrderValue     float64 `json:"minOrderValue"`

	// Credenciais Mercado Pago por estabelecimento. Nunca expostas no JSON.
	MPAccessToken   string `json:"-"`
	MPPublicKey     string `json:"mpPublicKey"`
	MPWebhookSecret string `json:"-"`

	Categories    []Category     `gorm:"foreignKey:BusinessId" json:"categories,omitempty"`
	DeliveryZones []DeliveryZone `gorm:"foreignKey:BusinessId" json:"deliveryZones,omitempty"`
}

type CreateBusinessInput struct {
	Name     string `validate:"required" json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`

	// Conta do proprietário criada junto com o estabelecimento
	OwnerUsername string `validate:"required" json:"ownerUsername"`
	OwnerEmail    string `validate:"required,email" json:"ownerEmail"`
	OwnerPassword string `validate:"required,min=6" json:"ownerPassword"`
}

type EditBusinessSettingsInput struct {
	Name              *string  `json:"name"`
	Phone             *string  `json:"phone"`
	Whatsapp          *string  `json:"whatsapp"`
	LogoUrl           *string  `json:"logoUrl"`
	IsOpen            *bool    `json:"isOpen"`
	AutoApproveOrders *bool    `json:"autoApproveOrders"`
	OpeningTime       *string  `json:"openingTime"`
	ClosingTime       *string  `json:"closingTime"`
	MinOrderValue     *float64 `json:"minOrderValue"`
	MPAccessToken     *string  `json:"mpAccessToken"`
	MPPublicKey       *string  `json:"mpPublicKey"`
	MPWebhookSecret   *string  `json:"mpWebhookSecret"`
}
