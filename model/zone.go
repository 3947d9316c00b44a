package model

type DeliveryZone struct {
	DTO
	BusinessId       uint    `gorm:"index;not null" json:"businessId"`
	NeighborhoodName string  `gorm:"not null" json:"neighborhoodName"`
	Fee              float64 `json:"fee"`
}

type CreateDeliveryZoneInput struct {
	NeighborhoodName string  `validate:"required" json:"neighborhoodName"`
	Fee              float64 `validate:"gte=0" json:"fee"`
}

type EditDeliveryZoneInput struct {
	NeighborhoodName *string  `json:"neighborhoodName"`
	Fee              *float64 `json:"fee"`
}
